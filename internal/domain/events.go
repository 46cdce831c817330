package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventPanelsLoaded    EventType = "PanelsLoaded"
	EventPageChanged     EventType = "PageChanged"
	EventError           EventType = "Error"
	EventScanStarted     EventType = "ScanStarted"
	EventScanCompleted   EventType = "ScanCompleted"
	EventScanRequested   EventType = "ScanRequested"
	EventAutoplayToggled EventType = "AutoplayToggled"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
	EventAppReady        EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// PanelsLoadedEvent is emitted when a panel directory has been (re)read
type PanelsLoadedEvent struct {
	Set PanelSet
}

func (e PanelsLoadedEvent) Type() EventType { return EventPanelsLoaded }

// PageChangedEvent is emitted when the logical page of a swiper changes
type PageChangedEvent struct {
	SwiperID string
	Page     int
	Count    int
}

func (e PageChangedEvent) Type() EventType { return EventPageChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ScanStartedEvent is emitted when panel loading begins
type ScanStartedEvent struct {
	Dir string
}

func (e ScanStartedEvent) Type() EventType { return EventScanStarted }

// ScanCompletedEvent is emitted when panel loading finishes
type ScanCompletedEvent struct {
	PanelsFound int
}

func (e ScanCompletedEvent) Type() EventType { return EventScanCompleted }

// ScanRequestedEvent asks the discovery service to reload a directory
type ScanRequestedEvent struct {
	Dir string
}

func (e ScanRequestedEvent) Type() EventType { return EventScanRequested }

// AutoplayToggledEvent is emitted when autoplay is paused or resumed at runtime
type AutoplayToggledEvent struct {
	IntervalMs int // 0 when paused
}

func (e AutoplayToggledEvent) Type() EventType { return EventAutoplayToggled }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	PanelsDir string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// AppReadyEvent is emitted once the UI has measured its first frame
type AppReadyEvent struct{}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
