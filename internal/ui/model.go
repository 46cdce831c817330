package ui

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"swipe/internal/config"
	"swipe/internal/domain"
	"swipe/internal/eventbus"
	"swipe/internal/swiper"
	"swipe/internal/ui/anim"
	"swipe/internal/ui/input"
	inputtypes "swipe/internal/ui/input/types"
	"swipe/internal/ui/views"
)

// Rows outside the track
const (
	headerRows = 1
	footerRows = 1
	dotsRows   = 1
)

// defaultAutoplay is used when autoplay is switched on without a configured interval
const defaultAutoplay = 3 * time.Second

// pressState remembers a left-button press until its release
type pressState struct {
	x, y    int
	dragged bool
	event   *swiper.TouchEvent
}

// Model represents the UI state
type Model struct {
	bus       eventbus.EventBus
	config    *config.Config
	configSvc config.ConfigService

	width  int
	height int

	panels  domain.PanelSet
	loaded  bool
	mounted bool

	sched *frameScheduler
	sw    *swiper.Swiper
	frame swiper.Frame
	tween *anim.Tween
	now   func() time.Time

	styles       *views.Styles
	help         help.Model
	dots         *views.Pagination
	inputHandler *input.Handler

	showHelp      bool
	pagerOpen     bool
	stashAutoplay time.Duration // interval restored when autoplay is toggled back on
	pagerAutoplay time.Duration // interval held while the pager is open
	status        string
	statusErr     bool
	press         *pressState

	pager PanelPager
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, configSvc config.ConfigService) *Model {
	opts, err := cfg.ToOptions()
	if err != nil {
		log.Printf("Invalid swiper options, using corrected values: %v", err)
	}

	styles := views.NewStyles()
	m := &Model{
		bus:          bus,
		config:       cfg,
		configSvc:    configSvc,
		sched:        newFrameScheduler(cfg.FrameInterval()),
		tween:        anim.NewTween(0, anim.Ease),
		now:          time.Now,
		styles:       styles,
		help:         help.New(),
		dots:         views.NewPagination(opts.PaginationColor, styles),
		inputHandler: input.New(input.DefaultKeyMap(opts.Axis == swiper.Vertical)),
	}

	m.sw = swiper.New(opts, 0, m.sched)
	m.sw.SetLogger(log.Default())
	m.sw.OnPaint(m.onPaint)
	m.sw.OnChange(m.onChange)
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager = NewPager(p)
}

// SetPager replaces the panel pager
func (m *Model) SetPager(p PanelPager) {
	m.pager = p
}

// Swiper exposes the engine driving the carousel
func (m *Model) Swiper() *swiper.Swiper {
	return m.sw
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.measure()

	case tea.KeyMsg:
		if m.showHelp && msg.String() != "ctrl+c" {
			// any key closes the help popup
			m.showHelp = false
			break
		}
		actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext())
		cmds = append(cmds, cmd)
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}

	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg))

	case frameMsg:
		m.sched.runFrame()
		if m.tween.Active(m.now()) {
			m.sched.KeepAlive()
		}

	case timerMsg:
		m.sched.fire(msg.id)

	case EventMsg:
		cmds = append(cmds, m.handleEvent(msg.Event))

	case pagerClosedMsg:
		m.pagerOpen = false
		if msg.err != nil {
			log.Printf("Pager for %s failed: %v", msg.panel, msg.err)
			m.setError(fmt.Sprintf("pager: %v", msg.err))
		}
		m.sw.SetAutoPlay(m.pagerAutoplay)

	default:
		cmds = append(cmds, m.inputHandler.Update(msg))
	}

	cmds = append(cmds, m.sched.Drain())
	return m, tea.Batch(cmds...)
}

func (m *Model) inputContext() *input.ModelContext {
	return &input.ModelContext{
		Pages:    m.panels.Len(),
		Page:     m.sw.Logical(),
		Autoplay: m.sw.Options().AutoPlay > 0,
		Open:     m.pagerOpen,
	}
}

// trackSize returns the container the swiper is measured against
func (m *Model) trackSize() (int, int) {
	rows := m.height - headerRows - footerRows
	if m.sw.Options().PaginationVisible {
		rows -= dotsRows
	}
	return max(m.width, 0), max(rows, 0)
}

// measure mounts the swiper once both the panels and the window size are
// known, and re-measures on later resizes.
func (m *Model) measure() {
	if !m.loaded || m.width == 0 {
		return
	}
	w, h := m.trackSize()
	first := !m.mounted
	if first {
		m.sw.SetCount(m.panels.Len())
		m.mounted = true
	}
	m.sw.Measure(swiper.Rect{Width: float64(w), Height: float64(h)})
	if first && m.bus != nil {
		m.bus.Publish(eventbus.AppReadyEvent{})
	}
}

func (m *Model) setPanels(set domain.PanelSet) {
	prev := m.panels.Len()
	m.panels = set
	m.loaded = true
	log.Printf("Loaded %d panels from %s", set.Len(), set.Dir)

	if !m.mounted {
		m.measure()
		return
	}
	if set.Len() != prev {
		m.sw.SetCount(set.Len())
	}
}

func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.PanelsLoadedEvent:
		m.setPanels(e.Set)
	case eventbus.ErrorEvent:
		m.setError(e.Message)
	case eventbus.ScanStartedEvent:
		m.setStatus("loading " + e.Dir)
	case eventbus.ScanCompletedEvent:
		m.setStatus(fmt.Sprintf("%d panels", e.PanelsFound))
	case eventbus.ConfigSavedEvent:
		m.setStatus("config saved")
	}
	return nil
}

// onPaint receives every engine paint. Moving frames snap; settled frames
// ease to the new offset over the configured duration.
func (m *Model) onPaint(f swiper.Frame) {
	m.frame = f
	now := m.now()
	if f.Moving {
		m.tween.Jump(f.Offset)
		return
	}
	m.tween.AnimateTo(f.Offset, f.Transition(), now)
	if m.tween.Active(now) {
		m.sched.KeepAlive()
	}
}

func (m *Model) onChange(page int) {
	if m.bus != nil {
		m.bus.Publish(eventbus.PageChangedEvent{
			SwiperID: m.sw.ID(),
			Page:     page,
			Count:    m.sw.Count(),
		})
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusErr = true
}

// processAction executes an input action
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		switch a.Direction {
		case "prev":
			m.sw.Prev()
		case "next":
			m.sw.Next()
		case "first":
			m.sw.To(0)
		case "last":
			m.sw.To(m.panels.Len() - 1)
		}

	case inputtypes.GotoPageAction:
		m.sw.To(a.Page)

	case inputtypes.SubmitTextAction:
		switch a.Mode {
		case inputtypes.ModeGoto:
			m.gotoPage(a.Text)
		case inputtypes.ModeFind:
			m.find(a.Text)
		}

	case inputtypes.CancelTextAction:
		m.setStatus("")

	case inputtypes.ToggleAutoplayAction:
		m.toggleAutoplay()

	case inputtypes.OpenPanelAction:
		return m.openActive()

	case inputtypes.ReloadAction:
		if m.bus != nil {
			m.bus.Publish(eventbus.ScanRequestedEvent{Dir: m.config.PanelsDir})
		}

	case inputtypes.ToggleHelpAction:
		m.showHelp = !m.showHelp

	case inputtypes.QuitAction:
		return m.quit(!a.Force)
	}
	return nil
}

func (m *Model) gotoPage(text string) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 1 || n > m.panels.Len() {
		m.setError(fmt.Sprintf("no page %q", text))
		return
	}
	m.sw.To(n - 1)
}

func (m *Model) find(query string) {
	i, ok := findPanel(m.panels.Titles(), query)
	if !ok {
		m.setError(fmt.Sprintf("no panel matching %q", query))
		return
	}
	m.setStatus("")
	m.sw.To(i)
}

func (m *Model) toggleAutoplay() {
	current := m.sw.Options().AutoPlay
	var next time.Duration
	if current == 0 {
		switch {
		case m.stashAutoplay > 0:
			next = m.stashAutoplay
		case m.config.Swiper.AutoPlayMs > 0:
			next = time.Duration(m.config.Swiper.AutoPlayMs) * time.Millisecond
		default:
			next = defaultAutoplay
		}
	}
	m.stashAutoplay = current
	m.sw.SetAutoPlay(next)

	if next > 0 {
		m.setStatus(fmt.Sprintf("autoplay every %s", next))
	} else {
		m.setStatus("autoplay paused")
	}
	if m.bus != nil {
		m.bus.Publish(eventbus.AutoplayToggledEvent{IntervalMs: int(next / time.Millisecond)})
	}
}

func (m *Model) activePanel() (domain.Panel, bool) {
	return m.panels.At(m.sw.Logical())
}

// openActive shows the active panel in the pager. Autoplay is held while
// the pager owns the terminal.
func (m *Model) openActive() tea.Cmd {
	p, ok := m.activePanel()
	if !ok || m.pager == nil || m.pagerOpen {
		return nil
	}
	m.pagerOpen = true
	m.pagerAutoplay = m.sw.Options().AutoPlay
	m.sw.SetAutoPlay(0)
	return openPanel(m.pager, p)
}

func (m *Model) quit(save bool) tea.Cmd {
	if save && m.config.UISettings.AutosaveOnExit && m.configSvc != nil {
		autoplay := m.sw.Options().AutoPlay
		if m.pagerOpen {
			autoplay = m.pagerAutoplay
		}
		m.config.ApplyRuntime(m.sw.Logical(), autoplay)
		if err := m.configSvc.Save(m.config); err != nil {
			log.Printf("Failed to save config: %v", err)
		} else {
			log.Printf("Config saved to %s", m.configSvc.Path())
		}
	}
	m.sw.Unmount()
	return tea.Quit
}

// handleMouse turns left-button presses into touch gestures and the wheel
// into prev/next.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		if msg.Action == tea.MouseActionPress {
			m.sw.Prev()
		}
		return nil
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		if msg.Action == tea.MouseActionPress {
			m.sw.Next()
		}
		return nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		ev := swiper.NewTouchEvent(float64(msg.X), float64(msg.Y))
		m.sw.TouchStart(ev)
		m.press = &pressState{x: msg.X, y: msg.Y, event: ev}

		if !ev.PropagationStopped() && m.onDots(msg.Y) {
			if page, ok := m.dots.HitTest(msg.X, m.panels.Len(), m.width); ok {
				m.sw.To(page)
			}
		}

	case tea.MouseActionMotion:
		if m.press == nil {
			return nil
		}
		if msg.X != m.press.x || msg.Y != m.press.y {
			m.press.dragged = true
		}
		m.sw.TouchMove(swiper.NewTouchEvent(float64(msg.X), float64(msg.Y)))

	case tea.MouseActionRelease:
		press := m.press
		m.press = nil
		if press == nil {
			return nil
		}
		m.sw.TouchEnd(swiper.NewTouchEvent(float64(msg.X), float64(msg.Y)))

		click := !press.dragged && msg.X == press.x && msg.Y == press.y
		if click && !press.event.DefaultPrevented() && m.onTrack(msg.Y) {
			return m.openActive()
		}
	}
	return nil
}

func (m *Model) onTrack(y int) bool {
	_, h := m.trackSize()
	return y >= headerRows && y < headerRows+h
}

func (m *Model) onDots(y int) bool {
	if !m.sw.Options().PaginationVisible {
		return false
	}
	_, h := m.trackSize()
	return y == headerRows+h
}

// offsetNow returns the rendered track offset, rounded to whole cells
func (m *Model) offsetNow() int {
	return int(math.Round(m.tween.Value(m.now())))
}
