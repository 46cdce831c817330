package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swipe/internal/config"
	"swipe/internal/domain"
	"swipe/internal/eventbus"
	inputtypes "swipe/internal/ui/input/types"
)

var panelTitles = []string{"Alpha", "Beta", "Gamma", "Delta"}

func testPanels(n int) domain.PanelSet {
	set := domain.PanelSet{Dir: "panels"}
	for i := 0; i < n; i++ {
		set.Panels = append(set.Panels, domain.Panel{
			Name: strings.ToLower(panelTitles[i]),
			Title: panelTitles[i],
			Body: "body of " + panelTitles[i],
		})
	}
	return set
}

type fakePager struct {
	shown []string
}

func (f *fakePager) Show(p domain.Panel) error {
	f.shown = append(f.shown, p.Name)
	return nil
}

type modelHarness struct {
	t     *testing.T
	m     *Model
	now   time.Time
	pager *fakePager
}

func newHarness(t *testing.T, cfg *config.Config, svc config.ConfigService, bus eventbus.EventBus) *modelHarness {
	t.Helper()
	h := &modelHarness{t: t, now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), pager: &fakePager{}}
	h.m = NewModel(bus, cfg, svc)
	h.m.now = func() time.Time { return h.now }
	h.m.SetPager(h.pager)
	return h
}

func mountModel(t *testing.T, cfg *config.Config, n int) *modelHarness {
	t.Helper()
	h := newHarness(t, cfg, nil, nil)
	h.send(tea.WindowSizeMsg{Width: 80, Height: 24})
	h.send(EventMsg{Event: eventbus.PanelsLoadedEvent{Set: testPanels(n)}})
	require.True(t, h.m.Swiper().Ready())
	return h
}

func (h *modelHarness) send(msg tea.Msg) tea.Cmd {
	h.t.Helper()
	_, cmd := h.m.Update(msg)
	return cmd
}

func (h *modelHarness) key(s string) tea.Cmd {
	switch s {
	case "right":
		return h.send(tea.KeyMsg{Type: tea.KeyRight})
	case "left":
		return h.send(tea.KeyMsg{Type: tea.KeyLeft})
	case "down":
		return h.send(tea.KeyMsg{Type: tea.KeyDown})
	case "enter":
		return h.send(tea.KeyMsg{Type: tea.KeyEnter})
	case "end":
		return h.send(tea.KeyMsg{Type: tea.KeyEnd})
	default:
		return h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	}
}

func (h *modelHarness) mouse(action tea.MouseAction, x, y int) tea.Cmd {
	return h.send(tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft})
}

// settle runs frame ticks until no callbacks are queued and lets the
// offset tween finish
func (h *modelHarness) settle() {
	for i := 0; i < 20 && h.m.sched.pendingFrames() > 0; i++ {
		h.send(frameMsg{})
	}
	h.now = h.now.Add(time.Second)
}

func (h *modelHarness) page() int {
	return h.m.Swiper().Logical()
}

func (h *modelHarness) view() string {
	return ansi.Strip(h.m.View())
}

func TestViewBeforeLoad(t *testing.T) {
	h := newHarness(t, config.DefaultConfig(), nil, nil)
	assert.Equal(t, "Loading...", h.m.View())

	h.send(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Contains(t, h.view(), "Loading panels...")
	assert.False(t, h.m.Swiper().Ready())
}

func TestMountShowsFirstPanel(t *testing.T) {
	h := mountModel(t, config.DefaultConfig(), 3)

	v := h.view()
	assert.Contains(t, v, "1/3")
	assert.Contains(t, v, "Alpha")
	assert.Len(t, strings.Split(h.m.View(), "\n"), 24)
}

func TestEmptyPanelSet(t *testing.T) {
	h := newHarness(t, config.DefaultConfig(), nil, nil)
	h.send(tea.WindowSizeMsg{Width: 80, Height: 24})
	h.send(EventMsg{Event: eventbus.PanelsLoadedEvent{Set: domain.PanelSet{Dir: "empty"}}})

	assert.Contains(t, h.view(), "No panels in empty")

	// navigation keys do nothing without panels
	h.key("right")
	h.settle()
	assert.Equal(t, 0, h.page())

	h.send(EventMsg{Event: eventbus.PanelsLoadedEvent{Set: testPanels(2)}})
	assert.Contains(t, h.view(), "1/2")
}

func TestKeysNavigate(t *testing.T) {
	h := mountModel(t, config.DefaultConfig(), 3)

	h.key("right")
	h.settle()
	assert.Equal(t, 1, h.page())
	assert.Contains(t, h.view(), "2/3")

	h.key("left")
	h.key("left")
	h.settle()
	assert.Equal(t, 2, h.page(), "queued navigations run in order and wrap")

	h.key("1")
	h.settle()
	assert.Equal(t, 0, h.page())

	h.key("end")
	h.settle()
	assert.Equal(t, 2, h.page())
}

func TestVerticalUsesUpDown(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Swiper.Direction = "vertical"
	h := mountModel(t, cfg, 3)

	h.key("right")
	h.settle()
	assert.Equal(t, 0, h.page())

	h.key("down")
	h.settle()
	assert.Equal(t, 1, h.page())
}

func TestGotoPrompt(t *testing.T) {
	h := mountModel(t, config.DefaultConfig(), 4)

	h.key("g")
	assert.Contains(t, h.view(), "Page:")
	h.key("3")
	h.key("enter")
	h.settle()
	assert.Equal(t, 2, h.page())

	h.key("g")
	h.key("9")
	h.key("enter")
	h.settle()
	assert.Equal(t, 2, h.page())
	assert.Contains(t, h.view(), `no page "9"`)
}

func TestFindPrompt(t *testing.T) {
	h := mountModel(t, config.DefaultConfig(), 4)

	h.key("/")
	h.key("delt")
	h.key("enter")
	h.settle()
	assert.Equal(t, 3, h.page())
	assert.Contains(t, h.view(), "Delta")
}

func TestToggleAutoplay(t *testing.T) {
	h := mountModel(t, config.DefaultConfig(), 3)
	sw := h.m.Swiper()
	require.Zero(t, sw.Options().AutoPlay)

	h.key("a")
	assert.Equal(t, defaultAutoplay, sw.Options().AutoPlay)
	assert.True(t, sw.Autoplay().Armed())
	assert.Contains(t, h.view(), "▶")

	h.key("a")
	assert.Zero(t, sw.Options().AutoPlay)
	assert.False(t, sw.Autoplay().Armed())

	h.key("a")
	assert.Equal(t, defaultAutoplay, sw.Options().AutoPlay)
}

func TestAutoplayTimerAdvances(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Swiper.AutoPlayMs = 1000
	h := mountModel(t, cfg, 3)

	require.Equal(t, 1, h.m.sched.armedTimers())
	id := h.m.sched.nextID
	h.send(timerMsg{id: id})
	h.settle()
	assert.Equal(t, 1, h.page())
	assert.Equal(t, 1, h.m.sched.armedTimers(), "autoplay re-arms")
}

func TestMouseDragPages(t *testing.T) {
	h := mountModel(t, config.DefaultConfig(), 3)

	h.mouse(tea.MouseActionPress, 70, 5)
	h.mouse(tea.MouseActionMotion, 40, 5)
	h.mouse(tea.MouseActionMotion, 10, 5)
	h.mouse(tea.MouseActionRelease, 10, 5)
	h.settle()

	assert.Equal(t, 1, h.page())
}

func TestMouseWheel(t *testing.T) {
	h := mountModel(t, config.DefaultConfig(), 3)

	h.send(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	h.settle()
	assert.Equal(t, 1, h.page())

	h.send(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	h.settle()
	assert.Equal(t, 0, h.page())
}

// click presses and releases the left button in place and returns the
// command produced by the release, without the scheduler ticks.
func (h *modelHarness) click(x, y int) tea.Cmd {
	h.m.handleMouse(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	cmd := h.m.handleMouse(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	h.m.sched.Drain()
	return cmd
}

func TestClickOpensPanelOnlyWithoutPreventDefault(t *testing.T) {
	h := mountModel(t, config.DefaultConfig(), 3)
	assert.Nil(t, h.click(40, 5))
	assert.Empty(t, h.pager.shown)

	cfg := config.DefaultConfig()
	cfg.Swiper.PreventDefault = false
	cfg.Swiper.AutoPlayMs = 2000
	h = mountModel(t, cfg, 3)

	cmd := h.click(40, 5)
	require.NotNil(t, cmd)
	assert.Zero(t, h.m.Swiper().Options().AutoPlay, "autoplay held while the pager is open")

	h.send(cmd())
	assert.Equal(t, []string{"alpha"}, h.pager.shown)
	assert.Equal(t, 2*time.Second, h.m.Swiper().Options().AutoPlay)
}

func TestClickOutsideTrackDoesNotOpen(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Swiper.PreventDefault = false
	h := mountModel(t, cfg, 3)

	assert.Nil(t, h.click(40, 0))
	assert.Empty(t, h.pager.shown)
}

func TestDotClickRequiresPropagation(t *testing.T) {
	// 3 dots of width 2 centered in 80 columns start at column 37;
	// the dots row sits below a 21-row track
	const dotsY = 22

	h := mountModel(t, config.DefaultConfig(), 3)
	h.mouse(tea.MouseActionPress, 41, dotsY)
	h.mouse(tea.MouseActionRelease, 41, dotsY)
	h.settle()
	assert.Equal(t, 0, h.page())

	cfg := config.DefaultConfig()
	cfg.Swiper.StopPropagation = false
	h = mountModel(t, cfg, 3)
	h.mouse(tea.MouseActionPress, 41, dotsY)
	h.mouse(tea.MouseActionRelease, 41, dotsY)
	h.settle()
	assert.Equal(t, 2, h.page())
}

func TestEnterOpensActivePanel(t *testing.T) {
	h := mountModel(t, config.DefaultConfig(), 3)
	h.key("right")
	h.settle()

	cmd := h.m.processAction(inputtypes.OpenPanelAction{})
	require.NotNil(t, cmd)
	assert.Nil(t, h.m.processAction(inputtypes.OpenPanelAction{}), "only one pager at a time")

	h.send(cmd())
	assert.Equal(t, []string{"beta"}, h.pager.shown)
	assert.False(t, h.m.pagerOpen)
}

func TestResizeKeepsPage(t *testing.T) {
	h := mountModel(t, config.DefaultConfig(), 3)
	h.key("right")
	h.settle()

	h.send(tea.WindowSizeMsg{Width: 60, Height: 20})
	assert.Equal(t, 1, h.page())
	assert.Equal(t, -60.0, h.m.frame.Offset)
	assert.Contains(t, h.view(), "Beta")
}

func TestPanelReloadClampsPage(t *testing.T) {
	h := mountModel(t, config.DefaultConfig(), 4)
	h.key("end")
	h.settle()
	require.Equal(t, 3, h.page())

	h.send(EventMsg{Event: eventbus.PanelsLoadedEvent{Set: testPanels(2)}})
	assert.Equal(t, 1, h.page())
	assert.Contains(t, h.view(), "2/2")
}

func TestErrorEventShowsInFooter(t *testing.T) {
	h := mountModel(t, config.DefaultConfig(), 2)
	h.send(EventMsg{Event: eventbus.ErrorEvent{Message: "Failed to load panels"}})
	assert.Contains(t, h.view(), "Failed to load panels")
}

func TestHelpPopup(t *testing.T) {
	h := mountModel(t, config.DefaultConfig(), 2)

	h.key("?")
	assert.Contains(t, h.view(), "go to page")

	h.key("l")
	assert.NotContains(t, h.view(), "go to page")
	h.settle()
	assert.Equal(t, 0, h.page(), "closing help swallows the key")
}

func TestQuitSavesConfigWhenAutosaveEnabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	cfg := config.DefaultConfig()
	cfg.UISettings.AutosaveOnExit = true

	h := newHarness(t, cfg, config.NewConfigService(path), nil)
	h.send(tea.WindowSizeMsg{Width: 80, Height: 24})
	h.send(EventMsg{Event: eventbus.PanelsLoadedEvent{Set: testPanels(3)}})
	h.key("right")
	h.settle()

	h.key("q")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "init_page = 1")
	assert.False(t, h.m.Swiper().Ready())
}

func TestForceQuitDoesNotSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	cfg := config.DefaultConfig()
	cfg.UISettings.AutosaveOnExit = true

	h := newHarness(t, cfg, config.NewConfigService(path), nil)
	h.send(tea.WindowSizeMsg{Width: 80, Height: 24})
	h.send(tea.KeyMsg{Type: tea.KeyCtrlC})

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestPageChangesArePublished(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	pages := make(chan eventbus.PageChangedEvent, 4)
	bus.Subscribe(eventbus.EventPageChanged, func(e eventbus.DomainEvent) {
		pages <- e.(eventbus.PageChangedEvent)
	})
	ready := make(chan struct{}, 1)
	bus.Subscribe(eventbus.EventAppReady, func(eventbus.DomainEvent) { ready <- struct{}{} })

	h := newHarness(t, config.DefaultConfig(), nil, bus)
	h.send(tea.WindowSizeMsg{Width: 80, Height: 24})
	h.send(EventMsg{Event: eventbus.PanelsLoadedEvent{Set: testPanels(3)}})
	h.key("left")
	h.settle()

	select {
	case e := <-pages:
		assert.Equal(t, 2, e.Page)
		assert.Equal(t, 3, e.Count)
		assert.Equal(t, h.m.Swiper().ID(), e.SwiperID)
	case <-time.After(time.Second):
		t.Fatal("no page change published")
	}
	select {
	case <-ready:
	case <-time.After(time.Second):
		t.Fatal("no ready event")
	}
}
