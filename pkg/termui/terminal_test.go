package termui

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/decker502/arena/pkg/arena"
	"github.com/decker502/arena/pkg/config"
	"github.com/decker502/arena/pkg/entities"
	"github.com/decker502/arena/pkg/game"
	"github.com/decker502/arena/pkg/types"
	"github.com/gdamore/tcell/v2"
)

// fakeClock 可手动推进的时钟
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen, *fakeClock) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init() error = %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	camera := NewTerminalCamera(80, 24)
	world, err := arena.NewWorld(config.DefaultArenaConfig(), rand.New(rand.NewSource(1)), camera)
	if err != nil {
		t.Fatalf("NewWorld() error = %v", err)
	}

	term := NewTerminal(screen, world, camera, false)
	clock := &fakeClock{now: time.Unix(1000, 0)}
	term.now = clock.Now
	return term, screen, clock
}

func rowText(screen tcell.SimulationScreen, row, cols int) string {
	var sb strings.Builder
	for x := 0; x < cols; x++ {
		r, _, _, _ := screen.GetContent(x, row)
		if r == 0 {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestTerminalCamera(t *testing.T) {
	cam := NewTerminalCamera(80, 24)

	sx, sy := cam.WorldToScreen(0, 0)
	if sx != 40 || sy != 12 {
		t.Errorf("origin = (%.1f, %.1f), want (40, 12)", sx, sy)
	}
	// 一格 = 10×20 世界单位
	sx, sy = cam.WorldToScreen(100, 40)
	if sx != 50 || sy != 10 {
		t.Errorf("(100, 40) = (%.1f, %.1f), want (50, 10)", sx, sy)
	}
}

func TestTerminalQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want bool
	}{
		{"Escape 退出", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), false},
		{"Ctrl-C 退出", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), false},
		{"方向键继续", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), true},
		{"字母继续", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term, _, _ := newTestTerminal(t)
			if got := term.HandleEvent(tt.ev); got != tt.want {
				t.Errorf("HandleEvent() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestTerminalKeyHold 测试按键保持窗口
func TestTerminalKeyHold(t *testing.T) {
	term, _, clock := newTestTerminal(t)

	term.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))
	term.HandleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))

	in := term.FrameInput()
	if !in.Up || !in.Right || in.Down || in.Left {
		t.Errorf("input = %+v, want up+right", in)
	}

	clock.Advance(DefaultHoldWindow / 2)
	if in := term.FrameInput(); !in.Up {
		t.Error("key should still be held inside the window")
	}

	clock.Advance(DefaultHoldWindow)
	if in := term.FrameInput(); in.Up || in.Right {
		t.Errorf("hold should decay, got %+v", in)
	}
}

func TestTerminalRestartKey(t *testing.T) {
	term, _, _ := newTestTerminal(t)
	term.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'R', tcell.ModShift))

	if in := term.FrameInput(); !in.Restart {
		t.Error("R should hold restart")
	}
}

// TestTerminalMouseEdge 测试鼠标左键按下沿
func TestTerminalMouseEdge(t *testing.T) {
	term, _, _ := newTestTerminal(t)

	term.HandleEvent(tcell.NewEventMouse(50, 12, tcell.Button1, tcell.ModNone))
	term.HandleEvent(tcell.NewEventMouse(51, 12, tcell.Button1, tcell.ModNone)) // 拖动
	term.HandleEvent(tcell.NewEventMouse(51, 12, tcell.ButtonNone, tcell.ModNone))
	term.HandleEvent(tcell.NewEventMouse(30, 5, tcell.Button1, tcell.ModNone))
	term.HandleEvent(tcell.NewEventMouse(30, 5, tcell.Button2, tcell.ModNone))

	in := term.FrameInput()
	if len(in.Presses) != 2 {
		t.Fatalf("presses = %d, want 2", len(in.Presses))
	}
	if in.Presses[0].X != 50.5 || in.Presses[0].Y != 12.5 {
		t.Errorf("first press = (%.1f, %.1f), want cell center (50.5, 12.5)", in.Presses[0].X, in.Presses[0].Y)
	}
	if in.Presses[0].Button != game.PointerLeft {
		t.Error("mouse button 1 should map to left")
	}

	if in := term.FrameInput(); len(in.Presses) != 0 {
		t.Error("press queue should be drained after FrameInput")
	}
}

func TestTerminalClickFires(t *testing.T) {
	term, _, _ := newTestTerminal(t)

	term.HandleEvent(tcell.NewEventMouse(50, 12, tcell.Button1, tcell.ModNone))
	term.Step(0)

	if n := term.world.Snapshot().CountTag(types.TagBullet); n != 1 {
		t.Errorf("bullets = %d, want 1", n)
	}
}

// TestTerminalDraw 测试字符绘制
func TestTerminalDraw(t *testing.T) {
	term, screen, _ := newTestTerminal(t)

	term.Step(0)

	r, _, _, _ := screen.GetContent(40, 12)
	if r != '@' {
		t.Errorf("player glyph at center = %q, want '@'", r)
	}
	if row := rowText(screen, 0, 80); !strings.HasPrefix(row, "Score: 0") {
		t.Errorf("HUD row = %q, want prefix %q", row, "Score: 0")
	}
}

func TestTerminalDrawGameOver(t *testing.T) {
	term, screen, _ := newTestTerminal(t)
	w := term.world
	if _, err := entities.NewEnemyEntity(w.EntityManager(), w.Config(), types.EnemyBasic, 5, 0); err != nil {
		t.Fatal(err)
	}

	term.Step(0)

	if w.GameState().Phase() != game.PhaseGameOver {
		t.Fatalf("phase = %v, want GameOver", w.GameState().Phase())
	}
	var found bool
	for row := 0; row < 24; row++ {
		if strings.Contains(rowText(screen, row, 80), "GAME OVER") {
			found = true
			if !strings.Contains(rowText(screen, row+1, 80), "Press R to Restart") {
				t.Error("restart hint should follow GAME OVER")
			}
		}
	}
	if !found {
		t.Error("GAME OVER not drawn")
	}
}

func TestTerminalResize(t *testing.T) {
	term, _, _ := newTestTerminal(t)

	term.HandleEvent(tcell.NewEventResize(100, 30))

	if term.camera.Width != 100 || term.camera.Height != 30 {
		t.Errorf("camera = %.0fx%.0f, want 100x30", term.camera.Width, term.camera.Height)
	}
}

func TestTerminalFollow(t *testing.T) {
	term, _, _ := newTestTerminal(t)
	term.follow = true

	term.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	term.Step(0.5)

	if term.camera.Y != 150 {
		t.Errorf("camera.Y = %.1f, want 150", term.camera.Y)
	}
}

// TestForwardEventsStopsWhenDone 主循环退出后转发协程不会阻塞在满的通道上
func TestForwardEventsStopsWhenDone(t *testing.T) {
	poll := func() tcell.Event {
		return tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)
	}
	out := make(chan tcell.Event) // 无人接收
	done := make(chan struct{})
	finished := make(chan struct{})

	go func() {
		forwardEvents(poll, out, done)
		close(finished)
	}()
	close(done)

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("forwardEvents did not return after done was closed")
	}
}

func TestForwardEventsStopsOnNil(t *testing.T) {
	events := []tcell.Event{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), nil}
	poll := func() tcell.Event {
		ev := events[0]
		events = events[1:]
		return ev
	}
	out := make(chan tcell.Event, 4)

	forwardEvents(poll, out, make(chan struct{}))

	if len(out) != 1 {
		t.Errorf("forwarded %d events, want 1", len(out))
	}
}

func TestRunReturnsOnCancel(t *testing.T) {
	term, _, _ := newTestTerminal(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := term.Run(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}
