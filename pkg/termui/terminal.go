// Package termui 终端版前端：把 tcell 事件转换为帧输入，并用字符绘制快照
//
// 一个字符格对应 config.TerminalCellWidth × config.TerminalCellHeight 世界单位。
// 终端只上报按下事件，不上报松开，所以方向键和重启键在每次按下后保持
// HoldWindow 时长的“按住”状态。
package termui

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/decker502/arena/pkg/arena"
	"github.com/decker502/arena/pkg/components"
	"github.com/decker502/arena/pkg/config"
	"github.com/decker502/arena/pkg/game"
	"github.com/decker502/arena/pkg/types"
	"github.com/decker502/arena/pkg/utils"
	"github.com/gdamore/tcell/v2"
)

// DefaultHoldWindow 按键事件之后保持按下状态的时长
// 略大于常见终端的按键重复间隔，按住方向键时移动不会断续
const DefaultHoldWindow = 150 * time.Millisecond

// holdKey 需要模拟按住状态的逻辑按键
type holdKey int

const (
	holdUp holdKey = iota
	holdDown
	holdLeft
	holdRight
	holdRestart
)

var (
	styleDefault = tcell.StyleDefault
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleBullet  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	enemyStyles  = map[types.EnemyKind]tcell.Style{
		types.EnemyBasic: tcell.StyleDefault.Foreground(tcell.ColorRed),
		types.EnemyFast:  tcell.StyleDefault.Foreground(tcell.ColorOrange),
		types.EnemyTank:  tcell.StyleDefault.Foreground(tcell.ColorPurple).Bold(true),
	}
)

// NewTerminalCamera 创建终端视口：宽高以字符格计
func NewTerminalCamera(cols, rows int) *utils.Camera {
	return &utils.Camera{
		Width:  float64(cols),
		Height: float64(rows),
		ZoomX:  1 / config.TerminalCellWidth,
		ZoomY:  1 / config.TerminalCellHeight,
	}
}

// Terminal 终端前端
type Terminal struct {
	screen tcell.Screen
	world  *arena.World
	camera *utils.Camera
	follow bool

	// HoldWindow 按键保持时长
	HoldWindow time.Duration

	holds       map[holdKey]time.Time
	presses     []game.PointerPress
	lastButtons tcell.ButtonMask
	quit        bool

	now func() time.Time
}

// NewTerminal 创建终端前端
// camera 必须与构造 world 时传入的 Viewport 是同一个对象
func NewTerminal(screen tcell.Screen, world *arena.World, camera *utils.Camera, follow bool) *Terminal {
	cols, rows := screen.Size()
	camera.Resize(float64(cols), float64(rows))

	return &Terminal{
		screen:     screen,
		world:      world,
		camera:     camera,
		follow:     follow,
		HoldWindow: DefaultHoldWindow,
		holds:      make(map[holdKey]time.Time),
		now:        time.Now,
	}
}

// HandleEvent 处理一个 tcell 事件
// 返回 false 表示用户请求退出
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		t.handleKey(ev)
	case *tcell.EventMouse:
		t.handleMouse(ev)
	case *tcell.EventResize:
		cols, rows := ev.Size()
		t.camera.Resize(float64(cols), float64(rows))
		t.screen.Sync()
		log.Printf("[Terminal] Resized to %dx%d", cols, rows)
	}
	return !t.quit
}

func (t *Terminal) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		t.quit = true
	case tcell.KeyUp:
		t.hold(holdUp)
	case tcell.KeyDown:
		t.hold(holdDown)
	case tcell.KeyLeft:
		t.hold(holdLeft)
	case tcell.KeyRight:
		t.hold(holdRight)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			t.hold(holdUp)
		case 's', 'S':
			t.hold(holdDown)
		case 'a', 'A':
			t.hold(holdLeft)
		case 'd', 'D':
			t.hold(holdRight)
		case 'r', 'R':
			t.hold(holdRestart)
		}
	}
}

// handleMouse 只在左键由松开变为按下时产生一次射击
func (t *Terminal) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	if buttons&tcell.Button1 != 0 && t.lastButtons&tcell.Button1 == 0 {
		x, y := ev.Position()
		// 取字符格中心
		t.presses = append(t.presses, game.PointerPress{
			X:      float64(x) + 0.5,
			Y:      float64(y) + 0.5,
			Button: game.PointerLeft,
		})
	}
	t.lastButtons = buttons
}

func (t *Terminal) hold(key holdKey) {
	t.holds[key] = t.now().Add(t.HoldWindow)
}

func (t *Terminal) held(key holdKey, now time.Time) bool {
	deadline, ok := t.holds[key]
	return ok && now.Before(deadline)
}

// FrameInput 生成本帧输入并清空指针队列
func (t *Terminal) FrameInput() game.FrameInput {
	now := t.now()
	in := game.FrameInput{
		Up:      t.held(holdUp, now),
		Down:    t.held(holdDown, now),
		Left:    t.held(holdLeft, now),
		Right:   t.held(holdRight, now),
		Restart: t.held(holdRestart, now),
		Presses: t.presses,
	}
	t.presses = nil
	return in
}

// Step 推进一帧并重绘
func (t *Terminal) Step(dt float64) {
	in := t.FrameInput()
	t.world.Update(dt, &in)

	if t.follow {
		if player, ok := t.world.Snapshot().Player(); ok {
			t.camera.CenterOn(player.X, player.Y)
		}
	}
	t.Draw()
}

// Draw 用字符绘制当前快照
func (t *Terminal) Draw() {
	t.screen.Clear()
	cols, rows := t.screen.Size()

	snap := t.world.Snapshot()
	for _, e := range snap.Entities {
		sx, sy := t.camera.WorldToScreen(e.X, e.Y)
		if sx < 0 || sy < 0 {
			continue
		}
		col, row := int(sx), int(sy)
		if col >= cols || row >= rows {
			continue
		}
		t.screen.SetContent(col, row, glyphRune(e.Glyph), nil, entityStyle(e))
	}

	for _, text := range snap.Texts {
		t.drawText(text, cols, rows)
	}

	t.screen.Show()
}

func (t *Terminal) drawText(text arena.TextView, cols, rows int) {
	lines := strings.Split(text.Text, "\n")

	switch text.Anchor {
	case components.AnchorCenter:
		top := rows/2 - len(lines)/2
		for i, line := range lines {
			left := (cols - len(line)) / 2
			t.putString(left, top+i, line, styleHUD)
		}
	default:
		for i, line := range lines {
			t.putString(0, i, line, styleHUD)
		}
	}
}

func (t *Terminal) putString(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

// Run 运行终端主循环，直到用户退出或 ctx 取消
func (t *Terminal) Run(ctx context.Context, tick time.Duration) error {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go forwardEvents(t.screen.PollEvent, eventChan, done)

	dt := tick.Seconds()
	t.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-eventChan:
			if !t.HandleEvent(ev) {
				log.Printf("[Terminal] Quit requested, final score %d (best %d)",
					t.world.Score().Value(), t.world.Score().Best())
				return nil
			}

		case <-ticker.C:
			t.Step(dt)
		}
	}
}

// forwardEvents 把 poll 读到的事件转发到 out
// poll 返回 nil（屏幕已 Fini）或 done 关闭时退出
func forwardEvents(poll func() tcell.Event, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

func glyphRune(glyph string) rune {
	for _, r := range glyph {
		return r
	}
	return '?'
}

func entityStyle(e arena.EntityView) tcell.Style {
	style := baseStyle(e)
	if e.Flash > 0 {
		return style.Reverse(true)
	}
	return style
}

func baseStyle(e arena.EntityView) tcell.Style {
	switch e.Tag {
	case types.TagPlayer:
		return stylePlayer
	case types.TagBullet:
		return styleBullet
	case types.TagEnemy:
		if style, ok := enemyStyles[e.Kind]; ok {
			return style
		}
	}
	return styleDefault
}
