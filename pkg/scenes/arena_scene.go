package scenes

import (
	"image/color"
	"log"

	"github.com/decker502/arena/pkg/arena"
	"github.com/decker502/arena/pkg/components"
	"github.com/decker502/arena/pkg/types"
	"github.com/decker502/arena/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	// hudMargin HUD 文本距窗口边缘的距离
	hudMargin = 10.0
	// baseFontHeight basicfont.Face7x13 的原始字高
	baseFontHeight = 13.0
)

var (
	backgroundColor = color.RGBA{R: 24, G: 26, B: 32, A: 255}
	gridColor       = color.RGBA{R: 40, G: 44, B: 54, A: 255}
	playerColor     = color.RGBA{R: 90, G: 200, B: 120, A: 255}
	bulletColor     = color.RGBA{R: 250, G: 230, B: 120, A: 255}
	textColor       = color.White

	enemyColors = map[types.EnemyKind]color.RGBA{
		types.EnemyBasic: {R: 220, G: 70, B: 70, A: 255},
		types.EnemyFast:  {R: 245, G: 150, B: 60, A: 255},
		types.EnemyTank:  {R: 150, G: 90, B: 210, A: 255},
	}
)

// ArenaScene 竞技场场景
// 每帧采集输入、推进 World、按快照绘制。
type ArenaScene struct {
	world  *arena.World
	camera *utils.Camera
	follow bool
	poll   InputPoller
	face   *text.GoXFace
}

// NewArenaScene 创建竞技场场景
//
// camera 必须与构造 world 时传入的 Viewport 是同一个对象，
// 这样点击坐标的还原与绘制使用同一视口。
func NewArenaScene(world *arena.World, camera *utils.Camera, follow bool) *ArenaScene {
	return &ArenaScene{
		world:  world,
		camera: camera,
		follow: follow,
		poll:   PollEbitenInput,
		face:   text.NewGoXFace(basicfont.Face7x13),
	}
}

// SetInputPoller 替换输入来源（测试和回放使用）
func (s *ArenaScene) SetInputPoller(poll InputPoller) {
	s.poll = poll
}

// Update 推进一帧
func (s *ArenaScene) Update(deltaTime float64) error {
	raw := s.poll()
	if raw.Quit {
		log.Printf("[ArenaScene] Quit requested, final score %d (best %d)", s.world.Score().Value(), s.world.Score().Best())
		return ebiten.Termination
	}

	input := raw.ToFrameInput()
	s.world.Update(deltaTime, &input)

	if s.follow {
		if player, ok := s.world.Snapshot().Player(); ok {
			s.camera.CenterOn(player.X, player.Y)
		}
	}
	return nil
}

// Draw 绘制当前快照
func (s *ArenaScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s.drawGrid(screen)

	snap := s.world.Snapshot()
	for _, e := range snap.Entities {
		x, y := s.camera.WorldToScreen(e.X, e.Y)
		r := float32(e.Radius * s.camera.ZoomX)
		vector.DrawFilledCircle(screen, float32(x), float32(y), r, entityColor(e), true)
	}

	for _, t := range snap.Texts {
		s.drawText(screen, t)
	}
}

// drawGrid 绘制世界网格，便于在摄像机跟随时感知移动
func (s *ArenaScene) drawGrid(screen *ebiten.Image) {
	const spacing = 100.0
	if s.camera.ZoomX <= 0 || s.camera.ZoomY <= 0 {
		return
	}

	left, top, _ := s.camera.ScreenToWorld(0, 0)
	right, bottom, _ := s.camera.ScreenToWorld(s.camera.Width, s.camera.Height)

	for wx := float64(int(left/spacing)-1) * spacing; wx <= right; wx += spacing {
		sx, _ := s.camera.WorldToScreen(wx, 0)
		vector.StrokeLine(screen, float32(sx), 0, float32(sx), float32(s.camera.Height), 1, gridColor, false)
	}
	for wy := float64(int(bottom/spacing)-1) * spacing; wy <= top; wy += spacing {
		_, sy := s.camera.WorldToScreen(0, wy)
		vector.StrokeLine(screen, 0, float32(sy), float32(s.camera.Width), float32(sy), 1, gridColor, false)
	}
}

func (s *ArenaScene) drawText(screen *ebiten.Image, t arena.TextView) {
	scale := t.FontSize / baseFontHeight
	if scale <= 0 {
		scale = 1
	}

	op := &text.DrawOptions{}
	op.LineSpacing = baseFontHeight * 1.3
	op.GeoM.Scale(scale, scale)
	op.ColorScale.ScaleWithColor(textColor)

	switch t.Anchor {
	case components.AnchorCenter:
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		op.GeoM.Translate(s.camera.Width/2, s.camera.Height/2)
	default:
		op.GeoM.Translate(hudMargin, hudMargin)
	}

	text.Draw(screen, t.Text, s.face, op)
}

func entityColor(e arena.EntityView) color.RGBA {
	base := baseColor(e)
	if e.Flash <= 0 {
		return base
	}
	return lerpToWhite(base, e.Flash)
}

// lerpToWhite 按 t（0-1）把颜色向白色混合
func lerpToWhite(c color.RGBA, t float64) color.RGBA {
	if t > 1 {
		t = 1
	}
	mix := func(v uint8) uint8 {
		return uint8(float64(v) + (255-float64(v))*t)
	}
	return color.RGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}

func baseColor(e arena.EntityView) color.RGBA {
	switch e.Tag {
	case types.TagPlayer:
		return playerColor
	case types.TagBullet:
		return bulletColor
	case types.TagEnemy:
		if c, ok := enemyColors[e.Kind]; ok {
			return c
		}
	}
	return color.RGBA{R: 200, G: 200, B: 200, A: 255}
}

// World 返回场景驱动的竞技场世界
func (s *ArenaScene) World() *arena.World {
	return s.world
}
