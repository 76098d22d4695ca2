package scenes

import (
	"github.com/decker502/arena/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// RawInput ebiten 原始输入的一帧采样
type RawInput struct {
	Up, Down, Left, Right bool
	Restart               bool
	Quit                  bool
	Pointers              []PointerEvent
}

// InputPoller 每帧采集一次原始输入
type InputPoller func() RawInput

// PollEbitenInput 从 ebiten 读取键盘、鼠标和触摸状态
//
// 方向：方向键或 WASD；重启：R；退出：Escape
func PollEbitenInput() RawInput {
	return RawInput{
		Up:       IsAnyKeyPressed(ebiten.KeyArrowUp, ebiten.KeyW),
		Down:     IsAnyKeyPressed(ebiten.KeyArrowDown, ebiten.KeyS),
		Left:     IsAnyKeyPressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right:    IsAnyKeyPressed(ebiten.KeyArrowRight, ebiten.KeyD),
		Restart:  IsAnyKeyPressed(ebiten.KeyR),
		Quit:     IsAnyKeyJustPressed(ebiten.KeyEscape),
		Pointers: AppendJustPressedPointers(nil),
	}
}

// ToFrameInput 转换为模拟使用的帧输入
func (r RawInput) ToFrameInput() game.FrameInput {
	in := game.FrameInput{
		Up:      r.Up,
		Down:    r.Down,
		Left:    r.Left,
		Right:   r.Right,
		Restart: r.Restart,
	}
	for _, p := range r.Pointers {
		in.Presses = append(in.Presses, game.PointerPress{
			X:      float64(p.X),
			Y:      float64(p.Y),
			Button: toPointerButton(p),
		})
	}
	return in
}

func toPointerButton(p PointerEvent) game.PointerButton {
	if p.Touch {
		return game.PointerLeft
	}
	switch p.Button {
	case ebiten.MouseButtonRight:
		return game.PointerRight
	case ebiten.MouseButtonMiddle:
		return game.PointerMiddle
	default:
		return game.PointerLeft
	}
}
