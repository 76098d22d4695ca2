package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerEvent ebiten 的一次指针按下事件（屏幕坐标）
type PointerEvent struct {
	X, Y   int
	Button ebiten.MouseButton
	// Touch 是否来自触摸屏，触摸始终视为左键
	Touch bool
}

var pointerButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// AppendJustPressedPointers 追加本帧新按下的触摸点和鼠标按键
// 同时支持鼠标点击和触摸输入，触摸在前
func AppendJustPressedPointers(events []PointerEvent) []PointerEvent {
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		events = append(events, PointerEvent{X: x, Y: y, Button: ebiten.MouseButtonLeft, Touch: true})
	}

	for _, button := range pointerButtons {
		if inpututil.IsMouseButtonJustPressed(button) {
			x, y := ebiten.CursorPosition()
			events = append(events, PointerEvent{X: x, Y: y, Button: button})
		}
	}
	return events
}

// IsAnyKeyPressed 任意一个键处于按下状态时返回 true
func IsAnyKeyPressed(keys ...ebiten.Key) bool {
	for _, key := range keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// IsAnyKeyJustPressed 任意一个键在本帧刚被按下时返回 true
func IsAnyKeyJustPressed(keys ...ebiten.Key) bool {
	for _, key := range keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}
