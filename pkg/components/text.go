package components

// TextAnchor 文本锚点
type TextAnchor int

const (
	// AnchorTopLeft 屏幕左上角（HUD 分数）
	AnchorTopLeft TextAnchor = iota
	// AnchorCenter 屏幕中心（游戏结束提示）
	AnchorCenter
)

// TextRole 文本用途，方便系统定位各自负责的文本实体
type TextRole int

const (
	// TextRoleScore HUD 分数文本
	TextRoleScore TextRole = iota
	// TextRoleGameOver 游戏结束提示
	TextRoleGameOver
)

// TextComponent 屏幕空间的 UI 文本
// 不属于回合实体，不会被回合清理销毁
type TextComponent struct {
	Text     string
	Anchor   TextAnchor
	Role     TextRole
	FontSize float64 // 期望字号（像素），终端渲染忽略
}
