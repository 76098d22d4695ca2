package config

// 窗口与渲染常量
const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 800

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 600

	// WindowTitle 窗口标题
	WindowTitle = "Arena"

	// HUDFontSize 分数文本字号
	HUDFontSize = 30.0

	// GameOverFontSize 游戏结束提示字号
	GameOverFontSize = 40.0

	// TerminalCellWidth 终端中一列对应的世界单位
	TerminalCellWidth = 10.0

	// TerminalCellHeight 终端中一行对应的世界单位（字符格约为 1:2）
	TerminalCellHeight = 20.0

	// HitFlashDuration 敌人受击未死时的闪白时长（秒）
	HitFlashDuration = 0.15
)
