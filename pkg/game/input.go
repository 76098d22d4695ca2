package game

// PointerButton 指针按键
type PointerButton int

const (
	// PointerLeft 鼠标左键或触摸
	PointerLeft PointerButton = iota
	// PointerRight 鼠标右键
	PointerRight
	// PointerMiddle 鼠标中键
	PointerMiddle
)

// PointerPress 一次指针按下事件（屏幕坐标）
type PointerPress struct {
	X, Y   float64
	Button PointerButton
}

// FrameInput 一帧的输入快照，由渲染/输入协作方每帧提供一次
//
// Up/Down/Left/Right/Restart 表示按键当前是否处于按下状态；
// Presses 是本帧发生的指针按下事件队列，按发生顺序排列。
type FrameInput struct {
	Up, Down, Left, Right bool
	Restart               bool
	Presses               []PointerPress
}

// HasMovement 是否有任意方向键按下
func (in *FrameInput) HasMovement() bool {
	return in.Up || in.Down || in.Left || in.Right
}

// Viewport 把屏幕坐标转换为世界坐标
// 由渲染协作方实现（如 utils.Camera）；转换失败返回 ok=false
type Viewport interface {
	ScreenToWorld(screenX, screenY float64) (worldX, worldY float64, ok bool)
}

// IdentityViewport 屏幕坐标即世界坐标，用于测试和无头运行
type IdentityViewport struct{}

// ScreenToWorld 原样返回输入坐标
func (IdentityViewport) ScreenToWorld(x, y float64) (float64, float64, bool) {
	return x, y, true
}

// RandomSource 可注入的随机数源，*rand.Rand 满足此接口
type RandomSource interface {
	Float64() float64
	Intn(n int) int
}
