package components

// FlashEffectComponent 受击闪白效果
// 子弹命中但未击杀敌人时添加，持续 Duration 秒后由 FlashEffectSystem 移除
type FlashEffectComponent struct {
	// Duration 闪烁持续时间（秒）
	Duration float64

	// Elapsed 已经过的时间（秒）
	Elapsed float64

	// Intensity 初始强度（0.0 - 1.0），随时间线性衰减
	Intensity float64
}

// Current 返回当前强度
func (f *FlashEffectComponent) Current() float64 {
	if f.Duration <= 0 || f.Elapsed >= f.Duration {
		return 0
	}
	return f.Intensity * (1 - f.Elapsed/f.Duration)
}
