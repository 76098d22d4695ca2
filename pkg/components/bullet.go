package components

// BulletComponent 存储子弹的飞行参数
// 方向在发射时确定，之后不再改变
type BulletComponent struct {
	DirX, DirY  float64 // 单位方向向量
	Speed       float64 // 飞行速度（单位/秒）
	MaxDistance float64 // 距世界原点超过此距离即销毁
}
