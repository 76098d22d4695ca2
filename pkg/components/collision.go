package components

// CollisionComponent 定义实体的圆形碰撞边界
// 两个实体中心距离小于半径之和即判定碰撞
type CollisionComponent struct {
	Radius float64 // 碰撞半径（世界单位）
}
