package components

// PlayerComponent 标记玩家实体
// 任意时刻至多存在一个拥有此组件的实体
type PlayerComponent struct {
	Speed float64 // 移动速度（单位/秒）
}
