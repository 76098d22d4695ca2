package components

// HealthComponent 存储实体的生命值信息
// 用于敌人等可被攻击的实体；存活期间 CurrentHealth 始终大于 0
type HealthComponent struct {
	CurrentHealth int // 当前生命值
	MaxHealth     int // 最大生命值
}
