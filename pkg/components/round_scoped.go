package components

// RoundScopedComponent 标记属于当前回合的实体（玩家、敌人、子弹）
// 进入 GameOver 时，所有带此标记的实体在一次过滤中统一销毁
type RoundScopedComponent struct{}
