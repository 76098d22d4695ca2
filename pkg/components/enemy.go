package components

import "github.com/decker502/arena/pkg/types"

// EnemyComponent 存储敌人的类型数据
// 速度和击杀奖励在生成时从配置表复制，运行期间不变
type EnemyComponent struct {
	Kind   types.EnemyKind // 敌人类型
	Speed  float64         // 追踪玩家的速度（单位/秒）
	Reward int             // 击杀奖励分数
}
