// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// EnemyKind 定义敌人的类型
type EnemyKind int

const (
	// EnemyUnknown 未知敌人类型
	EnemyUnknown EnemyKind = iota
	// EnemyBasic 普通敌人：中速，1 点生命
	EnemyBasic
	// EnemyFast 快速敌人：高速，1 点生命
	EnemyFast
	// EnemyTank 坦克敌人：低速，3 点生命
	EnemyTank
)

// AllEnemyKinds 所有可生成的敌人类型，顺序固定
// 加权随机选择按此顺序累加权重，保证同一随机种子下结果可复现
var AllEnemyKinds = []EnemyKind{EnemyBasic, EnemyFast, EnemyTank}

// enemyKindStringMap 敌人类型到配置字符串的映射
var enemyKindStringMap = map[EnemyKind]string{
	EnemyBasic: "basic",
	EnemyFast:  "fast",
	EnemyTank:  "tank",
}

// stringToEnemyKindMap 配置字符串到敌人类型的反向映射
var stringToEnemyKindMap map[string]EnemyKind

func init() {
	stringToEnemyKindMap = make(map[string]EnemyKind, len(enemyKindStringMap))
	for kind, s := range enemyKindStringMap {
		stringToEnemyKindMap[s] = kind
	}
}

// String 返回敌人类型的配置字符串表示（用于配置文件匹配）
func (k EnemyKind) String() string {
	if s, ok := enemyKindStringMap[k]; ok {
		return s
	}
	return "unknown"
}

// EnemyKindFromString 将配置字符串转换为 EnemyKind
// 无法识别的字符串返回 EnemyUnknown
func EnemyKindFromString(s string) EnemyKind {
	if kind, ok := stringToEnemyKindMap[s]; ok {
		return kind
	}
	return EnemyUnknown
}

// EntityTag 标识实体在渲染层的类别
type EntityTag int

const (
	// TagNone 非游戏世界实体（例如 UI 文本）
	TagNone EntityTag = iota
	// TagPlayer 玩家
	TagPlayer
	// TagEnemy 敌人
	TagEnemy
	// TagBullet 子弹
	TagBullet
)

// String 返回实体类别名称
func (t EntityTag) String() string {
	switch t {
	case TagPlayer:
		return "player"
	case TagEnemy:
		return "enemy"
	case TagBullet:
		return "bullet"
	default:
		return "none"
	}
}
