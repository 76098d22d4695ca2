package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/decker502/arena/pkg/embedded"
	"github.com/decker502/arena/pkg/types"
	"gopkg.in/yaml.v3"
)

// DefaultArenaConfigPath 内置调参文件路径（embed.FS 内）
const DefaultArenaConfigPath = "data/arena.yaml"

// ErrInvalidConfig 配置校验失败
var ErrInvalidConfig = errors.New("invalid arena config")

// PlayerConfig 玩家参数
type PlayerConfig struct {
	Speed  float64 `yaml:"speed"`  // 移动速度（单位/秒）
	Radius float64 `yaml:"radius"` // 碰撞半径
	Glyph  string  `yaml:"glyph"`  // 显示字形
}

// BulletConfig 子弹参数
type BulletConfig struct {
	Speed       float64 `yaml:"speed"`       // 飞行速度（单位/秒）
	Radius      float64 `yaml:"radius"`      // 碰撞半径
	MaxDistance float64 `yaml:"maxDistance"` // 距世界原点的最大距离，超出即销毁
	Glyph       string  `yaml:"glyph"`
}

// SpawnConfig 敌人生成参数
type SpawnConfig struct {
	Interval    float64 `yaml:"interval"`    // 生成周期（秒）
	MinDistance float64 `yaml:"minDistance"` // 距玩家最小距离（含）
	MaxDistance float64 `yaml:"maxDistance"` // 距玩家最大距离（不含）
}

// EnemyStats 单个敌人类型的属性配置
type EnemyStats struct {
	Speed  float64 `yaml:"speed"`  // 追踪速度（单位/秒）
	Health int     `yaml:"health"` // 初始生命值
	Reward int     `yaml:"reward"` // 击杀奖励
	Weight int     `yaml:"weight"` // 权重，用于随机选择敌人类型
	Radius float64 `yaml:"radius"` // 碰撞半径
	Glyph  string  `yaml:"glyph"`
}

// ArenaConfig 竞技场调参文件结构
//
// 配置文件位置: data/arena.yaml
type ArenaConfig struct {
	Player  PlayerConfig          `yaml:"player"`
	Bullet  BulletConfig          `yaml:"bullet"`
	Spawn   SpawnConfig           `yaml:"spawn"`
	Enemies map[string]EnemyStats `yaml:"enemies"` // key: 敌人类型字符串（basic/fast/tank）
}

// DefaultArenaConfig 返回与 data/arena.yaml 一致的默认配置
// 测试和无法读取配置文件的工具使用此默认值
func DefaultArenaConfig() *ArenaConfig {
	return &ArenaConfig{
		Player: PlayerConfig{Speed: 300, Radius: 10, Glyph: "@"},
		Bullet: BulletConfig{Speed: 600, Radius: 5, MaxDistance: 5000, Glyph: "*"},
		Spawn:  SpawnConfig{Interval: 1.0, MinDistance: 300, MaxDistance: 500},
		Enemies: map[string]EnemyStats{
			"basic": {Speed: 150, Health: 1, Reward: 1, Weight: 1, Radius: 10, Glyph: "E"},
			"fast":  {Speed: 300, Health: 1, Reward: 2, Weight: 1, Radius: 10, Glyph: "F"},
			"tank":  {Speed: 75, Health: 3, Reward: 5, Weight: 1, Radius: 10, Glyph: "T"},
		},
	}
}

// LoadArenaConfig 从嵌入资源加载竞技场配置
//
// 参数:
//   - path: embed.FS 内的路径（如 "data/arena.yaml"）
//
// 返回:
//   - *ArenaConfig: 解析并校验后的配置
//   - error: 读取、解析或校验失败
func LoadArenaConfig(path string) (*ArenaConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read arena config %s: %w", path, err)
	}
	return ParseArenaConfig(data)
}

// LoadArenaConfigFile 从磁盘加载竞技场配置（-config 参数指定的外部文件）
func LoadArenaConfigFile(path string) (*ArenaConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read arena config file %s: %w", path, err)
	}
	return ParseArenaConfig(data)
}

// ParseArenaConfig 解析 YAML 内容并校验
func ParseArenaConfig(data []byte) (*ArenaConfig, error) {
	var cfg ArenaConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse arena config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate 验证配置有效性
//
// 检查项：
//   - 速度、半径、生成周期为正数
//   - 生成距离满足 0 <= min < max
//   - 三种敌人类型均已配置，生命值至少为 1，权重非负且总和为正
//
// 所有错误都包装 ErrInvalidConfig，调用方可用 errors.Is 判断
func (c *ArenaConfig) Validate() error {
	if c.Player.Speed <= 0 {
		return fmt.Errorf("%w: player speed must be positive, got %.1f", ErrInvalidConfig, c.Player.Speed)
	}
	if c.Player.Radius <= 0 {
		return fmt.Errorf("%w: player radius must be positive, got %.1f", ErrInvalidConfig, c.Player.Radius)
	}
	if c.Bullet.Speed <= 0 {
		return fmt.Errorf("%w: bullet speed must be positive, got %.1f", ErrInvalidConfig, c.Bullet.Speed)
	}
	if c.Bullet.Radius <= 0 {
		return fmt.Errorf("%w: bullet radius must be positive, got %.1f", ErrInvalidConfig, c.Bullet.Radius)
	}
	if c.Bullet.MaxDistance <= 0 {
		return fmt.Errorf("%w: bullet maxDistance must be positive, got %.1f", ErrInvalidConfig, c.Bullet.MaxDistance)
	}
	if c.Spawn.Interval <= 0 {
		return fmt.Errorf("%w: spawn interval must be positive, got %.2f", ErrInvalidConfig, c.Spawn.Interval)
	}
	if c.Spawn.MinDistance < 0 || c.Spawn.MinDistance >= c.Spawn.MaxDistance {
		return fmt.Errorf("%w: spawn distance range invalid: min(%.1f) max(%.1f)",
			ErrInvalidConfig, c.Spawn.MinDistance, c.Spawn.MaxDistance)
	}

	totalWeight := 0
	for _, kind := range types.AllEnemyKinds {
		stats, ok := c.Enemies[kind.String()]
		if !ok {
			return fmt.Errorf("%w: enemy %s is not configured", ErrInvalidConfig, kind)
		}
		if stats.Speed <= 0 {
			return fmt.Errorf("%w: enemy %s: speed must be positive, got %.1f", ErrInvalidConfig, kind, stats.Speed)
		}
		if stats.Health < 1 {
			return fmt.Errorf("%w: enemy %s: health must be at least 1, got %d", ErrInvalidConfig, kind, stats.Health)
		}
		if stats.Reward < 0 {
			return fmt.Errorf("%w: enemy %s: reward cannot be negative, got %d", ErrInvalidConfig, kind, stats.Reward)
		}
		if stats.Weight < 0 {
			return fmt.Errorf("%w: enemy %s: weight cannot be negative, got %d", ErrInvalidConfig, kind, stats.Weight)
		}
		if stats.Radius <= 0 {
			return fmt.Errorf("%w: enemy %s: radius must be positive, got %.1f", ErrInvalidConfig, kind, stats.Radius)
		}
		totalWeight += stats.Weight
	}
	if totalWeight <= 0 {
		return fmt.Errorf("%w: total enemy weight must be positive", ErrInvalidConfig)
	}

	for name := range c.Enemies {
		if types.EnemyKindFromString(name) == types.EnemyUnknown {
			return fmt.Errorf("%w: unknown enemy type %q", ErrInvalidConfig, name)
		}
	}

	return nil
}

// GetEnemyStats 获取指定敌人类型的属性
// 如果类型不存在，返回零值和 false
func (c *ArenaConfig) GetEnemyStats(kind types.EnemyKind) (EnemyStats, bool) {
	stats, ok := c.Enemies[kind.String()]
	return stats, ok
}

// TotalEnemyWeight 返回所有可生成敌人类型的权重总和
func (c *ArenaConfig) TotalEnemyWeight() int {
	total := 0
	for _, kind := range types.AllEnemyKinds {
		total += c.Enemies[kind.String()].Weight
	}
	return total
}
