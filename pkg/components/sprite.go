package components

import "github.com/decker502/arena/pkg/types"

// SpriteComponent 存储实体的视觉表现
// 核心模拟不读取此组件，只为渲染层提供字形和类别
type SpriteComponent struct {
	Glyph string          // 显示字形，如 "@"、"E"、"*"
	Tag   types.EntityTag // 实体类别
}
