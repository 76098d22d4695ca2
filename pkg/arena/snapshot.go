package arena

import (
	"github.com/decker502/arena/pkg/components"
	"github.com/decker502/arena/pkg/ecs"
	"github.com/decker502/arena/pkg/game"
	"github.com/decker502/arena/pkg/types"
)

// EntityView 单个可绘制实体的只读视图（世界坐标）
type EntityView struct {
	ID     ecs.EntityID
	Tag    types.EntityTag
	Kind   types.EnemyKind // 仅敌人有效
	X, Y   float64
	Radius float64
	Glyph  string
	Flash  float64 // 受击闪白强度，0 表示无
}

// TextView UI 文本视图
type TextView struct {
	ID       ecs.EntityID
	Text     string
	Anchor   components.TextAnchor
	Role     components.TextRole
	FontSize float64
}

// Snapshot 一帧的渲染视图
// 渲染前端只读取 Snapshot，不直接访问实体管理器。
type Snapshot struct {
	Entities []EntityView // 按ID升序
	Texts    []TextView   // 按ID升序
	Score    int
	Best     int
	Phase    game.Phase
	Frame    uint64
}

// Snapshot 生成当前世界的渲染视图
func (w *World) Snapshot() Snapshot {
	em := w.entityManager
	snap := Snapshot{
		Score: w.score.Value(),
		Best:  w.score.Best(),
		Phase: w.gameState.Phase(),
		Frame: w.frame,
	}

	for _, id := range ecs.GetEntitiesWith2[*components.SpriteComponent, *components.PositionComponent](em) {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

		view := EntityView{
			ID:    id,
			Tag:   sprite.Tag,
			X:     pos.X,
			Y:     pos.Y,
			Glyph: sprite.Glyph,
		}
		if col, ok := ecs.GetComponent[*components.CollisionComponent](em, id); ok {
			view.Radius = col.Radius
		}
		if enemy, ok := ecs.GetComponent[*components.EnemyComponent](em, id); ok {
			view.Kind = enemy.Kind
		}
		if flash, ok := ecs.GetComponent[*components.FlashEffectComponent](em, id); ok {
			view.Flash = flash.Current()
		}
		snap.Entities = append(snap.Entities, view)
	}

	for _, id := range ecs.GetEntitiesWith1[*components.TextComponent](em) {
		text, _ := ecs.GetComponent[*components.TextComponent](em, id)
		snap.Texts = append(snap.Texts, TextView{
			ID:       id,
			Text:     text.Text,
			Anchor:   text.Anchor,
			Role:     text.Role,
			FontSize: text.FontSize,
		})
	}

	return snap
}

// Player 返回快照中的玩家视图
func (s Snapshot) Player() (EntityView, bool) {
	for _, e := range s.Entities {
		if e.Tag == types.TagPlayer {
			return e, true
		}
	}
	return EntityView{}, false
}

// CountTag 统计指定标签的实体数量
func (s Snapshot) CountTag(tag types.EntityTag) int {
	n := 0
	for _, e := range s.Entities {
		if e.Tag == tag {
			n++
		}
	}
	return n
}
