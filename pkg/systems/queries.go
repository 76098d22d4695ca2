package systems

import (
	"github.com/decker502/arena/pkg/components"
	"github.com/decker502/arena/pkg/ecs"
	"github.com/decker502/arena/pkg/utils"
)

// findPlayer 返回当前存活的玩家实体及其位置
// 玩家最多只有一个；已标记删除的玩家视为不存在
func findPlayer(em *ecs.EntityManager) (ecs.EntityID, *components.PositionComponent, bool) {
	for _, id := range ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](em) {
		if em.IsMarkedForDestroy(id) {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			continue
		}
		return id, pos, true
	}
	return 0, nil, false
}

// positionVec 把位置组件转换为向量
func positionVec(pos *components.PositionComponent) utils.Vec2 {
	return utils.NewVec2(pos.X, pos.Y)
}

// radiusOf 返回实体的碰撞半径，没有碰撞组件时返回 0
func radiusOf(em *ecs.EntityManager, id ecs.EntityID) float64 {
	if col, ok := ecs.GetComponent[*components.CollisionComponent](em, id); ok {
		return col.Radius
	}
	return 0
}
