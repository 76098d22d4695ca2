package utils

import "math"

// Vec2 二维向量（世界坐标，Y 轴向上）
type Vec2 struct {
	X, Y float64
}

// Zero 零向量
var Zero = Vec2{}

// NewVec2 创建向量
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add 向量加法
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub 向量减法
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale 数乘
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Length 向量长度
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero 是否为零向量
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize 返回单位向量
// 零向量无法归一化，返回 (Zero, false)，调用方应跳过该次移动
func (v Vec2) Normalize() (Vec2, bool) {
	length := v.Length()
	if length == 0 {
		return Zero, false
	}
	return Vec2{X: v.X / length, Y: v.Y / length}, true
}

// Distance 两点之间的距离
func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Length()
}

// FromAngle 根据极角和长度构造向量
func FromAngle(theta, length float64) Vec2 {
	return Vec2{X: math.Cos(theta) * length, Y: math.Sin(theta) * length}
}
