// Package utils 提供通用工具函数
//
// coordinates.go 提供屏幕坐标与世界坐标之间的转换。
//
// # 坐标系统概述
//
//   - **世界坐标**：无限平面，原点为玩家出生点，Y 轴向上
//   - **屏幕坐标**：相对于窗口（或终端）左上角，Y 轴向下
//
// # 核心转换公式
//
//	screenX = (worldX - camera.X) * Zoom + Width/2
//	screenY = Height/2 - (worldY - camera.Y) * Zoom
//
// 世界坐标中的 (camera.X, camera.Y) 始终位于屏幕中心。
package utils

// Camera 描述渲染视口：视口中心对应的世界坐标、视口尺寸与缩放
// 实现 game.Viewport 接口，供射击系统把点击位置还原到世界坐标
type Camera struct {
	X, Y   float64 // 视口中心的世界坐标
	Width  float64 // 视口宽度（屏幕单位：像素或终端列）
	Height float64 // 视口高度（屏幕单位：像素或终端行）
	ZoomX  float64 // 每世界单位对应的屏幕单位（水平）
	ZoomY  float64 // 每世界单位对应的屏幕单位（垂直）
}

// NewCamera 创建以世界原点为中心、等比缩放的摄像机
func NewCamera(width, height, zoom float64) *Camera {
	return &Camera{
		Width:  width,
		Height: height,
		ZoomX:  zoom,
		ZoomY:  zoom,
	}
}

// WorldToScreen 世界坐标 → 屏幕坐标
func (c *Camera) WorldToScreen(worldX, worldY float64) (float64, float64) {
	screenX := (worldX-c.X)*c.ZoomX + c.Width/2
	screenY := c.Height/2 - (worldY-c.Y)*c.ZoomY
	return screenX, screenY
}

// ScreenToWorld 屏幕坐标 → 世界坐标
// 缩放为 0 或位置在视口之外时返回 ok=false
func (c *Camera) ScreenToWorld(screenX, screenY float64) (worldX, worldY float64, ok bool) {
	if c.ZoomX == 0 || c.ZoomY == 0 {
		return 0, 0, false
	}
	if screenX < 0 || screenY < 0 || screenX > c.Width || screenY > c.Height {
		return 0, 0, false
	}
	worldX = (screenX-c.Width/2)/c.ZoomX + c.X
	worldY = (c.Height/2-screenY)/c.ZoomY + c.Y
	return worldX, worldY, true
}

// CenterOn 把视口中心移动到指定世界坐标
func (c *Camera) CenterOn(worldX, worldY float64) {
	c.X = worldX
	c.Y = worldY
}

// Resize 更新视口尺寸（窗口或终端大小变化时调用）
func (c *Camera) Resize(width, height float64) {
	c.Width = width
	c.Height = height
}
