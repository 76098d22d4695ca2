package utils

import (
	"math"
	"testing"
)

// TestCameraRoundTrip 测试世界坐标与屏幕坐标往返转换
func TestCameraRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		camera  Camera
		worldX  float64
		worldY  float64
		screenX float64
		screenY float64
	}{
		{"原点位于屏幕中心", Camera{Width: 800, Height: 600, ZoomX: 1, ZoomY: 1}, 0, 0, 400, 300},
		{"Y 轴向上", Camera{Width: 800, Height: 600, ZoomX: 1, ZoomY: 1}, 0, 100, 400, 200},
		{"摄像机跟随", Camera{X: 100, Y: -50, Width: 800, Height: 600, ZoomX: 1, ZoomY: 1}, 100, -50, 400, 300},
		{"终端单元缩放", Camera{Width: 80, Height: 24, ZoomX: 0.1, ZoomY: 0.05}, 100, 100, 50, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy := tt.camera.WorldToScreen(tt.worldX, tt.worldY)
			if math.Abs(sx-tt.screenX) > 1e-9 || math.Abs(sy-tt.screenY) > 1e-9 {
				t.Errorf("WorldToScreen = (%.3f, %.3f), want (%.3f, %.3f)", sx, sy, tt.screenX, tt.screenY)
			}

			wx, wy, ok := tt.camera.ScreenToWorld(sx, sy)
			if !ok {
				t.Fatal("ScreenToWorld failed")
			}
			if math.Abs(wx-tt.worldX) > 1e-9 || math.Abs(wy-tt.worldY) > 1e-9 {
				t.Errorf("ScreenToWorld = (%.3f, %.3f), want (%.3f, %.3f)", wx, wy, tt.worldX, tt.worldY)
			}
		})
	}
}

func TestCameraScreenToWorldFailures(t *testing.T) {
	cam := NewCamera(800, 600, 1)

	if _, _, ok := cam.ScreenToWorld(-1, 10); ok {
		t.Error("point left of viewport should fail")
	}
	if _, _, ok := cam.ScreenToWorld(10, 601); ok {
		t.Error("point below viewport should fail")
	}

	zero := NewCamera(800, 600, 0)
	if _, _, ok := zero.ScreenToWorld(10, 10); ok {
		t.Error("zero zoom should fail")
	}
}

func TestCameraCenterOnAndResize(t *testing.T) {
	cam := NewCamera(800, 600, 1)
	cam.CenterOn(30, 40)
	cam.Resize(400, 200)

	sx, sy := cam.WorldToScreen(30, 40)
	if sx != 200 || sy != 100 {
		t.Errorf("centered point = (%.1f, %.1f), want (200, 100)", sx, sy)
	}
}
