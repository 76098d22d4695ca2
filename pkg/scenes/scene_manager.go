// Package scenes 提供 ebiten 场景：输入采集、摄像机和绘制
package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// Returning ebiten.Termination ends the game loop.
	Update(deltaTime float64) error

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// SceneManager controls which scene is active.
// Only the active scene's Update and Draw are called.
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager creates a SceneManager with no active scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	log.Printf("[SceneManager] Switched scene to %T", scene)
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update updates the currently active scene.
func (sm *SceneManager) Update(deltaTime float64) error {
	if sm.currentScene == nil {
		return nil
	}
	return sm.currentScene.Update(deltaTime)
}

// Draw renders the currently active scene.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
