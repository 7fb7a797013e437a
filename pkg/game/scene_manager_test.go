package game

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	closed       bool
	deltaTime    float64
	updateErr    error
}

func (m *MockScene) Update(deltaTime float64) error {
	m.updateCalled = true
	m.deltaTime = deltaTime
	return m.updateErr
}

func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

func (m *MockScene) Close() error {
	m.closed = true
	return nil
}

// TestSceneManagerNoScene verifies that an empty manager is a no-op.
func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	if sm.GetCurrentScene() != nil {
		t.Error("Expected no scene initially")
	}
	if err := sm.Update(1.0 / 60.0); err != nil {
		t.Errorf("Update without scene returned %v", err)
	}
	sm.Draw(nil)
}

// TestSceneManagerUpdate verifies that Update forwards deltaTime and errors.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	scene := &MockScene{updateErr: ebiten.Termination}
	sm.SwitchTo(scene)

	err := sm.Update(0.5)
	if !scene.updateCalled || scene.deltaTime != 0.5 {
		t.Errorf("scene Update not called with deltaTime: %+v", scene)
	}
	if !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update error = %v, want ebiten.Termination", err)
	}
}

// TestSceneManagerSwitchClosesPrevious verifies Closer scenes are closed on switch.
func TestSceneManagerSwitchClosesPrevious(t *testing.T) {
	sm := NewSceneManager()
	first := &MockScene{}
	second := &MockScene{}

	sm.SwitchTo(first)
	sm.SwitchTo(second)
	if !first.closed {
		t.Error("previous scene should be closed")
	}
	if sm.GetCurrentScene() != second {
		t.Error("SwitchTo did not set the current scene")
	}

	sm.Close()
	if !second.closed || sm.GetCurrentScene() != nil {
		t.Error("Close should close and clear the current scene")
	}
}
