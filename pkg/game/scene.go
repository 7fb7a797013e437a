package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene with its own update and rendering logic.
type Scene interface {
	// Update advances the scene by one logic frame.
	// deltaTime is the fixed frame duration in seconds.
	// Returning ebiten.Termination ends the game loop.
	Update(deltaTime float64) error

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Closer 是一个可选接口，场景在程序退出前做收尾（如保存设置）
type Closer interface {
	Close() error
}
