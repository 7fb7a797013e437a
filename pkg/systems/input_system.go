package systems

import (
	"github.com/decker502/crystalslime/pkg/game"
	"github.com/decker502/crystalslime/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputSystem 把 ebiten 的键盘、鼠标和触摸状态采样为一帧的 InputSnapshot
//
// 移动键取"按住"状态，其余动作键只在按下的那一帧有效。
type InputSystem struct{}

// NewInputSystem 创建输入系统
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// Poll 采样本帧输入
func (s *InputSystem) Poll() game.InputSnapshot {
	in := game.InputSnapshot{
		Up:    utils.AnyKeyPressed(ebiten.KeyArrowUp, ebiten.KeyW),
		Down:  utils.AnyKeyPressed(ebiten.KeyArrowDown, ebiten.KeyS),
		Left:  utils.AnyKeyPressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right: utils.AnyKeyPressed(ebiten.KeyArrowRight, ebiten.KeyD),

		Shoot:   utils.AnyKeyJustPressed(ebiten.KeySpace),
		Skill:   utils.AnyKeyJustPressed(ebiten.KeyEnter, ebiten.KeyNumpadEnter),
		Pause:   utils.AnyKeyJustPressed(ebiten.KeyP),
		Confirm: utils.AnyKeyJustPressed(ebiten.KeyEnter, ebiten.KeyNumpadEnter),
		Back:    utils.AnyKeyJustPressed(ebiten.KeyEscape),
		Quit:    utils.AnyKeyJustPressed(ebiten.KeyQ),

		ToggleMusic:    utils.AnyKeyJustPressed(ebiten.KeyM),
		ToggleSound:    utils.AnyKeyJustPressed(ebiten.KeyN),
		ToggleHitboxes: utils.AnyKeyJustPressed(ebiten.KeyF3),
	}

	switch {
	case utils.AnyKeyJustPressed(ebiten.KeyDigit1, ebiten.KeyNumpad1):
		in.Choice = game.ChoiceDoubleShot
	case utils.AnyKeyJustPressed(ebiten.KeyDigit2, ebiten.KeyNumpad2):
		in.Choice = game.ChoiceScatterShot
	}

	if clicked, x, y := utils.IsJustTouchedOrClicked(); clicked {
		in.Clicked = true
		in.ClickX, in.ClickY = float64(x), float64(y)
	}
	return in
}
