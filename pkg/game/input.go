package game

// PowerUpChoice 强化选项
type PowerUpChoice int

const (
	ChoiceNone PowerUpChoice = iota
	ChoiceDoubleShot
	ChoiceScatterShot
)

// String 返回选项名称
func (c PowerUpChoice) String() string {
	switch c {
	case ChoiceDoubleShot:
		return "Double Shot"
	case ChoiceScatterShot:
		return "Scatter Shot"
	}
	return "None"
}

// InputSnapshot 一帧的输入快照
// 方向键为按住状态，其余为本帧刚按下的边沿事件
type InputSnapshot struct {
	Up, Down, Left, Right bool

	Shoot   bool
	Skill   bool
	Pause   bool
	Confirm bool // 开始 / 重试
	Back    bool // 暂停中退回标题
	Quit    bool // 标题或结算界面退出程序

	Choice PowerUpChoice // 键盘直接选择的强化

	Clicked bool
	ClickX  float64
	ClickY  float64

	ToggleMusic    bool
	ToggleSound    bool
	ToggleHitboxes bool
}

// Move 返回未归一化的移动方向分量
func (in InputSnapshot) Move() (dx, dy float64) {
	if in.Up {
		dy--
	}
	if in.Down {
		dy++
	}
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	return dx, dy
}
