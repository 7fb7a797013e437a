package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/crystalslime/pkg/config"
	"github.com/decker502/crystalslime/pkg/ecs"
	"github.com/decker502/crystalslime/pkg/utils"
)

// State 游戏流程状态
type State int

const (
	StateTitle State = iota
	StatePlaying
	StatePaused
	StateVictory
	StateGameOver
)

// String 返回状态名称
func (s State) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateVictory:
		return "victory"
	case StateGameOver:
		return "gameover"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ErrInvalidTransition 非法的状态切换
var ErrInvalidTransition = errors.New("invalid state transition")

// transitions 合法的状态切换表
var transitions = map[State][]State{
	StateTitle:    {StatePlaying},
	StatePlaying:  {StatePaused, StateVictory, StateGameOver},
	StatePaused:   {StatePlaying, StateTitle},
	StateVictory:  {StateTitle},
	StateGameOver: {StatePlaying, StateTitle},
}

// GameState 一局游戏的会话状态
//
// 由场景持有并显式传给各个系统，不使用全局单例。
// 最高分跨会话保留（仅内存），其余字段在 BeginSession 时重置。
type GameState struct {
	State     State
	Kills     int
	HighScore int

	Timer     PhaseTimer
	Clock     *GameClock
	Scheduler *Scheduler
	Balance   *config.BalanceConfig
	Rand      utils.Rand
	Audio     AudioSink

	PlayerID ecs.EntityID
}

// NewGameState 创建处于标题界面的会话状态
// audio 为 nil 时使用只记录请求的 AudioLog
func NewGameState(balance *config.BalanceConfig, clock *GameClock, rng utils.Rand, audio AudioSink) *GameState {
	if balance == nil {
		balance = config.DefaultBalance()
	}
	if clock == nil {
		clock = NewGameClock(nil)
	}
	if audio == nil {
		audio = &AudioLog{}
	}
	return &GameState{
		State:     StateTitle,
		Clock:     clock,
		Scheduler: NewScheduler(),
		Balance:   balance,
		Rand:      rng,
		Audio:     audio,
	}
}

// CanTransition 判断能否切换到 next
func (gs *GameState) CanTransition(next State) bool {
	for _, s := range transitions[gs.State] {
		if s == next {
			return true
		}
	}
	return false
}

// TransitionTo 切换状态，非法切换返回 ErrInvalidTransition
func (gs *GameState) TransitionTo(next State) error {
	if !gs.CanTransition(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, gs.State, next)
	}
	log.Printf("[GameState] %s -> %s", gs.State, next)
	gs.State = next
	return nil
}

// BeginSession 开始（或重试）一局：重置计时与计数并播放常规音乐
// 实体重置由场景负责
func (gs *GameState) BeginSession() error {
	if err := gs.TransitionTo(StatePlaying); err != nil {
		return err
	}
	gs.Kills = 0
	gs.Timer.Reset()
	gs.Scheduler.Clear()
	gs.Clock.Reset()

	gs.Audio.StopMusic()
	gs.Audio.PlayMusic(TrackAmbient)
	return nil
}

// TogglePause 在进行中与暂停之间切换
// 强化选择期间不允许暂停
func (gs *GameState) TogglePause() error {
	switch gs.State {
	case StatePlaying:
		if gs.Timer.Selecting {
			return fmt.Errorf("%w: cannot pause during power-up selection", ErrInvalidTransition)
		}
		if err := gs.TransitionTo(StatePaused); err != nil {
			return err
		}
		gs.Clock.Pause()
		gs.Audio.PauseMusic()
	case StatePaused:
		if err := gs.TransitionTo(StatePlaying); err != nil {
			return err
		}
		gs.Clock.Resume()
		gs.Audio.ResumeMusic()
	default:
		return fmt.Errorf("%w: cannot toggle pause from %s", ErrInvalidTransition, gs.State)
	}
	return nil
}

// QuitToTitle 放弃当前会话回到标题
func (gs *GameState) QuitToTitle() error {
	if err := gs.TransitionTo(StateTitle); err != nil {
		return err
	}
	gs.Clock.Resume()
	gs.Scheduler.Clear()
	gs.Timer.Reset()
	gs.Audio.StopMusic()
	return nil
}

// Win 最终首领被击败
func (gs *GameState) Win() error {
	if err := gs.TransitionTo(StateVictory); err != nil {
		return err
	}
	gs.Audio.PlayCue(CueVictory)
	if gs.Audio.CurrentMusic() == TrackBoss {
		gs.Audio.StopMusic()
		gs.Audio.PlayMusic(TrackAmbient)
	}
	gs.recordHighScore()
	return nil
}

// Lose 玩家生命归零
func (gs *GameState) Lose() error {
	if err := gs.TransitionTo(StateGameOver); err != nil {
		return err
	}
	gs.Audio.PlayCue(CueGameOver)
	if gs.Audio.CurrentMusic() == TrackBoss {
		gs.Audio.StopMusic()
	}
	gs.recordHighScore()
	return nil
}

// IsRunning 本帧是否推进游戏逻辑
func (gs *GameState) IsRunning() bool {
	return gs.State == StatePlaying
}

// AddKills 增加击杀计数
func (gs *GameState) AddKills(n int) {
	gs.Kills += n
}

func (gs *GameState) recordHighScore() {
	if gs.Kills > gs.HighScore {
		log.Printf("[GameState] New high score: %d (previous %d)", gs.Kills, gs.HighScore)
		gs.HighScore = gs.Kills
	}
}
