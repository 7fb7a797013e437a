package game

// SoundCue 一次性音效
type SoundCue string

const (
	CueShoot     SoundCue = "shoot"
	CueHit       SoundCue = "hit"
	CueExplosion SoundCue = "explosion"
	CuePickup    SoundCue = "pickup"
	CueVictory   SoundCue = "victory"
	CueGameOver  SoundCue = "gameover"
)

// MusicTrack 循环背景音乐
type MusicTrack string

const (
	TrackNone    MusicTrack = ""
	TrackAmbient MusicTrack = "ambient"
	TrackBoss    MusicTrack = "boss"
)

// AudioSink 游戏逻辑发出的音频请求
// 逻辑只决定何时播放，具体播放由实现负责
type AudioSink interface {
	PlayCue(cue SoundCue)
	PlayMusic(track MusicTrack)
	StopMusic()
	PauseMusic()
	ResumeMusic()
	CurrentMusic() MusicTrack
}

// SettingsApplier 由能响应设置变更的音频实现提供
type SettingsApplier interface {
	ApplySettings()
}

// AudioLog 只记录请求、不发声的 AudioSink
// 用于无音频设备的运行环境和测试
type AudioLog struct {
	Cues    []SoundCue
	current MusicTrack
	paused  bool
}

// PlayCue 记录音效
func (a *AudioLog) PlayCue(cue SoundCue) {
	a.Cues = append(a.Cues, cue)
}

// PlayMusic 切换当前音乐
func (a *AudioLog) PlayMusic(track MusicTrack) {
	a.current = track
	a.paused = false
}

// StopMusic 停止音乐
func (a *AudioLog) StopMusic() {
	a.current = TrackNone
	a.paused = false
}

// PauseMusic 暂停音乐
func (a *AudioLog) PauseMusic() {
	a.paused = a.current != TrackNone
}

// ResumeMusic 恢复音乐
func (a *AudioLog) ResumeMusic() {
	a.paused = false
}

// CurrentMusic 返回当前音乐（暂停时仍返回该曲目）
func (a *AudioLog) CurrentMusic() MusicTrack {
	return a.current
}

// MusicPaused 音乐是否处于暂停
func (a *AudioLog) MusicPaused() bool {
	return a.paused
}

// Count 统计某个音效被请求的次数
func (a *AudioLog) Count(cue SoundCue) int {
	n := 0
	for _, c := range a.Cues {
		if c == cue {
			n++
		}
	}
	return n
}
