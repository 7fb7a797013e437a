package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioSampleRate 音频上下文采样率
const AudioSampleRate = 44100

// 音效与音乐的资源路径
var (
	cuePaths = map[SoundCue]string{
		CueShoot:     "assets/audio/shoot.wav",
		CueHit:       "assets/audio/hurt.wav",
		CueExplosion: "assets/audio/explosion.wav",
		CuePickup:    "assets/audio/powerup.wav",
		CueVictory:   "assets/audio/victory.wav",
		CueGameOver:  "assets/audio/gameover.wav",
	}
	trackPaths = map[MusicTrack]string{
		TrackAmbient: "assets/audio/background_music.mp3",
		TrackBoss:    "assets/audio/boss_music.wav",
	}
)

// AudioManager 基于 ebiten audio 的 AudioSink 实现
//
// 资源缺失或解码失败只记录一次警告，之后该音效静默，游戏照常运行。
// 音量与开关从 SettingsManager 读取。
type AudioManager struct {
	resourceManager *ResourceManager
	settingsManager *SettingsManager

	currentMusic *audio.Player
	currentTrack MusicTrack
	missing      map[string]bool
}

var (
	_ AudioSink       = (*AudioManager)(nil)
	_ SettingsApplier = (*AudioManager)(nil)
)

// NewAudioManager 创建音频管理器；sm 可为 nil（使用默认音量）
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		missing:         make(map[string]bool),
	}
}

func (am *AudioManager) settings() *GameSettings {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings()
	}
	return DefaultSettings()
}

// PlayCue 播放一次性音效
func (am *AudioManager) PlayCue(cue SoundCue) {
	s := am.settings()
	if !s.SoundEnabled {
		return
	}
	path, ok := cuePaths[cue]
	if !ok || am.missing[path] {
		return
	}

	player, err := am.resourceManager.LoadSoundEffect(path)
	if err != nil {
		am.missing[path] = true
		log.Printf("[AudioManager] Warning: sound %s unavailable: %v", cue, err)
		return
	}

	player.SetVolume(s.SoundVolume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", cue, err)
	}
	player.Play()
}

// PlayMusic 切换背景音乐，同一时间只播放一首
func (am *AudioManager) PlayMusic(track MusicTrack) {
	if am.currentTrack == track && am.currentMusic != nil && am.currentMusic.IsPlaying() {
		return
	}
	am.StopMusic()
	am.currentTrack = track

	s := am.settings()
	if !s.MusicEnabled {
		return
	}
	path, ok := trackPaths[track]
	if !ok || am.missing[path] {
		return
	}

	player, err := am.resourceManager.LoadAudio(path)
	if err != nil {
		am.missing[path] = true
		log.Printf("[AudioManager] Warning: music %s unavailable: %v", track, err)
		return
	}

	player.SetVolume(s.MusicVolume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind music %s: %v", track, err)
	}
	player.Play()
	am.currentMusic = player

	log.Printf("[AudioManager] Playing music: %s (volume: %.2f)", track, s.MusicVolume)
}

// StopMusic 停止当前背景音乐
func (am *AudioManager) StopMusic() {
	if am.currentMusic != nil {
		am.currentMusic.Pause()
	}
	am.currentMusic = nil
	am.currentTrack = TrackNone
}

// PauseMusic 暂停当前背景音乐
func (am *AudioManager) PauseMusic() {
	if am.currentMusic != nil {
		am.currentMusic.Pause()
	}
}

// ResumeMusic 恢复当前背景音乐
func (am *AudioManager) ResumeMusic() {
	if am.currentMusic != nil && am.settings().MusicEnabled {
		am.currentMusic.Play()
	}
}

// CurrentMusic 返回当前曲目（资源缺失时仍返回请求的曲目）
func (am *AudioManager) CurrentMusic() MusicTrack {
	return am.currentTrack
}

// ApplySettings 把设置中的音乐开关和音量应用到当前曲目
func (am *AudioManager) ApplySettings() {
	s := am.settings()
	if !s.MusicEnabled {
		if am.currentMusic != nil {
			am.currentMusic.Pause()
		}
		return
	}
	if am.currentMusic == nil {
		if am.currentTrack != TrackNone {
			am.PlayMusic(am.currentTrack)
		}
		return
	}
	am.currentMusic.SetVolume(s.MusicVolume)
	if !am.currentMusic.IsPlaying() {
		am.currentMusic.Play()
	}
}
