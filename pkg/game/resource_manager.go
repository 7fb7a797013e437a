package game

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/decker502/crystalslime/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// ResourceManager 音频资源的加载与缓存
//
// 资源通过 embedded 包按 "assets/" 前缀读取，解码后的播放器按路径缓存，
// 同一文件只解码一次。非线程安全，只在游戏主循环中使用。
type ResourceManager struct {
	audioContext *audio.Context
	audioCache   map[string]*audio.Player
}

// NewResourceManager 创建资源管理器
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		audioContext: audioContext,
		audioCache:   make(map[string]*audio.Player),
	}
}

// audioStream 解码后的可定位音频流
type audioStream interface {
	io.ReadSeeker
	Length() int64
}

// decodeAudio 按扩展名解码音频（.wav / .mp3 / .ogg）
func decodeAudio(path string, data []byte) (audioStream, error) {
	reader := bytes.NewReader(data)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		s, err := wav.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV audio %s: %w", path, err)
		}
		return s, nil
	case ".mp3":
		s, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		return s, nil
	case ".ogg":
		s, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .mp3, .ogg)", ext)
	}
}

func (rm *ResourceManager) load(path string, loop bool) (*audio.Player, error) {
	if cached, ok := rm.audioCache[path]; ok {
		return cached, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("no audio context for %s", path)
	}

	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	stream, err := decodeAudio(path, data)
	if err != nil {
		return nil, err
	}

	var src io.Reader = stream
	if loop {
		src = audio.NewInfiniteLoop(stream, stream.Length())
	}

	player, err := rm.audioContext.NewPlayer(src)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// LoadAudio 加载循环播放的背景音乐
func (rm *ResourceManager) LoadAudio(path string) (*audio.Player, error) {
	return rm.load(path, true)
}

// LoadSoundEffect 加载单次播放的音效
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	return rm.load(path, false)
}

// GetAudioPlayer 返回已缓存的播放器，未加载时返回 nil
func (rm *ResourceManager) GetAudioPlayer(path string) *audio.Player {
	return rm.audioCache[path]
}
