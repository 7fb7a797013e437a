package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// GameSettings 玩家偏好设置（跨会话持久化）
type GameSettings struct {
	MusicVolume  float64 `yaml:"musicVolume"`  // 音乐音量 0.0 ~ 1.0
	SoundVolume  float64 `yaml:"soundVolume"`  // 音效音量 0.0 ~ 1.0
	MusicEnabled bool    `yaml:"musicEnabled"` // 音乐开关
	SoundEnabled bool    `yaml:"soundEnabled"` // 音效开关
	Fullscreen   bool    `yaml:"fullscreen"`   // 启动时是否全屏
	ShowHitboxes bool    `yaml:"showHitboxes"` // 绘制碰撞盒（调试）
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		MusicVolume:  0.3,
		SoundVolume:  0.4,
		MusicEnabled: true,
		SoundEnabled: true,
	}
}

// SettingsStore 设置的持久化后端
// *gdata.Manager 满足此接口
type SettingsStore interface {
	ObjectPropExists(objectKey, propKey string) bool
	LoadObjectProp(objectKey, propKey string) ([]byte, error)
	SaveObjectProp(objectKey, propKey string, data []byte) error
}

var _ SettingsStore = (*gdata.Manager)(nil)

const (
	settingsObject   = "settings"
	settingsProperty = "player"
)

// SettingsManager 负责设置的加载、保存和内存管理
// store 为 nil 时降级为仅内存设置
type SettingsManager struct {
	store    SettingsStore
	settings *GameSettings
}

// OpenSettingsStore 打开本应用的 gdata 存储
func OpenSettingsStore(appName string) (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open settings storage for %s: %w", appName, err)
	}
	return m, nil
}

// NewSettingsManager 创建设置管理器并尝试加载已保存的设置
// 加载失败不是致命错误，使用默认设置
func NewSettingsManager(store SettingsStore) *SettingsManager {
	sm := &SettingsManager{
		store:    store,
		settings: DefaultSettings(),
	}
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: %v (using defaults)", err)
	}
	return sm
}

// Load 从存储加载设置；不存在时使用默认设置
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()
	if sm.store == nil || !sm.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.MusicVolume = clampVolume(loaded.MusicVolume)
	loaded.SoundVolume = clampVolume(loaded.SoundVolume)

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded")
	return nil
}

// Save 持久化当前设置；降级模式下直接返回 nil
func (sm *SettingsManager) Save() error {
	if sm.store == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetMusicVolume 设置音乐音量（仅内存，需 Save 持久化）
func (sm *SettingsManager) SetMusicVolume(volume float64) {
	sm.settings.MusicVolume = clampVolume(volume)
}

// SetSoundVolume 设置音效音量（仅内存，需 Save 持久化）
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clampVolume(volume)
}

// ToggleMusic 切换音乐开关并返回新状态
func (sm *SettingsManager) ToggleMusic() bool {
	sm.settings.MusicEnabled = !sm.settings.MusicEnabled
	return sm.settings.MusicEnabled
}

// ToggleSound 切换音效开关并返回新状态
func (sm *SettingsManager) ToggleSound() bool {
	sm.settings.SoundEnabled = !sm.settings.SoundEnabled
	return sm.settings.SoundEnabled
}

// SetFullscreen 记录全屏状态，下次启动时恢复
func (sm *SettingsManager) SetFullscreen(fullscreen bool) {
	sm.settings.Fullscreen = fullscreen
}

// ToggleHitboxes 切换碰撞盒调试绘制并返回新状态
func (sm *SettingsManager) ToggleHitboxes() bool {
	sm.settings.ShowHitboxes = !sm.settings.ShowHitboxes
	return sm.settings.ShowHitboxes
}

func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
