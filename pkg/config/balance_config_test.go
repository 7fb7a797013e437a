package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/decker502/crystalslime/pkg/embedded"
)

// TestBundledBalanceMatchesDefaults 确保 data/balance.yaml 与 DefaultBalance 保持一致
func TestBundledBalanceMatchesDefaults(t *testing.T) {
	config, err := LoadBalanceConfig(filepath.Join("..", "..", "data", "balance.yaml"))
	if err != nil {
		t.Fatalf("LoadBalanceConfig failed: %v", err)
	}

	if !reflect.DeepEqual(config, DefaultBalance()) {
		t.Errorf("data/balance.yaml differs from DefaultBalance():\n got %+v\nwant %+v", config, DefaultBalance())
	}
}

func TestLoadEmbeddedBalance(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "data", "balance.yaml"))
	if err != nil {
		t.Fatalf("Failed to read bundled balance: %v", err)
	}
	embedded.Init(nil, fstest.MapFS{
		EmbeddedBalancePath: &fstest.MapFile{Data: data},
	})

	config, err := LoadEmbeddedBalance()
	if err != nil {
		t.Fatalf("LoadEmbeddedBalance failed: %v", err)
	}
	if config.Boss.Health != 700 {
		t.Errorf("boss health: expected 700, got %d", config.Boss.Health)
	}
}

func TestLoadBalanceConfig(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("部分覆盖沿用默认值", func(t *testing.T) {
		content := `
player:
  maxHealth: 12
boss:
  health: 900
`
		path := filepath.Join(tempDir, "partial.yaml")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		config, err := LoadBalanceConfig(path)
		if err != nil {
			t.Fatalf("LoadBalanceConfig failed: %v", err)
		}
		if config.Player.MaxHealth != 12 {
			t.Errorf("maxHealth: expected 12, got %d", config.Player.MaxHealth)
		}
		if config.Boss.Health != 900 {
			t.Errorf("boss health: expected 900, got %d", config.Boss.Health)
		}
		if config.Player.BaseSpeed != 5 {
			t.Errorf("baseSpeed should keep default 5, got %.2f", config.Player.BaseSpeed)
		}
	})

	t.Run("文件不存在", func(t *testing.T) {
		_, err := LoadBalanceConfig(filepath.Join(tempDir, "missing.yaml"))
		if err == nil {
			t.Fatal("Expected error for missing file")
		}
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Expected not-exist error, got %v", err)
		}
	})

	t.Run("YAML 格式错误", func(t *testing.T) {
		path := filepath.Join(tempDir, "broken.yaml")
		if err := os.WriteFile(path, []byte("player: [unterminated"), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}
		if _, err := LoadBalanceConfig(path); err == nil {
			t.Error("Expected parse error")
		}
	})
}

func TestValidateBalance(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *BalanceConfig)
		wantErr string
	}{
		{"默认配置合法", func(c *BalanceConfig) {}, ""},
		{"最大生命为零", func(c *BalanceConfig) { c.Player.MaxHealth = 0 }, "player.maxHealth"},
		{"射击周期为负", func(c *BalanceConfig) { c.Enemy.ShootPeriodFrames = -1 }, "enemy.shootPeriodFrames"},
		{"速度非正", func(c *BalanceConfig) { c.Player.BaseSpeed = 0 }, "player.baseSpeed"},
		{"炸弹数量区间颠倒", func(c *BalanceConfig) { c.MiniBoss.BombMin = 4 }, "miniBoss bomb range"},
		{"引爆概率越界", func(c *BalanceConfig) { c.Boss.DetonationChance = 1.5 }, "boss.detonationChance"},
		{"掉落阈值颠倒", func(c *BalanceConfig) { c.Spawn.DropSpeedBelow = 0.1 }, "spawn drop thresholds"},
		{"阶段顺序颠倒", func(c *BalanceConfig) { c.Phase.ShootingStartSec = 90 }, "phase.shootingStartSec"},
		{"散射角为空", func(c *BalanceConfig) { c.Player.ScatterAngles = nil }, "player.scatterAngles"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultBalance()
			tt.mutate(c)
			err := validateBalance(c)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
