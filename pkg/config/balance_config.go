package config

import (
	"fmt"
	"os"

	"github.com/decker502/crystalslime/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// EmbeddedBalancePath 内置数值配置文件路径
const EmbeddedBalancePath = "data/balance.yaml"

// BalanceConfig 游戏数值配置
// 所有"帧"单位的字段按 TicksPerSecond 计时，"Ms" 结尾的字段按游戏时钟（不含暂停）计时
type BalanceConfig struct {
	Player    PlayerBalance    `yaml:"player"`
	Enemy     EnemyBalance     `yaml:"enemy"`
	MiniBoss  MiniBossBalance  `yaml:"miniBoss"`
	Boss      BossBalance      `yaml:"boss"`
	Bomb      BombBalance      `yaml:"bomb"`
	Explosion ExplosionBalance `yaml:"explosion"`
	Spawn     SpawnBalance     `yaml:"spawn"`
	Phase     PhaseBalance     `yaml:"phase"`
	Pickup    PickupBalance    `yaml:"pickup"`
}

// PlayerBalance 玩家数值
type PlayerBalance struct {
	MaxHealth            int       `yaml:"maxHealth"`
	BaseSpeed            float64   `yaml:"baseSpeed"`
	BulletSpeed          float64   `yaml:"bulletSpeed"`
	EdgeMargin           float64   `yaml:"edgeMargin"`           // 移动边界内缩
	KnockbackStrength    float64   `yaml:"knockbackStrength"`    // 击退瞬间位移（像素）
	KnockbackFrames      int       `yaml:"knockbackFrames"`      // 击退持续帧数
	DamageCooldownFrames int       `yaml:"damageCooldownFrames"` // 受伤冷却帧数
	SkillCooldownFrames  int       `yaml:"skillCooldownFrames"`  // 技能冷却帧数
	SkillDamage          int       `yaml:"skillDamage"`          // 技能对首领造成的伤害
	SpeedBoostMs         int       `yaml:"speedBoostMs"`         // 加速（及无敌）持续时间
	SpeedBoostMultiplier float64   `yaml:"speedBoostMultiplier"` // 加速倍率
	BodyPushDistance     float64   `yaml:"bodyPushDistance"`     // 首领身体接触推开距离
	DoubleShotSpread     float64   `yaml:"doubleShotSpread"`     // 双发子弹偏角（度）
	ScatterAngles        []float64 `yaml:"scatterAngles"`        // 散射子弹偏角（度）
	ScatterOffset        float64   `yaml:"scatterOffset"`        // 散射子弹出生点偏移
}

// EnemyBalance 普通敌人数值
type EnemyBalance struct {
	Health            int     `yaml:"health"`
	Speed             float64 `yaml:"speed"`
	ShootPeriodFrames int     `yaml:"shootPeriodFrames"`
	WaveSpeed         float64 `yaml:"waveSpeed"`
	WanderRadius      float64 `yaml:"wanderRadius"`
	WanderStepFactor  float64 `yaml:"wanderStepFactor"`
	ReturnStepFactor  float64 `yaml:"returnStepFactor"`
	KillScore         int     `yaml:"killScore"`
}

// MiniBossBalance 小首领数值
type MiniBossBalance struct {
	Health             int     `yaml:"health"`
	SpawnX             float64 `yaml:"spawnX"`
	SpawnY             float64 `yaml:"spawnY"`
	SpeedFactor        float64 `yaml:"speedFactor"` // 相对普通敌人速度
	ClampInset         float64 `yaml:"clampInset"`
	RadialCount        int     `yaml:"radialCount"`
	RadialPeriodFrames int     `yaml:"radialPeriodFrames"`
	WaveSpeed          float64 `yaml:"waveSpeed"`
	BombPeriodFrames   int     `yaml:"bombPeriodFrames"`
	BombMin            int     `yaml:"bombMin"`
	BombMax            int     `yaml:"bombMax"`
	BombMargin         float64 `yaml:"bombMargin"`
	BombWarningFrames  int     `yaml:"bombWarningFrames"`
	KillScore          int     `yaml:"killScore"`
}

// BossBalance 最终首领数值
type BossBalance struct {
	Health              int     `yaml:"health"`
	OriginX             float64 `yaml:"originX"`
	OriginY             float64 `yaml:"originY"`
	IntroFrames         int     `yaml:"introFrames"`
	Attack1Frames       int     `yaml:"attack1Frames"`
	Attack1BurstPeriod  int     `yaml:"attack1BurstPeriod"`
	Attack1BurstCount   int     `yaml:"attack1BurstCount"`
	Attack2Frames       int     `yaml:"attack2Frames"`
	Attack2BurstPeriod  int     `yaml:"attack2BurstPeriod"`
	Attack2BurstCount   int     `yaml:"attack2BurstCount"`
	Attack2DriftSpeed   float64 `yaml:"attack2DriftSpeed"`
	Phase2IdleFrames    int     `yaml:"phase2IdleFrames"`
	Phase2Attack1Frames int     `yaml:"phase2Attack1Frames"`
	SummonPeriod        int     `yaml:"summonPeriod"`
	SummonCount         int     `yaml:"summonCount"`
	Phase2Attack2Frames int     `yaml:"phase2Attack2Frames"`
	BombPeriod          int     `yaml:"bombPeriod"`
	BombCount           int     `yaml:"bombCount"`
	BombWarningFrames   int     `yaml:"bombWarningFrames"`
	GlideSpeed          float64 `yaml:"glideSpeed"`
	GlideSnapDistance   float64 `yaml:"glideSnapDistance"`
	CenterX             float64 `yaml:"centerX"`
	CenterY             float64 `yaml:"centerY"`
	BulletSpeed         float64 `yaml:"bulletSpeed"`
	BulletLifetimeMs    int     `yaml:"bulletLifetimeMs"`
	BurstJitter         float64 `yaml:"burstJitter"` // 散射随机偏角（度）
	DetonationChance    float64 `yaml:"detonationChance"`
	DetonationMinMs     int     `yaml:"detonationMinMs"`
	DetonationMaxMs     int     `yaml:"detonationMaxMs"`
	DetonationRadius    float64 `yaml:"detonationRadius"`
}

// BombBalance 炸弹数值
type BombBalance struct {
	ArmedFrames     int     `yaml:"armedFrames"` // 预警结束后到引爆的帧数
	ExplosionRadius float64 `yaml:"explosionRadius"`
	WaveCount       int     `yaml:"waveCount"`
}

// ExplosionBalance 爆炸数值
type ExplosionBalance struct {
	LifetimeFrames      int     `yaml:"lifetimeFrames"`
	SonicLifetimeFrames int     `yaml:"sonicLifetimeFrames"`
	DamageWindowFrames  int     `yaml:"damageWindowFrames"`
	RingFrame           int     `yaml:"ringFrame"` // 音爆在第几帧发射冲击波
	Damage              int     `yaml:"damage"`
	WaveSpeed           float64 `yaml:"waveSpeed"`
	KillBurstRadius     float64 `yaml:"killBurstRadius"`
	KillBurstWaves      int     `yaml:"killBurstWaves"`
}

// SpawnBalance 生成概率（每帧 1/N）
type SpawnBalance struct {
	ChaserOneIn       int     `yaml:"chaserOneIn"`
	StationaryOneIn   int     `yaml:"stationaryOneIn"`
	HealthPotionOneIn int     `yaml:"healthPotionOneIn"`
	SpeedBoostOneIn   int     `yaml:"speedBoostOneIn"`
	DropHealthBelow   float64 `yaml:"dropHealthBelow"`
	DropSpeedBelow    float64 `yaml:"dropSpeedBelow"`
	PickupMargin      float64 `yaml:"pickupMargin"`
}

// PhaseBalance 阶段时间线
type PhaseBalance struct {
	ShootingStartSec  int `yaml:"shootingStartSec"`
	MiniBossSec       int `yaml:"miniBossSec"`
	MiniBossWarningMs int `yaml:"miniBossWarningMs"`
	BossStageMs       int `yaml:"bossStageMs"`
	BossCountdown     int `yaml:"bossCountdown"`
}

// PickupBalance 道具数值
type PickupBalance struct {
	LifetimeMs int `yaml:"lifetimeMs"`
}

// DefaultBalance 返回内置默认数值（与 data/balance.yaml 一致）
func DefaultBalance() *BalanceConfig {
	return &BalanceConfig{
		Player: PlayerBalance{
			MaxHealth:            10,
			BaseSpeed:            5,
			BulletSpeed:          10,
			EdgeMargin:           20,
			KnockbackStrength:    15,
			KnockbackFrames:      20,
			DamageCooldownFrames: 30,
			SkillCooldownFrames:  720,
			SkillDamage:          10,
			SpeedBoostMs:         3000,
			SpeedBoostMultiplier: 2,
			BodyPushDistance:     15,
			DoubleShotSpread:     5,
			ScatterAngles:        []float64{-30, -15, 0, 15, 30},
			ScatterOffset:        15,
		},
		Enemy: EnemyBalance{
			Health:            3,
			Speed:             2,
			ShootPeriodFrames: 90,
			WaveSpeed:         4,
			WanderRadius:      100,
			WanderStepFactor:  0.3,
			ReturnStepFactor:  0.5,
			KillScore:         1,
		},
		MiniBoss: MiniBossBalance{
			Health:             200,
			SpawnX:             450,
			SpawnY:             100,
			SpeedFactor:        0.5,
			ClampInset:         50,
			RadialCount:        8,
			RadialPeriodFrames: 120,
			WaveSpeed:          4,
			BombPeriodFrames:   180,
			BombMin:            2,
			BombMax:            3,
			BombMargin:         100,
			BombWarningFrames:  90,
			KillScore:          5,
		},
		Boss: BossBalance{
			Health:              700,
			OriginX:             450,
			OriginY:             80,
			IntroFrames:         180,
			Attack1Frames:       720,
			Attack1BurstPeriod:  100,
			Attack1BurstCount:   12,
			Attack2Frames:       540,
			Attack2BurstPeriod:  180,
			Attack2BurstCount:   8,
			Attack2DriftSpeed:   1.5,
			Phase2IdleFrames:    60,
			Phase2Attack1Frames: 1200,
			SummonPeriod:        90,
			SummonCount:         2,
			Phase2Attack2Frames: 840,
			BombPeriod:          180,
			BombCount:           3,
			BombWarningFrames:   180,
			GlideSpeed:          3,
			GlideSnapDistance:   10,
			CenterX:             450,
			CenterY:             350,
			BulletSpeed:         6,
			BulletLifetimeMs:    2000,
			BurstJitter:         15,
			DetonationChance:    0.1,
			DetonationMinMs:     500,
			DetonationMaxMs:     1000,
			DetonationRadius:    70,
		},
		Bomb: BombBalance{
			ArmedFrames:     60,
			ExplosionRadius: 60,
			WaveCount:       8,
		},
		Explosion: ExplosionBalance{
			LifetimeFrames:      20,
			SonicLifetimeFrames: 30,
			DamageWindowFrames:  10,
			RingFrame:           3,
			Damage:              1,
			WaveSpeed:           4,
			KillBurstRadius:     80,
			KillBurstWaves:      8,
		},
		Spawn: SpawnBalance{
			ChaserOneIn:       60,
			StationaryOneIn:   120,
			HealthPotionOneIn: 300,
			SpeedBoostOneIn:   400,
			DropHealthBelow:   0.4,
			DropSpeedBelow:    0.8,
			PickupMargin:      40,
		},
		Phase: PhaseBalance{
			ShootingStartSec:  30,
			MiniBossSec:       60,
			MiniBossWarningMs: 2000,
			BossStageMs:       1000,
			BossCountdown:     3,
		},
		Pickup: PickupBalance{
			LifetimeMs: 5000,
		},
	}
}

// LoadBalanceConfig 从文件系统加载数值配置
// 参数：
//
//	filePath - 配置文件路径（相对或绝对路径）
//
// 返回：
//
//	*BalanceConfig - 解析后的配置对象
//	error - 如果文件读取、解析或校验失败，返回错误信息
func LoadBalanceConfig(filePath string) (*BalanceConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance file %s: %w", filePath, err)
	}
	return parseBalance(data, filePath)
}

// LoadEmbeddedBalance 从嵌入资源加载内置数值配置
func LoadEmbeddedBalance() (*BalanceConfig, error) {
	data, err := embedded.ReadFile(EmbeddedBalancePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded balance: %w", err)
	}
	return parseBalance(data, EmbeddedBalancePath)
}

// parseBalance 以默认值为底解析 YAML，缺省字段沿用默认值
func parseBalance(data []byte, source string) (*BalanceConfig, error) {
	config := DefaultBalance()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse balance YAML from %s: %w", source, err)
	}

	if err := validateBalance(config); err != nil {
		return nil, fmt.Errorf("invalid balance config in %s: %w", source, err)
	}

	return config, nil
}

// validateBalance 验证数值配置的合法性
func validateBalance(c *BalanceConfig) error {
	positiveInts := []struct {
		name  string
		value int
	}{
		{"player.maxHealth", c.Player.MaxHealth},
		{"player.damageCooldownFrames", c.Player.DamageCooldownFrames},
		{"enemy.health", c.Enemy.Health},
		{"enemy.shootPeriodFrames", c.Enemy.ShootPeriodFrames},
		{"miniBoss.health", c.MiniBoss.Health},
		{"miniBoss.radialCount", c.MiniBoss.RadialCount},
		{"miniBoss.radialPeriodFrames", c.MiniBoss.RadialPeriodFrames},
		{"miniBoss.bombPeriodFrames", c.MiniBoss.BombPeriodFrames},
		{"boss.health", c.Boss.Health},
		{"boss.attack1BurstPeriod", c.Boss.Attack1BurstPeriod},
		{"boss.attack1BurstCount", c.Boss.Attack1BurstCount},
		{"boss.attack2BurstPeriod", c.Boss.Attack2BurstPeriod},
		{"boss.attack2BurstCount", c.Boss.Attack2BurstCount},
		{"boss.summonPeriod", c.Boss.SummonPeriod},
		{"boss.bombPeriod", c.Boss.BombPeriod},
		{"explosion.lifetimeFrames", c.Explosion.LifetimeFrames},
		{"explosion.sonicLifetimeFrames", c.Explosion.SonicLifetimeFrames},
		{"spawn.chaserOneIn", c.Spawn.ChaserOneIn},
		{"spawn.stationaryOneIn", c.Spawn.StationaryOneIn},
		{"spawn.healthPotionOneIn", c.Spawn.HealthPotionOneIn},
		{"spawn.speedBoostOneIn", c.Spawn.SpeedBoostOneIn},
		{"pickup.lifetimeMs", c.Pickup.LifetimeMs},
	}
	for _, f := range positiveInts {
		if f.value <= 0 {
			return fmt.Errorf("%s must be positive, got %d", f.name, f.value)
		}
	}

	if c.Player.BaseSpeed <= 0 {
		return fmt.Errorf("player.baseSpeed must be positive, got %.2f", c.Player.BaseSpeed)
	}
	if c.Player.EdgeMargin < 0 || c.Player.EdgeMargin*2 >= BoardWidth {
		return fmt.Errorf("player.edgeMargin out of range: %.2f", c.Player.EdgeMargin)
	}
	if c.MiniBoss.BombMin < 0 || c.MiniBoss.BombMax < c.MiniBoss.BombMin {
		return fmt.Errorf("miniBoss bomb range invalid: [%d, %d]", c.MiniBoss.BombMin, c.MiniBoss.BombMax)
	}
	if c.Boss.DetonationChance < 0 || c.Boss.DetonationChance > 1 {
		return fmt.Errorf("boss.detonationChance must be within [0,1], got %.2f", c.Boss.DetonationChance)
	}
	if c.Boss.DetonationMaxMs < c.Boss.DetonationMinMs {
		return fmt.Errorf("boss detonation window invalid: [%d, %d]", c.Boss.DetonationMinMs, c.Boss.DetonationMaxMs)
	}
	if c.Spawn.DropHealthBelow < 0 || c.Spawn.DropSpeedBelow < c.Spawn.DropHealthBelow || c.Spawn.DropSpeedBelow > 1 {
		return fmt.Errorf("spawn drop thresholds invalid: health<%.2f speed<%.2f", c.Spawn.DropHealthBelow, c.Spawn.DropSpeedBelow)
	}
	if c.Phase.ShootingStartSec >= c.Phase.MiniBossSec {
		return fmt.Errorf("phase.shootingStartSec (%d) must be before phase.miniBossSec (%d)", c.Phase.ShootingStartSec, c.Phase.MiniBossSec)
	}
	if len(c.Player.ScatterAngles) == 0 {
		return fmt.Errorf("player.scatterAngles cannot be empty")
	}

	return nil
}
