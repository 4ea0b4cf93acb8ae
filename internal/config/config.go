// Package config provides YAML-based game configuration loading and
// difficulty management for orbit-rush.
package config

// OrbitConfig contains all configuration for the orbit game core.
type OrbitConfig struct {
	Rings      RingsConfig      `yaml:"rings"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Powerups   PowerupsConfig   `yaml:"powerups"`
	Replay     ReplayConfig     `yaml:"replay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RingsConfig defines the orbit lanes.
type RingsConfig struct {
	Radii            []float64 `yaml:"radii"`              // Ring radii in world units, innermost first
	InitialActive    int       `yaml:"initial_active"`     // Rings unlocked at level 1
	UnlockEveryLevel int       `yaml:"unlock_every_level"` // Levels between ring unlocks
}

// PhysicsConfig defines angular kinematics parameters.
type PhysicsConfig struct {
	BaseAngularVelocity float64 `yaml:"base_angular_velocity"` // rad/s of spawned entities at level 1
	VelocityGrowth      float64 `yaml:"velocity_growth"`       // Fractional speedup per level above 1
	PlayerTurnSpeed     float64 `yaml:"player_turn_speed"`     // rad/s of player input rotation
	RotationOffset      float64 `yaml:"rotation_offset"`       // Global frame rotation in radians
}

// SpawnConfig defines entity spawning parameters.
type SpawnConfig struct {
	Interval     float64 `yaml:"interval"`      // Seconds between spawns at difficulty 0
	Lifetime     float64 `yaml:"lifetime"`      // Seconds before an entity is finalized and recycled
	MaxEntities  int     `yaml:"max_entities"`  // Pool capacity
	HazardWeight int     `yaml:"hazard_weight"` // Relative spawn weights
	ShieldWeight int     `yaml:"shield_weight"`
	SlowMoWeight int     `yaml:"slowmo_weight"`
	MagnetWeight int     `yaml:"magnet_weight"`
}

// ScoringConfig defines the threat state machine and score progression.
type ScoringConfig struct {
	BasePoints        int     `yaml:"base_points"`        // Points per safe pass before multiplier
	NearMissBonus     float64 `yaml:"near_miss_bonus"`    // Multiplier gain per near miss
	PassDecay         float64 `yaml:"pass_decay"`         // Multiplier decay factor per safe pass
	ThreatArc         float64 `yaml:"threat_arc"`         // Radians: entering this arc marks an entity threatened
	NearMissArc       float64 `yaml:"near_miss_arc"`      // Radians: near-miss award arc
	ReleaseArc        float64 `yaml:"release_arc"`        // Radians: leaving this arc finalizes a safe pass
	ThreatDistance    float64 `yaml:"threat_distance"`    // World units: arc distance for threat entry
	NearMissDistance  float64 `yaml:"near_miss_distance"` // World units: outer band for near-miss award
	CollisionPadding  float64 `yaml:"collision_padding"`  // World units: contact distance
	ActionsPerLevel   int     `yaml:"actions_per_level"`  // Safe passes per level-up
	MilestoneStep     int     `yaml:"milestone_step"`     // Score distance between milestone checkpoints
	SpecialThresholds []int   `yaml:"special_thresholds"` // Absolute scores that fire the three special events
	SpecialDuration   float64 `yaml:"special_duration"`   // Seconds a special modifier stays active
}

// PowerupsConfig defines timed effect parameters.
type PowerupsConfig struct {
	ShieldDuration     float64 `yaml:"shield_duration"`     // Seconds
	SlowMoDuration     float64 `yaml:"slowmo_duration"`     // Seconds
	SlowMoFactor       float64 `yaml:"slowmo_factor"`       // Speed factor while slow-mo is active
	MagnetDuration     float64 `yaml:"magnet_duration"`     // Seconds
	MagnetStrength     float64 `yaml:"magnet_strength"`     // Peak deflection in rad/s at zero distance
	MagnetRadius       float64 `yaml:"magnet_radius"`       // World units: safe-zone radius around the player
	NeutralizeCooldown float64 `yaml:"neutralize_cooldown"` // Seconds a deflected hazard stays non-lethal
	GraceWindow        float64 `yaml:"grace_window"`        // Seconds of post-hit invulnerability
	ShieldCost         int     `yaml:"shield_cost"`         // Coins to buy a shield mid-run
}

// ReplayConfig defines the trailing replay capture buffer.
type ReplayConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Capacity int     `yaml:"capacity"` // Max frames held; halved on low-memory devices
	Interval float64 `yaml:"interval"` // Seconds between captures
	Window   float64 `yaml:"window"`   // Trailing seconds kept at finalize
	Size     int     `yaml:"size"`     // Downsampled frame edge length in pixels
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Added to entity speed at max difficulty
	SpawnAcceleration float64 `yaml:"spawn_acceleration"` // Fractional spawn-interval reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
