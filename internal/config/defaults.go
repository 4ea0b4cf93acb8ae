package config

import (
	_ "embed"
)

//go:embed defaults/orbit.yaml
var defaultOrbitYAML []byte

// DefaultOrbitConfig returns the default orbit game configuration.
// Kept in sync with defaults/orbit.yaml as a fallback if the embed
// fails to parse.
func DefaultOrbitConfig() OrbitConfig {
	return OrbitConfig{
		Rings: RingsConfig{
			Radii:            []float64{6.0, 10.0, 14.0, 18.0},
			InitialActive:    1,
			UnlockEveryLevel: 1,
		},
		Physics: PhysicsConfig{
			BaseAngularVelocity: 1.2,
			VelocityGrowth:      0.15,
			PlayerTurnSpeed:     2.4,
			RotationOffset:      -1.5707963268, // zero angle at 12 o'clock
		},
		Spawn: SpawnConfig{
			Interval:     0.9,
			Lifetime:     12.0,
			MaxEntities:  24,
			HazardWeight: 70,
			ShieldWeight: 10,
			SlowMoWeight: 10,
			MagnetWeight: 10,
		},
		Scoring: ScoringConfig{
			BasePoints:        10,
			NearMissBonus:     0.2,
			PassDecay:         0.9,
			ThreatArc:         0.6,
			NearMissArc:       0.35,
			ReleaseArc:        0.9,
			ThreatDistance:    3.0,
			NearMissDistance:  2.0,
			CollisionPadding:  0.8,
			ActionsPerLevel:   8,
			MilestoneStep:     100,
			SpecialThresholds: []int{500, 1500, 3000},
			SpecialDuration:   8.0,
		},
		Powerups: PowerupsConfig{
			ShieldDuration:     10.0,
			SlowMoDuration:     6.0,
			SlowMoFactor:       0.5,
			MagnetDuration:     8.0,
			MagnetStrength:     2.5,
			MagnetRadius:       4.0,
			NeutralizeCooldown: 1.5,
			GraceWindow:        2.0,
			ShieldCost:         50,
		},
		Replay: ReplayConfig{
			Enabled:  true,
			Capacity: 48,
			Interval: 0.25,
			Window:   10.0,
			Size:     64,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.6,
				SpawnAcceleration: 0.4,
			},
		},
	}
}
