package defs

import (
	"encoding/json"

	"go-tower-siege/internal/config"
)

// Пропущенные в JSON поля получают значения по умолчанию из config.
// Явно заданный ноль остаётся нулём и отклоняется валидацией.

func (d *EnemyDefinition) UnmarshalJSON(data []byte) error {
	type plain EnemyDefinition
	def := plain{
		Health:        config.EnemyHealth,
		Speed:         config.EnemySpeed,
		RotationSpeed: config.EnemyRotationSpeed,
		Damage:        config.EnemyDamage,
		Visuals: Visuals{
			Color:        config.EnemyColor,
			RadiusFactor: config.EnemyRadius / config.TileSize,
		},
	}
	if err := json.Unmarshal(data, &def); err != nil {
		return err
	}
	*d = EnemyDefinition(def)
	return nil
}

func (d *TowerDefinition) UnmarshalJSON(data []byte) error {
	type plain TowerDefinition
	def := plain{
		Projectile: ProjectileDefinition{
			Speed:  config.ProjectileSpeed,
			Damage: config.ProjectileDamage,
		},
		Visuals: Visuals{
			Color:        config.TowerStrokeColor,
			RadiusFactor: config.TowerRadiusFactor,
		},
	}
	if err := json.Unmarshal(data, &def); err != nil {
		return err
	}
	*d = TowerDefinition(def)
	return nil
}

func (d *LevelDefinition) UnmarshalJSON(data []byte) error {
	type plain LevelDefinition
	def := plain{
		TileSize:    config.TileSize,
		StartHealth: config.BaseHealth,
		StartCoins:  config.StartCoins,
	}
	if err := json.Unmarshal(data, &def); err != nil {
		return err
	}
	*d = LevelDefinition(def)
	return nil
}
