package config

import (
	"fmt"
	"log"
	"os"

	"github.com/quasilyte/gdata"
	"gopkg.in/yaml.v3"
)

// Tuning is the subset of configuration that can be overlaid from a file or
// restored from a saved calibration.
type Tuning struct {
	Projectile    ProjectileConfig      `yaml:"projectile"`
	PendingDamage PendingDamageConfig   `yaml:"pendingDamage"`
	DamageDigits  DamageDigitsConfig    `yaml:"damageDigits"`
	Attack        AttackAnimationConfig `yaml:"attackAnimation"`
	Death         DeathConfig           `yaml:"death"`
	Zone          ZoneConfig            `yaml:"zone"`
}

const calibrationKey = "calibration"

// CurrentTuning snapshots the live tunables.
func CurrentTuning() Tuning {
	return Tuning{
		Projectile:    Projectile,
		PendingDamage: PendingDamage,
		DamageDigits:  DamageDigits,
		Attack:        AttackAnimation,
		Death:         Death,
		Zone:          Zone,
	}
}

// ApplyTuning replaces the live tunables.
func ApplyTuning(t Tuning) {
	Projectile = t.Projectile
	PendingDamage = t.PendingDamage
	DamageDigits = t.DamageDigits
	AttackAnimation = t.Attack
	Death = t.Death
	Zone = t.Zone
}

// ParseTuning overlays YAML onto the live tunables. Keys missing from data keep
// their current value. On a parse or validation error nothing is changed.
func ParseTuning(data []byte) error {
	previous := CurrentTuning()
	overlay := previous
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("failed to parse tuning: %w", err)
	}

	ApplyTuning(overlay)
	if err := Validate(); err != nil {
		ApplyTuning(previous)
		return fmt.Errorf("invalid tuning: %w", err)
	}
	return nil
}

// LoadTuning overlays the YAML file at path onto the live tunables.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tuning %s: %w", path, err)
	}
	return ParseTuning(data)
}

// ItemStore is the slice of gdata.Manager used for calibration persistence.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// OpenCalibrationStore opens the per-user data directory used for calibrations.
func OpenCalibrationStore(appName string) (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open calibration store: %w", err)
	}
	return m, nil
}

// SaveCalibration writes the live tunables to store.
func SaveCalibration(store ItemStore) error {
	data, err := yaml.Marshal(CurrentTuning())
	if err != nil {
		return fmt.Errorf("serialize calibration: %w", err)
	}
	if err := store.SaveItem(calibrationKey, data); err != nil {
		return fmt.Errorf("save calibration: %w", err)
	}
	return nil
}

// LoadCalibration applies a previously saved calibration. It reports false when
// nothing has been saved yet.
func LoadCalibration(store ItemStore) (bool, error) {
	data, err := store.LoadItem(calibrationKey)
	if err != nil {
		return false, fmt.Errorf("load calibration: %w", err)
	}
	if data == nil {
		return false, nil
	}
	if err := ParseTuning(data); err != nil {
		log.Printf("[config] ignoring saved calibration: %v", err)
		return false, err
	}
	return true, nil
}
