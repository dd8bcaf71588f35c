package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Tuning is the on-disk shape of an override file. Every table is
// optional and only the keys present replace the defaults.
//
//	[charge]
//	flash_duration = "250ms"
//	instant_kill = false
//
//	[beam]
//	damage = 20
type Tuning struct {
	Cube   cubeTuning   `toml:"cube"`
	AI     aiTuning     `toml:"ai"`
	Charge chargeTuning `toml:"charge"`
	Beam   beamTuning   `toml:"beam"`
	Melee  meleeTuning  `toml:"melee"`
	Parry  parryTuning  `toml:"parry"`
}

type cubeTuning struct {
	Size      float64 `toml:"size"`
	MaxHealth int     `toml:"max_health"`
	MoveSpeed float64 `toml:"move_speed"`
}

type aiTuning struct {
	MoveSpeed     float64 `toml:"move_speed"`
	Jitter        float64 `toml:"jitter"`
	AttackRange   float64 `toml:"attack_range"`
	MaintainMin   float64 `toml:"maintain_min"`
	MaintainMax   float64 `toml:"maintain_max"`
	RetreatHealth int     `toml:"retreat_health"`
	DebugRespawn  bool    `toml:"debug_respawn"`
	RandomSeed    int64   `toml:"seed"`
}

type chargeTuning struct {
	Chance            float64       `toml:"chance"`
	FlashDuration     time.Duration `toml:"flash_duration"`
	FlashCycles       int           `toml:"flash_cycles"`
	Speed             float64       `toml:"speed"`
	Endlag            time.Duration `toml:"endlag"`
	Damage            int           `toml:"damage"`
	InstantKill       bool          `toml:"instant_kill"`
	PvPFlashCycles    int           `toml:"pvp_flash_cycles"`
	PvPSpeedScale     float64       `toml:"pvp_speed_scale"`
	PvPBoundaryDamage int           `toml:"pvp_boundary_damage"`
	PvPBoundaryStun   time.Duration `toml:"pvp_boundary_stun"`
}

type beamTuning struct {
	Chance        float64       `toml:"chance"`
	Range         float64       `toml:"range"`
	FlashDuration time.Duration `toml:"flash_duration"`
	FlashCycles   int           `toml:"flash_cycles"`
	Width         float64       `toml:"width"`
	Length        float64       `toml:"length"`
	Damage        int           `toml:"damage"`
	Linger        time.Duration `toml:"linger"`
	Cooldown      time.Duration `toml:"cooldown"`
}

type meleeTuning struct {
	Damage   int           `toml:"damage"`
	Linger   time.Duration `toml:"linger"`
	Cooldown time.Duration `toml:"cooldown"`
}

type parryTuning struct {
	SuccessWindow time.Duration `toml:"success_window"`
	FailWindow    time.Duration `toml:"fail_window"`
}

// currentTuning snapshots the live config so a decode only overwrites
// the keys present in the file.
func currentTuning() Tuning {
	return Tuning{
		Cube:   cubeTuning(Cube),
		AI:     aiTuning(AI),
		Charge: chargeTuning(Charge),
		Beam:   beamTuning(Beam),
		Melee:  meleeTuning(Melee),
		Parry:  parryTuning(Parry),
	}
}

func (t Tuning) apply() {
	Cube = CubeConfig(t.Cube)
	AI = AIConfig(t.AI)
	Charge = ChargeConfig(t.Charge)
	Beam = BeamConfig(t.Beam)
	Melee = MeleeConfig(t.Melee)
	Parry = ParryConfig(t.Parry)
}

// LoadTuning applies a TOML override file to the combat tables. The
// live config is untouched when the file cannot be decoded.
func LoadTuning(path string) error {
	t := currentTuning()
	md, err := toml.DecodeFile(path, &t)
	if err != nil {
		return fmt.Errorf("decode tuning %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown tuning keys in %s: %v", path, undecoded)
	}
	t.apply()
	return nil
}

// DecodeTuning applies overrides from TOML text.
func DecodeTuning(data string) error {
	t := currentTuning()
	md, err := toml.Decode(data, &t)
	if err != nil {
		return fmt.Errorf("decode tuning: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown tuning keys: %v", undecoded)
	}
	t.apply()
	return nil
}
