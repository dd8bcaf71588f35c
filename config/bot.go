package config

// AIConfig holds the distance thresholds and movement tuning for the
// computer-controlled red cube.
type AIConfig struct {
	MoveSpeed     float64 // pixels per frame
	Jitter        float64 // max random offset per axis per frame
	AttackRange   float64 // move straight at the target below this
	MaintainMin   float64 // back off below this
	MaintainMax   float64 // close the gap above this
	RetreatHealth int     // retreat when at or below this and far away
	DebugRespawn  bool    // respawn red on defeat while debug mode is on
	RandomSeed    int64   // 0 seeds from the clock
}

// AI holds the red cube AI configuration
var AI AIConfig

func init() {
	AI = AIConfig{
		MoveSpeed:     3,
		Jitter:        0.5,
		AttackRange:   100,
		MaintainMin:   150,
		MaintainMax:   350,
		RetreatHealth: 25,
		DebugRespawn:  true,
	}
}
