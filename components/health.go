package components

import "github.com/yohamta/donburi"

// HealthData may dip below zero for a frame before the defeat check runs.
type HealthData struct {
	Current int
	Max     int
}

// Display returns the health clamped to [0, Max].
func (h *HealthData) Display() int {
	if h.Current < 0 {
		return 0
	}
	if h.Current > h.Max {
		return h.Max
	}
	return h.Current
}

// Ratio returns the displayed health as a fraction of Max.
func (h *HealthData) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Display()) / float64(h.Max)
}

// Depleted reports whether the cube should be defeated.
func (h *HealthData) Depleted() bool {
	return h.Current <= 0
}

var Health = donburi.NewComponentType[HealthData]()
