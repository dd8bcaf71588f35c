package combat

import "time"

// tickDown counts t toward zero. It reports true on the tick the timer
// reaches zero, and false while already expired.
func tickDown(t *time.Duration, dt time.Duration) bool {
	if *t <= 0 {
		return false
	}
	*t -= dt
	if *t <= 0 {
		*t = 0
		return true
	}
	return false
}

// FrameDuration is one tick at the given rate.
func FrameDuration(tps int) time.Duration {
	if tps <= 0 {
		tps = 60
	}
	return time.Second / time.Duration(tps)
}
