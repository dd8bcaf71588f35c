package savedata

import (
	"bufio"
	"bytes"
	"log"
	"strings"
)

// ParseDebugFlag reports whether the first line reads "debug = true",
// ignoring case and surrounding whitespace.
func ParseDebugFlag(data []byte) bool {
	sc := bufio.NewScanner(bytes.NewReader(data))
	if !sc.Scan() {
		return false
	}
	return strings.ToLower(strings.TrimSpace(sc.Text())) == "debug = true"
}

// DebugFlag polls the debug item once per tick. Force pins the flag on.
type DebugFlag struct {
	Store Store
	Force bool

	enabled bool
	polled  bool
}

// Poll re-reads the flag and logs when it flips.
func (d *DebugFlag) Poll() bool {
	enabled := d.Force
	if !enabled && d.Store != nil {
		data, err := d.Store.LoadItem(ItemDebug)
		if err == nil {
			enabled = ParseDebugFlag(data)
		}
	}
	if d.polled && enabled != d.enabled {
		log.Printf("Debug mode %s", onOff(enabled))
	}
	d.enabled = enabled
	d.polled = true
	return enabled
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
