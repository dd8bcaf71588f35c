package savedata

import (
	"bufio"
	"bytes"
	"fmt"
	"log"
	"strconv"
	"strings"
)

const (
	redKilledPrefix  = "red cube killed:"
	blueKilledPrefix = "blue cube killed:"
)

// Stats holds the kill counters. RedKills counts blue defeats and is
// stored on the "red cube killed" line; BlueKills counts red defeats.
type Stats struct {
	RedKills  int
	BlueKills int
}

// MarshalText writes the two-line stats format.
func (s Stats) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%s %d\n%s %d\n", redKilledPrefix, s.RedKills, blueKilledPrefix, s.BlueKills)), nil
}

// UnmarshalText reads the two-line stats format. Missing or malformed
// counters are left at zero; it never fails.
func (s *Stats) UnmarshalText(data []byte) error {
	*s = Stats{}
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.ToLower(strings.TrimSpace(sc.Text()))
		switch {
		case strings.HasPrefix(line, redKilledPrefix):
			s.RedKills = parseCount(line[len(redKilledPrefix):])
		case strings.HasPrefix(line, blueKilledPrefix):
			s.BlueKills = parseCount(line[len(blueKilledPrefix):])
		}
	}
	return nil
}

func parseCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// LoadStats reads the counters. A missing store, a missing item or an
// unreadable item all yield zero counts.
func LoadStats(st Store) Stats {
	var s Stats
	if st == nil {
		return s
	}
	data, err := st.LoadItem(ItemStats)
	if err != nil {
		log.Printf("Warning: Could not load stats: %v", err)
		return s
	}
	if data == nil {
		return s
	}
	_ = s.UnmarshalText(data)
	return s
}

// SaveStats writes the counters.
func SaveStats(st Store, s Stats) error {
	if st == nil {
		return nil
	}
	data, _ := s.MarshalText()
	if err := st.SaveItem(ItemStats, data); err != nil {
		return fmt.Errorf("save stats: %w", err)
	}
	return nil
}
