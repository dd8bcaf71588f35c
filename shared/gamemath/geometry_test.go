package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAngleAndUnit(t *testing.T) {
	assert.InDelta(t, 0, Angle(0, 0, 10, 0), 1e-9)
	assert.InDelta(t, math.Pi/2, Angle(0, 0, 0, 10), 1e-9)
	assert.InDelta(t, math.Pi, Angle(0, 0, -10, 0), 1e-9)

	// coincident points point right
	assert.Equal(t, 0.0, Angle(5, 5, 5, 5))
	x, y := Unit(Angle(5, 5, 5, 5))
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 0.0, y)
}

func TestDistanceAndCenter(t *testing.T) {
	cx, cy := Center(20, 275, 50)
	assert.Equal(t, 45.0, cx)
	assert.Equal(t, 300.0, cy)
	assert.Equal(t, 5.0, Distance(0, 0, 3, 4))
}

func TestNormalize(t *testing.T) {
	x, y := Normalize(3, 4)
	assert.InDelta(t, 0.6, x, 1e-9)
	assert.InDelta(t, 0.8, y, 1e-9)

	x, y = Normalize(0, 0)
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestClampToArena(t *testing.T) {
	x, y := ClampToArena(790, -4, 50, 800, 600)
	assert.Equal(t, 750.0, x)
	assert.Equal(t, 0.0, y)

	assert.True(t, OutOfArena(750, 100, 50, 800, 600))
	assert.True(t, OutOfArena(100, 0, 50, 800, 600))
	assert.False(t, OutOfArena(100, 100, 50, 800, 600))
}

func TestRectsOverlap(t *testing.T) {
	assert.True(t, RectsOverlap(0, 0, 50, 50, 49, 49, 50, 50))
	// touching edges do not overlap
	assert.False(t, RectsOverlap(0, 0, 50, 50, 50, 0, 50, 50))
}

func TestHorizontalDominant(t *testing.T) {
	h, ok := HorizontalDominant(3, -3)
	assert.True(t, ok)
	assert.True(t, h, "ties favor horizontal")

	h, ok = HorizontalDominant(1, -3)
	assert.True(t, ok)
	assert.False(t, h)

	_, ok = HorizontalDominant(0, 0)
	assert.False(t, ok)
}

func TestSegmentHitsRect(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
		rx, ry, rw, rh float64
		want           bool
	}{
		{"crosses", 0, 25, 100, 25, 40, 0, 50, 50, true},
		{"stops short", 0, 25, 39, 25, 40, 0, 50, 50, false},
		{"starts inside", 50, 10, 500, 10, 40, 0, 50, 50, true},
		{"passes above", 0, -1, 100, -1, 40, 0, 50, 50, false},
		{"diagonal corner clip", 0, 0, 100, 100, 80, 0, 50, 50, false},
		{"diagonal through", 0, 0, 100, 100, 40, 40, 50, 50, true},
		{"vertical through", 60, -100, 60, 100, 40, 0, 50, 50, true},
		{"point outside", 10, 10, 10, 10, 40, 0, 50, 50, false},
		{"grazes edge", 0, 50, 100, 50, 40, 0, 50, 50, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SegmentHitsRect(tt.x1, tt.y1, tt.x2, tt.y2, tt.rx, tt.ry, tt.rw, tt.rh)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClipSegmentEndpoints(t *testing.T) {
	x1, y1, x2, y2, ok := ClipSegment(0, 25, 100, 25, 40, 0, 50, 50)
	assert.True(t, ok)
	assert.InDelta(t, 40, x1, 1e-9)
	assert.InDelta(t, 25, y1, 1e-9)
	assert.InDelta(t, 90, x2, 1e-9)
	assert.InDelta(t, 25, y2, 1e-9)
}
