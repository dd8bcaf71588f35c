// Package roster parses the cosmetic cube gallery and achievement list.
// Nothing here feeds the combat rules.
package roster

import (
	"regexp"
	"strconv"
	"strings"
)

// UndefinedColor is used when a cube block has no color field.
const UndefinedColor = "<undefined>"

// Cube is one gallery entry.
type Cube struct {
	ID        int
	ShortHand string
	Name      string
	Color     string // lowercased
	Attacks   string // comma separated, notes removed
	MaxHP     string // empty when unknown
}

var (
	cubeHeader = regexp.MustCompile(`(?i)cube \d+ stats:`)
	// parenthesised notes trailing an attack name, e.g. "(windup)"
	attackNote = regexp.MustCompile(`\s*\([^)]*\)`)
)

// default hp for cubes whose block omits it
var defaultMaxHP = map[int]string{5: "75", 6: "75"}

// ParseCubes reads blocks introduced by "cube N stats:" headers. Text
// before the first header is ignored. A cube's id is its block position
// counted from 1; the number in the header is not read.
func ParseCubes(content string) []Cube {
	headers := cubeHeader.FindAllStringIndex(content, -1)
	cubes := make([]Cube, 0, len(headers))

	for i, h := range headers {
		end := len(content)
		if i+1 < len(headers) {
			end = headers[i+1][0]
		}
		cubes = append(cubes, parseCubeBlock(i+1, content[h[1]:end]))
	}
	return cubes
}

func parseCubeBlock(id int, block string) Cube {
	c := Cube{ID: id}

	for _, line := range strings.Split(block, "\n") {
		key, value, ok := splitField(line)
		if !ok {
			continue
		}
		switch key {
		case "short_hand":
			c.ShortHand = value
		case "name":
			c.Name = value
		case "color":
			c.Color = strings.ToLower(value)
		case "attack", "attacks":
			c.Attacks = cleanAttacks(value)
		case "max hp":
			c.MaxHP = value
		}
	}

	if c.Name == "" {
		c.Name = "Cube " + strconv.Itoa(id)
	}
	if c.Color == "" {
		c.Color = UndefinedColor
	}
	if c.MaxHP == "" {
		c.MaxHP = defaultMaxHP[id]
	}
	return c
}

func cleanAttacks(s string) string {
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(attackNote.ReplaceAllString(p, ""))
	}
	return strings.Join(parts, ", ")
}

// splitField splits "key: value" with a lowercased key. Values keep their
// case.
func splitField(line string) (key, value string, ok bool) {
	k, v, found := strings.Cut(strings.TrimSpace(line), ":")
	if !found {
		return "", "", false
	}
	return strings.ToLower(strings.TrimSpace(k)), strings.TrimSpace(v), true
}

// Details is the gallery panel text for the cube: a title line, then
// colour, max hp, and one line per attack.
func (c Cube) Details() []string {
	lines := []string{
		c.Name + " - Details",
		"Color: " + capitalize(c.Color),
		"Max HP: " + orNA(c.MaxHP),
		"Attacks:",
	}
	if c.Attacks == "" {
		return append(lines, "  None")
	}
	for _, a := range strings.Split(c.Attacks, ", ") {
		lines = append(lines, "  - "+capitalize(a))
	}
	return lines
}

func capitalize(s string) string {
	if s == "" || s == UndefinedColor {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
