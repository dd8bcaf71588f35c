package roster

import (
	"regexp"
	"strconv"
	"strings"
)

// Achievement is one entry of the locked/unlocked list.
type Achievement struct {
	ID          int
	Name        string
	Description string
	Unlocks     string
	Unlocked    bool
}

// tolerates "achievment" and "achievenent" spellings
var achievementHeader = regexp.MustCompile(`(?i)achiev(?:e)?[mn](?:e)?nt (\d+)`)

// ParseAchievements reads blocks introduced by "achievement N" headers.
// An optional first line in double quotes names the achievement.
func ParseAchievements(content string) []Achievement {
	headers := achievementHeader.FindAllStringSubmatchIndex(content, -1)
	out := make([]Achievement, 0, len(headers))

	for i, h := range headers {
		end := len(content)
		if i+1 < len(headers) {
			end = headers[i+1][0]
		}
		id, err := strconv.Atoi(content[h[2]:h[3]])
		if err != nil {
			continue
		}
		out = append(out, parseAchievementBlock(id, content[h[1]:end]))
	}
	return out
}

func parseAchievementBlock(id int, block string) Achievement {
	a := Achievement{
		ID:          id,
		Name:        "Achievement " + strconv.Itoa(id),
		Description: "No description provided.",
		Unlocks:     "Nothing.",
	}

	lines := strings.Split(strings.TrimSpace(block), "\n")
	if len(lines) > 0 {
		if first := strings.TrimSpace(lines[0]); strings.HasPrefix(first, `"`) {
			a.Name = strings.Trim(first, `"`)
			lines = lines[1:]
		}
	}

	for _, line := range lines {
		key, value, ok := splitField(line)
		if !ok {
			continue
		}
		switch key {
		case "des":
			a.Description = strings.Trim(value, `"`)
		case "unlocks":
			a.Unlocks = strings.Trim(value, `"`)
		case "status":
			a.Unlocked = strings.ToLower(value) == "unlocked"
		}
	}
	return a
}

// Title is the list heading, e.g. "#1 - First Blood".
func (a Achievement) Title() string {
	return "#" + strconv.Itoa(a.ID) + " - " + a.Name
}

// Status is UNLOCKED or LOCKED.
func (a Achievement) Status() string {
	if a.Unlocked {
		return "UNLOCKED"
	}
	return "LOCKED"
}
