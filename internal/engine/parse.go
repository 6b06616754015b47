package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCategory parses user input to a HabitCategory.
// If input is empty or unrecognized, returns DefaultCategory.
func ParseCategory(input string) HabitCategory {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "sleep", "rest":
		return CategorySleep
	case "workout", "exercise", "gym":
		return CategoryWorkout
	case "hygiene":
		return CategoryHygiene
	case "skincare", "skin":
		return CategorySkincare
	default:
		return DefaultCategory
	}
}

// ParseFrequency parses daily, weekly, monthly or custom.
func ParseFrequency(input string) (FrequencyType, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	if s == "" {
		return FrequencyDaily, nil
	}
	f := FrequencyType(s)
	if !f.IsValid() {
		return "", fmt.Errorf("invalid frequency: %q", input)
	}
	return f, nil
}

// ParseQuestType parses daily, weekly or achievement.
func ParseQuestType(input string) (QuestType, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	if s == "" {
		return QuestDaily, nil
	}
	q := QuestType(s)
	if !q.IsValid() {
		return "", fmt.Errorf("invalid quest type: %q", input)
	}
	return q, nil
}

var weekdayNames = map[string]int{
	"sun": 0, "mon": 1, "tue": 2, "wed": 3, "thu": 4, "fri": 5, "sat": 6,
}

// ParseWeekdays parses a comma separated list of weekday names or numbers
// (0=Sunday) such as "mon,wed,fri" or "1,3,5".
func ParseWeekdays(input string) ([]int, error) {
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}
	var out []int
	seen := map[int]bool{}
	for _, part := range strings.Split(input, ",") {
		p := strings.TrimSpace(strings.ToLower(part))
		if p == "" {
			continue
		}
		d, ok := weekdayNames[p]
		if !ok && len(p) > 3 {
			d, ok = weekdayNames[p[:3]]
		}
		if !ok {
			n, err := strconv.Atoi(p)
			if err != nil || n < 0 || n > 6 {
				return nil, fmt.Errorf("invalid weekday: %q", part)
			}
			d = n
		}
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	return out, nil
}
