package domain

import (
	"fmt"
	"strings"
)

// Difficulty labels target puzzle generation & grading.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

// Difficulties lists all levels in ascending order of hardness.
var Difficulties = []Difficulty{Easy, Medium, Hard, Expert}

// Clues returns the target number of givens the generator carves down to.
func (d Difficulty) Clues() int {
	switch d {
	case Easy:
		return 40
	case Medium:
		return 33
	case Hard:
		return 28
	case Expert:
		return 24
	default:
		return 33
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "medium"
	}
}

// ParseDifficulty maps a case-insensitive level name to its Difficulty.
// Unknown names are an error; callers decide their own default.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	case "expert":
		return Expert, nil
	default:
		return Medium, fmt.Errorf("unknown difficulty %q (want easy|medium|hard|expert)", s)
	}
}

// MarshalText makes difficulties read as their names in JSON documents.
func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
