package sellergrid

import (
	"encoding/json"
	"fmt"
)

// Gender tags an item for the boy/girl racks. The zero value is Unmarked.
type Gender int

const (
	// Unmarked items go on the general rack.
	Unmarked Gender = iota
	// Boy marks an item for the boys rack.
	Boy
	// Girl marks an item for the girls rack.
	Girl
)

func (g Gender) String() string {
	switch g {
	case Boy:
		return "boy"
	case Girl:
		return "girl"
	default:
		return "unmarked"
	}
}

// ParseGender parses a string into a Gender.
func ParseGender(s string) (Gender, error) {
	switch s {
	case "unmarked", "":
		return Unmarked, nil
	case "boy":
		return Boy, nil
	case "girl":
		return Girl, nil
	default:
		return Unmarked, fmt.Errorf("unknown gender tag: %q", s)
	}
}

// MarshalJSON encodes the gender as its lowercase tag name.
func (g Gender) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.String())
}

// UnmarshalJSON decodes a gender tag. Unknown tags fall back to Unmarked so
// that snapshots written by other tools remain importable.
func (g *Gender) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("gender must be a string: %w", err)
	}
	parsed, err := ParseGender(s)
	if err != nil {
		parsed = Unmarked
	}
	*g = parsed
	return nil
}
