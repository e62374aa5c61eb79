package people

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SideCode is the short handedness code.
type SideCode string

const (
	SideCodeRight  SideCode = "R"
	SideCodeLeft   SideCode = "L"
	SideCodeSwitch SideCode = "S"
)

// Valid reports whether c is one of the known codes.
func (c SideCode) Valid() bool {
	switch c {
	case SideCodeRight, SideCodeLeft, SideCodeSwitch:
		return true
	}
	return false
}

// UnmarshalJSON rejects codes outside R, L and S.
func (c *SideCode) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	code := SideCode(raw)
	if !code.Valid() {
		return fmt.Errorf("unknown side code %q, expected one of R, L, S", raw)
	}
	*c = code
	return nil
}

// SideDescription is the human-readable handedness.
type SideDescription string

const (
	SideRight  SideDescription = "Right"
	SideLeft   SideDescription = "Left"
	SideSwitch SideDescription = "Switch"
	SideEither SideDescription = "Either"
)

// Valid reports whether d is one of the known descriptions.
func (d SideDescription) Valid() bool {
	switch d {
	case SideRight, SideLeft, SideSwitch, SideEither:
		return true
	}
	return false
}

// UnmarshalJSON rejects descriptions outside Right, Left, Switch and Either.
func (d *SideDescription) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	desc := SideDescription(raw)
	if !desc.Valid() {
		return fmt.Errorf("unknown side description %q, expected one of Right, Left, Switch, Either", raw)
	}
	*d = desc
	return nil
}

// Country groups birth countries the way the exercises did.
type Country string

const (
	CountryCanada Country = "Canada"
	CountryUSA    Country = "USA"
	CountryOther  Country = "Other"
)

// CountryOf classifies a free-text birth country.
func CountryOf(birthCountry string) Country {
	switch strings.ToLower(strings.TrimSpace(birthCountry)) {
	case "usa", "united states", "united states of america":
		return CountryUSA
	case "canada":
		return CountryCanada
	default:
		return CountryOther
	}
}
