package people

import (
	"fmt"
	"strings"
)

// Schema names which Person fields must be present when parsing.
type Schema string

const (
	// SchemaMinimal requires only the identity fields.
	SchemaMinimal Schema = "minimal"
	// SchemaStrict requires the whole bio except birthStateProvince.
	SchemaStrict Schema = "strict"
	// SchemaLoose requires identity and both sides; bio details are optional.
	SchemaLoose Schema = "loose"
)

// ParseSchema resolves a schema name. Empty selects SchemaStrict.
func ParseSchema(raw string) (Schema, error) {
	switch Schema(strings.ToLower(strings.TrimSpace(raw))) {
	case "", SchemaStrict:
		return SchemaStrict, nil
	case SchemaMinimal:
		return SchemaMinimal, nil
	case SchemaLoose:
		return SchemaLoose, nil
	default:
		return "", fmt.Errorf("unknown schema %q (want minimal, strict or loose)", raw)
	}
}

// RequiredFields lists the Go field names of Person that must be set.
func (s Schema) RequiredFields() []string {
	switch s {
	case SchemaMinimal:
		return []string{"ID", "FullName"}
	case SchemaLoose:
		return []string{"ID", "FullName", "BatSide", "PitchHand"}
	default:
		return []string{
			"ID", "FullName", "Height", "Weight", "BirthDate", "MLBDebutDate",
			"BirthCity", "BirthCountry", "BatSide", "PitchHand",
		}
	}
}

func (s Schema) String() string {
	return string(s)
}
