package statsapi

import "encoding/json"

type envelopeResponse struct {
	People *[]json.RawMessage `json:"people"`
}

// personResponse is the wire shape of one people record. Every field is a
// pointer so presence can be checked per schema; field names match
// people.Person so Schema.RequiredFields applies directly.
type personResponse struct {
	ID                 *uint32       `json:"id" validate:"required"`
	FullName           *string       `json:"fullName" validate:"required"`
	Height             *string       `json:"height" validate:"required"`
	Weight             *uint16       `json:"weight" validate:"required"`
	BirthDate          *string       `json:"birthDate" validate:"required"`
	MLBDebutDate       *string       `json:"mlbDebutDate" validate:"required"`
	BirthCity          *string       `json:"birthCity" validate:"required"`
	BirthStateProvince *string       `json:"birthStateProvince" validate:"required"`
	BirthCountry       *string       `json:"birthCountry" validate:"required"`
	BatSide            *sideResponse `json:"batSide" validate:"required"`
	PitchHand          *sideResponse `json:"pitchHand" validate:"required"`
}

// sideResponse keeps code and description as raw text so unknown variants
// are reported with their field path.
type sideResponse struct {
	Code        *string `json:"code"`
	Description *string `json:"description"`
}
