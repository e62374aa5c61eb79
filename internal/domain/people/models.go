package people

// Side describes batting or throwing handedness as reported by the Stats API.
type Side struct {
	Code        SideCode        `json:"code"`
	Description SideDescription `json:"description"`
}

// Person mirrors one entry of the Stats API "people" array.
// Fields that some schemas treat as optional are pointers.
type Person struct {
	ID                 uint32  `json:"id"`
	FullName           string  `json:"fullName"`
	Height             *string `json:"height,omitempty"`
	Weight             *uint16 `json:"weight,omitempty"`
	BirthDate          *string `json:"birthDate,omitempty"`
	MLBDebutDate       *string `json:"mlbDebutDate,omitempty"`
	BirthCity          *string `json:"birthCity,omitempty"`
	BirthStateProvince *string `json:"birthStateProvince,omitempty"`
	BirthCountry       *string `json:"birthCountry,omitempty"`
	BatSide            *Side   `json:"batSide,omitempty"`
	PitchHand          *Side   `json:"pitchHand,omitempty"`
}

// Envelope is the top-level Stats API response wrapping people records.
type Envelope struct {
	People []Person `json:"people"`
}

// Player is the flattened form of Person with side records split into fields.
type Player struct {
	ID                   uint32          `json:"id"`
	FullName             string          `json:"fullName"`
	Height               *string         `json:"height,omitempty"`
	Weight               *uint16         `json:"weight,omitempty"`
	BirthDate            *string         `json:"birthDate,omitempty"`
	MLBDebutDate         *string         `json:"mlbDebutDate,omitempty"`
	BirthCity            *string         `json:"birthCity,omitempty"`
	BirthStateProvince   *string         `json:"birthStateProvince,omitempty"`
	BirthCountry         *string         `json:"birthCountry,omitempty"`
	BatSideCode          SideCode        `json:"batSideCode"`
	BatSideDescription   SideDescription `json:"batSideDescription"`
	PitchHandCode        SideCode        `json:"pitchHandCode"`
	PitchHandDescription SideDescription `json:"pitchHandDescription"`
}
