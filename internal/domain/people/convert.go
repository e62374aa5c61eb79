package people

import (
	"time"

	"github.com/elibenporat/mlbbio/internal/timeutil"
)

// NewPlayer flattens a Person into a Player. A missing side leaves the
// corresponding code and description empty.
func NewPlayer(p Person) Player {
	player := Player{
		ID:                 p.ID,
		FullName:           p.FullName,
		Height:             p.Height,
		Weight:             p.Weight,
		BirthDate:          p.BirthDate,
		MLBDebutDate:       p.MLBDebutDate,
		BirthCity:          p.BirthCity,
		BirthStateProvince: p.BirthStateProvince,
		BirthCountry:       p.BirthCountry,
	}
	if p.BatSide != nil {
		player.BatSideCode = p.BatSide.Code
		player.BatSideDescription = p.BatSide.Description
	}
	if p.PitchHand != nil {
		player.PitchHandCode = p.PitchHand.Code
		player.PitchHandDescription = p.PitchHand.Description
	}
	return player
}

// NewPlayers converts each person in order.
func NewPlayers(items []Person) []Player {
	out := make([]Player, 0, len(items))
	for _, p := range items {
		out = append(out, NewPlayer(p))
	}
	return out
}

// CountryGroup classifies the birth country; unknown when absent.
func (p Player) CountryGroup() Country {
	if p.BirthCountry == nil {
		return CountryOther
	}
	return CountryOf(*p.BirthCountry)
}

// Age returns the player's age in whole years at now. ok is false when the
// birth date is missing or not YYYY-MM-DD.
func (p Player) Age(now time.Time) (age int, ok bool) {
	if p.BirthDate == nil {
		return 0, false
	}
	born, err := timeutil.ParseDate(*p.BirthDate)
	if err != nil {
		return 0, false
	}
	return timeutil.YearsBetween(born, now), true
}
