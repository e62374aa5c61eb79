package statsapi

import "github.com/elibenporat/mlbbio/internal/domain/people"

func mapPerson(p personResponse) people.Person {
	out := people.Person{
		Height:             p.Height,
		Weight:             p.Weight,
		BirthDate:          p.BirthDate,
		MLBDebutDate:       p.MLBDebutDate,
		BirthCity:          p.BirthCity,
		BirthStateProvince: p.BirthStateProvince,
		BirthCountry:       p.BirthCountry,
		BatSide:            mapSide(p.BatSide),
		PitchHand:          mapSide(p.PitchHand),
	}
	if p.ID != nil {
		out.ID = *p.ID
	}
	if p.FullName != nil {
		out.FullName = *p.FullName
	}
	return out
}

func mapSide(s *sideResponse) *people.Side {
	if s == nil {
		return nil
	}
	side := &people.Side{}
	if s.Code != nil {
		side.Code = people.SideCode(*s.Code)
	}
	if s.Description != nil {
		side.Description = people.SideDescription(*s.Description)
	}
	return side
}
