package fixture

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/elibenporat/mlbbio/internal/domain/people"
	"github.com/elibenporat/mlbbio/internal/providers"
	"github.com/elibenporat/mlbbio/internal/providers/statsapi"
)

// ProspectID is the sample player with no debut date; the strict schema rejects the record.
const ProspectID uint32 = 800101

// Provider serves a static set of people useful for offline runs and tests.
// Records are rendered as Stats API JSON and decoded with the configured
// schema, so offline runs enforce required fields the same way live ones do.
type Provider struct {
	people map[uint32]people.Person
	schema people.Schema
}

// Option customizes a fixture Provider.
type Option func(*Provider)

// WithSchema sets the decoding schema. The default is strict.
func WithSchema(schema people.Schema) Option {
	return func(p *Provider) {
		if schema != "" {
			p.schema = schema
		}
	}
}

// New creates a fixture provider seeded with the sample people.
func New(opts ...Option) *Provider {
	p := &Provider{people: make(map[uint32]people.Person), schema: people.SchemaStrict}
	for _, person := range Sample() {
		p.people[person.ID] = person
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// IDs lists the fixture person IDs in a stable order.
func IDs() []uint32 {
	return []uint32{545361, 458015, 596019, ProspectID}
}

// Sample returns the deterministic fixture people: a right-handed US batter,
// a left-handed Canadian batter, a switch hitter born in Puerto Rico and a
// prospect with no debut date.
func Sample() []people.Person {
	return []people.Person{
		{
			ID:                 545361,
			FullName:           "Mike Trout",
			Height:             str(`6' 2"`),
			Weight:             weight(235),
			BirthDate:          str("1991-08-07"),
			MLBDebutDate:       str("2011-07-08"),
			BirthCity:          str("Vineland"),
			BirthStateProvince: str("NJ"),
			BirthCountry:       str("USA"),
			BatSide:            side(people.SideCodeRight, people.SideRight),
			PitchHand:          side(people.SideCodeRight, people.SideRight),
		},
		{
			ID:                 458015,
			FullName:           "Joey Votto",
			Height:             str(`6' 2"`),
			Weight:             weight(220),
			BirthDate:          str("1983-09-10"),
			MLBDebutDate:       str("2007-09-04"),
			BirthCity:          str("Toronto"),
			BirthStateProvince: str("ON"),
			BirthCountry:       str("Canada"),
			BatSide:            side(people.SideCodeLeft, people.SideLeft),
			PitchHand:          side(people.SideCodeRight, people.SideRight),
		},
		{
			ID:           596019,
			FullName:     "Francisco Lindor",
			Height:       str(`5' 11"`),
			Weight:       weight(190),
			BirthDate:    str("1993-11-14"),
			MLBDebutDate: str("2015-06-14"),
			BirthCity:    str("Caguas"),
			BirthCountry: str("Puerto Rico"),
			BatSide:      side(people.SideCodeSwitch, people.SideSwitch),
			PitchHand:    side(people.SideCodeRight, people.SideRight),
		},
		{
			ID:                 ProspectID,
			FullName:           "Sam Prospect",
			Height:             str(`6' 1"`),
			Weight:             weight(185),
			BirthDate:          str("2005-04-02"),
			BirthCity:          str("Tampa"),
			BirthStateProvince: str("FL"),
			BirthCountry:       str("USA"),
			BatSide:            side(people.SideCodeLeft, people.SideLeft),
			PitchHand:          side(people.SideCodeLeft, people.SideLeft),
		},
	}
}

// FetchPeople returns the requested people in request order.
func (p *Provider) FetchPeople(ctx context.Context, ids []uint32) ([]people.Person, error) {
	_ = ctx
	if len(ids) == 0 {
		return nil, providers.ErrNoIDs
	}
	items := make([]people.Person, 0, len(ids))
	for _, id := range ids {
		person, err := p.lookup(id)
		if err != nil {
			return nil, err
		}
		items = append(items, person)
	}
	out, err := p.decode(items)
	if err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}
	return out, nil
}

// FetchPerson returns a single fixture person.
func (p *Provider) FetchPerson(ctx context.Context, id uint32) (people.Person, error) {
	_ = ctx
	person, err := p.lookup(id)
	if err != nil {
		return people.Person{}, err
	}
	out, err := p.decode([]people.Person{person})
	if err != nil {
		return people.Person{}, fmt.Errorf("fixture: person %d: %w", id, err)
	}
	return out[0], nil
}

// Schema reports the schema records are decoded with.
func (p *Provider) Schema() people.Schema {
	return p.schema
}

// decode round-trips items through the Stats API decoder.
func (p *Provider) decode(items []people.Person) ([]people.Person, error) {
	body, err := json.Marshal(people.Envelope{People: items})
	if err != nil {
		return nil, err
	}
	env, err := statsapi.Decode(body, p.schema)
	if err != nil {
		return nil, err
	}
	return env.People, nil
}

// FetchBio renders the person as a Stats API style JSON document.
func (p *Provider) FetchBio(ctx context.Context, id uint32) (string, error) {
	_ = ctx
	person, err := p.lookup(id)
	if err != nil {
		return "", err
	}
	body, err := json.Marshal(people.Envelope{People: []people.Person{person}})
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (p *Provider) lookup(id uint32) (people.Person, error) {
	person, ok := p.people[id]
	if !ok {
		return people.Person{}, fmt.Errorf("fixture: person %d: %w", id, providers.ErrPersonNotFound)
	}
	return person, nil
}

func str(s string) *string { return &s }

func weight(w uint16) *uint16 { return &w }

func side(code people.SideCode, desc people.SideDescription) *people.Side {
	return &people.Side{Code: code, Description: desc}
}
