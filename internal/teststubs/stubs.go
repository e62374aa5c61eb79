package teststubs

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/elibenporat/mlbbio/internal/domain/people"
)

// ErrUnknownID is returned by StubProvider for IDs it has no record for.
var ErrUnknownID = errors.New("stub: unknown id")

// StubProvider is a test double for providers.DataProvider.
type StubProvider struct {
	People map[uint32]people.Person
	Bios   map[uint32]string
	Err    error
	// FailOn makes FetchPerson fail for a single ID.
	FailOn uint32
	Calls  atomic.Int32

	mu        sync.Mutex
	Requested []uint32
}

// FetchPeople returns the configured people in the order requested.
func (s *StubProvider) FetchPeople(ctx context.Context, ids []uint32) ([]people.Person, error) {
	_ = ctx
	s.Calls.Add(1)
	s.record(ids...)
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]people.Person, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.People[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// FetchPerson returns the configured person or ErrUnknownID.
func (s *StubProvider) FetchPerson(ctx context.Context, id uint32) (people.Person, error) {
	_ = ctx
	s.Calls.Add(1)
	s.record(id)
	if s.Err != nil {
		return people.Person{}, s.Err
	}
	if s.FailOn != 0 && s.FailOn == id {
		return people.Person{}, ErrUnknownID
	}
	p, ok := s.People[id]
	if !ok {
		return people.Person{}, ErrUnknownID
	}
	return p, nil
}

// FetchBio returns the configured bio text.
func (s *StubProvider) FetchBio(ctx context.Context, id uint32) (string, error) {
	_ = ctx
	s.Calls.Add(1)
	s.record(id)
	if s.Err != nil {
		return "", s.Err
	}
	bio, ok := s.Bios[id]
	if !ok {
		return "", ErrUnknownID
	}
	return bio, nil
}

// RequestedIDs returns a copy of every ID seen, in call order.
func (s *StubProvider) RequestedIDs() []uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]uint32(nil), s.Requested...)
}

func (s *StubProvider) record(ids ...uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Requested = append(s.Requested, ids...)
}
