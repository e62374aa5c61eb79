package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/elibenporat/mlbbio/internal/domain/people"
	"github.com/elibenporat/mlbbio/internal/teststubs"
)

func TestPacedProviderSpacesCalls(t *testing.T) {
	inner := &teststubs.StubProvider{People: map[uint32]people.Person{1: {ID: 1}}}
	paced := NewPacedProvider(inner, 20*time.Millisecond, nil)

	start := time.Now()
	for i := 0; i < 3; i++ {
		if _, err := paced.FetchPerson(context.Background(), 1); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}
	// first call is immediate, the next two wait one interval each
	if elapsed := time.Since(start); elapsed < 35*time.Millisecond {
		t.Fatalf("expected calls to be paced, elapsed %s", elapsed)
	}
	if inner.Calls.Load() != 3 {
		t.Fatalf("expected inner provider called 3 times, got %d", inner.Calls.Load())
	}
}

func TestPacedProviderDisabledReturnsInner(t *testing.T) {
	inner := &teststubs.StubProvider{}
	if got := NewPacedProvider(inner, 0, nil); got != DataProvider(inner) {
		t.Fatalf("expected zero interval to return inner provider unchanged")
	}
}

func TestPacedProviderRespectsCanceledContext(t *testing.T) {
	inner := &teststubs.StubProvider{}
	paced := NewPacedProvider(inner, time.Hour, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := paced.FetchBio(ctx, 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled error, got %v", err)
	}
	if inner.Calls.Load() != 0 {
		t.Fatalf("expected inner provider not called on canceled context")
	}
}

func TestPacedProviderHandlesNilInner(t *testing.T) {
	paced := NewPacedProvider(nil, time.Millisecond, nil)

	if _, err := paced.FetchPeople(context.Background(), []uint32{1}); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}
