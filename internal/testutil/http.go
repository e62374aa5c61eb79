package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// StatsAPIServer fakes the Stats API people endpoints and records every request.
type StatsAPIServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []*http.Request
	// Bodies maps a request path (e.g. /people/545361) to a 200 JSON body.
	Bodies map[string]string
	// Statuses forces a non-200 status for a path.
	Statuses map[string]int
}

// NewStatsAPIServer starts a fake upstream that is closed when the test ends.
// Unknown paths answer 404 with the upstream's "Object not found" body.
func NewStatsAPIServer(t *testing.T) *StatsAPIServer {
	t.Helper()
	s := &StatsAPIServer{Bodies: map[string]string{}, Statuses: map[string]int{}}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

func (s *StatsAPIServer) serve(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.requests = append(s.requests, r.Clone(r.Context()))
	status, forced := s.Statuses[r.URL.Path]
	body, ok := s.Bodies[r.URL.Path]
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch {
	case forced:
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"messageNumber":1,"message":"forced failure"}`))
	case ok:
		_, _ = w.Write([]byte(body))
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"messageNumber":10,"message":"Object not found"}`))
	}
}

// Paths returns the request paths in arrival order.
func (s *StatsAPIServer) Paths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.requests))
	for i, r := range s.requests {
		out[i] = r.URL.Path
	}
	return out
}

// Queries returns the value of a query parameter for each request.
func (s *StatsAPIServer) Queries(key string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.requests))
	for i, r := range s.requests {
		out[i] = r.URL.Query().Get(key)
	}
	return out
}

// PeoplePayload wraps person records in a people envelope.
func PeoplePayload(records ...string) string {
	return `{"copyright":"test","people":[` + strings.Join(records, ",") + `]}`
}
