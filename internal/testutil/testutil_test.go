package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestClockHelpers(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	if got := NowAt(now)(); !got.Equal(now) {
		t.Fatalf("expected fixed time, got %v", got)
	}
	if got := MustParseDate("2024-01-02"); got.Year() != 2024 || got.Day() != 2 {
		t.Fatalf("unexpected parsed date %v", got)
	}
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on invalid date")
		}
	}()
	MustParseDate("not-a-date")
}

func TestBufferLoggerCapturesDebug(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Debug("hello", "k", "v")
	if !strings.Contains(buf.String(), "msg=hello") || !strings.Contains(buf.String(), "k=v") {
		t.Fatalf("expected buffered debug log, got %q", buf.String())
	}
}

func TestPersonFixturesAreValidJSON(t *testing.T) {
	payload := PeoplePayload(
		MinimalPersonJSON(1, "A"),
		SidedPersonJSON(2, "B", "L", "Left", "R", "Right"),
		FullPersonJSON(3, "C", "Canada"),
	)
	var env struct {
		People []map[string]any `json:"people"`
	}
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		t.Fatalf("expected valid json, got %v", err)
	}
	if len(env.People) != 3 || env.People[2]["birthCountry"] != "Canada" {
		t.Fatalf("unexpected payload %+v", env)
	}
}

func TestStatsAPIServerServesAndRecords(t *testing.T) {
	srv := NewStatsAPIServer(t)
	srv.Bodies["/people/1"] = PeoplePayload(MinimalPersonJSON(1, "A"))
	srv.Statuses["/people/2"] = http.StatusServiceUnavailable

	cases := []struct {
		path   string
		status int
		want   string
	}{
		{"/people/1", http.StatusOK, `"fullName":"A"`},
		{"/people/2", http.StatusServiceUnavailable, "forced failure"},
		{"/people/3?hydrate=x", http.StatusNotFound, "Object not found"},
	}
	for _, tc := range cases {
		resp, err := http.Get(srv.URL + tc.path)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		if resp.StatusCode != tc.status || !strings.Contains(string(body), tc.want) {
			t.Fatalf("unexpected response for %s: %d %s", tc.path, resp.StatusCode, body)
		}
	}

	paths := srv.Paths()
	if len(paths) != 3 || paths[2] != "/people/3" {
		t.Fatalf("unexpected recorded paths %v", paths)
	}
	if q := srv.Queries("hydrate"); q[2] != "x" {
		t.Fatalf("unexpected recorded queries %v", q)
	}
}
