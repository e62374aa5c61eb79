package statsapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/elibenporat/mlbbio/internal/domain/people"
	"github.com/elibenporat/mlbbio/internal/logging"
	"github.com/elibenporat/mlbbio/internal/providers"
)

// Config controls how the Stats API client reaches the upstream API.
type Config struct {
	BaseURL    string
	Schema     people.Schema
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client fetches people records from the MLB Stats API.
type Client struct {
	http    *resty.Client
	baseURL string
	schema  people.Schema
	logger  *slog.Logger
}

// NewClient constructs a Stats API client with the provided configuration.
// An empty schema means people.SchemaStrict.
func NewClient(cfg Config) *Client {
	baseURL := normalizeBaseURL(cfg.BaseURL)
	schema := cfg.Schema
	if schema == "" {
		schema = people.SchemaStrict
	}
	return &Client{
		http:    newRestyClient(baseURL, cfg.HTTPClient, cfg.Logger),
		baseURL: baseURL,
		schema:  schema,
		logger:  cfg.Logger,
	}
}

// Schema reports the schema used to decode responses.
func (c *Client) Schema() people.Schema {
	return c.schema
}

// FetchBio returns the raw body of GET /people/{id}.
func (c *Client) FetchBio(ctx context.Context, id uint32) (string, error) {
	body, err := c.get(ctx, personPath(id), nil)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// FetchPeople requests several people in one call via personIds.
func (c *Client) FetchPeople(ctx context.Context, ids []uint32) ([]people.Person, error) {
	if len(ids) == 0 {
		return nil, providers.ErrNoIDs
	}
	body, err := c.get(ctx, "/people", map[string]string{"personIds": joinIDs(ids)})
	if err != nil {
		return nil, err
	}
	env, err := Decode(body, c.schema)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", providerName, err)
	}
	logging.Debug(c.logger, "decoded people",
		logging.Schema(c.schema.String()),
		slog.Int(logging.FieldCount, len(env.People)),
	)
	return env.People, nil
}

// FetchPerson requests a single person and returns the first record.
func (c *Client) FetchPerson(ctx context.Context, id uint32) (people.Person, error) {
	body, err := c.get(ctx, personPath(id), nil)
	if err != nil {
		return people.Person{}, err
	}
	env, err := Decode(body, c.schema)
	if err != nil {
		return people.Person{}, fmt.Errorf("%s: person %d: %w", providerName, id, err)
	}
	if len(env.People) == 0 {
		return people.Person{}, fmt.Errorf("%s: person %d: %w", providerName, id, providers.ErrPersonNotFound)
	}
	return env.People[0], nil
}

func (c *Client) get(ctx context.Context, path string, query map[string]string) ([]byte, error) {
	req := c.http.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	resp, err := req.Get(path)
	if err != nil {
		return nil, fmt.Errorf("%s: GET %s: %w", providerName, path, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode(),
			URL:        c.baseURL + path,
			Body:       snippet(resp.Body()),
		}
	}
	return resp.Body(), nil
}

func personPath(id uint32) string {
	return "/people/" + strconv.FormatUint(uint64(id), 10)
}

func joinIDs(ids []uint32) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	return strings.Join(parts, ",")
}

func snippet(body []byte) string {
	if len(body) > errorBodyLimit {
		body = body[:errorBodyLimit]
	}
	return strings.TrimSpace(string(body))
}
