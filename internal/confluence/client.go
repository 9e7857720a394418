package confluence

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-confluence-import/internal/logging"
	"github.com/goliatone/go-confluence-import/pkg/interfaces"
)

// DefaultTimeout bounds every request when no HTTP client is supplied.
const DefaultTimeout = 30 * time.Second

// Config describes one Confluence instance and the space the client is
// bound to. Credentials are sent as basic auth when a username is set.
type Config struct {
	BaseURL  string
	SpaceKey string
	Username string
	Password string

	// HTTPClient overrides the default client; Timeout is ignored when set.
	HTTPClient *http.Client
	Timeout    time.Duration

	Logger interfaces.Logger
}

// Client talks to the Confluence REST API for a single space.
type Client struct {
	api      *urlkit.Group
	http     *http.Client
	baseURL  string
	spaceKey string
	username string
	password string
	logger   interfaces.Logger
}

var _ interfaces.WikiClient = (*Client)(nil)

// New validates the configuration and builds a Client.
func New(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, ErrBaseURLRequired
	}
	if strings.TrimSpace(cfg.SpaceKey) == "" {
		return nil, ErrSpaceKeyRequired
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	return &Client{
		api:      newRoutes(baseURL).Group(routeGroup),
		http:     httpClient,
		baseURL:  baseURL,
		spaceKey: cfg.SpaceKey,
		username: cfg.Username,
		password: cfg.Password,
		logger:   logger,
	}, nil
}

// SpaceHomeID resolves the space's home page ID from the expandable
// homepage link. A space without a readable homepage fails.
func (c *Client) SpaceHomeID(ctx context.Context) (string, error) {
	url, err := c.api.Builder(routeSpace).WithParam("key", c.spaceKey).Build()
	if err != nil {
		return "", fmt.Errorf("confluence build %s url: %w", routeSpace, err)
	}

	var space spaceResponse
	if err := c.getJSON(ctx, url, &space); err != nil {
		return "", err
	}

	home := strings.TrimPrefix(space.Expandable.Homepage, contentPathPrefix)
	if home == "" || home == space.Expandable.Homepage {
		return "", fmt.Errorf("%w: space %s", ErrSpaceHomeMissing, c.spaceKey)
	}

	c.logger.Debug("confluence.space.resolved",
		"space_key", c.spaceKey,
		"home_id", home,
	)
	return home, nil
}

// FindPages returns the IDs of pages in the space with the exact title, in
// the order the API reports them.
func (c *Client) FindPages(ctx context.Context, title string) ([]string, error) {
	url, err := c.api.Builder(routeSearch).
		WithQuery("title", title).
		WithQuery("spaceKey", c.spaceKey).
		Build()
	if err != nil {
		return nil, fmt.Errorf("confluence build %s url: %w", routeSearch, err)
	}

	var search searchResponse
	if err := c.getJSON(ctx, url, &search); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(search.Results))
	for _, result := range search.Results {
		ids = append(ids, result.ID)
	}
	return ids, nil
}

// Ancestors returns a page's ancestor IDs ordered root first.
func (c *Client) Ancestors(ctx context.Context, pageID string) ([]string, error) {
	url, err := c.api.Builder(routeContent).
		WithParam("id", pageID).
		WithQuery("expand", "ancestors").
		Build()
	if err != nil {
		return nil, fmt.Errorf("confluence build %s url: %w", routeContent, err)
	}

	var content ancestorsResponse
	if err := c.getJSON(ctx, url, &content); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(content.Ancestors))
	for _, ancestor := range content.Ancestors {
		ids = append(ids, ancestor.ID)
	}
	return ids, nil
}

// CreatePage creates a storage-format page under draft.ParentID and returns
// the new page's identity.
func (c *Client) CreatePage(ctx context.Context, draft interfaces.PageDraft) (*interfaces.PageInfo, error) {
	url, err := c.api.Builder(routeCreate).Build()
	if err != nil {
		return nil, fmt.Errorf("confluence build %s url: %w", routeCreate, err)
	}

	payload := pageRequest{
		Type:  "page",
		Title: draft.Title,
		Space: spaceRef{Key: c.spaceKey},
		Body: pageBody{
			Storage: storageBody{
				Value:          draft.Body,
				Representation: "storage",
			},
		},
		Ancestors: []ancestorRef{{Type: "page", ID: draft.ParentID}},
	}

	var created pageResponse
	if err := c.postJSON(ctx, url, payload, &created); err != nil {
		return nil, err
	}

	info := &interfaces.PageInfo{
		ID:      created.ID,
		WebLink: c.baseURL + created.Links.WebUI,
	}
	c.logger.Info("confluence.page.created",
		"page_id", created.ID,
		"space_name", created.Space.Name,
		"link", info.WebLink,
	)
	return info, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	data, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("confluence decode %s: %w", url, err)
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, url string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("confluence encode %s: %w", url, err)
	}

	data, err := c.do(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("confluence decode %s: %w", url, err)
	}
	return nil
}

// do executes one request. Any status other than 200 is an APIError; the
// response body is logged before returning so the remote message is never
// lost.
func (c *Client) do(ctx context.Context, method, url string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("confluence %s %s: %w", method, url, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("confluence %s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("confluence read %s: %w", url, err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("confluence.api.error",
			"method", method,
			"url", url,
			"status", resp.StatusCode,
			"body", string(data),
		)
		return nil, &APIError{
			Method:     method,
			URL:        url,
			StatusCode: resp.StatusCode,
			Body:       string(data),
		}
	}
	return data, nil
}
