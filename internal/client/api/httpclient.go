package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/splits-cli/internal/client/models"
	"github.com/dmitrijs2005/splits-cli/internal/logging"
)

// TokenSource yields the currently persisted credential token.
// It is consulted before every request, never cached, so a login that lands
// between two requests is reflected in the second one.
type TokenSource interface {
	CurrentToken(ctx context.Context) (string, error)
}

// ExpiryHandler is notified when the backend rejects a request with 401.
type ExpiryHandler func()

// HTTPClient implements Client over plain HTTP+JSON.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	logger  logging.Logger

	mu        sync.Mutex
	onExpired ExpiryHandler
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the backend at baseURL. A trailing slash
// on baseURL is tolerated.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, logger logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		logger:  logger.With("component", "api"),
	}
}

// SetExpiryHandler registers the single 401 callback. Calling it again
// replaces the previous handler; handlers never stack.
func (c *HTTPClient) SetExpiryHandler(fn ExpiryHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onExpired = fn
}

func (c *HTTPClient) notifyExpired() {
	c.mu.Lock()
	fn := c.onExpired
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Close releases idle connections held by the shared http.Client.
func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// do performs one request. body (if non-nil) is marshalled as JSON; out
// (if non-nil) receives the decoded response body on success.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	// The token is read from the persisted store at send time, not cached
	// at construction time.
	if tok, err := c.tokens.CurrentToken(ctx); err == nil && tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	c.logger.Debug(ctx, "request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.logger.Warn(ctx, "unauthorized response", "path", path, "request_id", requestID)
		c.notifyExpired()
		return ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFrom(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// errorFrom turns a non-2xx response into an *APIError, extracting the
// backend's message when one is present.
func (c *HTTPClient) errorFrom(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Message: genericMessage}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Message != "" {
		apiErr.Message = payload.Message
	}
	return apiErr
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (c *HTTPClient) Login(ctx context.Context, contact, password string) (string, error) {
	req := map[string]string{"contact": contact, "password": password}

	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/login", nil, req, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", &APIError{Status: http.StatusOK, Message: "no token in response"}
	}
	return resp.Token, nil
}

func (c *HTTPClient) Register(ctx context.Context, name, contact, password string) (string, error) {
	req := map[string]string{"name": name, "contact": contact, "password": password}

	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/register", nil, req, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", &APIError{Status: http.StatusOK, Message: "no token in response"}
	}
	return resp.Token, nil
}

func (c *HTTPClient) Groups(ctx context.Context) ([]models.Group, error) {
	var resp struct {
		Groups []models.Group `json:"groups"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/get-groups", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Groups, nil
}

func (c *HTTPClient) GroupByID(ctx context.Context, groupID string) (*models.Group, error) {
	query := url.Values{"groupId": {groupID}}

	var resp struct {
		Group *models.Group `json:"group"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/get-group-by-id", query, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Group == nil {
		return nil, &APIError{Status: http.StatusOK, Message: "group not found"}
	}
	return resp.Group, nil
}

func (c *HTTPClient) Expenses(ctx context.Context, groupID string) (*models.GroupActivity, error) {
	query := url.Values{"groupId": {groupID}}

	activity := &models.GroupActivity{}
	if err := c.do(ctx, http.MethodGet, "/api/get-expenses", query, nil, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (c *HTTPClient) CreateGroup(ctx context.Context, groupName string, memberContacts []int64) error {
	req := struct {
		GroupName string  `json:"groupName"`
		Members   []int64 `json:"members"`
	}{groupName, memberContacts}

	return c.do(ctx, http.MethodPost, "/api/create-group", nil, req, nil)
}

func (c *HTTPClient) AddExpense(ctx context.Context, groupID string, expense models.NewExpense) error {
	req := struct {
		models.NewExpense
		GroupID string `json:"groupId"`
	}{expense, groupID}

	return c.do(ctx, http.MethodPost, "/api/add-expense", nil, req, nil)
}

func (c *HTTPClient) AddMember(ctx context.Context, groupID, name, contact string) error {
	req := struct {
		GroupID       string `json:"groupId"`
		MemberName    string `json:"memberName"`
		MemberContact string `json:"memberContact"`
	}{groupID, name, contact}

	return c.do(ctx, http.MethodPost, "/api/add-member", nil, req, nil)
}

func (c *HTTPClient) RemoveMember(ctx context.Context, groupID, contact string) error {
	req := struct {
		GroupID       string `json:"groupId"`
		MemberContact string `json:"memberContact"`
	}{groupID, contact}

	return c.do(ctx, http.MethodPost, "/api/remove-member", nil, req, nil)
}

func (c *HTTPClient) AddSettlement(ctx context.Context, groupID string, settlement models.NewSettlement) error {
	req := struct {
		models.NewSettlement
		GroupID string `json:"groupId"`
	}{settlement, groupID}

	return c.do(ctx, http.MethodPost, "/api/add-settlement", nil, req, nil)
}
