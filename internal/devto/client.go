// Package devto is a thin client for the dev.to (Forem) article API.
//
// Responses are trusted as-is: no schema validation is done. A response
// that is not the JSON the client expects surfaces as a transport error
// carrying the decoder's message.
package devto

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const (
	// BaseURL is the API root every request is sent to.
	BaseURL = "https://dev.to/api"

	// APIKeyHeader carries the credential on authenticated requests.
	APIKeyHeader = "api-key"

	// MaxTags is the number of tags the platform keeps per article.
	MaxTags = 4
)

// Doer sends a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the dev.to API on behalf of one API key.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient Doer
	logger     *zap.SugaredLogger
}

// Option configures a Client built by NewClient.
type Option func(*Client)

// WithHTTPClient replaces the transport.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) { c.httpClient = d }
}

// WithBaseURL points the client at another host. Used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithLogger sets the logger used for per-request debug output.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient returns a client using apiKey as the credential. An empty key is
// allowed; operations that need it fail with a config error.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    BaseURL,
		httpClient: &http.Client{},
		logger:     zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HasAPIKey reports whether a credential was supplied.
func (c *Client) HasAPIKey() bool {
	return c.apiKey != ""
}

// TruncateTags keeps the first MaxTags tags in their original order.
// The returned slice is never nil and never aliases the input.
func TruncateTags(tags []string) []string {
	n := min(len(tags), MaxTags)
	out := make([]string, n)
	copy(out, tags[:n])
	return out
}

// CurrentUser fetches the account that owns the API key.
func (c *Client) CurrentUser(ctx context.Context) (User, error) {
	if !c.HasAPIKey() {
		return nil, configError()
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/me", nil, true)
	if err != nil {
		return nil, transportError(err)
	}

	_, body, err := c.send(req)
	if err != nil {
		return nil, transportError(err)
	}

	var user User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, transportError(fmt.Errorf("failed to decode user: %w", err))
	}
	return user, nil
}

// Publish creates an article. It always returns a Result; failures of any
// kind are reported through Result.Err.
func (c *Client) Publish(ctx context.Context, a Article) Result {
	if !c.HasAPIKey() {
		return Result{Err: configError()}
	}

	payload := articleEnvelope{Article: articleFields{
		Title:        a.Title,
		BodyMarkdown: a.BodyMarkdown,
		Published:    a.Published,
		Tags:         TruncateTags(a.Tags),
		Description:  a.Description,
		CanonicalURL: a.CanonicalURL,
	}}

	req, err := c.newRequest(ctx, http.MethodPost, "/articles", payload, true)
	if err != nil {
		return Result{Err: transportError(err)}
	}

	status, body, err := c.send(req)
	if err != nil {
		return Result{Err: transportError(err)}
	}

	if status != http.StatusCreated {
		c.logger.Debugw("publish rejected", "title", a.Title, "status", status)
		return Result{Err: platformError(status, body)}
	}

	return parseCreated(body)
}

// PublishAll publishes each article in order, one request at a time.
func (c *Client) PublishAll(ctx context.Context, articles []Article) []Result {
	results := make([]Result, 0, len(articles))
	for _, a := range articles {
		results = append(results, c.Publish(ctx, a))
	}
	return results
}

// Update sends fields as a partial article update and returns the decoded
// response unchanged, whatever its status.
func (c *Client) Update(ctx context.Context, id int64, fields map[string]any) (any, error) {
	if !c.HasAPIKey() {
		return nil, configError()
	}
	if fields == nil {
		fields = map[string]any{}
	}

	path := "/articles/" + strconv.FormatInt(id, 10)
	req, err := c.newRequest(ctx, http.MethodPut, path, updateEnvelope{Article: fields}, true)
	if err != nil {
		return nil, transportError(err)
	}

	_, body, err := c.send(req)
	if err != nil {
		return nil, transportError(err)
	}

	var out any
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, transportError(fmt.Errorf("failed to decode update response: %w", err))
	}
	return out, nil
}

// ListArticles lists published articles of username, or the key owner's own
// articles when username is empty. The own-articles listing does not check
// for a credential locally; a missing key is reported by the platform.
func (c *Client) ListArticles(ctx context.Context, username string) ([]RawArticle, error) {
	var (
		req *http.Request
		err error
	)
	if username != "" {
		path := "/articles?" + url.Values{"username": {username}}.Encode()
		req, err = c.newRequest(ctx, http.MethodGet, path, nil, false)
	} else {
		req, err = c.newRequest(ctx, http.MethodGet, "/articles/me", nil, true)
	}
	if err != nil {
		return nil, transportError(err)
	}

	status, body, err := c.send(req)
	if err != nil {
		return nil, transportError(err)
	}
	if status < 200 || status > 299 {
		return nil, platformError(status, body)
	}

	var articles []RawArticle
	if err := json.Unmarshal(body, &articles); err != nil {
		return nil, transportError(fmt.Errorf("failed to decode articles: %w", err))
	}
	return articles, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, payload any, auth bool) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth && c.apiKey != "" {
		req.Header.Set(APIKeyHeader, c.apiKey)
	}
	return req, nil
}

func (c *Client) send(req *http.Request) (int, []byte, error) {
	c.logger.Debugw("sending request", "method", req.Method, "url", req.URL.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debugw("received response", "status", resp.StatusCode, "bytes", len(body))
	return resp.StatusCode, body, nil
}

func parseCreated(body []byte) Result {
	if !gjson.ValidBytes(body) {
		return Result{Err: transportError(errors.New("malformed response: invalid JSON"))}
	}

	article := gjson.GetBytes(body, "article")
	if !article.IsObject() {
		return Result{Err: transportError(errors.New("malformed response: missing article object"))}
	}

	return Result{
		URL:   article.Get("url").String(),
		ID:    article.Get("id").Int(),
		Title: article.Get("title").String(),
	}
}
