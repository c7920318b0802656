package instagram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"replydesk.app/server/core/config"
)

const authorizeURL = "https://www.instagram.com/oauth/authorize"

// Scopes requested for business accounts: profile, DMs and comments.
var Scopes = []string{
	"instagram_business_basic",
	"instagram_business_manage_messages",
	"instagram_business_manage_comments",
}

// APIError is a non-2xx answer from Instagram.
type APIError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("instagram api returned %d", e.StatusCode)
	}
	return fmt.Sprintf("instagram api returned %d: %s", e.StatusCode, e.Message)
}

// ClientError reports whether Instagram rejected the request itself (bad or
// expired code, revoked token) as opposed to being unavailable.
func (e *APIError) ClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500 && e.StatusCode != http.StatusTooManyRequests
}

// IsClientError reports whether err carries an APIError for a 4xx answer.
func IsClientError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.ClientError()
}

type ShortLivedToken struct {
	AccessToken string
	UserID      string
}

type LongLivedToken struct {
	AccessToken string
	ExpiresIn   time.Duration
}

type Profile struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

type Client interface {
	AuthorizationURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*ShortLivedToken, error)
	ExchangeLongLived(ctx context.Context, shortToken string) (*LongLivedToken, error)
	GetProfile(ctx context.Context, accessToken string) (*Profile, error)
}

type client struct {
	cfg  config.InstagramConfig
	http *http.Client
}

func NewClient(cfg config.InstagramConfig) Client {
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &client{
		cfg:  cfg,
		http: &http.Client{Timeout: timeout},
	}
}

func (c *client) AuthorizationURL(state string) string {
	q := url.Values{}
	q.Set("client_id", c.cfg.AppID)
	q.Set("redirect_uri", c.cfg.RedirectURI)
	q.Set("response_type", "code")
	q.Set("scope", strings.Join(Scopes, ","))
	q.Set("state", state)
	return authorizeURL + "?" + q.Encode()
}

func (c *client) ExchangeCode(ctx context.Context, code string) (*ShortLivedToken, error) {
	form := url.Values{}
	form.Set("client_id", c.cfg.AppID)
	form.Set("client_secret", c.cfg.AppSecret)
	form.Set("grant_type", "authorization_code")
	form.Set("redirect_uri", c.cfg.RedirectURI)
	form.Set("code", code)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(c.cfg.APIBaseURL, "/")+"/oauth/access_token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	// user_id comes back as a JSON number.
	var result struct {
		AccessToken string      `json:"access_token"`
		UserID      json.Number `json:"user_id"`
	}
	if err := c.do(req, &result); err != nil {
		return nil, fmt.Errorf("exchanging code: %w", err)
	}
	if result.AccessToken == "" {
		return nil, fmt.Errorf("exchanging code: empty access token")
	}

	return &ShortLivedToken{AccessToken: result.AccessToken, UserID: result.UserID.String()}, nil
}

func (c *client) ExchangeLongLived(ctx context.Context, shortToken string) (*LongLivedToken, error) {
	q := url.Values{}
	q.Set("grant_type", "ig_exchange_token")
	q.Set("client_secret", c.cfg.AppSecret)
	q.Set("access_token", shortToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		strings.TrimRight(c.cfg.GraphURL, "/")+"/access_token?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := c.do(req, &result); err != nil {
		return nil, fmt.Errorf("exchanging long-lived token: %w", err)
	}

	return &LongLivedToken{
		AccessToken: result.AccessToken,
		ExpiresIn:   time.Duration(result.ExpiresIn) * time.Second,
	}, nil
}

func (c *client) GetProfile(ctx context.Context, accessToken string) (*Profile, error) {
	q := url.Values{}
	q.Set("fields", "user_id,username")
	q.Set("access_token", accessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		strings.TrimRight(c.cfg.GraphURL, "/")+"/me?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	var profile Profile
	if err := c.do(req, &profile); err != nil {
		return nil, fmt.Errorf("fetching profile: %w", err)
	}
	return &profile, nil
}

func (c *client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseAPIError(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// parseAPIError understands both the Graph error envelope and the flat
// error_type/error_message shape of the OAuth endpoint.
func parseAPIError(status int, body []byte) error {
	var envelope struct {
		Error *struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		} `json:"error"`
		ErrorType    string `json:"error_type"`
		ErrorMessage string `json:"error_message"`
	}

	apiErr := &APIError{StatusCode: status}
	if json.Unmarshal(body, &envelope) == nil {
		switch {
		case envelope.Error != nil:
			apiErr.Type = envelope.Error.Type
			apiErr.Message = envelope.Error.Message
		case envelope.ErrorType != "":
			apiErr.Type = envelope.ErrorType
			apiErr.Message = envelope.ErrorMessage
		}
	}
	if apiErr.Message == "" && len(body) > 0 {
		apiErr.Message = strconv.Quote(string(truncate(body, 200)))
	}
	return apiErr
}

func truncate(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[:n]
}
