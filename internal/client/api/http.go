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

	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/client/models"
)

// HTTPClient talks JSON over HTTP to the roster service.
type HTTPClient struct {
	baseURL string
	httpc   *http.Client
}

// NewHTTPClient builds a client for the service rooted at baseURL
// (e.g. "http://localhost:8080"). A trailing slash is tolerated.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
	}
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, token string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// do executes the request and decodes a 2xx body into out (when out is
// non-nil). Non-2xx responses become StatusError with the server's detail;
// transport and parse failures wrap ErrUnavailable.
func (c *HTTPClient) do(req *http.Request, out any) error {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Detail string `json:"detail"`
		}
		_ = json.Unmarshal(data, &e)
		return &StatusError{Code: resp.StatusCode, Detail: e.Detail}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrUnavailable, err)
	}
	return nil
}

func (c *HTTPClient) GetSession(ctx context.Context, token string) (SessionInfo, error) {
	// No candidate token means no network call: the answer is known.
	if token == "" {
		return SessionInfo{}, nil
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/auth/session", token, nil)
	if err != nil {
		return SessionInfo{}, err
	}

	var info SessionInfo
	if err := c.do(req, &info); err != nil {
		return SessionInfo{}, err
	}
	return info, nil
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	req, err := c.newRequest(ctx, http.MethodPost, "/auth/login", "", body)
	if err != nil {
		return LoginResult{}, err
	}

	var res LoginResult
	if err := c.do(req, &res); err != nil {
		return LoginResult{}, err
	}
	return res, nil
}

func (c *HTTPClient) Logout(ctx context.Context, token string) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/auth/logout", token, nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

func (c *HTTPClient) FetchActivities(ctx context.Context) (*models.RosterSnapshot, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/activities", "", nil)
	if err != nil {
		return nil, err
	}

	snap := &models.RosterSnapshot{}
	if err := c.do(req, snap); err != nil {
		return nil, err
	}
	return snap, nil
}

func mutationPath(activity, action, email string) string {
	return "/activities/" + url.PathEscape(activity) + "/" + action +
		"?email=" + url.QueryEscape(email)
}

func (c *HTTPClient) Signup(ctx context.Context, activity, email, token string) (string, error) {
	req, err := c.newRequest(ctx, http.MethodPost, mutationPath(activity, "signup", email), token, nil)
	if err != nil {
		return "", err
	}

	var res struct {
		Message string `json:"message"`
	}
	if err := c.do(req, &res); err != nil {
		return "", err
	}
	return res.Message, nil
}

func (c *HTTPClient) Unregister(ctx context.Context, activity, email, token string) (string, error) {
	req, err := c.newRequest(ctx, http.MethodDelete, mutationPath(activity, "unregister", email), token, nil)
	if err != nil {
		return "", err
	}

	var res struct {
		Message string `json:"message"`
	}
	if err := c.do(req, &res); err != nil {
		return "", err
	}
	return res.Message, nil
}
