package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"habhook/internal/logging"
	"habhook/internal/types"
)

const defaultBaseURL = "https://habitica.com/api/v3"

// maxBodyBytes caps how much of a response body is read; webhook payloads
// are tiny and a misbehaving proxy should not be able to balloon memory.
const maxBodyBytes = 1 << 20

type Client struct {
	baseURL  string
	clientID string
	creds    types.Credentials
	http     *http.Client
	log      logging.Logger
}

func New(baseURL, clientID string, log logging.Logger) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		clientID: clientID,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
		log: log,
	}
}

// SetCredentials swaps the credentials used for subsequent calls. The login
// form edits these freely while logged out.
func (c *Client) SetCredentials(creds types.Credentials) {
	c.creds = creds
}

// FetchUser backs both login and reload: the GET /user payload seeds the
// dashboard either way.
func (c *Client) FetchUser(ctx context.Context) (*UserSeed, Outcome) {
	var seed *UserSeed
	outcome := c.do(ctx, http.MethodGet, "/user", nil, func(data json.RawMessage) error {
		decoded, err := decodeUserSeed(data)
		if err != nil {
			return err
		}
		seed = decoded
		return nil
	})
	if !outcome.IsOK() {
		return nil, outcome
	}
	return seed, outcome
}

func (c *Client) CreateWebhook(ctx context.Context, webhook types.Webhook) Outcome {
	body, err := encodeWebhook(webhook)
	if err != nil {
		return Failed(err.Error())
	}
	return c.do(ctx, http.MethodPost, "/user/webhook", body, nil)
}

func (c *Client) UpdateWebhook(ctx context.Context, webhook types.Webhook) Outcome {
	body, err := encodeWebhook(webhook)
	if err != nil {
		return Failed(err.Error())
	}
	return c.do(ctx, http.MethodPut, "/user/webhook/"+url.PathEscape(webhook.ID), body, nil)
}

func (c *Client) DeleteWebhook(ctx context.Context, id string) Outcome {
	return c.do(ctx, http.MethodDelete, "/user/webhook/"+url.PathEscape(id), nil, nil)
}

func (c *Client) GroupName(ctx context.Context, id string) (string, Outcome) {
	var name string
	outcome := c.do(ctx, http.MethodGet, "/groups/"+url.PathEscape(id), nil, func(data json.RawMessage) error {
		decoded, err := decodeGroupName(data)
		if err != nil {
			return err
		}
		name = decoded
		return nil
	})
	if !outcome.IsOK() {
		return "", outcome
	}
	return name, outcome
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, decode func(json.RawMessage) error) Outcome {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return Failed("building request: " + err.Error())
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("x-api-user", c.creds.UserID)
	req.Header.Set("x-api-key", c.creds.APIKey)
	req.Header.Set("x-client", c.clientID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("request failed", logging.F("method", method), logging.F("path", path), logging.F("error", err.Error()))
		return Failed("request failed: " + err.Error())
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Failed("reading response: " + err.Error())
	}

	outcome := classify(resp.StatusCode, resp.Header, payload, decode)
	if c.log.Enabled(logging.Debug) {
		c.log.Debug("request finished",
			logging.F("method", method),
			logging.F("path", path),
			logging.F("status", resp.StatusCode),
			logging.F("outcome", outcomeLabel(outcome.Kind)),
		)
	}
	return outcome
}

func outcomeLabel(kind OutcomeKind) string {
	switch kind {
	case OutcomeOK:
		return "ok"
	case OutcomeRateLimited:
		return "rate-limited"
	default:
		return "failed"
	}
}
