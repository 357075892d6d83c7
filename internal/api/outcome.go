package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

type OutcomeKind int

const (
	OutcomeOK OutcomeKind = iota
	OutcomeFailed
	OutcomeRateLimited
)

// Outcome is the classified result of one transport call. It is data, not
// an error: the state machine branches on Kind and never sees raw HTTP.
type Outcome struct {
	Kind       OutcomeKind
	Message    string
	RetryAfter time.Duration
}

func OK() Outcome                             { return Outcome{Kind: OutcomeOK} }
func Failed(message string) Outcome           { return Outcome{Kind: OutcomeFailed, Message: message} }
func RateLimited(wait time.Duration) Outcome  { return Outcome{Kind: OutcomeRateLimited, RetryAfter: wait} }

func (o Outcome) IsOK() bool { return o.Kind == OutcomeOK }

// retryAfterMargin pads the server's wait so a replay issued right at the
// boundary is not itself rate limited again.
const retryAfterMargin = 2 * time.Second

const retryAfterHeader = "Retry-After"

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// classify turns a raw response into exactly one outcome.
//
// The Retry-After header wins over everything else, including a 2xx status:
// the backend attaches it to otherwise well-formed responses when a request
// lands inside a rate-limit window. After that the body envelope's success
// flag decides; the status code alone never does, because the backend
// returns structured error bodies with assorted status codes.
func classify(status int, header http.Header, body []byte, decode func(json.RawMessage) error) Outcome {
	if raw, ok := headerValue(header, retryAfterHeader); ok {
		seconds, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || seconds < 0 {
			return Failed(fmt.Sprintf("unreadable %s header %q", retryAfterHeader, raw))
		}
		wait := time.Duration(seconds*float64(time.Second)) + retryAfterMargin
		return RateLimited(wait)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return Failed("unreadable server response: " + err.Error())
	}
	if !env.Success {
		message := strings.TrimSpace(env.Message)
		if message == "" {
			message = fmt.Sprintf("request failed (HTTP %d)", status)
		}
		return Failed(message)
	}
	if decode != nil {
		if err := decode(env.Data); err != nil {
			return Failed("unexpected server payload: " + err.Error())
		}
	}
	return OK()
}

func headerValue(header http.Header, key string) (string, bool) {
	if header == nil {
		return "", false
	}
	values := header.Values(key)
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}
