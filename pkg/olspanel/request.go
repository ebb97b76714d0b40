package olspanel

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nerdbyteio/olspanel-manager/pkg/servermanager"
	"github.com/tidwall/gjson"
)

const fallbackMessage = "Something went wrong."

// Request outcomes reported to the RequestObserver.
const (
	OutcomeSuccess        = "success"
	OutcomeRemoteError    = "remote_error"
	OutcomeTransportError = "transport_error"
)

// Result is a decoded panel response object.
type Result struct {
	raw  []byte
	json gjson.Result
}

// Get returns the value at a gjson path, e.g. "url".
func (r Result) Get(path string) gjson.Result { return r.json.Get(path) }

// Raw returns the response body exactly as received.
func (r Result) Raw() []byte { return r.raw }

// Map returns the top-level fields of the response.
func (r Result) Map() map[string]any {
	out, _ := r.json.Value().(map[string]any)
	return out
}

// request posts payload to the admin API endpoint and applies the panel's
// failure policy to the response.
func (m *Manager) request(ctx context.Context, endpoint string, payload map[string]string) (Result, error) {
	start := time.Now()
	res, err := m.roundTrip(ctx, endpoint, payload)
	elapsed := time.Since(start)

	outcome := classify(err)
	if m.observer != nil {
		m.observer.ObserveRequest(Type, endpoint, outcome, elapsed)
	}

	if err != nil {
		m.log.WarnObj("olspanel request failed", "panel_request", map[string]any{
			"endpoint":   endpoint,
			"outcome":    outcome,
			"elapsed_ms": elapsed.Milliseconds(),
			"error":      err.Error(),
		})
		return Result{}, err
	}
	m.log.DebugObj("olspanel request completed", "panel_request", map[string]any{
		"endpoint":   endpoint,
		"elapsed_ms": elapsed.Milliseconds(),
	})
	return res, nil
}

func (m *Manager) roundTrip(ctx context.Context, endpoint string, payload map[string]string) (Result, error) {
	headers := map[string]string{
		"username": m.cfg.Username,
		"password": m.cfg.Password,
	}

	resp, err := m.http.PostForm(ctx, m.endpointURL(endpoint), headers, payload)
	if err != nil {
		return Result{}, &servermanager.TransportError{Endpoint: endpoint, Err: err}
	}

	res, err := decodeResult(endpoint, resp.Body())
	status := resp.StatusCode()
	if status >= 200 && status < 300 {
		return res, err
	}

	// The panel may explain a non-2xx status in the body.
	var remote *servermanager.RemoteError
	if errors.As(err, &remote) {
		return Result{}, err
	}
	return Result{}, &servermanager.TransportError{
		Endpoint:   endpoint,
		StatusCode: status,
		Err:        fmt.Errorf("unexpected response: %s", bodySnippet(resp.Body())),
	}
}

// decodeResult parses body and turns panel-reported failures into errors.
func decodeResult(endpoint string, body []byte) (Result, error) {
	if !gjson.ValidBytes(body) {
		return Result{}, &servermanager.TransportError{Endpoint: endpoint, Err: errors.New("response is not valid JSON")}
	}
	parsed := gjson.ParseBytes(body)
	if !parsed.IsObject() {
		return Result{}, &servermanager.TransportError{Endpoint: endpoint, Err: fmt.Errorf("response is a JSON %s, not an object", jsonKind(parsed))}
	}

	if e := parsed.Get("error"); truthy(e) {
		return Result{}, &servermanager.RemoteError{Endpoint: endpoint, Message: messageOrFallback(e)}
	}
	if s := parsed.Get("success"); s.Type == gjson.False {
		return Result{}, &servermanager.RemoteError{Endpoint: endpoint, Message: messageOrFallback(parsed.Get("message"))}
	}

	return Result{raw: body, json: parsed}, nil
}

// truthy mirrors the panel's loose boolean semantics: empty strings, "0",
// zero, null, false and empty arrays are false; objects are always true.
func truthy(r gjson.Result) bool {
	switch r.Type {
	case gjson.True:
		return true
	case gjson.Number:
		return r.Num != 0
	case gjson.String:
		return r.Str != "" && r.Str != "0"
	case gjson.JSON:
		if r.IsArray() {
			return len(r.Array()) > 0
		}
		return true
	default:
		return false
	}
}

// messageOrFallback keeps any string as sent, empty included; only absent or
// non-string values get the generic message.
func messageOrFallback(r gjson.Result) string {
	if r.Type == gjson.String {
		return r.Str
	}
	return fallbackMessage
}

func jsonKind(r gjson.Result) string {
	if r.IsArray() {
		return "array"
	}
	return strings.ToLower(r.Type.String())
}

func classify(err error) string {
	var remote *servermanager.RemoteError
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.As(err, &remote):
		return OutcomeRemoteError
	default:
		return OutcomeTransportError
	}
}

func bodySnippet(body []byte) string {
	if len(body) == 0 {
		return "empty body"
	}
	if len(body) > 512 {
		body = body[:512]
	}
	return strings.TrimSpace(string(body))
}
