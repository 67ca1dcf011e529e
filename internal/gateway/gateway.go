// Remote shop API gateway.
//
// Every outbound request goes through Gateway.Do: it attaches the bearer
// credential when one exists, applies an outbound courtesy rate limit, traces
// the call, and normalizes every failure into *Error. It never retries and it
// never mutates session state: a 401 is reported to the caller, who decides
// whether to prompt for re-login. Forcing a logout here would be a policy
// change, not a fix.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/duckshop/go-storefront/internal/config"
)

// maxErrorBodyBytes caps how much of an error response body is read when
// extracting a server-supplied message.
const maxErrorBodyBytes = 4 << 10

// TokenSource supplies the current bearer credential. An empty string means
// no credential: the Authorization header is omitted entirely, never sent
// malformed.
type TokenSource interface {
	Token() string
}

// Gateway performs HTTP calls against the remote shop API.
type Gateway struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
	limiter    *rate.Limiter
	tracer     trace.Tracer
}

// New constructs a Gateway for the configured remote API. A RateRPS of 0
// disables the outbound limiter.
func New(cfg config.APIConfig, tokens TokenSource) *Gateway {
	g := &Gateway{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		tokens:     tokens,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		tracer:     otel.Tracer("gateway"),
	}
	if cfg.RateRPS > 0 {
		g.limiter = rate.NewLimiter(rate.Limit(cfg.RateRPS), cfg.RateBurst)
	}
	return g
}

// Do issues one request against the remote API.
//
//   - method/path: HTTP verb and API path relative to the base URL
//     (e.g. "/orders", "/payments/7").
//   - body: optional request payload, JSON-encoded when non-nil.
//   - out: optional response target, JSON-decoded from a 2xx body when non-nil.
//
// All failures are returned as *Error. A timeout surfaces as KindTransport,
// never as an indefinite wait: the underlying http.Client carries the
// configured deadline.
func (g *Gateway) Do(ctx context.Context, method, path string, body, out any) error {
	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return &Error{Kind: KindTransport, Message: "request canceled", cause: err}
		}
	}

	ctx, span := g.tracer.Start(ctx, fmt.Sprintf("shop %s %s", method, path),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("http.route", path),
		),
	)
	defer span.End()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindTransport, Message: "could not encode request", cause: err}
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return &Error{Kind: KindTransport, Message: "could not build request", cause: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := g.tokens.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		return &Error{Kind: KindTransport, Message: "shop API unreachable: " + err.Error(), cause: err}
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &Error{
			Kind:    KindUnauthorized,
			Status:  resp.StatusCode,
			Message: firstNonBlank(serverMessage(resp.Body), "please log in to continue"),
		}
	case resp.StatusCode == http.StatusNotFound:
		return &Error{
			Kind:    KindNotFound,
			Status:  resp.StatusCode,
			Message: firstNonBlank(serverMessage(resp.Body), "not found"),
		}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &Error{
			Kind:    KindTransport,
			Status:  resp.StatusCode,
			Message: firstNonBlank(serverMessage(resp.Body), fmt.Sprintf("shop API returned status %d", resp.StatusCode)),
		}
	}

	if out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		span.RecordError(err)
		return &Error{
			Kind:    KindTransport,
			Status:  resp.StatusCode,
			Message: "shop API returned a malformed response",
			cause:   err,
		}
	}
	return nil
}

// serverMessage tries to pull a human-readable message out of an error body.
// Backends commonly reply {"message": "..."} or {"error": "..."}; plain text
// bodies are used as-is.
func serverMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, maxErrorBodyBytes))
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		return ""
	}
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(raw, &envelope) == nil {
		if m := firstNonBlank(envelope.Message, envelope.Error); m != "" {
			return m
		}
	}
	s := strings.TrimSpace(string(raw))
	// A JSON object without a known message field is not worth echoing.
	if strings.HasPrefix(s, "{") || strings.HasPrefix(s, "[") {
		return ""
	}
	return s
}

func firstNonBlank(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// StaticToken is a TokenSource that always returns the same credential.
// Useful in tests and one-shot tooling.
type StaticToken string

// Token implements TokenSource.
func (s StaticToken) Token() string { return string(s) }
