package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/smnsjas/go-weblink/soap/auth"
)

const testContentType = "text/xml; charset=utf-8"

// TestNewHTTPTransport verifies transport creation with default settings.
func TestNewHTTPTransport(t *testing.T) {
	tr := NewHTTPTransport()
	if tr == nil {
		t.Fatal("NewHTTPTransport returned nil")
	}
	if tr.Timeout() != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", tr.Timeout(), DefaultTimeout)
	}
	if tr.base.TLSClientConfig.MinVersion != tls.VersionTLS12 {
		t.Error("TLS 1.2 minimum not enforced by default")
	}
}

// TestHTTPTransport_WithTimeout verifies timeout configuration.
func TestHTTPTransport_WithTimeout(t *testing.T) {
	timeout := 30 * time.Second
	tr := NewHTTPTransport(WithTimeout(timeout))

	if tr.Timeout() != timeout {
		t.Errorf("got timeout %v, want %v", tr.Timeout(), timeout)
	}
}

// TestHTTPTransport_WithInsecureSkipVerify verifies TLS skip verify configuration.
func TestHTTPTransport_WithInsecureSkipVerify(t *testing.T) {
	tr := NewHTTPTransport(WithInsecureSkipVerify(true))

	if !tr.base.TLSClientConfig.InsecureSkipVerify {
		t.Error("InsecureSkipVerify is false, want true")
	}
}

// TestHTTPTransport_WithTLSConfig verifies the minimum TLS version is raised
// on a copy of the caller's config.
func TestHTTPTransport_WithTLSConfig(t *testing.T) {
	tlsCfg := &tls.Config{MinVersion: tls.VersionTLS10, ServerName: "weblink.test"}
	tr := NewHTTPTransport(WithTLSConfig(tlsCfg))

	got := tr.base.TLSClientConfig
	if got == tlsCfg {
		t.Error("TLSClientConfig shares the caller's config")
	}
	if got.ServerName != "weblink.test" {
		t.Errorf("ServerName = %q, want weblink.test", got.ServerName)
	}
	if got.MinVersion != tls.VersionTLS12 {
		t.Errorf("MinVersion = %x, want TLS 1.2", got.MinVersion)
	}
	if tlsCfg.MinVersion != tls.VersionTLS10 {
		t.Error("caller's config was modified")
	}
}

// TestHTTPTransport_InsecureSkipVerifyOptionOrder verifies the warning goes to
// the configured logger and survives a later WithTLSConfig.
func TestHTTPTransport_InsecureSkipVerifyOptionOrder(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	tr := NewHTTPTransport(
		WithInsecureSkipVerify(true),
		WithTLSConfig(&tls.Config{ServerName: "weblink.test"}),
		WithLogger(logger),
	)

	if !tr.base.TLSClientConfig.InsecureSkipVerify {
		t.Error("InsecureSkipVerify lost after WithTLSConfig")
	}
	if tr.base.TLSClientConfig.ServerName != "weblink.test" {
		t.Error("custom TLS config not applied")
	}
	if n := strings.Count(buf.String(), "TLS certificate verification disabled"); n != 1 {
		t.Errorf("warning logged %d times, want 1: %s", n, buf.String())
	}
}

// TestHTTPTransport_InsecureSkipVerifyTLSServer verifies a self-signed server
// is rejected by default and reachable with verification disabled.
func TestHTTPTransport_InsecureSkipVerifyTLSServer(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<ok/>"))
	}))
	defer server.Close()

	discard := WithLogger(slog.New(slog.DiscardHandler))

	if _, err := NewHTTPTransport(discard).Post(context.Background(), server.URL, "", testContentType, []byte("<x/>")); err == nil {
		t.Error("expected certificate error without InsecureSkipVerify")
	}
	if _, err := NewHTTPTransport(discard, WithInsecureSkipVerify(true)).Post(context.Background(), server.URL, "", testContentType, []byte("<x/>")); err != nil {
		t.Errorf("Post failed with InsecureSkipVerify: %v", err)
	}
}

// TestHTTPTransport_Post verifies headers and body of a SOAP request.
func TestHTTPTransport_Post(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != testContentType {
			t.Errorf("unexpected Content-Type: %s", ct)
		}
		if action := r.Header.Get("SOAPAction"); action != `"urn:test/Ping"` {
			t.Errorf("unexpected SOAPAction: %s", action)
		}
		if ua := r.Header.Get("User-Agent"); ua != "go-weblink/1.0.0 tests" {
			t.Errorf("unexpected User-Agent: %s", ua)
		}

		body, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(body), "test-body") {
			t.Errorf("unexpected body: %s", body)
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<response>ok</response>"))
	}))
	defer server.Close()

	tr := NewHTTPTransport(WithUserAgent("go-weblink/1.0.0 tests"))

	resp, err := tr.Post(context.Background(), server.URL, "urn:test/Ping", testContentType, []byte("<request>test-body</request>"))
	if err != nil {
		t.Fatalf("Post failed: %v", err)
	}
	if !strings.Contains(string(resp), "ok") {
		t.Errorf("unexpected response: %s", resp)
	}
}

// TestHTTPTransport_Post_StatusErrors verifies HTTP status mapping.
func TestHTTPTransport_Post_StatusErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(t *testing.T, err error)
	}{
		{
			name:   "unauthorized",
			status: http.StatusUnauthorized,
			check: func(t *testing.T, err error) {
				if !errors.Is(err, ErrUnauthorized) {
					t.Errorf("err = %v, want ErrUnauthorized", err)
				}
			},
		},
		{
			name:   "forbidden",
			status: http.StatusForbidden,
			check: func(t *testing.T, err error) {
				if !errors.Is(err, ErrForbidden) {
					t.Errorf("err = %v, want ErrForbidden", err)
				}
			},
		},
		{
			name:   "server error keeps the body",
			status: http.StatusInternalServerError,
			check: func(t *testing.T, err error) {
				var statusErr *StatusError
				if !errors.As(err, &statusErr) {
					t.Fatalf("err = %T, want *StatusError", err)
				}
				if statusErr.StatusCode != http.StatusInternalServerError {
					t.Errorf("StatusCode = %d", statusErr.StatusCode)
				}
				if string(statusErr.Body) != "failure" {
					t.Errorf("Body = %q", statusErr.Body)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("failure"))
			}))
			defer server.Close()

			_, err := NewHTTPTransport().Post(context.Background(), server.URL, "", testContentType, nil)
			if err == nil {
				t.Fatal("expected error")
			}
			tt.check(t, err)
		})
	}
}

// TestHTTPTransport_Post_EmptyBody verifies a nil body is sent as an empty
// request rather than rejected before reaching the server.
func TestHTTPTransport_Post_EmptyBody(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		body, _ := io.ReadAll(r.Body)
		if len(body) != 0 {
			t.Errorf("body = %q, want empty", body)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	if _, err := NewHTTPTransport().Post(context.Background(), server.URL, "", testContentType, nil); err != nil {
		t.Fatalf("Post failed: %v", err)
	}
	if n := hits.Load(); n != 1 {
		t.Errorf("server hit %d times, want 1", n)
	}
}

// TestStatusError_Preview verifies long bodies are truncated in the message.
func TestStatusError_Preview(t *testing.T) {
	err := &StatusError{StatusCode: 500, Body: []byte(strings.Repeat("x", maxBodyPreview+10))}

	if !strings.HasSuffix(err.Error(), "...") {
		t.Error("long body was not truncated")
	}
}

// TestHTTPTransport_WithAuthenticator verifies requests carry credentials.
func TestHTTPTransport_WithAuthenticator(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, p, ok := r.BasicAuth()
		if !ok || u != "agency" || p != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	a := auth.NewBasicAuth(auth.Credentials{Username: "agency", Password: "secret"})
	tr := NewHTTPTransport(WithAuthenticator(a))

	if _, err := tr.Post(context.Background(), server.URL, "", testContentType, []byte("<x/>")); err != nil {
		t.Fatalf("Post failed: %v", err)
	}
}

// TestHTTPTransport_Post_WithContext verifies context cancellation.
func TestHTTPTransport_Post_WithContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewHTTPTransport().Post(ctx, server.URL, "", testContentType, nil)
	if err == nil {
		t.Fatal("expected error for timed out context")
	}
}
