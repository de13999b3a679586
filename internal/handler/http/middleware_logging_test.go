package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loggedRequest builds a request whose context carries a logger writing to buf,
// the same way withTraceID attaches one.
func loggedRequest(method, target string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

// ─── withLogging ─────────────────────────────────────────────────────────────

func TestWithLogging_AccessLogLine(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		target   string
		status   int
		body     string
		contains []string
	}{
		{
			name:   "page render",
			method: http.MethodGet,
			target: "/joao",
			status: http.StatusOK,
			body:   "<html></html>",
			contains: []string{
				`"level":"info"`, `"method":"GET"`, `"uri":"/joao"`,
				`"status":200`, `"size":13`, `"host":"example.com"`, `"duration":`,
			},
		},
		{
			name:     "redirect after signup",
			method:   http.MethodPost,
			target:   "/cadastro",
			status:   http.StatusFound,
			contains: []string{`"level":"info"`, `"status":302`, `"size":0`},
		},
		{
			name:     "rate limited login",
			method:   http.MethodPost,
			target:   "/login",
			status:   http.StatusTooManyRequests,
			body:     "Muitas tentativas",
			contains: []string{`"level":"warn"`, `"status":429`},
		},
		{
			name:     "backend failure",
			method:   http.MethodGet,
			target:   "/minhaloja/painel",
			status:   http.StatusInternalServerError,
			contains: []string{`"level":"error"`, `"status":500`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			h, _ := newTestHandler(t)
			var buf bytes.Buffer
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != "" {
					_, _ = w.Write([]byte(tt.body))
				}
			})

			// Act
			rec := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rec, loggedRequest(tt.method, tt.target, &buf))

			// Assert
			assert.Equal(t, tt.status, rec.Code)
			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestWithLogging_ImplicitStatusIsLoggedAs200(t *testing.T) {
	h, _ := newTestHandler(t)
	var buf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), loggedRequest(http.MethodGet, "/healthz", &buf))

	assert.Contains(t, buf.String(), `"status":200`)
}

func TestWithLogging_SizeSumsAllWrites(t *testing.T) {
	h, _ := newTestHandler(t)
	var buf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 1000)))
		_, _ = w.Write([]byte(strings.Repeat("b", 24)))
	})
	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), loggedRequest(http.MethodGet, "/", &buf))

	assert.Contains(t, buf.String(), `"size":1024`)
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	h, _ := newTestHandler(t)
	var buf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	assert.Panics(t, func() {
		h.withLogging(next).ServeHTTP(httptest.NewRecorder(), loggedRequest(http.MethodGet, "/", &buf))
	}, "recovery belongs to the Recoverer middleware")
}

// ─── statusRecorder ──────────────────────────────────────────────────────────

func TestStatusRecorder_FirstWriteHeaderWins(t *testing.T) {
	rr := httptest.NewRecorder()
	rec := &statusRecorder{ResponseWriter: rr}

	rec.WriteHeader(http.StatusFound)
	rec.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusFound, rec.Status())
	assert.Equal(t, http.StatusFound, rr.Code)
}

func TestStatusRecorder_WriteImpliesOK(t *testing.T) {
	rr := httptest.NewRecorder()
	rec := &statusRecorder{ResponseWriter: rr}

	n, err := rec.Write([]byte("ok"))

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, http.StatusOK, rec.Status())
	assert.Equal(t, 2, rec.size)
	assert.Equal(t, "ok", rr.Body.String())
}

func TestStatusRecorder_HeadersReachUnderlyingWriter(t *testing.T) {
	rr := httptest.NewRecorder()
	rec := &statusRecorder{ResponseWriter: rr}

	rec.Header().Set("Content-Type", "text/html; charset=utf-8")
	rec.WriteHeader(http.StatusOK)

	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Same(t, http.ResponseWriter(rr), rec.Unwrap())
}

func TestAccessLogLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, accessLogLevel(http.StatusOK))
	assert.Equal(t, zerolog.InfoLevel, accessLogLevel(http.StatusFound))
	assert.Equal(t, zerolog.WarnLevel, accessLogLevel(http.StatusNotFound))
	assert.Equal(t, zerolog.ErrorLevel, accessLogLevel(http.StatusBadGateway))
}
