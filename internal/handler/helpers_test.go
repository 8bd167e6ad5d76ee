package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mverstraete/tripdash/internal/handler"
	"github.com/mverstraete/tripdash/internal/middleware"
	"github.com/mverstraete/tripdash/internal/service"
	"github.com/mverstraete/tripdash/internal/state"
)

// newTestAPI wires the full stack (real services, a fresh session registry,
// and the session-resolver middleware) around the router. Each call gets an
// isolated registry, so tests cannot leak state into each other.
func newTestAPI() http.Handler {
	srv := handler.NewServer(
		service.NewTripService(),
		service.NewItineraryService(),
		service.NewExportService(),
	)
	resolve := middleware.NewSessionResolver(state.NewRegistry())
	return resolve(handler.NewRouter(srv))
}

// jsonBody encodes v as a JSON request body.
func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

// do runs one request against api and returns the recorder.
func do(t *testing.T, api http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	api.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals the recorder's JSON body into v.
func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

// errorCode extracts the machine-readable error code from an error response.
func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body handler.ErrorResponse
	decode(t, rec, &body)
	return body.Error.Code
}
