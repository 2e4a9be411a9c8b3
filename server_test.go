package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(NewHandler(DefaultConfig(), logger))
	t.Cleanup(srv.Close)
	return srv
}

func postSolve(t *testing.T, srv *httptest.Server, body string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Post(srv.URL+"/solve", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestServerSolve(t *testing.T) {
	srv := newTestServer(t)

	t.Run("line format input", func(t *testing.T) {
		resp, raw := postSolve(t, srv, `{"input": "Exitus-1 A B\nR1 A\nR2 B\n"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

		var out ReportOutput
		require.NoError(t, json.Unmarshal(raw, &out))
		require.Len(t, out.Results, 1)
		assert.Equal(t, "R1", out.Results[0].Start)
		assert.Equal(t, []string{"R1", "R2"}, out.Results[0].Path)
	})

	t.Run("json input", func(t *testing.T) {
		resp, raw := postSolve(t, srv, `{
			"exitus": {"atoms": ["A", "B"]},
			"reagents": [{"name": "R1", "atoms": ["A", "B"]}],
			"maxDepth": 4
		}`)
		require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

		var out ReportOutput
		require.NoError(t, json.Unmarshal(raw, &out))
		require.Len(t, out.Results, 1)
		assert.True(t, out.Results[0].Found)
	})

	t.Run("bad input", func(t *testing.T) {
		for _, body := range []string{
			`not json`,
			`{"input": "R1 A\n"}`,
			`{"input": "Exitus-1 A\n", "maxDepth": 0}`,
			`{"input": "Exitus-1 A\n", "maxIterations": 1000000000}`,
		} {
			resp, raw := postSolve(t, srv, body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)

			var e map[string]string
			require.NoError(t, json.Unmarshal(raw, &e))
			assert.NotEmpty(t, e["error"])
		}
	})
}

func TestServerHealthAndMetrics(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "mutagen_filter_removed_total")
}

func TestDecodeSolveRequestOverrides(t *testing.T) {
	req, err := decodeSolveRequest(`{"input": "T A\nR1 A\n", "exitusName": "T", "maxIterations": 10}`, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, "T", req.exitus.Name)
	assert.Equal(t, 10, req.cfg.MaxIterations)
	assert.Equal(t, 15, req.cfg.MaxDepth)
	assert.Equal(t, []string{"R1"}, reagentNames(req.reagents))

	_, err = decodeSolveRequest(`{"input": "Exitus-1 A\n", "maxDepth": 65}`, DefaultConfig())
	assert.ErrorIs(t, err, ErrInvalidInput)
}
