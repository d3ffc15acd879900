package main

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"family-tree/backend/pkg/config"
)

func testConfig(t *testing.T, seedDoc string) *config.Config {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{Port: "0", Env: "test", ShutdownTimeout: time.Second}
	if seedDoc != "" {
		cfg.SeedFile = filepath.Join(t.TempDir(), "family.yaml")
		require.NoError(t, os.WriteFile(cfg.SeedFile, []byte(seedDoc), 0o600))
	}
	return cfg
}

func TestNewServer_AppliesSeed(t *testing.T) {
	cfg := testConfig(t, `
people:
  - {key: abe, first_name: Abe, last_name: Cohen, gender: male}
  - {key: bea, first_name: Bea, last_name: Cohen, gender: female}
connections:
  - {from: abe, to: bea, relation: FATHER}
`)

	srv, err := newServer(cfg, zap.NewNop())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/people/2", nil)
	srv.Handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	edges := response["edges"].([]interface{})
	require.Len(t, edges, 1)
	assert.Equal(t, "FATHER", edges[0].(map[string]interface{})["relation"])
}

func TestNewServer_RejectsInconsistentSeed(t *testing.T) {
	cfg := testConfig(t, `
people:
  - {key: a, first_name: A, last_name: A, gender: female}
  - {key: b, first_name: B, last_name: B, gender: male}
connections:
  - {from: a, to: b, relation: FATHER}
`)

	_, err := newServer(cfg, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "family.yaml")
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	cfg := testConfig(t, "")
	srv, err := newServer(cfg, zap.NewNop())
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	srv.Addr = ln.Addr().String()
	require.NoError(t, ln.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, srv, cfg.ShutdownTimeout, zap.NewNop()) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + srv.Addr + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}
