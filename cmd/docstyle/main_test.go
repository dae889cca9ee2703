package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/dmitrymomot/docstyle/internal/web"
	"github.com/dmitrymomot/docstyle/pkg/config"
	"github.com/dmitrymomot/docstyle/pkg/httpserver"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	var cfg appConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "docstyle", cfg.Name)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "common/", cfg.Style.BasePath)
	assert.Equal(t, "/common", cfg.Style.StaticPrefix)
	assert.False(t, cfg.Style.LegacySearch)
}

func TestNewLogger(t *testing.T) {
	assert.NotNil(t, newLogger(appConfig{Env: "production", Name: "docstyle", LogFormat: "text"}))
	assert.Panics(t, func() { newLogger(appConfig{LogFormat: "yaml"}) })
}

func TestRun(t *testing.T) {
	cfg := appConfig{
		HTTP:  httpserver.Config{Addr: "127.0.0.1:0", ShutdownTimeout: time.Second},
		Style: web.Config{BasePath: "common/", StaticPrefix: "/common"},
	}
	var logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, nil))

	addrCh := make(chan string, 1)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- run(ctx, cfg, log, httpserver.WithStartHook(func(_ *slog.Logger, addr string) { addrCh <- addr }))
	}()

	var addr string
	select {
	case addr = <-addrCh:
	case <-time.After(2 * time.Second):
		require.Fail(t, "server did not start")
	}

	req, err := http.NewRequest(http.MethodGet, "http://"+addr+"/stylesheet", nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "Mozilla/4.0 (compatible; MSIE 6.0; Windows NT 5.1)")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Contains(t, string(body), `href="common/ie.css"`)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		require.Fail(t, "server did not stop")
	}
	assert.Contains(t, logs.String(), "stylesheet selection configured")
}

func TestRun_InvalidStyleDir(t *testing.T) {
	cfg := appConfig{Style: web.Config{Dir: t.TempDir() + "/missing"}}
	err := run(context.Background(), cfg, slog.New(slog.DiscardHandler))
	require.ErrorIs(t, err, web.ErrStyleDir)
}
