package main

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/devconf/internal/config"
	handler "github.com/MKhiriev/devconf/internal/handler/http"
	"github.com/MKhiriev/devconf/internal/logger"
	"github.com/MKhiriev/devconf/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMainConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "system_config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRun_LocalSetThenShow(t *testing.T) {
	cfgPath := writeMainConfig(t, `{"plc_ip": "10.9.9.9", "sim_mode": false}`)

	var out bytes.Buffer
	require.NoError(t, run([]string{"-c", cfgPath, "-set-sim=true"}, &out, logger.Nop()))
	assert.Empty(t, out.String())

	stored, err := os.ReadFile(config.RuntimePathFor(cfgPath))
	require.NoError(t, err)
	assert.Contains(t, string(stored), `"sim_mode": true`)

	require.NoError(t, run([]string{"-c", cfgPath, "-show"}, &out, logger.Nop()))

	var resp models.ConfigResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, "10.9.9.9", resp.Endpoints.PLCIP)
	assert.True(t, resp.SimMode)
	assert.Equal(t, "runtime", resp.SimModeSource)
	assert.Equal(t, "runtime-resolved", resp.Stage)
}

func TestRun_LocalShowMissingConfig(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	err := run([]string{"-c", filepath.Join(dir, "absent.json"), "-show"}, &out, logger.Nop())
	require.NoError(t, err)

	var resp models.ConfigResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, config.DefaultControllerIP, resp.Endpoints.ControllerIP)
	assert.Equal(t, config.DefaultProxyReconnectIntervalSec, resp.Endpoints.ProxyReconnectIntervalSec)
	assert.Equal(t, "default", resp.SimModeSource)
}

func TestRun_Remote(t *testing.T) {
	runtimePath := filepath.Join(t.TempDir(), config.RuntimeFileName)
	store := config.NewStore(runtimePath, logger.Nop())
	srv := httptest.NewServer(handler.NewHandler(store, models.AppBuildInfo{}, logger.Nop()).Init())
	defer srv.Close()

	var out bytes.Buffer
	require.NoError(t, run([]string{"-remote", srv.URL, "-set-sim=1"}, &out, logger.Nop()))

	var view models.SimModeResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &view))
	assert.True(t, view.Pending)

	stored, ok := store.LoadRuntimeSimMode()
	require.True(t, ok)
	assert.True(t, stored)
}

func TestRun_InvalidInvocations(t *testing.T) {
	var out bytes.Buffer

	err := run(nil, &out, logger.Nop())
	assert.ErrorIs(t, err, errNothingToDo)

	err = run([]string{"-set-sim=maybe"}, &out, logger.Nop())
	assert.ErrorIs(t, err, config.ErrInvalidOptions)

	err = run([]string{"-no-such-flag"}, &out, logger.Nop())
	assert.ErrorIs(t, err, config.ErrInvalidOptions)
}

func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-version"}, &out, logger.Nop()))
	assert.Contains(t, out.String(), "Build version: N/A")
}
