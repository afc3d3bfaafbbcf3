package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/devconf/internal/config"
	"github.com/MKhiriev/devconf/internal/logger"
	"github.com/MKhiriev/devconf/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions(t *testing.T, body string, args ...string) *config.Options {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "system_config.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o644))

	opts, err := config.GetOptions(append([]string{"-c", cfgPath}, args...))
	require.NoError(t, err)
	return opts
}

func TestPrepare_PatchesArgvAndResolves(t *testing.T) {
	opts := testOptions(t, `{"sim_mode": true}`, "inst1")

	store, argv := prepare("MotionServer", opts, logger.Nop())

	assert.Equal(t, []string{"MotionServer", "inst1", "-ORBendPoint", "giop:tcp::"}, argv)
	assert.True(t, store.SimMode())
	assert.Equal(t, config.StageRuntimeResolved, store.Stage())
}

func TestPrepare_EndpointGivenFirstIsKept(t *testing.T) {
	opts := testOptions(t, `{}`, "-ORBendPoint", "giop:tcp::5000", "inst1")

	_, argv := prepare("MotionServer", opts, logger.Nop())

	assert.Equal(t, []string{"MotionServer", "-ORBendPoint", "giop:tcp::5000", "inst1"}, argv)
}

func TestPrintConfig_StdoutIsOnlyJSON(t *testing.T) {
	opts := testOptions(t, `{"plc_ip": "10.2.2.2"}`, "inst1")

	var logs bytes.Buffer
	log := logger.NewLogger("devconf")
	log.Logger = log.Output(&logs)

	store, _ := prepare("MotionServer", opts, log)

	var out bytes.Buffer
	require.NoError(t, printConfig(&out, store))

	dec := json.NewDecoder(&out)
	var resp models.ConfigResponse
	require.NoError(t, dec.Decode(&resp))
	assert.False(t, dec.More(), "stdout must hold a single JSON document")

	assert.Equal(t, "10.2.2.2", resp.Endpoints.PLCIP)
	assert.Equal(t, "runtime-resolved", resp.Stage)
	assert.NotEmpty(t, logs.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed pipe")
}

func TestPrintConfig_ReturnsWriteError(t *testing.T) {
	store := config.NewStore(filepath.Join(t.TempDir(), config.RuntimeFileName), logger.Nop())

	err := printConfig(failingWriter{}, store)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "closed pipe")
}
