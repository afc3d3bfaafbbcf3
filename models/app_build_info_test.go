package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo_FillsMissingValues(t *testing.T) {
	info := NewAppBuildInfo("1.4.0", "", "")

	assert.Equal(t, "1.4.0", info.BuildVersion)
	assert.Equal(t, "N/A", info.BuildDate)
	assert.Equal(t, "N/A", info.BuildCommit)
}

func TestAppBuildInfo_String(t *testing.T) {
	info := NewAppBuildInfo("1.4.0", "2026-10-15", "abc123")

	assert.Equal(t, "Build version: 1.4.0\nBuild date: 2026-10-15\nBuild commit: abc123\n", info.String())
}
