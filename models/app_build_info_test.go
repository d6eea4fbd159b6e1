package models

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo_WithDefaults(t *testing.T) {
	info := NewAppBuildInfo(" v0.3.0 ", "", "")

	assert.Equal(t, "v0.3.0", info.BuildVersion())
	assert.Empty(t, info.BuildDate())

	d := info.WithDefaults()
	assert.Equal(t, "v0.3.0", d.BuildVersion())
	assert.Equal(t, NotAvailable, d.BuildDate())
	assert.Equal(t, NotAvailable, d.BuildCommit())
}

func TestAppBuildInfo_Print(t *testing.T) {
	var buf bytes.Buffer
	NewAppBuildInfo("v1", "2026-10-01", "").Print(&buf)

	assert.Equal(t, "Build version: v1\nBuild date: 2026-10-01\nBuild commit: N/A\n", buf.String())
}
