package sysinfo

import (
	"testing"

	"mediadock/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectDisplayServerWayland(t *testing.T) {
	t.Setenv("WAYLAND_DISPLAY", "wayland-0")
	t.Setenv("XDG_SESSION_TYPE", "")
	t.Setenv("GDK_BACKEND", "")
	t.Setenv("WEBKIT_DISABLE_COMPOSITING_MODE", "")

	info := DetectDisplayServer()
	assert.Equal(t, true, info["is_wayland"])
	assert.Equal(t, "wayland-0", info["wayland_display"])
	assert.Equal(t, "", info["session_type"])
}

func TestDetectDisplayServerSessionTypeOnly(t *testing.T) {
	t.Setenv("WAYLAND_DISPLAY", "")
	t.Setenv("XDG_SESSION_TYPE", "wayland")

	info := DetectDisplayServer()
	assert.Equal(t, true, info["is_wayland"])
	assert.Equal(t, "wayland", info["session_type"])
}

func TestDetectDisplayServerX11(t *testing.T) {
	t.Setenv("WAYLAND_DISPLAY", "")
	t.Setenv("XDG_SESSION_TYPE", "x11")
	t.Setenv("GDK_BACKEND", "x11")

	info := DetectDisplayServer()
	assert.Equal(t, false, info["is_wayland"])
	assert.Equal(t, "x11", info["gdk_backend"])
}

func TestStubGPUDetectorIsFixed(t *testing.T) {
	detector := StubGPUDetector{}

	want := map[string]any{
		"has_nvidia":          false,
		"has_amd":             false,
		"has_intel":           false,
		"recommended_encoder": "libx264",
		"gpu_available":       false,
	}

	require.Equal(t, want, detector.Capabilities())
	// Subsequent calls return the same mapping.
	require.Equal(t, want, detector.Capabilities())
}

func TestStubR2Validator(t *testing.T) {
	complete := models.AppSettings{
		R2AccountID:       "acct",
		R2AccessKeyID:     "key",
		R2SecretAccessKey: "secret",
		R2BucketName:      "bucket",
	}

	validator := StubR2Validator{}
	require.NoError(t, validator.Validate(complete))

	tests := []struct {
		name   string
		mutate func(*models.AppSettings)
	}{
		{"missing account id", func(s *models.AppSettings) { s.R2AccountID = "" }},
		{"missing access key", func(s *models.AppSettings) { s.R2AccessKeyID = "" }},
		{"missing secret", func(s *models.AppSettings) { s.R2SecretAccessKey = "" }},
		{"missing bucket", func(s *models.AppSettings) { s.R2BucketName = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := complete
			tt.mutate(&settings)
			require.ErrorIs(t, validator.Validate(settings), ErrR2CredentialsIncomplete)
		})
	}

	require.ErrorIs(t, validator.Validate(models.AppSettings{}), ErrR2CredentialsIncomplete)
}
