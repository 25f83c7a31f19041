// Package sysinfo inspects the host environment for the desktop UI: display
// server detection, capability stubs, and a diagnostics snapshot.
package sysinfo

import "os"

// DetectDisplayServer reads the display/session environment variables and
// returns the raw values plus the derived wayland flag in one flat mapping.
// Absent variables map to empty strings; the probe never fails.
func DetectDisplayServer() map[string]any {
	waylandDisplay := os.Getenv("WAYLAND_DISPLAY")
	sessionType := os.Getenv("XDG_SESSION_TYPE")
	isWayland := waylandDisplay != "" || sessionType == "wayland"

	return map[string]any{
		"is_wayland":                  isWayland,
		"session_type":                sessionType,
		"wayland_display":             waylandDisplay,
		"gdk_backend":                 os.Getenv("GDK_BACKEND"),
		"webkit_compositing_disabled": os.Getenv("WEBKIT_DISABLE_COMPOSITING_MODE"),
	}
}
