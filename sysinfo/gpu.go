package sysinfo

// GPUDetector reports hardware-acceleration capabilities. A real detector
// (nvidia-smi, VA-API probing) can replace the stub behind the same interface
// without touching the handlers.
type GPUDetector interface {
	Capabilities() map[string]any
}

// StubGPUDetector returns a fixed capability mapping regardless of the actual
// hardware: no GPU available, software encoding recommended.
type StubGPUDetector struct{}

// Capabilities returns the fixed stub mapping.
func (StubGPUDetector) Capabilities() map[string]any {
	return map[string]any{
		"has_nvidia":          false,
		"has_amd":             false,
		"has_intel":           false,
		"recommended_encoder": "libx264",
		"gpu_available":       false,
	}
}
