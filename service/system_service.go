package service

import (
	"mediadock/models"
	"mediadock/sysinfo"
)

// SystemService handles environment and capability probes
type SystemService struct {
	gpu sysinfo.GPUDetector
	r2  sysinfo.R2Validator
}

// NewSystemService constructs a system service around the given probes
func NewSystemService(gpu sysinfo.GPUDetector, r2 sysinfo.R2Validator) *SystemService {
	return &SystemService{gpu: gpu, r2: r2}
}

// GPUCapabilities reports hardware-acceleration capabilities.
func (s *SystemService) GPUCapabilities() map[string]any {
	return s.gpu.Capabilities()
}

// ValidateR2 checks the R2 credentials in the given settings.
func (s *SystemService) ValidateR2(settings models.AppSettings) error {
	return s.r2.Validate(settings)
}

// DisplayServer returns the display-server environment mapping.
func (s *SystemService) DisplayServer() map[string]any {
	return sysinfo.DetectDisplayServer()
}

// HostInfo returns the host diagnostics snapshot.
func (s *SystemService) HostInfo() map[string]any {
	return sysinfo.HostSnapshot()
}
