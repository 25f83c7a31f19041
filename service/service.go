package service

import (
	"mediadock/settings"
	"mediadock/sysinfo"
)

// Services is the global service container
type Services struct {
	Settings *SettingsService
	System   *SystemService
}

// GlobalServices is the global service instance
var GlobalServices *Services

// InitServices initializes all services
func InitServices(store settings.Store, gpu sysinfo.GPUDetector, r2 sysinfo.R2Validator) {
	GlobalServices = &Services{
		Settings: NewSettingsService(store),
		System:   NewSystemService(gpu, r2),
	}
}
