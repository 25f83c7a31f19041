package sysinfo

import (
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// HostSnapshot gathers host information for the UI's diagnostics pane.
// Individual probe failures degrade to partial data rather than an error.
func HostSnapshot() map[string]any {
	snapshot := map[string]any{}

	if info, err := host.Info(); err == nil {
		snapshot["hostname"] = info.Hostname
		snapshot["os"] = info.OS
		snapshot["platform"] = info.Platform
		snapshot["platform_version"] = info.PlatformVersion
		snapshot["kernel_version"] = info.KernelVersion
		snapshot["uptime_seconds"] = info.Uptime
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		snapshot["memory_total"] = vm.Total
		snapshot["memory_used"] = vm.Used
		snapshot["memory_used_percent"] = vm.UsedPercent
	}

	if count, err := cpu.Counts(true); err == nil {
		snapshot["cpu_count"] = count
	}

	return snapshot
}
