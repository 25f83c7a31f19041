package handlers

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"mediadock/database"
	"mediadock/models"
	"mediadock/service"
	"mediadock/version"

	"github.com/gin-gonic/gin"
)

// Greet returns a greeting for the given name. The front-end uses it as a
// liveness probe for the backend connection.
func Greet(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"greeting": fmt.Sprintf("Hello, %s! Greetings from the MediaDock backend.", req.Name),
	})
}

// LoadSettings returns the persisted application settings
func LoadSettings(c *gin.Context) {
	settings, err := service.GlobalServices.Settings.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// SaveSettings persists the application settings wholesale
func SaveSettings(c *gin.Context) {
	var req models.AppSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	if err := service.GlobalServices.Settings.Save(req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// TestGPUCapabilities reports hardware-acceleration capabilities
func TestGPUCapabilities(c *gin.Context) {
	c.JSON(http.StatusOK, service.GlobalServices.System.GPUCapabilities())
}

// ValidateR2Connection checks the R2 credentials in the submitted settings
func ValidateR2Connection(c *gin.Context) {
	var req models.AppSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	if err := service.GlobalServices.System.ValidateR2(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DetectDisplayServer returns the display-server environment mapping
func DetectDisplayServer(c *gin.Context) {
	c.JSON(http.StatusOK, service.GlobalServices.System.DisplayServer())
}

// GetSystemInfo returns the host diagnostics snapshot
func GetSystemInfo(c *gin.Context) {
	c.JSON(http.StatusOK, service.GlobalServices.System.HostInfo())
}

// HealthCheck health endpoint
func HealthCheck(c *gin.Context) {
	dbHealthy := database.SQLiteUp(c.Request.Context())

	health := gin.H{
		"status":     "healthy",
		"timestamp":  time.Now().Unix(),
		"db_healthy": dbHealthy,
		"version":    version.GetVersion(),
	}

	if !dbHealthy {
		health["status"] = "degraded"
		c.JSON(http.StatusServiceUnavailable, health)
		return
	}

	c.JSON(http.StatusOK, health)
}

// GetVersion returns build metadata
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version":    version.Version,
		"commit":     version.CommitHash,
		"build_time": version.BuildTime,
	})
}

// GetMetrics gathers runtime and database metrics
func GetMetrics(c *gin.Context) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	c.JSON(http.StatusOK, gin.H{
		"timestamp": time.Now().Unix(),
		"sqlite": gin.H{
			"up":                  database.SQLiteUp(c.Request.Context()),
			"busy_errors_total":   database.SQLiteBusyErrorsTotal(),
			"locked_errors_total": database.SQLiteLockedErrorsTotal(),
		},
		"system": gin.H{
			"goroutines":   runtime.NumGoroutine(),
			"memory_alloc": mem.Alloc,
			"memory_total": mem.TotalAlloc,
			"memory_sys":   mem.Sys,
			"gc_runs":      mem.NumGC,
		},
	})
}

// Shutdown stops the backend. The UI calls it when the desktop window closes
// so the process does not linger.
func Shutdown(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Shutdown initiated"})

	// Give the client time to receive the response before tearing down.
	go func() {
		time.Sleep(500 * time.Millisecond)
		if shutdownChan != nil {
			shutdownChan <- true
		}
	}()
}

// Global shutdown channel (must be initialized in main.go)
var shutdownChan chan bool

// SetShutdownChannel sets the shutdown channel
func SetShutdownChannel(ch chan bool) {
	shutdownChan = ch
}
