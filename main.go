package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log"
	"net"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"mediadock/config"
	"mediadock/database"
	"mediadock/handlers"
	"mediadock/service"
	"mediadock/settings"
	"mediadock/sysinfo"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

//go:embed static/*
var staticFiles embed.FS

func main() {
	// Load environment variables and parse CLI flags
	config.ParseFlags()

	logFile, err := setupLogging(config.Settings.LogFilePath)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	// Configure log format
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("MediaDock backend starting up...")

	// Initialize database
	if err := database.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize the settings store and capability probes
	store, err := settings.NewDBStore(database.DB)
	if err != nil {
		log.Fatalf("Failed to initialize settings store: %v", err)
	}
	service.InitServices(store, sysinfo.StubGPUDetector{}, sysinfo.StubR2Validator{})

	// Set Gin mode
	if config.Settings.LogLevel != "DEBUG" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Direct Gin logs to the configured log file
	gin.DefaultWriter = log.Writer()
	gin.DefaultErrorWriter = log.Writer()

	// Disable Gin color logs to avoid ANSI issues on Windows terminals
	gin.DisableConsoleColor()

	// Create router
	r := gin.Default()

	// CORS middleware; the UI is served from this process but dev builds run it
	// on a separate port.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Static file service using embedded FS
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		log.Fatalf("Failed to create static file system: %v", err)
	}
	r.StaticFS("/web", http.FS(staticFS))

	// Root path redirect
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/web/index.html")
	})

	// API routes
	api := r.Group("/api")
	{
		// Remote-call surface for the desktop UI
		api.POST("/greet", handlers.Greet)
		api.GET("/settings", handlers.LoadSettings)
		api.PUT("/settings", handlers.SaveSettings)
		api.GET("/gpu/capabilities", handlers.TestGPUCapabilities)
		api.POST("/r2/validate", handlers.ValidateR2Connection)
		api.GET("/display-server", handlers.DetectDisplayServer)
		api.GET("/system", handlers.GetSystemInfo)

		// Lifecycle and diagnostics
		api.GET("/health", handlers.HealthCheck)
		api.GET("/version", handlers.GetVersion)
		api.GET("/metrics", handlers.GetMetrics)
		api.POST("/shutdown", handlers.Shutdown)
	}

	// Find an available port
	port := findAvailablePort(config.Settings.Port)
	if port != config.Settings.Port {
		log.Printf("Default port %d is busy. Switched to %d", config.Settings.Port, port)
	}

	// Create HTTP server
	addr := fmt.Sprintf("127.0.0.1:%d", port)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on http://127.0.0.1:%d", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Optionally open the UI automatically
	if config.Settings.OpenBrowser {
		go func() {
			time.Sleep(1500 * time.Millisecond)
			openBrowser(fmt.Sprintf("http://127.0.0.1:%d/", port))
		}()
	}

	// Create shutdown channel and expose to handlers
	shutdownChan := make(chan bool, 1)
	handlers.SetShutdownChannel(shutdownChan)

	// Wait for OS interrupt or UI-triggered shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		log.Println("Received interrupt signal")
	case <-shutdownChan:
		log.Println("Shutdown triggered via API")
	}

	log.Println("MediaDock backend shutting down...")

	// Close database connection
	if err := database.CloseDB(); err != nil {
		log.Printf("Error closing database: %v", err)
	}

	// Gracefully shut down HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// findAvailablePort searches for an available port
func findAvailablePort(startPort int) int {
	for port := startPort; port < startPort+100; port++ {
		addr := fmt.Sprintf("127.0.0.1:%d", port)
		listener, err := net.Listen("tcp", addr)
		if err == nil {
			listener.Close()
			return port
		}
	}
	log.Fatal("No available ports found")
	return startPort
}

// openBrowser opens the default browser
func openBrowser(url string) {
	var err error
	switch {
	case fileExists("/usr/bin/xdg-open"):
		err = runCommand("xdg-open", url)
	case fileExists("/usr/bin/open"):
		err = runCommand("open", url)
	default:
		// Windows
		err = runCommand("cmd", "/c", "start", url)
	}
	if err != nil {
		log.Printf("Failed to open browser: %v", err)
		log.Printf("Please manually open: %s", url)
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func runCommand(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}

	// Wait asynchronously to avoid zombie processes
	go func() {
		if err := cmd.Wait(); err != nil {
			log.Printf("Browser process exited with error: %v", err)
		}
	}()

	return nil
}
