// Package appstate provides the shared logger and runtime state used across the generator.
package appstate

import (
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

// State represents the runtime state of the generator process.
var State = appState{} //nolint:gochecknoglobals // Global process state

// appState holds settings and the current activity of the running process.
// CurrentActivity is read and written from the main goroutine only; the
// mutex exists so display code can safely peek at it from observers.
type appState struct {
	Debug          bool   // Debug specifies whether the process is running in debug mode.
	ConfigFileUsed string // ConfigFileUsed is the path of the loaded config file, if any.

	currentActivityMu sync.RWMutex
	currentActivity   Activity
}

// Activity represents the current stage of work being carried out.
type Activity string

// Activity constants define the stages the generator moves through.
const (
	// CurrentActivityStarting indicates the process is starting up.
	CurrentActivityStarting Activity = "starting"
	// CurrentActivityGenerating indicates a rainbow table is being built.
	CurrentActivityGenerating Activity = "generating"
	// CurrentActivitySearching indicates a target digest search is running.
	CurrentActivitySearching Activity = "searching"
	// CurrentActivityBenchmarking indicates a benchmark run is in progress.
	CurrentActivityBenchmarking Activity = "benchmarking"
	// CurrentActivityWriting indicates the finished table is being serialized.
	CurrentActivityWriting Activity = "writing"
	// CurrentActivityStopping indicates the process is shutting down.
	CurrentActivityStopping Activity = "stopping"
)

// GetCurrentActivity returns the current activity (thread-safe).
func (s *appState) GetCurrentActivity() Activity {
	s.currentActivityMu.RLock()
	defer s.currentActivityMu.RUnlock()

	return s.currentActivity
}

// SetCurrentActivity sets the current activity (thread-safe).
func (s *appState) SetCurrentActivity(a Activity) {
	s.currentActivityMu.Lock()
	defer s.currentActivityMu.Unlock()
	s.currentActivity = a
}

// Logger is a shared logging instance configured to output logs at InfoLevel with timestamps to os.Stdout.
var Logger = log.NewWithOptions(os.Stdout, log.Options{ //nolint:gochecknoglobals // Global logger instance
	Level:           log.InfoLevel,
	ReportTimestamp: true,
})

// ErrorLogger is a logger instance for logging critical errors with detailed error information.
var ErrorLogger = Logger.With() //nolint:gochecknoglobals // Global error logger instance
