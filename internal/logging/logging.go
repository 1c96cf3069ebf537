package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const (
	appName = "shellbridge"

	// DefaultMaxLogFiles is the rotation limit when none is configured
	DefaultMaxLogFiles = 1000
)

// Logger is the shared logger. It discards everything until Initialize enables debug output.
var Logger = slog.New(slog.DiscardHandler)

// Initialize configures Logger and returns the log file path, empty when logging is off.
// SHELLBRIDGE_DEBUG, SHELLBRIDGE_DEBUG_FILE and SHELLBRIDGE_MAX_LOG_FILES are honoured so a
// bridge started from serve mode inherits the parent's settings.
func Initialize(debug bool, debugFile string, maxLogFiles int) (string, error) {
	if os.Getenv("SHELLBRIDGE_DEBUG") == "1" {
		debug = true
	}
	if env := os.Getenv("SHELLBRIDGE_DEBUG_FILE"); env != "" && debugFile == "" {
		debugFile = env
	}
	if env := os.Getenv("SHELLBRIDGE_MAX_LOG_FILES"); env != "" && maxLogFiles == DefaultMaxLogFiles {
		if parsed, err := strconv.Atoi(env); err == nil {
			maxLogFiles = parsed
		}
	}

	if !debug && debugFile == "" {
		Logger = slog.New(slog.DiscardHandler)
		return "", nil
	}

	var logFilePath string
	if debugFile != "" {
		logFilePath = debugFile
		if err := os.MkdirAll(filepath.Dir(logFilePath), 0o755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
	} else {
		logDir, err := LogDir()
		if err != nil {
			return "", fmt.Errorf("failed to get log directory: %w", err)
		}
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}

		if maxLogFiles > 0 {
			if err := rotateLogs(logDir, maxLogFiles); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
			}
		}
		logFilePath = filepath.Join(logDir, uuid.New().String()+".log")
	}

	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}

	Logger = New(logFile)
	Logger.Info("Debug logging initialized", "log_file", logFilePath, "pid", os.Getpid())
	return logFilePath, nil
}

// New builds a debug-level JSON logger writing to w
func New(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// rotateLogs deletes the oldest .log files so that one more fits under maxLogFiles
func rotateLogs(logDir string, maxLogFiles int) error {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	type logFileInfo struct {
		modTime time.Time
		path    string
	}
	var logFiles []logFileInfo

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".log" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		logFiles = append(logFiles, logFileInfo{
			modTime: info.ModTime(),
			path:    filepath.Join(logDir, entry.Name()),
		})
	}

	if len(logFiles) < maxLogFiles {
		return nil
	}

	sort.Slice(logFiles, func(i, j int) bool {
		return logFiles[i].modTime.Before(logFiles[j].modTime)
	})

	numToDelete := len(logFiles) - maxLogFiles + 1
	for i := 0; i < numToDelete; i++ {
		if err := os.Remove(logFiles[i].path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", logFiles[i].path, err)
		}
	}

	return nil
}

// LogDir returns the OS-specific log directory
func LogDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Logs", appName), nil
	case "linux":
		stateHome := os.Getenv("XDG_STATE_HOME")
		if stateHome == "" {
			stateHome = filepath.Join(homeDir, ".local", "state")
		}
		return filepath.Join(stateHome, appName), nil
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(homeDir, "AppData", "Local")
		}
		return filepath.Join(localAppData, appName, "logs"), nil
	default:
		return filepath.Join(homeDir, "."+appName, "logs"), nil
	}
}
