package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/renato0307/shellbridge/internal/config"
	"github.com/renato0307/shellbridge/internal/logging"
	"github.com/renato0307/shellbridge/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run      RunCmd      `cmd:"" help:"Open an interactive remote shell (default)" default:"withargs"`
	Hosts    HostsCmd    `cmd:"hosts" help:"Manage saved host profiles (list, add, del)"`
	Serve    ServeCmd    `cmd:"serve" help:"Serve the bridge UI over SSH"`
	Settings SettingsCmd `cmd:"settings" help:"Inspect settings"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
	tuning    config.Tuning    `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	if c.settings == nil {
		c.settings = &config.Settings{}
	}

	// Precedence: CLI flags > env vars > settings.json > defaults
	if c.MaxLogFiles == logging.DefaultMaxLogFiles {
		if _, hasEnv := os.LookupEnv("SHELLBRIDGE_MAX_LOG_FILES"); !hasEnv && c.settings.MaxLogFiles != nil {
			c.MaxLogFiles = *c.settings.MaxLogFiles
		}
	}
	if !c.Debug {
		if _, hasEnv := os.LookupEnv("SHELLBRIDGE_DEBUG"); !hasEnv && c.settings.Debug != nil && *c.settings.Debug {
			c.Debug = true
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Bridges started by serve inherit the log file of the server
	if c.Debug || c.DebugFile != "" {
		os.Setenv("SHELLBRIDGE_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("SHELLBRIDGE_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv("SHELLBRIDGE_MAX_LOG_FILES", strconv.Itoa(c.MaxLogFiles))
	}

	if c.settings.Keys != nil {
		if err := c.settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
			return fmt.Errorf("invalid key bindings in settings.json: %w", err)
		}
	}

	tuning, err := config.LoadTuning(c.settings)
	if err != nil {
		return err
	}
	c.tuning = tuning

	// Container is created after logging so GORM logs go to the right place
	container, err := NewContainer()
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
