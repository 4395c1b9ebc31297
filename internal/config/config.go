package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	AppName    = "Live AVIF Converter"
	AppID      = "com.imageprocessing.avif-live"
	AppVersion = "1.0.0"
)

// Config holds every tunable of the preview pipeline and the main window.
// Values are compiled in; nothing is read from disk.
type Config struct {
	DefaultQuality int
	PreviewEffort  int
	SaveEffort     int

	// Debounce is the quiet period for slider and resize renders.
	Debounce time.Duration
	// LoadDelay lets the layout pass settle before the first render of a new image.
	LoadDelay time.Duration

	// Margin is subtracted from the container in each dimension (half per side).
	Margin          int
	ResizeThreshold int
	MinScale        float64
	MaxScale        float64

	WindowWidth     float32
	WindowHeight    float32
	MinWindowWidth  float32
	MinWindowHeight float32
}

func Default() Config {
	return Config{
		DefaultQuality:  50,
		PreviewEffort:   1,
		SaveEffort:      4,
		Debounce:        250 * time.Millisecond,
		LoadDelay:       100 * time.Millisecond,
		Margin:          20,
		ResizeThreshold: 5,
		MinScale:        0.1,
		MaxScale:        1.0,
		WindowWidth:     800,
		WindowHeight:    700,
		MinWindowWidth:  500,
		MinWindowHeight: 600,
	}
}

// Validate reports the first out-of-range value.
func (c Config) Validate() error {
	if c.DefaultQuality < 0 || c.DefaultQuality > 100 {
		return fmt.Errorf("default quality %d outside 0-100", c.DefaultQuality)
	}
	if c.PreviewEffort < 0 || c.PreviewEffort > 10 {
		return fmt.Errorf("preview effort %d outside 0-10", c.PreviewEffort)
	}
	if c.SaveEffort < 0 || c.SaveEffort > 10 {
		return fmt.Errorf("save effort %d outside 0-10", c.SaveEffort)
	}
	if c.Debounce <= 0 {
		return fmt.Errorf("debounce must be positive, got %s", c.Debounce)
	}
	if c.LoadDelay < 0 {
		return fmt.Errorf("load delay must not be negative, got %s", c.LoadDelay)
	}
	if c.Margin < 0 {
		return fmt.Errorf("margin must not be negative, got %d", c.Margin)
	}
	if c.ResizeThreshold < 0 {
		return fmt.Errorf("resize threshold must not be negative, got %d", c.ResizeThreshold)
	}
	if c.MinScale <= 0 || c.MinScale > c.MaxScale {
		return fmt.Errorf("scale bounds [%g, %g] are invalid", c.MinScale, c.MaxScale)
	}
	return nil
}

// LogLevelFromEnv resolves the diagnostic log level from LOG_LEVEL, falling
// back to DEBUG=1, then info.
func LogLevelFromEnv() zerolog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		if os.Getenv("DEBUG") == "1" {
			return zerolog.DebugLevel
		}
		return zerolog.InfoLevel
	}
}
