package logging

import (
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/mattn/go-isatty"
)

const (
	LevelEnv = "MOTIONKIT_LOG_LEVEL"
	JSONEnv  = "MOTIONKIT_JSON_LOG"
)

// NewLogger creates an hclog logger. Text output is coloured only when it
// goes to a terminal.
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	jsonFormat := os.Getenv(JSONEnv) == "1"

	color := hclog.ColorOff
	if !jsonFormat && isTerminal(output) {
		color = hclog.ForceColor
	}

	opts := &hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		Color:      color,
		TimeFormat: "2006-01-02T15:04:05Z",
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	}

	return hclog.New(opts)
}

// GetLogLevel returns the level from the environment, warn when unset.
func GetLogLevel() string {
	level := os.Getenv(LevelEnv)
	if level == "" {
		level = "warn"
	}
	return level
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
