package logging

import (
	"fmt"
	"log/slog"
	"strings"
)

// Level is the application log level. It adds Critical above slog's Error.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelCritical
)

// SlogCritical sits above slog.LevelError so handlers filtering on Error still
// receive critical records.
const SlogCritical = slog.LevelError + 4

func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "critical", "fatal":
		return LevelCritical, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

func (l Level) Slog() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarning:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	case LevelCritical:
		return SlogCritical
	default:
		return slog.LevelInfo
	}
}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelCritical:
		return "critical"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// fileLevels are the levels that get their own rotating file.
var fileLevels = []Level{LevelInfo, LevelWarning, LevelError, LevelCritical}

func replaceLevelAttr(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	if lvl, ok := a.Value.Any().(slog.Level); ok && lvl >= SlogCritical {
		a.Value = slog.StringValue("CRITICAL")
	}
	return a
}
