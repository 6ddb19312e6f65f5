package logger

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
)

type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
)

var currentLevel atomic.Int32

func init() {
	currentLevel.Store(int32(LevelInfo))
}

func SetLevel(l Level) {
	currentLevel.Store(int32(l))
}

func GetLevel() Level {
	return Level(currentLevel.Load())
}

// ParseLevel maps a config value to a Level, defaulting to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func Debug(ctx context.Context, msg string, fields ...any) {
	if GetLevel() > LevelDebug {
		return
	}
	output("DEBUG", msg, fields)
}

func Info(ctx context.Context, msg string, fields ...any) {
	if GetLevel() > LevelInfo {
		return
	}
	output("INFO", msg, fields)
}

// Error always logs. A nil err logs msg alone.
func Error(ctx context.Context, err error, msg string, fields ...any) {
	if err != nil {
		msg = fmt.Sprintf("%s: %v", msg, err)
	}
	output("ERROR", msg, fields)
}

func output(level, msg string, fields []any) {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(level)
	b.WriteString("] ")
	b.WriteString(msg)

	for i := 0; i < len(fields); i += 2 {
		b.WriteString(" ")
		if i+1 < len(fields) {
			fmt.Fprintf(&b, "%v=%v", fields[i], fields[i+1])
		} else {
			fmt.Fprintf(&b, "%v=<missing>", fields[i])
		}
	}

	log.Print(b.String())
}
