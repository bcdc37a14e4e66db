package findclone

import (
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

var (
	globalVerboseLevel int
	debugFlags         map[string]bool
	logMutex           sync.RWMutex
	logger             = newLogger(os.Stderr)
)

func newLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger().
		Level(levelFor(globalVerboseLevel))
}

// levelFor maps a verbose level (0=quiet, 1=basic, 2=detailed, 3=trace) onto zerolog levels
func levelFor(verbose int) zerolog.Level {
	switch {
	case verbose <= 0:
		return zerolog.WarnLevel
	case verbose == 1:
		return zerolog.InfoLevel
	case verbose == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// SetLogOutput redirects diagnostic logging, stderr by default
func SetLogOutput(w io.Writer) {
	logMutex.Lock()
	defer logMutex.Unlock()
	logger = newLogger(w)
}

// Logger returns the package logger
func Logger() *zerolog.Logger {
	logMutex.RLock()
	defer logMutex.RUnlock()
	l := logger
	return &l
}

// SetVerboseLevel sets the global verbose level
func SetVerboseLevel(level int) {
	logMutex.Lock()
	defer logMutex.Unlock()
	globalVerboseLevel = level
	lvl := levelFor(level)
	// zerolog drops trace events below its global level, which defaults to debug
	if lvl < zerolog.GlobalLevel() {
		zerolog.SetGlobalLevel(lvl)
	}
	logger = logger.Level(lvl)
}

// GetVerboseLevel returns the current verbose level
func GetVerboseLevel() int {
	logMutex.RLock()
	defer logMutex.RUnlock()
	return globalVerboseLevel
}

// VerboseEnter logs function entry at level 3+ and returns a defer function for exit logging
func VerboseEnter() func() {
	if GetVerboseLevel() < 3 {
		return func() {}
	}

	pc, _, _, ok := runtime.Caller(1)
	if !ok {
		return func() {}
	}

	funcName := runtime.FuncForPC(pc).Name()
	if idx := strings.LastIndex(funcName, "."); idx != -1 {
		funcName = funcName[idx+1:]
	}

	Logger().Trace().Str("func", funcName).Msg("enter")
	return func() {
		Logger().Trace().Str("func", funcName).Msg("exit")
	}
}

// VerboseLog logs a message at the specified verbose level
func VerboseLog(level int, format string, args ...interface{}) {
	if GetVerboseLevel() < level {
		return
	}
	l := Logger()
	var event *zerolog.Event
	switch level {
	case 0:
		event = l.Warn()
	case 1:
		event = l.Info()
	case 2:
		event = l.Debug()
	default:
		event = l.Trace()
	}
	event.Msgf(strings.TrimSuffix(format, "\n"), args...)
}

// SetDebugFlags sets the debug flags from a comma-separated string
// Supports both simple flags ("scan,hash") and key:value format ("scan:true,hash:false")
func SetDebugFlags(flagsStr string) {
	flags := make(map[string]bool)
	for _, flag := range strings.Split(flagsStr, ",") {
		flag = strings.TrimSpace(flag)
		if flag == "" {
			continue
		}

		parts := strings.SplitN(flag, ":", 2)
		flagValue := true
		if len(parts) > 1 {
			switch strings.ToLower(parts[1]) {
			case "false", "0", "no", "off":
				flagValue = false
			}
		}
		flags[strings.ToLower(parts[0])] = flagValue
	}

	logMutex.Lock()
	debugFlags = flags
	logMutex.Unlock()
}

// IsDebugEnabled returns true if the specified debug flag is enabled
func IsDebugEnabled(flag string) bool {
	logMutex.RLock()
	defer logMutex.RUnlock()
	return debugFlags[strings.ToLower(flag)]
}
