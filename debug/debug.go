package debug

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type debug struct {
	Build     bool
	Sort      bool
	Assemble  bool
	Overrides bool
}

var d *debug

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level: slog.LevelDebug,
	ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey && len(groups) == 0 {
			return slog.Attr{}
		}
		return a
	},
}))

func init() {
	d = &debug{}
	d.Build = boolEnv("TOMLSORT_DEBUG_BUILD")
	d.Sort = boolEnv("TOMLSORT_DEBUG_SORT")
	d.Assemble = boolEnv("TOMLSORT_DEBUG_ASSEMBLE")
	d.Overrides = boolEnv("TOMLSORT_DEBUG_OVERRIDES")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Build() bool {
	return d.Build
}
func Sort() bool {
	return d.Sort
}
func Assemble() bool {
	return d.Assemble
}
func Overrides() bool {
	return d.Overrides
}

// SetLogger replaces the logger Logf writes to.
func SetLogger(l *slog.Logger) {
	logger = l
}

func Logf(format string, args ...any) {
	logger.Debug(strings.TrimSuffix(fmt.Sprintf(format, args...), "\n"))
}
