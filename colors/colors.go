package colors

import (
	"os"
	"sync/atomic"
)

// COLOR is an ANSI escape sequence selecting a foreground colour or style.
type COLOR string

const (
	RESET        COLOR = "\033[0m"
	BOLD         COLOR = "\033[1m"
	RED          COLOR = "\033[31m"
	GREEN        COLOR = "\033[32m"
	YELLOW       COLOR = "\033[33m"
	BLUE         COLOR = "\033[34m"
	PURPLE       COLOR = "\033[35m"
	CYAN         COLOR = "\033[36m"
	WHITE        COLOR = "\033[37m"
	GREY         COLOR = "\033[90m"
	BOLD_RED     COLOR = "\033[1;31m"
	BOLD_BLUE    COLOR = "\033[1;34m"
	BOLD_YELLOW  COLOR = "\033[1;33m"
	ORANGE       COLOR = "\033[38;5;208m"
	LIGHT_ORANGE COLOR = "\033[38;5;215m"
	LIGHT_GREEN  COLOR = "\033[38;5;120m"
)

var enabled atomic.Bool

func init() {
	_, noColor := os.LookupEnv("NO_COLOR")
	enabled.Store(!noColor)
}

// SetEnabled turns colour output on or off for every printer.
func SetEnabled(on bool) {
	enabled.Store(on)
}

// Enabled reports whether escape sequences are emitted.
func Enabled() bool {
	return enabled.Load()
}

func (c COLOR) wrap(s string) string {
	if !enabled.Load() {
		return s
	}
	return string(c) + s + string(RESET)
}
