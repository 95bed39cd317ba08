// Package logutil sets up apex/log for the demo binary.
package logutil

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
)

// InitLogger installs the line handler and sets the level. Unknown level
// strings fall back to info.
func InitLogger(level string) {
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetHandler(&lineHandler{})
	log.SetLevel(lvl)
}

// lineHandler formats log messages as single lines on stdout
type lineHandler struct{}

// HandleLog implements the log.Handler interface
func (h *lineHandler) HandleLog(e *log.Entry) error {
	timestamp := time.Now().Format("15:04:05.000")
	level := strings.ToUpper(e.Level.String())

	var fields strings.Builder
	for _, name := range e.Fields.Names() {
		fmt.Fprintf(&fields, " %s=%v", name, e.Fields.Get(name))
	}

	fmt.Fprintf(os.Stdout, "%s %.1s %s%s\n", timestamp, level, e.Message, fields.String())
	return nil
}
