package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/CrestNiraj12/netfeed/domain"
)

// ToFile routes the standard logger to path. The TUI owns the terminal,
// so nothing may be written to stdout/stderr while it runs.
func ToFile(path string, debug bool) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	configure(f, debug)
	return f, nil
}

// ToStderr is used by the one-shot subcommands.
func ToStderr(debug bool) {
	configure(os.Stderr, debug)
}

func configure(w io.Writer, debug bool) {
	log.SetOutput(w)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true, DisableColors: w != os.Stderr})
	if debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

// Failure logs a failed operation. Server errors are logged by their
// {"error"} text; anything else by the raw error.
func Failure(op string, err error) {
	if err == nil {
		return
	}
	log.WithField("op", op).Errorf("Error: %s", domain.ErrorText(err))
}
