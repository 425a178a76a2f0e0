package main

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/hashicorp/logutils"
	"github.com/pkg/errors"
)

var logLevels = []logutils.LogLevel{"TRACE", "DEBUG", "INFO", "WARN", "ERROR"}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// setupLog sends the standard logger to path, filtered by level. The
// terminal belongs to the clock, so without a path logs are discarded.
func setupLog(path, level string) (io.Closer, error) {
	minLevel := logutils.LogLevel(strings.ToUpper(level))
	valid := false
	for _, l := range logLevels {
		valid = valid || l == minLevel
	}
	if !valid {
		return nil, errors.Errorf("unknown log level %q", level)
	}

	if path == "" {
		log.SetOutput(io.Discard)
		return nopCloser{}, nil
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrap(err, "open log file")
	}
	log.SetOutput(&logutils.LevelFilter{
		Levels:   logLevels,
		MinLevel: minLevel,
		Writer:   file,
	})
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	return file, nil
}
