package main

import (
	"io"
	"log"
	"os"
)

// openDebugLog returns a logger for the diagnostic side channel. The
// terminal streams are owned by the raw-mode session, so diagnostics
// go to a separate file named by PORE_DEBUG_LOG, or nowhere at all.
func openDebugLog() *log.Logger {
	path := os.Getenv("PORE_DEBUG_LOG")
	if path == "" {
		return log.New(io.Discard, "", 0)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return log.New(io.Discard, "", 0)
	}
	return log.New(f, "", log.Ltime|log.Lmicroseconds)
}
