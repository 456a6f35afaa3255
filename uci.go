package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

const defaultLogPath = "/tmp/quick-chess/engine.log"

func main() {
	logPath := flag.String("log", defaultLogPath, "engine log file (empty disables logging)")
	name := flag.String("name", "quick-chess", "engine name reported to the GUI")
	flag.Parse()

	logger, closeLog := openLog(*logPath)
	defer closeLog()

	s := NewSession(os.Stdout, logger)
	s.Name = *name
	logger.Printf("%s started", s.Name)
	if err := s.Run(os.Stdin); err != nil {
		logger.Printf("reading commands: %v", err)
		fmt.Fprintln(os.Stderr, "error reading commands:", err)
		os.Exit(1)
	}
	logger.Printf("%s exiting", s.Name)
}

// openLog opens (appending) the log file, creating its directory. Any failure
// falls back to a discarding logger so the protocol keeps working.
func openLog(path string) (*log.Logger, func()) {
	discard := log.New(io.Discard, "", 0)
	if path == "" {
		return discard, func() {}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintln(os.Stderr, "log disabled:", err)
		return discard, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintln(os.Stderr, "log disabled:", err)
		return discard, func() {}
	}
	return log.New(f, "", log.LstdFlags|log.LUTC|log.Lmicroseconds), func() { f.Close() }
}
