package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

const Version = "0.1.0"

func main() {
	tabWidth := flag.Int("tab", 4, "tab stop width")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: pore [-tab n] <file>")
		os.Exit(2)
	}
	if err := run(flag.Arg(0), *tabWidth); err != nil {
		fmt.Fprintf(os.Stderr, "pore: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, tabWidth int) error {
	if tabWidth <= 0 {
		return fmt.Errorf("tab width must be positive, got %d", tabWidth)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	lines := LoadLines(data, tabWidth)

	console := NewConsole(os.Stdin, os.Stdout)
	if err := console.EnterRaw(); err != nil {
		return err
	}
	defer console.Restore()

	app := NewApp(filepath.Base(path), lines, console)
	app.debug = openDebugLog()
	return app.Run()
}
