package main

import (
	"fmt"
	"os"

	"github.com/nikbrunner/catalog/internal/logger"
)

func main() {
	exitCode := 0
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		exitCode = 1
	}

	logger.Sync()
	if err := closeLogFile(); err != nil {
		fmt.Fprintln(os.Stderr, "Error: close log file:", err)
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
