// ABOUTME: Entry point for the pratiksef CLI
// ABOUTME: Terminal client for the Pratik Şef recipe generation service

package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/pratiksef/pratiksef/cmd"
	"github.com/pratiksef/pratiksef/internal/logging"
)

func main() {
	// A missing .env is fine; plain environment variables still apply.
	_ = godotenv.Load()

	logging.Init()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
