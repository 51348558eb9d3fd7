package main

import "os"

func main() {
	if err := Execute(); err != nil {
		// Cobra already prints errors
		// Non-zero exit for CI / scripting
		os.Exit(1)
	}
}
