// Package main is the entry point for the phone-resale server.
package main

import (
	"os"

	"github.com/donaldgifford/phone-resale/cmd/phone-resale/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
