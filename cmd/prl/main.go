// Package main is the entry point for the prl CLI client.
package main

import (
	"github.com/donaldgifford/phone-resale/cmd/prl/cmd"
)

func main() {
	cmd.Execute()
}
