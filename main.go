// ABOUTME: Entry point for the petradar CLI
// ABOUTME: Terminal client for the PetRadar pet and veterinary appointment API

package main

import (
	"fmt"
	"os"

	"petradar/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
