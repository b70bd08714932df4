// Package main prints the version derived from the nearest git tag.
package main

import (
	"fmt"
	"os/exec"
	"strings"
)

func main() {
	out, err := exec.Command("git", "describe", "--tags", "--always", "--dirty").Output()
	if err != nil || len(out) == 0 {
		fmt.Print("dev")
		return
	}
	fmt.Print(strings.TrimPrefix(strings.TrimSpace(string(out)), "v"))
}
