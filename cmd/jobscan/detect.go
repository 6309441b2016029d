package main

import (
	"fmt"

	"github.com/fwojciec/jobscan"
)

// Run executes the detect command.
func (c *DetectCmd) Run(deps *Dependencies) error {
	platform := jobscan.DetectPlatformURL(c.URL)
	fmt.Fprintf(deps.Stdout, "Platform: %s\n", platform)

	if canonical, ok := jobscan.CanonicalURL(c.URL); ok {
		fmt.Fprintf(deps.Stdout, "Canonical: %s\n", canonical)
	}

	return nil
}
