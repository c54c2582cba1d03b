package main

import (
	"fmt"
	"strings"
	"time"
)

// Makefile renders one Command as a Makefile target block.
func (c *Command) Makefile() string {
	var b strings.Builder

	desc := strings.TrimSpace(strings.TrimPrefix(c.Description, "#"))
	fmt.Fprintf(&b, "## %s: %s\n", c.Name, desc)
	fmt.Fprintf(&b, ".PHONY: %s\n", c.Name)
	fmt.Fprintf(&b, "%s: %s\n", c.Name, c.Deps)

	for _, instruction := range c.Instructions {
		fmt.Fprintf(&b, "\t%s\n", instruction)
	}
	return b.String()
}

// Render produces the full Makefile text from the parsed Dofile, the
// embedded helpers blob and the generation time. It is a pure function
// of its arguments; the clock is passed in so the output is testable
// byte for byte.
func Render(doc Dofile, helpers string, now time.Time) string {
	var b strings.Builder

	// header
	b.WriteString("# This Makefile was done using 'domake'\n")
	fmt.Fprintf(&b, "# Generated at %s\n", now.Format("02/01/2006"))
	b.WriteString("\n")

	// includes
	for _, include := range doc.Includes {
		fmt.Fprintf(&b, "include %s\n", include)
	}
	b.WriteString("\n")

	// helpers blob, verbatim
	fmt.Fprintf(&b, "%s\n", helpers)
	b.WriteString("\n")

	// one block per command
	for _, cmd := range doc.Commands {
		fmt.Fprintf(&b, "%s\n", cmd.Makefile())
	}

	return b.String()
}
