package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm asks whether an existing Makefile may be overwritten and reads
// the answer from in. Only "y" or "yes" (any case) accept; everything
// else, including a read failure, declines.
func Confirm(in io.Reader) bool {
	fmt.Printf("%s %s\n%s ",
		warnStyle.Render("A Makefile has been found in the current directory.\nDo you want to overwrite it?"),
		errStyle.Render("(you will lose all data previously present in the Makefile)"),
		promptStyle.Render("> [y/N]"))

	choice, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && choice == "" {
		RaiseException(STDIN_ERROR, err.Error(), false)
		return false
	}

	switch strings.ToLower(strings.TrimSpace(choice)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
