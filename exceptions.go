package main

import (
	"fmt"
	"os"
)

// Exception Numbers
const (
	WRONG_ARGUMENT int8 = iota + 1
	FILE_NOT_FOUND
	READ_ERROR
	WRITE_ERROR
	STDIN_ERROR
)

var Exps map[int8]string
var ExitCodes map[int8]int

// Initialize Exceptions Map
func InitExceptions() {
	Exps = make(map[int8]string, 0)
	Exps[WRONG_ARGUMENT] = "Wrong argument: %s"
	Exps[FILE_NOT_FOUND] = "No 'Dofile' found in directory %s"
	Exps[READ_ERROR] = "Cannot read Dofile: %s"
	Exps[WRITE_ERROR] = "Error writing to file: %s"
	Exps[STDIN_ERROR] = "Failed to read input from stdin: %s"

	// contractual exit codes: 1 input/argument errors, 2 output-write failure
	ExitCodes = make(map[int8]int, 0)
	ExitCodes[WRONG_ARGUMENT] = 1
	ExitCodes[FILE_NOT_FOUND] = 1
	ExitCodes[READ_ERROR] = 1
	ExitCodes[WRITE_ERROR] = 2
	ExitCodes[STDIN_ERROR] = 1
}

func RaiseException(exception_number int8, value string, exit bool) {
	msg := fmt.Sprintf(Exps[exception_number], value)
	fmt.Fprintln(os.Stderr, errStyle.Render(msg))
	if exit {
		os.Exit(ExitCodes[exception_number])
	}
}
