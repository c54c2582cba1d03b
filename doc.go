/*
Package main implements domake, a small CLI tool that generates a Makefile
from a terser task-definition file named Dofile.

A Dofile declares tasks as repeated blocks: a bracketed name, an optional
dependency line, a mandatory '#'-prefixed description and one or more
shell instructions. Include directives anywhere in the document are
carried over as Makefile include lines.

# Dofile Syntax

	include config.mk

	[build]
	#Compiles the project
	gcc -o app main.c

	[test]
	build
	#Runs the test suite
	./run_tests.sh

The optional dependency line is the line right after the header, unless
that line starts with '#', in which case it is the description. A block
missing its description or its instructions is skipped silently.

# Output

The generated Makefile contains, in order: a generation header with a
DD/MM/YYYY date stamp, the include lines, an embedded helpers fragment
(a self-documenting 'help' target), and one target block per task:

	## build: Compiles the project
	.PHONY: build
	build:
		gcc -o app main.c

Instruction lines are copied byte for byte, tab-prefixed. Tasks and
includes keep their first-appearance order. domake performs no semantic
validation: duplicate task names and dependencies on unknown names are
passed through and left to make to report.

# Usage

Generate a Makefile from the Dofile in the current directory:

	domake

List recognized tasks without writing anything:

	domake -list --format json

An existing Makefile is only overwritten after confirmation (or with -y).
Exit codes: 0 on success or declined overwrite, 1 on input or argument
errors, 2 on write failure.

# Dependencies

domake keeps its footprint small:
- github.com/agilira/orpheus: CLI error values
- github.com/charmbracelet/lipgloss: terminal styling
- github.com/charmbracelet/log: debug logging
- gopkg.in/yaml.v3: YAML task listing
*/
package main
