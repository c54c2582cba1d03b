package main

import (
	"regexp"
	"strings"
)

// include <target>, matched anywhere in a line
var includeRe = regexp.MustCompile(`include ([[:print:]]+)`)

// ExtractIncludes returns every include target in textual order.
// Targets are not validated; a document without includes yields nil.
func ExtractIncludes(text string) []string {
	var includes []string
	for _, m := range includeRe.FindAllStringSubmatch(text, -1) {
		includes = append(includes, m[1])
	}
	return includes
}

// ParseBlocks scans the text for task blocks and returns a Command per
// block that satisfies the full grammar, in first-appearance order.
// Malformed blocks are dropped without error.
func ParseBlocks(text string) []Command {
	lines := splitLines(text)

	var cmds []Command
	for i := 0; i < len(lines); {
		if !isHeader(lines[i]) {
			i++
			continue
		}
		cmd, next, ok := parseBlock(lines, i)
		if !ok {
			// retry from the line after the bad header
			i++
			continue
		}
		cmds = append(cmds, cmd)
		i = next
	}
	return cmds
}

// ParseDofile runs both scans over the same text.
func ParseDofile(text string) Dofile {
	return Dofile{
		Includes: ExtractIncludes(text),
		Commands: ParseBlocks(text),
	}
}

// parseBlock parses one block starting at the header line lines[i].
// It returns the Command, the index of the first unconsumed line, and
// whether the block satisfied the grammar.
func parseBlock(lines []string, i int) (Command, int, bool) {
	name := lines[i][1 : len(lines[i])-1]
	j := i + 1

	// optional dependency line: the line after the header, unless it is
	// the description
	deps := ""
	if j < len(lines) && !strings.HasPrefix(lines[j], "#") {
		deps = strings.TrimSpace(lines[j])
		j++
	}

	// mandatory description line: the marker plus at least one character
	if j >= len(lines) || !strings.HasPrefix(lines[j], "#") || len(lines[j]) < 2 {
		return Command{}, 0, false
	}
	desc := lines[j]
	j++

	// one or more instruction lines, verbatim, up to a blank line, a new
	// header or end of document
	var instructions []string
	for j < len(lines) && lines[j] != "" && !isHeader(lines[j]) {
		instructions = append(instructions, lines[j])
		j++
	}
	if len(instructions) == 0 {
		return Command{}, 0, false
	}

	return Command{
		Name:         name,
		Description:  desc,
		Deps:         deps,
		Instructions: instructions,
	}, j, true
}

func isHeader(line string) bool {
	return len(line) > 2 && strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]")
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
