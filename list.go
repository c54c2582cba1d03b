package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/agilira/orpheus/pkg/orpheus"
	"gopkg.in/yaml.v3"
)

// ListCommands prints the recognized tasks without writing a Makefile.
func ListCommands(w io.Writer, doc Dofile, format string) error {
	switch format {
	case "table":
		return listCommandsTable(w, doc)
	case "json":
		return listCommandsJSON(w, doc)
	case "yaml":
		return listCommandsYAML(w, doc)
	default:
		return orpheus.NotFoundError("list", fmt.Sprintf("unknown format '%s'", format))
	}
}

func listCommandsTable(w io.Writer, doc Dofile) error {
	fmt.Fprintln(w, "Available tasks:")
	fmt.Fprintln(w, "----------------")

	if len(doc.Commands) == 0 {
		fmt.Fprintln(w, "No tasks found")
		return nil
	}

	// Find max name length for formatting
	maxNameLen := 0
	for _, cmd := range doc.Commands {
		if len(cmd.Name) > maxNameLen {
			maxNameLen = len(cmd.Name)
		}
	}

	for _, cmd := range doc.Commands {
		padding := strings.Repeat(" ", maxNameLen-len(cmd.Name)+2)
		deps := ""
		if cmd.Deps != "" {
			deps = fmt.Sprintf(" (depends: %s)", cmd.Deps)
		}
		fmt.Fprintf(w, "  %s%s%d instructions%s\n", cmd.Name, padding, len(cmd.Instructions), deps)
	}

	fmt.Fprintf(w, "\nTotal: %d tasks\n", len(doc.Commands))
	return nil
}

func listCommandsJSON(w io.Writer, doc Dofile) error {
	type CommandInfo struct {
		Name         string `json:"name"`
		Description  string `json:"description"`
		Instructions int    `json:"instructions"`
		Deps         string `json:"dependencies,omitempty"`
	}

	var tasks []CommandInfo
	for _, cmd := range doc.Commands {
		tasks = append(tasks, CommandInfo{
			Name:         cmd.Name,
			Description:  strings.TrimSpace(strings.TrimPrefix(cmd.Description, "#")),
			Instructions: len(cmd.Instructions),
			Deps:         cmd.Deps,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(map[string]interface{}{
		"includes": doc.Includes,
		"tasks":    tasks,
		"total":    len(tasks),
	})
}

func listCommandsYAML(w io.Writer, doc Dofile) error {
	type CommandInfo struct {
		Name         string `yaml:"name"`
		Description  string `yaml:"description"`
		Instructions int    `yaml:"instructions"`
		Deps         string `yaml:"dependencies,omitempty"`
	}

	var tasks []CommandInfo
	for _, cmd := range doc.Commands {
		tasks = append(tasks, CommandInfo{
			Name:         cmd.Name,
			Description:  strings.TrimSpace(strings.TrimPrefix(cmd.Description, "#")),
			Instructions: len(cmd.Instructions),
			Deps:         cmd.Deps,
		})
	}

	encoder := yaml.NewEncoder(w)
	defer func() { _ = encoder.Close() }()
	return encoder.Encode(map[string]interface{}{
		"includes": doc.Includes,
		"tasks":    tasks,
		"total":    len(tasks),
	})
}
