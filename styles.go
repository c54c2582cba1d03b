package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	arrowStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	textStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	infoStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	warnStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	errStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
)

// step prints one bold green progress line, arrow included.
func step(msg string) {
	fmt.Println(arrowStyle.Render("-> " + msg))
}
