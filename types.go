package main

// Command is one task block from the Dofile.
// Description keeps its leading '#' marker; it is normalized at render time.
// Deps is the raw dependency token, a whitespace-separated list kept unsplit.
type Command struct {
	Name         string
	Description  string
	Deps         string
	Instructions []string
}

// Dofile is the parsed form of one input document.
type Dofile struct {
	Includes []string
	Commands []Command
}
