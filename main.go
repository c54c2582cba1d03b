package main

import (
	_ "embed"
	"errors"
	"flag"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// helpers blob, embedded at build time and passed to the renderer as an
// opaque string
//
//go:embed make_helpers
var makeHelpers string

const VERSION = "0.2.0"

var WORKING_DIR, OUTPUT, FORMAT string
var ASSUME_YES, LIST, VERBOSE, SHOW_VERSION bool

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Level:  log.WarnLevel,
	Prefix: "domake",
})

// newFlagSet builds the CLI flag set. A parse failure is an argument
// error and must exit 1, so the set continues on error and main routes
// the failure through the exceptions table.
func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("domake", flag.ContinueOnError)
	fs.StringVar(&WORKING_DIR, "D", ".", "Working Directory")
	fs.StringVar(&OUTPUT, "o", "Makefile", "Output file name")
	fs.BoolVar(&ASSUME_YES, "y", false, "Overwrite an existing Makefile without asking")
	fs.BoolVar(&LIST, "list", false, "List recognized tasks instead of writing a Makefile")
	fs.StringVar(&FORMAT, "format", "table", "List output format (table, json, yaml)")
	fs.BoolVar(&VERBOSE, "verbose", false, "Enable debug logging")
	fs.BoolVar(&SHOW_VERSION, "version", false, "Print version information")
	fs.Usage = func() { usage(fs) }
	return fs
}

func main() {
	// initialize exceptions
	InitExceptions()

	fs := newFlagSet()
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		RaiseException(WRONG_ARGUMENT, err.Error(), true)
	}

	if VERBOSE {
		logger.SetLevel(log.DebugLevel)
	}

	if SHOW_VERSION {
		version()
	}

	if fs.NArg() > 0 {
		RaiseException(WRONG_ARGUMENT, fs.Arg(0), true)
	}

	// check if the Dofile exists
	content, err := os.ReadFile(filepath.Join(WORKING_DIR, "Dofile"))
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			RaiseException(FILE_NOT_FOUND, GetPwd(), true)
		}
		RaiseException(READ_ERROR, err.Error(), true)
	}
	step("Dofile found")

	doc := ParseDofile(string(content))
	step("Content parsed")
	logger.Debug("parsed Dofile", "includes", len(doc.Includes), "tasks", len(doc.Commands))

	if LIST {
		if err := ListCommands(os.Stdout, doc, FORMAT); err != nil {
			RaiseException(WRONG_ARGUMENT, err.Error(), true)
		}
		return
	}

	outPath := filepath.Join(WORKING_DIR, OUTPUT)
	if _, err := os.Stat(outPath); err == nil && !ASSUME_YES {
		if !Confirm(os.Stdin) {
			os.Exit(0)
		}
	}

	out := Render(doc, makeHelpers, time.Now())
	logger.Debug("rendered Makefile", "path", outPath, "bytes", len(out))

	if err := WriteMakefile(outPath, out); err != nil {
		RaiseException(WRITE_ERROR, err.Error(), true)
	}
	step("Makefile successfully created!")
}

func description() {
	fmt.Println(arrowStyle.Render("->"), infoStyle.Render("domake is a simple CLI tool that generates a Makefile\nfrom a custom and simpler file named `Dofile`."))
}

func usage(fs *flag.FlagSet) {
	description()
	fmt.Println()
	fmt.Println(titleStyle.Render("Usage:"))
	fmt.Println(textStyle.Render("\tdomake [OPTION]"))
	fmt.Println(titleStyle.Render("Options:"))
	fs.PrintDefaults()
	fmt.Println(titleStyle.Render("Conditions:"))
	fmt.Println(textStyle.Render("\t- you need to have a valid `Dofile` in the current directory."))
	fmt.Println(textStyle.Render("\t- any `Makefile` existent in the current directory will be erased after confirmation."))
}

func version() {
	fmt.Println("domake", VERSION)
	os.Exit(0)
}
