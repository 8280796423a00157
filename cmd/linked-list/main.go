package main

import (
	"fmt"
	"os"

	pflag "github.com/spf13/pflag"

	"list_experiments/demo"
)

// Version is injected at build time via ldflags.
var Version = "dev"

const usage = `linked-list - build, print and release small linked lists

With no options this prints an integer list (10, 20, 30) and a text list
(data-1, data-2, data-3) with the length of each text.

Usage:
  linked-list [options]

Options:
`

func main() {
	var showHelp, showVersion bool
	var configFile, format, scenario string

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s\n", usage)
		pflag.PrintDefaults()
	}

	pflag.BoolVarP(&showHelp, "help", "h", false, "Show help")
	pflag.BoolVar(&showVersion, "version", false, "Show version")
	pflag.StringVarP(&configFile, "config", "c", "", "YAML file listing scenarios (defaults to the built-in demo)")
	pflag.StringVarP(&format, "format", "f", "", "Output format (plain or tree)")
	pflag.StringVarP(&scenario, "scenario", "s", "", "Only run the named scenario")

	pflag.Parse()

	if showHelp {
		pflag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("linked-list version %s\n", Version)
		os.Exit(0)
	}

	if len(pflag.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "Error: Unexpected positional arguments.\n\n")
		pflag.Usage()
		os.Exit(1)
	}

	cfg := demo.DefaultConfig()
	if configFile != "" {
		var err error
		cfg, err = demo.LoadConfig(configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if format != "" {
		cfg.Format = format
	}

	if err := demo.Run(os.Stdout, cfg, scenario); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
