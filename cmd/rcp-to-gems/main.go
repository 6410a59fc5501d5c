package main

import (
	"flag"
	"fmt"
	"os"

	lib "github.com/theoremus-urban-solutions/rcp-to-gems"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: rcp-to-gems [flags] INPUTFILENAME")
	fmt.Fprintln(os.Stderr, "-------------------------------------------------------")
	fmt.Fprintln(os.Stderr, "(Required) INPUTFILENAME - Your RCP .LOG file")
	fmt.Fprintln(os.Stderr, "Flags:")
	flag.PrintDefaults()
}

func main() {
	out := flag.String("out", "", "output file; derived from the input filename when empty")
	minSats := flag.Int("minSats", -1, "minimum number of GPS satellites required for valid data (overrides config)")
	configPath := flag.String("config", "", "config file path (defaults to config.yml when present)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	lib.InitLogging()
	if err := lib.LoadAppConfig(*configPath); err != nil {
		fmt.Printf("(false, %v)\n", err)
		os.Exit(1)
	}

	opts := lib.Options{
		InputPath:     flag.Arg(0),
		OutputPath:    *out,
		MinSatellites: *minSats,
	}
	if opts.MinSatellites < 0 {
		opts.MinSatellites = lib.DefaultMinSatellites()
	}

	outputPath, err := lib.Convert(opts)
	if err != nil {
		fmt.Printf("(false, %v)\n", err)
		os.Exit(1)
	}
	fmt.Printf("(true, %s)\n", outputPath)
}
