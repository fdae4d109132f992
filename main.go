package main

import (
	"flag"
	"fmt"
	"os"

	"fpt/internal/di"
	"fpt/internal/structures"
)

func main() {
	flags := &structures.CliFlags{}
	flag.StringVar(&flags.ConfigPath, "config", "config.yaml", "path to config file")
	flag.BoolVar(&flags.DebugMode, "debug", false, "log to console as well as file")
	flag.BoolVar(&flags.RunOnce, "once", false, "run all searches once and exit")
	flag.Parse()

	if _, err := di.InitApp(flags); err != nil {
		fmt.Fprintf(os.Stderr, "fpt: %s\n", err)
		os.Exit(1)
	}
}
