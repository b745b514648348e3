package main

import (
	"flag"
	"fmt"
	"os"

	"k8s.io/klog/v2"

	"github.com/idilsaglam/fruits/internal/cli"
	"github.com/idilsaglam/fruits/internal/config"
)

func main() {
	// Root flags (apply to every subcommand); env values become their defaults.
	cfg := config.FromEnv(os.Getenv)
	cfg.RegisterFlags(flag.CommandLine)
	klog.InitFlags(nil)
	flag.Usage = func() { cli.PrintHelp(flag.CommandLine.Output()) }
	flag.Parse()

	code := cli.Run(flag.Args(), cli.Options{Config: cfg})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	klog.Flush()
	os.Exit(code)
}
