package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/suparena/borgpod"
	"github.com/suparena/borgpod/processor"
)

var (
	versionFlag  = flag.Bool("version", false, "Show version information")
	vFlag        = flag.Bool("v", false, "Show version information (short)")
	manifestFlag = flag.String("manifest", "", "Path to the class manifest (default $BORGPOD_MANIFEST or borgpod.yaml)")
	outputFlag   = flag.String("output", "", "Path of the generated file (default $BORGPOD_OUTPUT or borgpod_gen.go next to the manifest)")
)

func main() {
	// Parse flags early to catch version flag
	flag.Parse()

	// Handle version flag
	if *versionFlag || *vFlag {
		info := borgpod.GetVersionInfo()
		fmt.Printf("BorgPod podgen version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	// Run the processor
	processor.Main(*manifestFlag, *outputFlag)
}
