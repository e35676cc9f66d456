package main

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/lukaszgryglicki/skytracer/internal/skytracer"
)

func main() {
	skytracer.Debug = os.Getenv("DEBUG") != ""
	skytracer.Progress = os.Getenv("PROGRESS") != ""
	skytracer.PNG = os.Getenv("PNG") != ""
	skytracer.GIF = os.Getenv("GIF") != ""
	skytracer.RAW = os.Getenv("RAW") != ""
	skytracer.NoClamp = os.Getenv("NO_CLAMP") != ""
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	cfg := ""
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	if err := skytracer.Run(cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if profile {
			pprof.StopCPUProfile()
		}
		os.Exit(1)
	}
}
