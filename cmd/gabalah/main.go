package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/cespare/xxhash"

	"github.com/gabalah/gabalah/internal/emu"
	"github.com/gabalah/gabalah/pkg/display"
	_ "github.com/gabalah/gabalah/pkg/display/sdl"
	"github.com/gabalah/gabalah/pkg/log"
	"github.com/gabalah/gabalah/pkg/utils"
)

func main() {
	// start pprof
	go func() {
		err := http.ListenAndServe("localhost:6060", nil)
		if err != nil {
			return
		}
	}()

	romFile := flag.String("rom", "", "The rom file to load")
	displayDriver := flag.String("driver", "auto", "The display driver to use")
	debug := flag.Bool("debug", false, "Log every instruction executed")
	flag.Parse()

	logger := log.New(*debug)

	if *romFile == "" {
		logger.Errorf("no rom file given, use -rom")
		os.Exit(1)
	}
	rom, err := utils.LoadFile(*romFile)
	if err != nil {
		logger.Errorf("loading rom: %v", err)
		os.Exit(1)
	}
	logger.Infof("loaded %s (%d bytes, xxhash %016x)", *romFile, len(rom), xxhash.Sum64(rom))

	driver := display.GetDriver(*displayDriver)
	if driver == nil {
		logger.Errorf("no display driver named %q installed", *displayDriver)
		os.Exit(1)
	}

	e := emu.NewEmulator(rom, emu.WithLogger(logger))

	frames := make(chan []uint8, 1)
	stop := make(chan struct{})
	go func() {
		if err := e.Run(frames, stop); err != nil {
			logger.Errorf("%v", err)
		}
	}()

	// SDL wants the main goroutine
	if err := driver.Start(frames, stop); err != nil {
		logger.Errorf("display: %v", err)
	}
	if err := driver.Stop(); err != nil {
		logger.Errorf("display: %v", err)
	}
}
