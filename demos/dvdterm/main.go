// Dvdterm bounces the DVD logo around the terminal using half-block cells.
// Press Escape, Q or Ctrl-C to quit.
package main

import (
	"flag"
	"log"

	"github.com/phanxgames/bounce"
	"github.com/phanxgames/bounce/termhost"
)

func main() {
	cfg := bounce.DefaultConfig()
	flag.StringVar(&cfg.MediaDir, "media", cfg.MediaDir, "directory holding the sprite and sound files")
	flag.StringVar(&cfg.ScriptPath, "script", "", "JSON input script to replay")
	flag.DurationVar(&cfg.FramePeriod, "frame", cfg.FramePeriod, "target frame period")
	flag.BoolVar(&cfg.Debug, "debug", false, "log frame timing statistics")
	flag.Parse()

	if err := termhost.Run(cfg); err != nil {
		log.Fatalf("[bounce] app quit with failure: %v", err)
	}
}
