// Dvd bounces the DVD logo around a desktop window and plays a sound each
// time it hits an edge. Press Escape or Q, or close the window, to quit.
package main

import (
	"flag"
	"log"

	"github.com/phanxgames/bounce"
	"github.com/phanxgames/bounce/ebitenhost"
)

func main() {
	cfg := bounce.DefaultConfig()
	flag.StringVar(&cfg.MediaDir, "media", cfg.MediaDir, "directory holding the sprite and sound files")
	flag.StringVar(&cfg.ScriptPath, "script", "", "JSON input script to replay")
	flag.StringVar(&cfg.ScreenshotDir, "screenshots", cfg.ScreenshotDir, "directory for scripted screenshots")
	flag.BoolVar(&cfg.ShowFPS, "fps", false, "show the FPS overlay")
	flag.BoolVar(&cfg.Debug, "debug", false, "log frame timing statistics")
	flag.Parse()

	if err := ebitenhost.Run(cfg); err != nil {
		log.Fatalf("[bounce] app quit with failure: %v", err)
	}
}
