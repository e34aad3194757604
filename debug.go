package bounce

import (
	"log"
	"time"
)

// frameStats holds accumulated per-frame timings. Only populated when the
// driver runs in debug mode.
type frameStats struct {
	frames     int
	hits       int
	tickTime   time.Duration
	renderTime time.Duration
	audioTime  time.Duration
	frameTime  time.Duration
}

// add accumulates one frame.
func (s *frameStats) add(f frameStats) {
	s.frames++
	s.hits += f.hits
	s.tickTime += f.tickTime
	s.renderTime += f.renderTime
	s.audioTime += f.audioTime
	s.frameTime += f.frameTime
}

// debugLog prints the averaged stats and resets them.
func (s *frameStats) debugLog(logger *log.Logger, w *World) {
	if s.frames == 0 {
		return
	}
	n := time.Duration(s.frames)
	logger.Printf("tick: %v | render: %v | audio: %v | frame: %v | frames: %d",
		s.tickTime/n, s.renderTime/n, s.audioTime/n, s.frameTime/n, s.frames)
	logger.Printf("hits: %d | rect: (%.1f, %.1f) | velocity: (%.0f, %.0f) | window: %dx%d",
		s.hits, w.Rect.X, w.Rect.Y, w.Velocity.X, w.Velocity.Y, w.Dims.W, w.Dims.H)
	*s = frameStats{}
}
