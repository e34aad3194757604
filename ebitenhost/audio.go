package ebitenhost

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/phanxgames/bounce"
)

// Player plays sounds through an Ebitengine audio context. Each sound gets
// one cached player; Stop pauses and rewinds the one last played. It
// implements bounce.AudioPlayer.
type Player struct {
	ctx     *audio.Context
	players map[*bounce.Sound]*audio.Player
	current *audio.Player
}

// NewPlayer returns a player on the process-wide audio context, creating it
// at sampleRate if it does not exist yet.
func NewPlayer(sampleRate int) (*Player, error) {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	if ctx.SampleRate() != sampleRate {
		return nil, fmt.Errorf("audio context runs at %d Hz, want %d Hz", ctx.SampleRate(), sampleRate)
	}
	return &Player{ctx: ctx, players: make(map[*bounce.Sound]*audio.Player)}, nil
}

// Stop implements bounce.AudioPlayer.
func (p *Player) Stop() error {
	if p.current == nil {
		return nil
	}
	p.current.Pause()
	return p.current.SetPosition(0)
}

// Play implements bounce.AudioPlayer.
func (p *Player) Play(s *bounce.Sound) error {
	if s.SampleRate() != p.ctx.SampleRate() {
		return fmt.Errorf("sound is %d Hz, audio context is %d Hz", s.SampleRate(), p.ctx.SampleRate())
	}
	pl, ok := p.players[s]
	if !ok {
		pl = p.ctx.NewPlayerFromBytes(s.PCM16())
		p.players[s] = pl
	}
	if err := pl.SetPosition(0); err != nil {
		return err
	}
	pl.Play()
	p.current = pl
	return nil
}

// Close releases every cached player.
func (p *Player) Close() error {
	var errs []error
	for s, pl := range p.players {
		if err := pl.Close(); err != nil {
			errs = append(errs, err)
		}
		delete(p.players, s)
	}
	p.current = nil
	return errors.Join(errs...)
}
