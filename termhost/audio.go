package termhost

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/phanxgames/bounce"
)

// speakerBuffer is the speaker's buffer length; it bounds playback latency.
const speakerBuffer = 50 * time.Millisecond

// Speaker plays sounds through beep's speaker. It implements
// bounce.AudioPlayer.
type Speaker struct {
	rate beep.SampleRate
}

// OpenSpeaker initializes the default output device at rate.
func OpenSpeaker(rate int) (*Speaker, error) {
	sr := beep.SampleRate(rate)
	if err := speaker.Init(sr, sr.N(speakerBuffer)); err != nil {
		return nil, err
	}
	return &Speaker{rate: sr}, nil
}

// Stop implements bounce.AudioPlayer.
func (s *Speaker) Stop() error {
	speaker.Clear()
	return nil
}

// Play implements bounce.AudioPlayer.
func (s *Speaker) Play(snd *bounce.Sound) error {
	if beep.SampleRate(snd.SampleRate()) != s.rate {
		return fmt.Errorf("sound is %d Hz, speaker is %d Hz", snd.SampleRate(), s.rate)
	}
	speaker.Play(snd.Streamer())
	return nil
}

// Close silences and releases the output device.
func (s *Speaker) Close() {
	speaker.Clear()
	speaker.Close()
}
