package bounce

import (
	"encoding/binary"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"
)

// resampleQuality is the beep resampler quality used when a WAV file does not
// match the output sample rate.
const resampleQuality = 4

// LoadImage decodes the PNG, JPEG or SVG file at path and scales it by scale.
// A scale of 0 or 1 keeps the native size. SVG files are rasterized directly
// at the scaled size of their view box.
func LoadImage(path string, scale float64) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, assetError("load image", err)
	}
	defer f.Close()

	if scale <= 0 {
		scale = 1
	}

	if strings.EqualFold(filepath.Ext(path), ".svg") {
		img, err := rasterizeSVG(f, scale)
		if err != nil {
			return nil, assetError("load image", fmt.Errorf("%s: %w", path, err))
		}
		return img, nil
	}

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, assetError("load image", fmt.Errorf("decode %s: %w", path, err))
	}
	if scale == 1 {
		return img, nil
	}
	b := img.Bounds()
	w := max(int(math.Round(float64(b.Dx())*scale)), 1)
	h := max(int(math.Round(float64(b.Dy())*scale)), 1)
	return ScaleImage(img, w, h), nil
}

// ScaleImage resamples img to w x h with a bilinear filter.
func ScaleImage(img image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}

// rasterizeSVG renders an SVG document at scale times its view box size.
func rasterizeSVG(r io.Reader, scale float64) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(r)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	w := int(math.Round(icon.ViewBox.W * scale))
	h := int(math.Round(icon.ViewBox.H * scale))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("svg view box %vx%v is empty", icon.ViewBox.W, icon.ViewBox.H)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	icon.Draw(rasterx.NewDasher(w, h, rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())), 1)
	return rgba, nil
}

// Sound is a fully decoded stereo PCM clip held in memory.
type Sound struct {
	buf *beep.Buffer
}

// LoadWAV decodes the WAV file at path into memory, resampled to rate
// samples per second. A rate of 0 keeps the file's own rate.
func LoadWAV(path string, rate int) (*Sound, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, assetError("load wav", err)
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, assetError("load wav", fmt.Errorf("decode %s: %w", path, err))
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if rate > 0 && format.SampleRate != beep.SampleRate(rate) {
		src = beep.Resample(resampleQuality, format.SampleRate, beep.SampleRate(rate), streamer)
		format.SampleRate = beep.SampleRate(rate)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: format.SampleRate, NumChannels: 2, Precision: 2})
	buf.Append(src)
	if err := streamer.Err(); err != nil {
		return nil, assetError("load wav", fmt.Errorf("read %s: %w", path, err))
	}
	if buf.Len() == 0 {
		return nil, assetError("load wav", fmt.Errorf("%s has no samples", path))
	}
	return &Sound{buf: buf}, nil
}

// NewSound builds a clip from in-memory stereo samples in [-1, 1].
func NewSound(rate int, samples [][2]float64) *Sound {
	buf := beep.NewBuffer(beep.Format{SampleRate: beep.SampleRate(rate), NumChannels: 2, Precision: 2})
	pos := 0
	buf.Append(beep.StreamerFunc(func(out [][2]float64) (int, bool) {
		if pos >= len(samples) {
			return 0, false
		}
		n := copy(out, samples[pos:])
		pos += n
		return n, true
	}))
	return &Sound{buf: buf}
}

// SampleRate returns the sample rate of the clip.
func (s *Sound) SampleRate() int {
	return int(s.buf.Format().SampleRate)
}

// Len returns the number of stereo frames in the clip.
func (s *Sound) Len() int {
	return s.buf.Len()
}

// Duration returns the playing time of the clip.
func (s *Sound) Duration() time.Duration {
	return s.buf.Format().SampleRate.D(s.buf.Len())
}

// Streamer returns a fresh streamer positioned at the first sample.
func (s *Sound) Streamer() beep.StreamSeeker {
	return s.buf.Streamer(0, s.buf.Len())
}

// PCM16 returns the clip as interleaved little-endian signed 16-bit stereo
// samples.
func (s *Sound) PCM16() []byte {
	out := make([]byte, 0, s.buf.Len()*4)
	st := s.Streamer()
	samples := make([][2]float64, 512)
	for {
		n, ok := st.Stream(samples)
		for _, frame := range samples[:n] {
			for _, v := range frame {
				out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(v)))
			}
		}
		if !ok {
			break
		}
	}
	return out
}

func toInt16(v float64) int16 {
	switch {
	case v >= 1:
		return 32767
	case v <= -1:
		return -32768
	default:
		return int16(v * 32767)
	}
}
