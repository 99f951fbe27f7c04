package factory

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInvalidVolume is returned when a volume is outside 0..100.
var ErrInvalidVolume = errors.New("volume must be between 0 and 100")

// MediaFormat is an audio encoding.
type MediaFormat string

const (
	FormatMP3  MediaFormat = "mp3"
	FormatWAV  MediaFormat = "wav"
	FormatFLAC MediaFormat = "flac"
)

// AudioPlayer plays one media format.
type AudioPlayer interface {
	Play(w io.Writer) error
	Pause(w io.Writer) error
	Stop(w io.Writer) error
	Volume() int
	SetVolume(v int) error
	PlaybackRate() float64
	Format() MediaFormat
}

// NewAudioPlayer returns a player for format f.
func NewAudioPlayer(f MediaFormat, volume int, playbackRate float64) (AudioPlayer, error) {
	switch f {
	case FormatMP3, FormatWAV, FormatFLAC:
	default:
		return nil, fmt.Errorf("audio player %q: %w", f, ErrUnknownType)
	}
	p := &player{format: f, playbackRate: playbackRate}
	if err := p.SetVolume(volume); err != nil {
		return nil, err
	}
	return p, nil
}

// player is shared by every format; formats differ only in their label.
type player struct {
	format       MediaFormat
	volume       int
	playbackRate float64
}

func (p *player) label() string { return strings.ToUpper(string(p.format)) }

func (p *player) Play(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Playing %s audio\n", p.label())
	return err
}

func (p *player) Pause(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Pausing %s audio\n", p.label())
	return err
}

func (p *player) Stop(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Stopping %s audio\n", p.label())
	return err
}

func (p *player) Volume() int { return p.volume }

func (p *player) SetVolume(v int) error {
	if v < 0 || v > 100 {
		return fmt.Errorf("%w: got %d", ErrInvalidVolume, v)
	}
	p.volume = v
	return nil
}

func (p *player) PlaybackRate() float64 { return p.playbackRate }
func (p *player) Format() MediaFormat   { return p.format }
