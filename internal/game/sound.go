package game

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// Cue is a sound fired together with the warp burst.
type Cue interface {
	Play()
}

// WarpCue is a short clip decoded fully into memory so it can be restarted
// on every search.
type WarpCue struct {
	buffer *beep.Buffer
}

// LoadWarpCue decodes the clip and initialises the speaker for its sample rate.
func LoadWarpCue(path string) (*WarpCue, error) {
	buffer, err := decodeCue(path)
	if err != nil {
		return nil, err
	}

	format := buffer.Format()
	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}
	log.Printf("[Sound] Loaded warp cue %s (%v)", path, format.SampleRate.D(buffer.Len()).Round(time.Millisecond))
	return &WarpCue{buffer: buffer}, nil
}

func decodeCue(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		return nil, errors.New("unsupported file type: " + ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return buffer, nil
}

// Play restarts the clip from the beginning. A re-trigger cuts the previous
// playback instead of layering on top of it.
func (c *WarpCue) Play() {
	if c == nil || c.buffer == nil {
		return
	}
	speaker.Clear()
	speaker.Play(c.buffer.Streamer(0, c.buffer.Len()))
}
