// Package audio plays short synthesized cues for guess feedback.
package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Cue identifies a feedback sound
type Cue int

const (
	CueTooSmall Cue = iota
	CueTooBig
	CueWin
)

func (c Cue) String() string {
	switch c {
	case CueTooSmall:
		return "too_small"
	case CueTooBig:
		return "too_big"
	case CueWin:
		return "win"
	default:
		return "unknown"
	}
}

const (
	sampleRate = beep.SampleRate(48000)

	// Speaker buffer, trades latency for underrun safety
	bufferDuration = 100 * time.Millisecond

	toneDuration = 150 * time.Millisecond
	noteDuration = 90 * time.Millisecond
	toneAttack   = 5 * time.Millisecond
	toneRelease  = 60 * time.Millisecond
	noteRelease  = 40 * time.Millisecond

	masterVolume = 0.4
)
