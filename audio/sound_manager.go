package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/guess/logging"
)

var logger = logging.GetLogger("audio")

// Player plays feedback cues
type Player interface {
	Play(c Cue)
}

// SoundManager owns the speaker and a mixer all cues are routed through
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a sound manager, Initialize must be called before sounds are heard
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the audio device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(bufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	logger.Debug("speaker initialized", "rate", int(sampleRate))
	return nil
}

// Play queues a cue, a no-op until Initialize succeeds
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := NewCue(c)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Flush blocks until queued cues finish or max elapses
func (sm *SoundManager) Flush(max time.Duration) {
	sm.mu.Lock()
	initialized := sm.initialized
	sm.mu.Unlock()
	if !initialized {
		return
	}

	deadline := time.Now().Add(max)
	for time.Now().Before(deadline) {
		speaker.Lock()
		n := sm.mixer.Len()
		speaker.Unlock()
		if n == 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// Cleanup silences everything still playing
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep keeps the device open for the process lifetime
	sm.initialized = false
}
