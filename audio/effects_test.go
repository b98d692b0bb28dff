package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain reads s to the end and returns every sample produced
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never drained")
	return nil
}

func TestOscillator_Length(t *testing.T) {
	s := NewOscillator(440, 10*time.Millisecond, WaveSine, sampleRate)
	samples := drain(t, s)
	assert.Len(t, samples, sampleRate.N(10*time.Millisecond))
	assert.NoError(t, s.Err())

	for _, smp := range samples {
		require.LessOrEqual(t, smp[0], 1.0)
		require.GreaterOrEqual(t, smp[0], -1.0)
		require.Equal(t, smp[0], smp[1])
	}
}

func TestOscillator_Square(t *testing.T) {
	samples := drain(t, NewOscillator(1000, 5*time.Millisecond, WaveSquare, sampleRate))
	for _, smp := range samples {
		require.True(t, smp[0] == 1.0 || smp[0] == -1.0)
	}
}

func TestEnvelope_Ramps(t *testing.T) {
	d := 20 * time.Millisecond
	osc := NewOscillator(1000, d, WaveSquare, sampleRate)
	samples := drain(t, NewEnvelope(osc, d, 5*time.Millisecond, 5*time.Millisecond, sampleRate))

	require.NotEmpty(t, samples)
	assert.Equal(t, 0.0, samples[0][0], "attack starts from silence")
	assert.InDelta(t, 0.0, samples[len(samples)-1][0], 0.01, "release ends near silence")

	mid := samples[len(samples)/2][0]
	assert.InDelta(t, 1.0, mid*mid, 1e-9, "sustain is full scale")
}

func TestNewCue_Durations(t *testing.T) {
	assert.Len(t, drain(t, NewCue(CueTooSmall)), sampleRate.N(toneDuration))
	assert.Len(t, drain(t, NewCue(CueTooBig)), sampleRate.N(toneDuration))
	assert.Len(t, drain(t, NewCue(CueWin)), 4*sampleRate.N(noteDuration))
	assert.Nil(t, NewCue(Cue(42)))
}

func TestNewCue_Attenuated(t *testing.T) {
	for _, smp := range drain(t, NewCue(CueTooBig)) {
		require.LessOrEqual(t, smp[0], masterVolume)
	}
}

func TestCue_String(t *testing.T) {
	assert.Equal(t, "too_small", CueTooSmall.String())
	assert.Equal(t, "win", CueWin.String())
	assert.Equal(t, "unknown", Cue(-1).String())
}
