//go:build !ci

package sound

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// Cue names for session events. Each maps to an audio file of the same
// base name under assets/sounds.
const (
	CueAction  = "action"
	CueTurn    = "turn"
	CueVictory = "victory"
	CueError   = "error"
	CueShuffle = "shuffle"
	CueExplode = "explode"
)

// Manager loads the cue files once and plays them on demand. When the
// speaker cannot be initialized or a cue file is missing, playback is a
// silent no-op.
type Manager struct {
	buffers map[string]*beep.Buffer
	enabled bool
}

func NewManager() *Manager {
	return &Manager{
		buffers: make(map[string]*beep.Buffer),
	}
}

func (m *Manager) Init() error {
	sampleRate := beep.SampleRate(44100)
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}
	m.enabled = true

	return m.loadCueFiles(sampleRate)
}

func (m *Manager) loadCueFiles(sampleRate beep.SampleRate) error {
	soundDir := "assets/sounds"
	files, err := os.ReadDir(soundDir)
	if err != nil {
		// Missing directory just means no cues
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read sound directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}
		name := file.Name()
		ext := strings.ToLower(filepath.Ext(name))
		baseName := strings.TrimSuffix(name, filepath.Ext(name))

		if ext != ".mp3" && ext != ".wav" {
			continue
		}

		if err := m.loadCueFile(soundDir, name, baseName, ext, sampleRate); err != nil {
			// Keep loading the remaining cues
			continue
		}
	}

	return nil
}

func (m *Manager) loadCueFile(soundDir, name, baseName, ext string, sampleRate beep.SampleRate) error {
	path := filepath.Join(soundDir, name)
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch ext {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	}

	if err != nil {
		return err
	}
	defer func() { _ = streamer.Close() }()

	var resampled beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		resampled = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	standardFormat := beep.Format{
		SampleRate:  sampleRate,
		NumChannels: 2,
		Precision:   4,
	}

	buffer := beep.NewBuffer(standardFormat)
	buffer.Append(resampled)

	m.buffers[baseName] = buffer
	return nil
}

// Play starts a cue without blocking. Unknown cues are ignored.
func (m *Manager) Play(name string) {
	if !m.enabled {
		return
	}

	buffer, ok := m.buffers[name]
	if !ok {
		return
	}

	speaker.Play(buffer.Streamer(0, buffer.Len()))
}

func (m *Manager) Close() {
	m.enabled = false
}
