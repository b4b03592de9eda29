package timer

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/studytimer/studytimer/internal/config"
)

// resampleQuality is passed to beep.Resample when a file's sample rate
// differs from the speaker's.
const resampleQuality = 4

// ambientPlayer is the background sound driven by the countdown.
type ambientPlayer interface {
	Play() error
	Pause()
	Stop() error
	Close() error
}

// Ambient loops an audio file while a countdown runs.
type Ambient struct {
	stream beep.StreamSeekCloser
	ctrl   *beep.Ctrl
	path   string
}

// NewAmbient returns a loop of the file at path. Nothing is read until the
// first call to Play.
func NewAmbient(path string) *Ambient {
	return &Ambient{path: path}
}

// decodeSound opens the file at path and decodes it according to its
// extension. The returned stream owns the file.
func decodeSound(path string) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains(config.SoundFormats, ext) {
		return nil, beep.Format{}, errInvalidSoundFormat.Fmt(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, errAmbient.Fmt(path).Wrap(err)
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	switch ext {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	}

	if err != nil {
		_ = f.Close()
		return nil, beep.Format{}, errAmbient.Fmt(path).Wrap(err)
	}

	return stream, format, nil
}

func (a *Ambient) load() error {
	stream, format, err := decodeSound(a.path)
	if err != nil {
		return err
	}

	loop, err := beep.Loop2(stream)
	if err != nil {
		_ = stream.Close()
		return errAmbient.Fmt(a.path).Wrap(err)
	}

	if format.SampleRate != speakerRate {
		loop = beep.Resample(resampleQuality, format.SampleRate, speakerRate, loop)
	}

	err = initSpeaker()
	if err != nil {
		_ = stream.Close()
		return errAmbient.Fmt(a.path).Wrap(err)
	}

	a.stream = stream
	a.ctrl = &beep.Ctrl{Streamer: loop, Paused: true}

	speaker.Play(a.ctrl)

	return nil
}

// Play starts the loop or resumes it where it was paused.
func (a *Ambient) Play() error {
	if a.ctrl == nil {
		err := a.load()
		if err != nil {
			return err
		}
	}

	speaker.Lock()
	a.ctrl.Paused = false
	speaker.Unlock()

	return nil
}

// Pause silences the loop, keeping its position.
func (a *Ambient) Pause() {
	if a.ctrl == nil {
		return
	}

	speaker.Lock()
	a.ctrl.Paused = true
	speaker.Unlock()
}

// Stop silences the loop and rewinds it so the next Play starts from the
// beginning of the file.
func (a *Ambient) Stop() error {
	if a.ctrl == nil {
		return nil
	}

	speaker.Lock()
	defer speaker.Unlock()

	a.ctrl.Paused = true

	err := a.stream.Seek(0)
	if err != nil {
		return errAmbient.Fmt(a.path).Wrap(err)
	}

	return nil
}

// Close releases the file. The loop cannot be played again afterwards.
func (a *Ambient) Close() error {
	if a.ctrl == nil {
		return nil
	}

	speaker.Lock()
	a.ctrl.Paused = true
	a.ctrl.Streamer = nil
	speaker.Unlock()

	a.ctrl = nil

	return a.stream.Close()
}
