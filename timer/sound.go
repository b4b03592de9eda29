package timer

import (
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	speakerRate    beep.SampleRate = 44100
	alarmFrequency                 = 880
	alarmBeeps                     = 3
	alarmTone                      = 300 * time.Millisecond
	alarmGap                       = 150 * time.Millisecond
)

var (
	speakerOnce sync.Once
	speakerErr  error
)

// initSpeaker opens the audio device. The speaker cannot be initialised
// twice in one process, so the alarm and the ambient loop share it.
func initSpeaker() error {
	speakerOnce.Do(func() {
		bufferSize := 10

		speakerErr = speaker.Init(
			speakerRate,
			speakerRate.N(time.Second/time.Duration(bufferSize)),
		)
	})

	return speakerErr
}

// alarmStream returns a short sequence of beeps.
func alarmStream() (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, alarmBeeps*2)

	for range alarmBeeps {
		tone, err := generators.SineTone(speakerRate, alarmFrequency)
		if err != nil {
			return nil, errAlarm.Wrap(err)
		}

		parts = append(parts,
			beep.Take(speakerRate.N(alarmTone), tone),
			generators.Silence(speakerRate.N(alarmGap)),
		)
	}

	return &effects.Gain{
		Streamer: beep.Seq(parts...),
		Gain:     -0.7,
	}, nil
}

// playAlarm plays the alarm and waits for it to finish. Any ambient loop
// keeps playing underneath.
func playAlarm() error {
	stream, err := alarmStream()
	if err != nil {
		return err
	}

	err = initSpeaker()
	if err != nil {
		return errAlarm.Wrap(err)
	}

	speaker.PlayAndWait(stream)

	return nil
}
