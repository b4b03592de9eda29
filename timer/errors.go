package timer

import "github.com/studytimer/studytimer/internal/apperr"

var (
	// ErrNoDraft is returned when confirming notes with no completed session
	// waiting.
	ErrNoDraft = &apperr.Error{
		Message: "no completed session is awaiting notes",
	}

	errSessionCmd = &apperr.Error{
		Message: "unable to parse session command %q",
	}

	errAlarm = &apperr.Error{
		Message: "unable to play the alarm",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "unsupported ambient sound %q: use a .flac, .mp3, .ogg, or .wav file",
	}

	errAmbient = &apperr.Error{
		Message: "unable to play ambient sound %q",
	}
)
