package config

import "github.com/studytimer/studytimer/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errDecodeConfig = &apperr.Error{
		Message: "decoding config file failed",
	}

	errInvalidWindow = &apperr.Error{
		Message: "stats window must be between %d and %d days, got %d",
	}

	errNoWindows = &apperr.Error{
		Message: "at least one stats window is required",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "unsupported ambient sound %q: use a .flac, .mp3, .ogg, or .wav file",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "unknown log level: %s (must be debug, info, warn, or error)",
	}
)
