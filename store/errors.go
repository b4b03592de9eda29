package store

import "github.com/studytimer/studytimer/internal/apperr"

var (
	errAlreadyRunning = &apperr.Error{
		Message: "is studytimer already running? Only one instance can be active at a time",
	}

	errOpenDB = &apperr.Error{
		Message: "unable to open the records database",
	}

	errReadRecords = &apperr.Error{
		Message: "unable to read saved records",
	}

	errSaveRecords = &apperr.Error{
		Message: "unable to save records",
	}

	errSaveTheme = &apperr.Error{
		Message: "unable to save theme preference",
	}

	errImportFormat = &apperr.Error{
		Message: "import file must contain a JSON array of study records",
	}

	// ErrInvalidRecord is returned when appending a record with a
	// non-positive duration or an end time before its start time.
	ErrInvalidRecord = &apperr.Error{
		Message: "invalid record: duration must be positive and end time must not precede start time",
	}
)
