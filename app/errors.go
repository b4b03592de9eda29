package app

import "github.com/studytimer/studytimer/internal/apperr"

var (
	errInvalidID = &apperr.Error{
		Message: "invalid record ID %q: IDs are the numbers in the ID column of 'studytimer records'",
	}

	errNoIDs = &apperr.Error{
		Message: "specify the IDs of the records to delete",
	}

	errInvalidSince = &apperr.Error{
		Message: "unable to understand --since value %q",
	}

	errInvalidWindow = &apperr.Error{
		Message: "invalid window %d: windows must be between %d and %d days",
	}

	errInvalidTheme = &apperr.Error{
		Message: "unknown theme %q: use dark, light, or toggle",
	}

	errImportPath = &apperr.Error{
		Message: "specify the JSON file to import",
	}

	errConfigNotLoaded = &apperr.Error{
		Message: "configuration was not loaded",
	}
)
