package store

import (
	"encoding/json"
	"log/slog"
)

const themeKey = "darkMode"

// Theme is the persisted dark mode preference.
type Theme struct {
	db DB
}

func NewTheme(db DB) *Theme {
	return &Theme{db: db}
}

// Dark reports the saved preference, or defaultValue when none is saved or
// the saved value cannot be read.
func (t *Theme) Dark(defaultValue bool) bool {
	b, err := t.db.Get(themeKey)
	if err != nil || len(b) == 0 {
		return defaultValue
	}

	var dark bool

	// the browser widget stored the flag as the string "true" or "false"
	err = json.Unmarshal(b, &dark)
	if err != nil {
		var s string
		if json.Unmarshal(b, &s) == nil && (s == "true" || s == "false") {
			return s == "true"
		}

		slog.Warn("ignoring malformed theme preference", slog.Any("error", err))

		return defaultValue
	}

	return dark
}

func (t *Theme) SetDark(dark bool) error {
	b, err := json.Marshal(dark)
	if err != nil {
		return errSaveTheme.Wrap(err)
	}

	err = t.db.Put(themeKey, b)
	if err != nil {
		return errSaveTheme.Wrap(err)
	}

	return nil
}

// Toggle flips the saved preference and returns the new value.
func (t *Theme) Toggle(defaultValue bool) (bool, error) {
	dark := !t.Dark(defaultValue)

	return dark, t.SetDark(dark)
}
