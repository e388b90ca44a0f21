package wordlist

import (
	"errors"
	"fmt"
)

// ErrEmptySource is returned when a source holds no non-blank entries.
var ErrEmptySource = errors.New("no entries found")

// LoadError reports a word list that could not be loaded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
