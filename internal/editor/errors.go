package editor

import (
	"errors"
	"fmt"
)

// ErrNoImage is returned by operations that need a loaded image when the
// editor is empty.
var ErrNoImage = errors.New("no image loaded")

// DecodeError reports a source that could not be read as an image.
type DecodeError struct {
	Source string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot load %s: %v", e.Source, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports a destination that could not be written, either
// because its format is not supported or because of an I/O failure.
type EncodeError struct {
	Dest string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("cannot save %s: %v", e.Dest, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
