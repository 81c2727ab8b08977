// Package apperr defines the turn-level error taxonomy. Every fatal
// condition a turn can hit maps to one category the caller can branch on.
package apperr

import (
	"errors"
	"fmt"
)

// Category sentinels. Wrap with %w so callers can errors.Is against them.
var (
	ErrNoInput            = errors.New("no audio or text input provided")
	ErrEmptyTranscription = errors.New("could not transcribe audio")
	ErrMissingReference   = errors.New("reference audio/transcript not found")
	ErrGeneration         = errors.New("content generation failed")
	ErrAudioFailed        = errors.New("audio generation failed")
	ErrImageFailed        = errors.New("image generation failed")
	ErrInternal           = errors.New("internal error")
)

// Wrap attaches a category to an underlying cause.
func Wrap(category error, cause error) error {
	if cause == nil {
		return category
	}
	return fmt.Errorf("%w: %v", category, cause)
}

// Wrapf attaches a category to a formatted detail message.
func Wrapf(category error, format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{category}, args...)...)
}

// IsInput reports whether err is caller-fixable (bad request, not a server fault).
func IsInput(err error) bool {
	return errors.Is(err, ErrNoInput) || errors.Is(err, ErrEmptyTranscription)
}
