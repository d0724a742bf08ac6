package activation

import (
	"strings"
	"unicode/utf8"
)

const (
	// PreviewThreshold is the length a key must exceed before the console is shown.
	PreviewThreshold = 3
	// MinKeyLength is the shortest key that is sent for validation.
	MinKeyLength = 6
	// DetailedPreviewLength unlocks the longer cosmetic preview.
	DetailedPreviewLength = 8
)

type InputStage string

const (
	StageHidden  InputStage = "hidden"
	StagePreview InputStage = "preview"
	StageArmed   InputStage = "armed"
)

// Key is a golden key candidate, normalized by trimming surrounding whitespace.
type Key string

func NewKey(raw string) Key {
	return Key(strings.TrimSpace(raw))
}

func (k Key) String() string {
	return string(k)
}

func (k Key) Len() int {
	return utf8.RuneCountInString(string(k))
}

func (k Key) IsEmpty() bool {
	return k == ""
}

// Stage decides what a key input change triggers.
func (k Key) Stage() InputStage {
	switch l := k.Len(); {
	case l <= PreviewThreshold:
		return StageHidden
	case l < MinKeyLength:
		return StagePreview
	default:
		return StageArmed
	}
}

func (k Key) Validatable() bool {
	return k.Len() >= MinKeyLength
}

// Masked keeps the first four characters, e.g. "GOLD****".
func (k Key) Masked() string {
	r := []rune(string(k))
	if len(r) > 4 {
		r = r[:4]
	}
	return string(r) + "****"
}
