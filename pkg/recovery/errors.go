package recovery

import "errors"

var (
	// ErrEmptyInput indicates the raw recovery input contained no words.
	ErrEmptyInput = errors.New("recovery input is empty")

	// ErrWrongWordCount indicates the input word count does not match the phrase length.
	ErrWrongWordCount = errors.New("recovery input has wrong word count")

	// ErrFailedToGeneratePhrase indicates the random source failed.
	ErrFailedToGeneratePhrase = errors.New("failed to generate recovery phrase")

	// ErrFailedToGenerateSalt indicates salt generation failed.
	ErrFailedToGenerateSalt = errors.New("failed to generate recovery salt")
)
