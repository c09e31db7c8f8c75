package ai

import "errors"

var (
	ErrMissingInput     = errors.New("question and fileId are required")
	ErrGenerationFailed = errors.New("generation failed")
)
