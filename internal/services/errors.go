package services

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFileType   = errors.New("only PDF resumes are supported")
	ErrFileTooLarge      = errors.New("file too large")
	ErrEmptyFile         = errors.New("uploaded file is empty")
	ErrMissingField      = errors.New("missing required field")
	ErrPageLimitExceeded = errors.New("page limit exceeded")
	ErrEmptyCompletion   = errors.New("no text content in completion")
	// ErrPermanent marks completion failures that retrying cannot fix.
	ErrPermanent = errors.New("permanent completion failure")
)

// PageLimitError is returned by the PDF parser when a document has more pages
// than allowed. It matches ErrPageLimitExceeded with errors.Is.
type PageLimitError struct {
	Pages int
	Limit int
}

func (e *PageLimitError) Error() string {
	return fmt.Sprintf("Your resume exceeds the %d-page limit. Please upload a shorter version.", e.Limit)
}

func (e *PageLimitError) Is(target error) bool {
	return target == ErrPageLimitExceeded
}

// StructuredParseError carries the cleaned model output that failed to parse.
type StructuredParseError struct {
	Cleaned string
	Err     error
}

func (e *StructuredParseError) Error() string {
	return fmt.Sprintf("failed to parse JSON:\n\n%s\n\nerror: %v", e.Cleaned, e.Err)
}

func (e *StructuredParseError) Unwrap() error {
	return e.Err
}

// StepError identifies the pipeline step whose completion failed.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %q failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
