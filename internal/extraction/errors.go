package extraction

import (
	"errors"
	"fmt"
)

// Domain-specific errors for the extraction package.
var (
	ErrExtractionFailed  = errors.New("text extraction failed")
	ErrNoTextExtracted   = fmt.Errorf("%w: no text could be extracted", ErrExtractionFailed)
	ErrStructuringFailed = errors.New("task structuring failed")
	ErrUnsupportedMedia  = errors.New("unsupported media")
)
