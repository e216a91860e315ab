package dlsplot

import (
	"errors"
	"fmt"

	"github.com/ukaji3/dlsplot-go/pkg/dlsplot/models"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrUnknownCondition indicates a requested sheet is not in the workbook.
var ErrUnknownCondition = errors.New("unknown condition")

// ErrNoConditions indicates a workbook without any readable sheet.
var ErrNoConditions = errors.New("workbook has no readable sheets")

// ExtractionError represents a failure decoding one sheet.
type ExtractionError struct {
	SheetName string
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in sheet %q: %v", e.SheetName, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// SeriesError records why one series was skipped. It never aborts a render.
type SeriesError struct {
	Condition string
	Channel   models.Channel
	Weighting models.Weighting
	Err       error
}

func (e *SeriesError) Error() string {
	if e.Channel == "" {
		return fmt.Sprintf("%s: %v", e.Condition, e.Err)
	}
	if e.Weighting == "" {
		return fmt.Sprintf("%s / %s: %v", e.Condition, e.Channel.DisplayName(), e.Err)
	}
	return fmt.Sprintf("%s / %s / %s: %v", e.Condition, e.Channel.DisplayName(), e.Weighting, e.Err)
}

func (e *SeriesError) Unwrap() error {
	return e.Err
}

// NewSeriesError creates a new SeriesError.
func NewSeriesError(condition string, ch models.Channel, w models.Weighting, err error) *SeriesError {
	return &SeriesError{
		Condition: condition,
		Channel:   ch,
		Weighting: w,
		Err:       err,
	}
}
