package fetch

import (
	"errors"
	"fmt"
)

// ErrResourceNotFound indicates the listing page has no workbook for a year.
var ErrResourceNotFound = errors.New("resource not found")

// ErrUnexpectedStatus indicates an HTTP response other than 200 OK.
var ErrUnexpectedStatus = errors.New("unexpected status code")

// YearNotFoundError reports the year that has no download link.
type YearNotFoundError struct {
	Year int
}

func (e *YearNotFoundError) Error() string {
	return fmt.Sprintf("no price workbook found for year %d", e.Year)
}

// Is matches ErrResourceNotFound.
func (e *YearNotFoundError) Is(target error) bool {
	return target == ErrResourceNotFound
}
