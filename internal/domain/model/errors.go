package model

import "fmt"

// UpstreamError reports a failed call to the marketplace API or page host:
// either a non-success status (Status and body text are carried as-is) or a
// transport failure (Status 0). Nothing is retried; one attempt, one error.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("upstream request failed: %s", e.Body)
	}
	return fmt.Sprintf("upstream returned status %d", e.Status)
}

// HashNotFoundError means the item page was fetched fine but the embedded
// hydration data was missing, unparseable, or lacked the item identifier.
// Usually the page layout changed or the item is gone.
type HashNotFoundError struct {
	Reason string
}

func (e *HashNotFoundError) Error() string {
	return "item hash not found: " + e.Reason
}

// ValidationError means the caller omitted or malformed a required input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}
