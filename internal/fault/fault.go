// Package fault turns provider failures into actionable guidance. The
// provider adapter has already reduced failures to a small typed set,
// so classification here is a total mapping and never fails itself.
package fault

import (
	"errors"
	"fmt"

	"gemcli/internal/models"
)

type Category int

const (
	UNKNOWN Category = iota
	RATE_LIMIT
	MODEL_NOT_FOUND
	TRANSIENT
)

func (c Category) String() string {
	switch c {
	case RATE_LIMIT:
		return "rate limit"
	case MODEL_NOT_FOUND:
		return "model not found"
	case TRANSIENT:
		return "transient"
	default:
		return "unknown"
	}
}

// ClassifiedError carries the category, the untouched original failure
// text and a remediation message fit for printing to the user.
type ClassifiedError struct {
	Category    Category
	Message     string
	Remediation string
}

func (ce *ClassifiedError) Error() string {
	return fmt.Sprintf("%v: %v", ce.Category, ce.Message)
}

const rateLimitRemediation = `You've hit the API rate limits.
Tips to resolve this issue:
  1. Wait a minute before trying again
  2. Try a lighter model, for example '-model gemini-2.5-flash-lite'
  3. Check your quota at https://ai.google.dev/gemini-api/docs/rate-limits`

const modelNotFoundRemediation = `The requested model isn't available for content generation.
Run 'gemcli -list-models' to see what your key has access to, or try one
of these reliable models:
  - gemini-2.5-flash (recommended)
  - gemini-2.5-pro
  - gemini-2.0-flash`

const transientRemediation = `The provider had a temporary problem serving the request.
Retry in a moment; if it keeps happening, report it upstream.`

// Classify maps any provider failure to a ClassifiedError. The original
// error text is always kept in Message, regardless of category.
func Classify(err error) *ClassifiedError {
	ce := ClassifiedError{Message: err.Error()}
	switch {
	case errors.Is(err, models.ErrRateLimited):
		ce.Category = RATE_LIMIT
		ce.Remediation = rateLimitRemediation
	case errors.Is(err, models.ErrModelNotFound):
		ce.Category = MODEL_NOT_FOUND
		ce.Remediation = modelNotFoundRemediation
	case errors.Is(err, models.ErrTransient):
		ce.Category = TRANSIENT
		ce.Remediation = transientRemediation
	default:
		ce.Category = UNKNOWN
		ce.Remediation = ce.Message
	}
	return &ce
}
