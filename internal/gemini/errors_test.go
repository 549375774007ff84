package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"google.golang.org/genai"

	"gemcli/internal/models"
)

func TestTranslateErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "429 status code",
			err:  genai.APIError{Code: 429, Message: "quota exceeded", Status: "RESOURCE_EXHAUSTED"},
			want: models.ErrRateLimited,
		},
		{
			name: "resource exhausted status string without code",
			err:  genai.APIError{Status: "RESOURCE_EXHAUSTED", Message: "slow down"},
			want: models.ErrRateLimited,
		},
		{
			name: "404 status code",
			err:  genai.APIError{Code: 404, Message: "models/not-a-real-model is not found", Status: "NOT_FOUND"},
			want: models.ErrModelNotFound,
		},
		{
			name: "wrapped api error",
			err:  fmt.Errorf("request failed: %w", genai.APIError{Code: 429, Message: "quota"}),
			want: models.ErrRateLimited,
		},
		{
			name: "free text quota fallback",
			err:  errors.New("googleapi: Error 429: quota exceeded for quota metric"),
			want: models.ErrRateLimited,
		},
		{
			name: "free text model fallback",
			err:  errors.New("404 model 'bogus' not found"),
			want: models.ErrModelNotFound,
		},
		{
			name: "free text unsupported method fallback",
			err:  errors.New("model is not supported for generateContent"),
			want: models.ErrModelNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateErr(tt.err)
			if !errors.Is(got, tt.want) {
				t.Errorf("translateErr(%v) = %v, want errors.Is %v", tt.err, got, tt.want)
			}
			if !strings.Contains(got.Error(), tt.err.Error()) {
				t.Errorf("translateErr lost the original message, got %q, want it to contain %q", got.Error(), tt.err.Error())
			}
		})
	}
}

func TestTranslateErrPassesThroughUnknown(t *testing.T) {
	err := errors.New("dial tcp: connection refused")
	got := translateErr(err)
	if !errors.Is(got, err) {
		t.Errorf("expected unknown errors untouched, got %v", got)
	}
	if errors.Is(got, models.ErrRateLimited) || errors.Is(got, models.ErrModelNotFound) {
		t.Errorf("unknown error was misclassified: %v", got)
	}
}

func TestTranslateErrTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "503", err: genai.APIError{Code: 503, Message: "overloaded", Status: "UNAVAILABLE"}},
		{name: "500", err: genai.APIError{Code: 500, Message: "internal", Status: "INTERNAL"}},
		{name: "deadline exceeded", err: fmt.Errorf("request: %w", context.DeadlineExceeded)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := translateErr(tt.err); !errors.Is(got, models.ErrTransient) {
				t.Errorf("translateErr(%v) = %v, want ErrTransient", tt.err, got)
			}
		})
	}
}

func TestTranslateErrOtherAPIErrorStaysUnclassified(t *testing.T) {
	apiErr := genai.APIError{Code: 400, Message: "invalid argument", Status: "INVALID_ARGUMENT"}
	got := translateErr(apiErr)
	if errors.Is(got, models.ErrRateLimited) || errors.Is(got, models.ErrModelNotFound) || errors.Is(got, models.ErrTransient) {
		t.Errorf("400 should stay unclassified, got %v", got)
	}
}
