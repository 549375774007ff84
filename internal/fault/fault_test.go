package fault

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"gemcli/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		wantCategory    Category
		wantRemediation []string
	}{
		{
			name:            "rate limited",
			err:             fmt.Errorf("%w: 429 RESOURCE_EXHAUSTED quota exceeded", models.ErrRateLimited),
			wantCategory:    RATE_LIMIT,
			wantRemediation: []string{"Wait", "lighter model", "rate-limits"},
		},
		{
			name:            "model not found",
			err:             fmt.Errorf("%w: 'models/not-a-real-model'", models.ErrModelNotFound),
			wantCategory:    MODEL_NOT_FOUND,
			wantRemediation: []string{"-list-models", "gemini-2.5-flash"},
		},
		{
			name:            "transient",
			err:             fmt.Errorf("%w: 503 UNAVAILABLE", models.ErrTransient),
			wantCategory:    TRANSIENT,
			wantRemediation: []string{"Retry"},
		},
		{
			name:            "anything else is unknown",
			err:             errors.New("tcp reset by peer"),
			wantCategory:    UNKNOWN,
			wantRemediation: []string{"tcp reset by peer"},
		},
		{
			name:            "wrapped sentinels still match",
			err:             fmt.Errorf("failed to complete turn: %w", fmt.Errorf("%w: slow down", models.ErrRateLimited)),
			wantCategory:    RATE_LIMIT,
			wantRemediation: []string{"Wait"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			if got.Category != tt.wantCategory {
				t.Errorf("Classify() category = %v, want %v", got.Category, tt.wantCategory)
			}
			if got.Message != tt.err.Error() {
				t.Errorf("Classify() lost original message, got %q, want %q", got.Message, tt.err.Error())
			}
			if got.Remediation == "" {
				t.Error("Classify() remediation is empty")
			}
			for _, want := range tt.wantRemediation {
				if !strings.Contains(got.Remediation, want) {
					t.Errorf("Classify() remediation %q misses %q", got.Remediation, want)
				}
			}
		})
	}
}

func TestClassifiedErrorIsError(t *testing.T) {
	ce := Classify(fmt.Errorf("%w: nope", models.ErrModelNotFound))
	var asErr error = ce
	if !strings.Contains(asErr.Error(), "model not found") {
		t.Errorf("Error() = %q, expected category label in it", asErr.Error())
	}
	if !strings.Contains(asErr.Error(), "nope") {
		t.Errorf("Error() = %q, expected original message in it", asErr.Error())
	}
}
