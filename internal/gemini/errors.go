package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"gemcli/internal/models"
)

// translateErr reduces whatever the provider returned to the typed
// failure set. Status codes are authoritative; text sniffing is a last
// resort for transports that lose the structured error, and it stays
// confined to this file.
func translateErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", models.ErrTransient, err)
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", models.ErrRateLimited, err)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %v", models.ErrModelNotFound, err)
		case http.StatusInternalServerError, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return fmt.Errorf("%w: %v", models.ErrTransient, err)
		}
		switch apiErr.Status {
		case "RESOURCE_EXHAUSTED":
			return fmt.Errorf("%w: %v", models.ErrRateLimited, err)
		case "NOT_FOUND":
			return fmt.Errorf("%w: %v", models.ErrModelNotFound, err)
		case "UNAVAILABLE", "DEADLINE_EXCEEDED":
			return fmt.Errorf("%w: %v", models.ErrTransient, err)
		}
		return err
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "429"), strings.Contains(msg, "quota"), strings.Contains(msg, "rate limit"):
		return fmt.Errorf("%w: %v", models.ErrRateLimited, err)
	case strings.Contains(msg, "not found") && (strings.Contains(msg, "404") || strings.Contains(msg, "model")),
		strings.Contains(msg, "not supported for generatecontent"):
		return fmt.Errorf("%w: %v", models.ErrModelNotFound, err)
	}
	return err
}
