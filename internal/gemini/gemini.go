// Package gemini adapts the Gemini API to the narrow provider contract
// the rest of gemcli consumes: complete one turn, list models. All
// knowledge about how the provider encodes failures lives here.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"os"
	"slices"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"google.golang.org/genai"

	"gemcli/internal/models"
)

const generateAction = "generateContent"

// Default holds the generation parameters gemcli starts from unless
// flags override them.
var Default = Config{
	Model:           "gemini-2.5-flash",
	Temperature:     0.7,
	TopP:            0.95,
	TopK:            40,
	MaxOutputTokens: 2048,
}

type Config struct {
	APIKey          string  `json:"-"`
	Model           string  `json:"model"`
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"top_p"`
	TopK            float64 `json:"top_k"`
	MaxOutputTokens int32   `json:"max_output_tokens"`
}

// Client talks to the Gemini API. It implements models.TurnCompleter
// and models.ModelLister.
type Client struct {
	client  *genai.Client
	model   string
	genConf *genai.GenerateContentConfig
	debug   bool
}

// New sets up the underlying genai client. The API key is treated as an
// opaque token: passed through, never logged.
func New(ctx context.Context, conf Config) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  conf.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Client{
		client:  client,
		model:   conf.Model,
		genConf: generateConfig(conf),
		debug:   misc.Truthy(os.Getenv("DEBUG")),
	}, nil
}

func generateConfig(conf Config) *genai.GenerateContentConfig {
	blockNone := []*genai.SafetySetting{
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockNone},
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockNone},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockNone},
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockNone},
	}
	return &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(conf.Temperature)),
		TopP:            genai.Ptr(float32(conf.TopP)),
		TopK:            genai.Ptr(float32(conf.TopK)),
		MaxOutputTokens: conf.MaxOutputTokens,
		SafetySettings:  blockNone,
	}
}

// Complete sends the full ordered chat history and returns the model's
// reply text. Provider failures come back as the typed sentinels from
// the models package, with the original message preserved.
func (c *Client) Complete(ctx context.Context, chat models.Chat) (string, error) {
	contents := make([]*genai.Content, 0, len(chat.Turns))
	for _, turn := range chat.Turns {
		var role genai.Role = genai.RoleUser
		if turn.Role == models.RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, c.genConf)
	if err != nil {
		return "", translateErr(err)
	}
	reply := resp.Text()
	if reply == "" {
		return "", errors.New("provider returned an empty completion")
	}
	if c.debug {
		ancli.Okf("completion for '%v' turns received, length: %v\n", len(chat.Turns), len(reply))
	}
	return reply, nil
}

// ListModels yields the provider's catalog lazily, in the order the API
// returns it. Errors from the listing call end the sequence.
func (c *Client) ListModels(ctx context.Context) iter.Seq2[models.ModelSpec, error] {
	return func(yield func(models.ModelSpec, error) bool) {
		for m, err := range c.client.Models.All(ctx) {
			if err != nil {
				yield(models.ModelSpec{}, fmt.Errorf("failed to list models: %w", err))
				return
			}
			spec := models.ModelSpec{
				Name:               m.Name,
				DisplayName:        m.DisplayName,
				SupportsGeneration: slices.Contains(m.SupportedActions, generateAction),
			}
			if !yield(spec, nil) {
				return
			}
		}
	}
}
