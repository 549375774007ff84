// Package catalog filters the provider's model listing down to the
// chat-capable gemini models and validates requested identifiers
// against it.
package catalog

import (
	"context"
	"iter"
	"strings"

	"gemcli/internal/models"
)

// Model name fragments which mark non-chat variants. These never make
// sense as a conversation partner even when the API reports them.
var excludedFragments = []string{
	"embedding",
	"vision",
	"tts",
	"native-audio",
	"thinking",
}

// KnownGood are identifiers which reliably support generation, used as
// a fallback when the listing comes back empty after filtering.
var KnownGood = []string{
	"gemini-2.5-flash",
	"gemini-2.5-pro",
	"gemini-2.0-flash",
}

type Catalog struct {
	lister models.ModelLister
}

func New(lister models.ModelLister) *Catalog {
	return &Catalog{lister: lister}
}

// List yields the generation-capable gemini models lazily, in provider
// order. Listing errors end the sequence. Each call re-queries the
// provider; the sequence is not restartable.
func (c *Catalog) List(ctx context.Context) iter.Seq2[models.ModelSpec, error] {
	return func(yield func(models.ModelSpec, error) bool) {
		for spec, err := range c.lister.ListModels(ctx) {
			if err != nil {
				yield(models.ModelSpec{}, err)
				return
			}
			if !chatCapable(spec) {
				continue
			}
			if !yield(spec, nil) {
				return
			}
		}
	}
}

// Names drains List into identifier strings. When filtering leaves
// nothing, the known-good fallback list is returned instead, so the
// user always gets something actionable to try.
func (c *Catalog) Names(ctx context.Context) ([]string, error) {
	var names []string
	for spec, err := range c.List(ctx) {
		if err != nil {
			return nil, err
		}
		names = append(names, spec.Name)
	}
	if len(names) == 0 {
		return append([]string{}, KnownGood...), nil
	}
	return names, nil
}

// Validate reports whether identifier names a generation-capable model
// in the catalog. Both bare ('gemini-x') and prefixed ('models/gemini-x')
// spellings of the identifier are accepted, since the API reports the
// prefixed form.
func (c *Catalog) Validate(ctx context.Context, identifier string) (bool, error) {
	for spec, err := range c.List(ctx) {
		if err != nil {
			return false, err
		}
		if nameMatches(spec.Name, identifier) {
			return true, nil
		}
	}
	return false, nil
}

func chatCapable(spec models.ModelSpec) bool {
	if !spec.SupportsGeneration {
		return false
	}
	name := strings.ToLower(spec.Name)
	if !strings.Contains(name, "gemini") {
		return false
	}
	for _, fragment := range excludedFragments {
		if strings.Contains(name, fragment) {
			return false
		}
	}
	return true
}

func nameMatches(catalogName, identifier string) bool {
	return strings.TrimPrefix(catalogName, "models/") == strings.TrimPrefix(identifier, "models/")
}
