package internal

import (
	"context"
	"fmt"
	"io"

	"gemcli/internal/catalog"
)

// modelLister short-circuits the chat loop entirely: print the catalog
// and exit.
type modelLister struct {
	cat *catalog.Catalog
	out io.Writer
}

func (m *modelLister) Query(ctx context.Context) error {
	names, err := m.cat.Names(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}
	fmt.Fprintln(m.out, "Available Gemini models:")
	for _, name := range names {
		fmt.Fprintf(m.out, "  - %v\n", name)
	}
	return nil
}
