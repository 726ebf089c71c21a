package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/model"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for reading catalogue documents from
// the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based catalogue loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "catalog-loader").Logger(),
	}
}

// Load reads a JSON catalogue document and returns its products.
func (l *fileLoader) Load(ctx context.Context, path string) ([]model.Product, error) {
	l.logger.Info().Str("file", path).Msg("loading catalogue file")

	data, err := os.ReadFile(path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to read catalogue file")
		return nil, fmt.Errorf("failed to read catalogue file %s: %w", path, err)
	}

	products, err := decodeCatalog(data)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to decode catalogue file")
		return nil, fmt.Errorf("failed to decode catalogue file %s: %w", path, err)
	}

	l.logger.Info().
		Str("file", path).
		Int("products_loaded", len(products)).
		Msg("catalogue file loaded successfully")

	return products, nil
}

// decodeCatalog parses and validates a catalogue document. Every
// product must have a unique positive id and a non-negative price.
func decodeCatalog(data []byte) ([]model.Product, error) {
	var doc struct {
		Products []model.Product `json:"products"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid catalogue JSON: %w", err)
	}

	if len(doc.Products) == 0 {
		return nil, fmt.Errorf("catalogue document contains no products")
	}

	seen := make(map[int]struct{}, len(doc.Products))
	for _, p := range doc.Products {
		if p.ID <= 0 {
			return nil, fmt.Errorf("product %q has invalid id %d", p.Name, p.ID)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}
		seen[p.ID] = struct{}{}
		if p.Name == "" {
			return nil, fmt.Errorf("product %d has no name", p.ID)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("product %d has negative price", p.ID)
		}
		if p.Rating < 0 || p.Rating > 5 {
			return nil, fmt.Errorf("product %d has rating outside 0-5", p.ID)
		}
		if p.ReviewCount < 0 {
			return nil, fmt.Errorf("product %d has negative review count", p.ID)
		}
	}

	return doc.Products, nil
}
