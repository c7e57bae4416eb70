package codec

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
)

// EncodeStandaloneMarkup renders doc through the given page renderer.
func EncodeStandaloneMarkup(ctx context.Context, doc model.Document, renderer render.Renderer, opts render.RenderOptions) ([]byte, error) {
	if renderer == nil {
		return nil, errors.New("codec: standalone renderer is required")
	}
	out, err := renderer.Render(ctx, doc, opts)
	if err != nil {
		return nil, fmt.Errorf("codec: encode markup: %w", err)
	}
	return out, nil
}
