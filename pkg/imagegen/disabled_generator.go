package imagegen

import (
	"context"
	"fmt"

	"style-weaver-be/pkg/styling"
)

// Disabled is used when no image service is configured. Every call is
// unavailable, so boards carry the placeholder image.
type Disabled struct{}

func (Disabled) GenerateImage(context.Context, string) (string, error) {
	return "", fmt.Errorf("%w: image generation is not configured", styling.ErrUnavailable)
}
