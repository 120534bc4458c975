package styling

import (
	"context"
	"fmt"
	"strings"
	"time"

	"style-weaver-be/internal/entity"
	"style-weaver-be/internal/pkg/logger"
)

const compositorModule = "ImageCompositor"

const DefaultPlaceholderImage = "https://via.placeholder.com/400x600/f8f9fa/333333?text=Generated+Outfit+Image"

type CompositorConfig struct {
	Timeout     time.Duration
	Placeholder string
}

func DefaultCompositorConfig() CompositorConfig {
	return CompositorConfig{
		Timeout:     30 * time.Second,
		Placeholder: DefaultPlaceholderImage,
	}
}

type Compositor struct {
	generator ImageGenerator
	config    CompositorConfig
	logger    logger.ILogger
}

func NewCompositor(generator ImageGenerator, config CompositorConfig, logger logger.ILogger) *Compositor {
	defaults := DefaultCompositorConfig()
	if config.Timeout <= 0 {
		config.Timeout = defaults.Timeout
	}
	if config.Placeholder == "" {
		config.Placeholder = defaults.Placeholder
	}
	return &Compositor{generator: generator, config: config, logger: logger}
}

// Compose calls the image service exactly once. Any failure yields the
// placeholder image and a degraded stage.
func (c *Compositor) Compose(ctx context.Context, trend entity.Trend, match entity.MatchResult) Outcome[entity.GeneratedImage] {
	prompt := BuildPrompt(trend, match)
	placeholder := entity.GeneratedImage{
		Reference:   c.config.Placeholder,
		Prompt:      prompt,
		Placeholder: true,
	}

	genCtx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	ref, err := c.generator.GenerateImage(genCtx, prompt)
	if err == nil && strings.TrimSpace(ref) == "" {
		err = fmt.Errorf("%w: image service returned no image", ErrGenerationRejected)
	}
	if err != nil {
		err = asUnavailable(err)
		c.logger.Warn(compositorModule, "Image generation failed, using placeholder", map[string]interface{}{
			"trend":  trend.Name,
			"reason": ReasonOf(err),
			"error":  err.Error(),
		})
		return Fallback(placeholder, entity.StageStatusDegraded, err)
	}

	c.logger.Info(compositorModule, "Image generated", map[string]interface{}{"trend": trend.Name, "size": len(ref)})
	return Ok(entity.GeneratedImage{Reference: ref, Prompt: prompt})
}
