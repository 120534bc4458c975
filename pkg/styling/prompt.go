package styling

import (
	"strings"

	"style-weaver-be/internal/entity"
)

const (
	placeholderTop    = "a stylish top"
	placeholderBottom = "matching bottoms"
	defaultVibe       = "versatile"
)

// BuildPrompt renders the flat lay prompt. The same inputs always produce
// the same prompt.
func BuildPrompt(trend entity.Trend, match entity.MatchResult) string {
	top := placeholderTop
	if match.Top != nil && strings.TrimSpace(match.Top.Item.Description) != "" {
		top = strings.TrimSpace(match.Top.Item.Description)
	}
	bottom := placeholderBottom
	if match.Bottom != nil && strings.TrimSpace(match.Bottom.Item.Description) != "" {
		bottom = strings.TrimSpace(match.Bottom.Item.Description)
	}
	vibes := strings.Join(trend.Vibes, ", ")
	if vibes == "" {
		vibes = defaultVibe
	}

	var sb strings.Builder
	sb.WriteString("Create a high-quality, product photography flat lay of a stylish outfit on a clean, neutral background (like light gray wood or marble). ")
	sb.WriteString("The outfit should look like it's from a fashion blog or magazine.\n\n")
	sb.WriteString("The outfit consists of:\n")
	sb.WriteString("- " + top + "\n")
	sb.WriteString("- " + bottom + "\n\n")
	sb.WriteString("The overall style should be " + vibes + ".\n\n")
	sb.WriteString("The image should be:\n")
	sb.WriteString("- Professional product photography quality\n")
	sb.WriteString("- Clean, minimalist composition\n")
	sb.WriteString("- Well-lit with soft shadows\n")
	sb.WriteString("- Items arranged aesthetically as a flat lay\n")
	sb.WriteString("- Background should be neutral (light gray, white, or natural wood)\n")
	sb.WriteString("- Style should convey the " + trend.Name + " trend aesthetic\n\n")
	sb.WriteString("Make it look like a high-end fashion blog or magazine feature.")
	return sb.String()
}
