package timezone

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"natal-api/internal/inference"
)

// BaselineGuesser asks the inference service for a plain UTC offset of a
// city. It knows nothing about DST and only seeds the offset shown before
// the precise resolution runs.
type BaselineGuesser struct {
	completer inference.Completer
}

func NewBaselineGuesser(c inference.Completer) *BaselineGuesser {
	return &BaselineGuesser{completer: c}
}

func baselinePrompt(city, countryCode string) string {
	country := ""
	if countryCode != "" {
		country = fmt.Sprintf(" (страна ISO %s)", countryCode)
	}
	return fmt.Sprintf("Часовой пояс города '%s'%s относительно UTC. "+
		"Ответь только числом, например: 3, -5, 5.5", city, country)
}

// Guess returns the guessed offset; ok is false on any failure.
func (g *BaselineGuesser) Guess(ctx context.Context, city, countryCode string) (float64, bool) {
	if g == nil || g.completer == nil {
		return 0, false
	}
	reply, err := g.completer.Complete(ctx, baselinePrompt(city, countryCode))
	if err != nil {
		return 0, false
	}
	return ParseOffsetReply(reply)
}

// ParseOffsetReply parses a bare numeric offset such as "3", "-5" or "5,5".
func ParseOffsetReply(reply string) (float64, bool) {
	s := strings.TrimSpace(strings.ReplaceAll(reply, ",", "."))
	s = strings.TrimPrefix(s, "+")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || v < -14 || v > 14 {
		return 0, false
	}
	return v, true
}
