// Package helpers provides pure utility functions shared by the
// SupportFlow and CareFlow applications: event ID generation, timestamp
// formatting, text truncation, and per-token cost calculation. Nothing
// here performs I/O.
package helpers

import (
	"encoding/hex"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultEventIDPrefix is used when GenerateEventID is called with an
	// empty prefix.
	DefaultEventIDPrefix = "EVT"

	// DefaultModel is the model assumed by CalculateCost when none is given.
	DefaultModel = "gpt-4o-mini"

	timestampLayout      = "2006-01-02T15:04:05"
	timestampShortLayout = "15:04:05"
)

// ModelCost holds USD rates per 1000 tokens for one model.
type ModelCost struct {
	Input  float64
	Output float64
}

// ModelCosts maps model names to their USD cost per 1000 tokens.
var ModelCosts = map[string]ModelCost{
	"gpt-4o-mini":   {Input: 0.00015, Output: 0.0006},
	"gpt-4o":        {Input: 0.005, Output: 0.015},
	"gpt-4-turbo":   {Input: 0.01, Output: 0.03},
	"gpt-4":         {Input: 0.03, Output: 0.06},
	"gpt-3.5-turbo": {Input: 0.0005, Output: 0.0015},
}

// GenerateEventID returns a unique identifier in the form
// "{prefix}_{12 uppercase hex characters}". The random part carries 48
// bits of entropy from a v4 UUID, so collisions are negligible.
func GenerateEventID(prefix string) string {
	if prefix == "" {
		prefix = DefaultEventIDPrefix
	}
	id := uuid.New()
	return prefix + "_" + strings.ToUpper(hex.EncodeToString(id[:6]))
}

// FormatTimestamp renders t as "YYYY-MM-DDTHH:MM:SS" with second
// precision and no timezone suffix. A zero t means the current UTC time.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		t = time.Now().UTC()
	}
	return t.Format(timestampLayout)
}

// FormatTimestampShort renders t as "HH:MM:SS". A zero t means the
// current UTC time.
func FormatTimestampShort(t time.Time) string {
	if t.IsZero() {
		t = time.Now().UTC()
	}
	return t.Format(timestampShortLayout)
}

// TruncateText shortens text to at most maxLength characters, replacing
// the tail with "..." when it had to cut. When maxLength <= 3 the
// ellipsis would not fit, so the text is hard-cut instead. Lengths count
// runes, not bytes, so multibyte text is never split mid-character.
func TruncateText(text string, maxLength int) string {
	if text == "" {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	if maxLength <= 3 {
		if maxLength < 0 {
			maxLength = 0
		}
		return string(runes[:maxLength])
	}
	return string(runes[:maxLength-3]) + "..."
}

// CalculateCost returns the USD cost of a model call given its token
// usage, rounded to 6 decimal places. Unknown models cost 0.0; an
// empty model means DefaultModel.
func CalculateCost(inputTokens, outputTokens int, model string) float64 {
	if model == "" {
		model = DefaultModel
	}
	costs, ok := ModelCosts[model]
	if !ok {
		return 0.0
	}

	inputCost := float64(inputTokens) / 1000 * costs.Input
	outputCost := float64(outputTokens) / 1000 * costs.Output

	return math.Round((inputCost+outputCost)*1e6) / 1e6
}
