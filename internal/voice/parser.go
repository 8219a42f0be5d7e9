// Package voice turns a speech-recognition transcript into a structured
// inventory command.
package voice

import (
	"regexp"
	"strconv"
	"strings"

	"home-inventory/internal/models"
)

// Intent is the direction of an inventory change spoken by the user.
type Intent string

const (
	IntentAdd    Intent = "ADD"
	IntentRemove Intent = "REMOVE"
)

// Command is the parsed form of one transcript. Product is nil when no
// catalog entry matched; Quantity is signed, negative for REMOVE.
type Command struct {
	Product  *models.Product
	Quantity int
	Intent   Intent
	RawText  string
}

var digits = regexp.MustCompile(`\d+`)

// Spoken phrases meaning the item is gone or should be taken out.
var removeTriggers = []string{"נגמר", "חסר", "הורד", "תוציא", "סיימתי"}

// Parse extracts quantity, intent and a matched product from a transcript.
// The first number in the text is the magnitude (1 when absent); the
// product is the first catalog entry whose name or alias occurs in the
// lowercased transcript. Deterministic for identical inputs.
func Parse(transcript string, products []models.Product) Command {
	normalized := strings.ToLower(transcript)

	quantity := 1
	if m := digits.FindString(normalized); m != "" {
		if n, err := strconv.Atoi(m); err == nil {
			quantity = n
		}
	}

	intent := IntentAdd
	for _, w := range removeTriggers {
		if strings.Contains(normalized, w) {
			intent = IntentRemove
			break
		}
	}

	var product *models.Product
	for i := range products {
		if matchesTranscript(normalized, &products[i]) {
			product = &products[i]
			break
		}
	}

	if intent == IntentRemove {
		quantity = -quantity
	}
	return Command{
		Product:  product,
		Quantity: quantity,
		Intent:   intent,
		RawText:  transcript,
	}
}

func matchesTranscript(normalized string, p *models.Product) bool {
	if p.Name != "" && strings.Contains(normalized, strings.ToLower(p.Name)) {
		return true
	}
	for _, alias := range p.Aliases {
		if alias != "" && strings.Contains(normalized, strings.ToLower(alias)) {
			return true
		}
	}
	return false
}
