package view

import (
	"github.com/optionalg/tig/internal/buffer"
	"github.com/optionalg/tig/internal/classify"
)

// mustEntry builds a text-payload buffer entry for adapter tests.
func mustEntry(kind classify.LineKind, text string) buffer.Entry {
	return buffer.Entry{Kind: kind, Text: text}
}
