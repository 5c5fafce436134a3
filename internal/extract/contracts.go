package extract

import (
	"context"
	"time"
)

// TextExtractor is the OCR collaborator contract: image bytes -> raw text.
type TextExtractor interface {
	ExtractText(ctx context.Context, image []byte) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text      string
	WordCount int
	Duration  time.Duration
}
