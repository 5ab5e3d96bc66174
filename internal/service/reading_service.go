package service

import (
	"context"
	"fmt"
	"strings"

	"natal-api/internal/inference"
	"natal-api/internal/models"

	"github.com/rs/zerolog/log"
)

const readingPrompt = "Ты профессиональный астролог-психолог. Сделай мягкий, поддерживающий, глубокий разбор: " +
	"Лилит, Узлы, Фазу Луны. Дай практические советы, как работать с этой энергией, без фатализма. " +
	"Отвечай на русском, дружелюбно, структурированно.\n\n"

// Reading is an extended narrative built on top of a chart summary.
// Pending is set when the narrative service returned nothing.
type Reading struct {
	Text    string `json:"text"`
	Pending bool   `json:"pending"`
	Charge  Charge `json:"charge"`
}

// ReadingService charges the ledger and composes extended readings
type ReadingService struct {
	ledger    *LedgerService
	completer inference.Completer
}

// NewReadingService creates a reading service
func NewReadingService(ledger *LedgerService, completer inference.Completer) *ReadingService {
	return &ReadingService{ledger: ledger, completer: completer}
}

// Deep charges one reading and expands baseText into a narrative. The charge
// is kept when the narrative service fails.
func (s *ReadingService) Deep(ctx context.Context, uid int64, baseText string) (Reading, error) {
	charge, err := s.ledger.ConsumeReading(ctx, uid)
	if err != nil {
		return Reading{Charge: charge}, err
	}

	text, err := s.completer.Complete(ctx, readingPrompt+baseText)
	if err != nil {
		log.Warn().Err(err).Int64("uid", uid).Msg("service: narrative completion failed")
		text = ""
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Reading{Pending: true, Charge: charge}, nil
	}
	return Reading{Text: text, Charge: charge}, nil
}

// LilithSummary renders the short chart text fed to the narrative service
func LilithSummary(r *models.LilithReport) string {
	return fmt.Sprintf("Город: %s\nДата: %s %s\nЛилит: %s, дом %d\nСеверный узел: %s\nЮжный узел: %s\nФаза Луны: %s",
		r.Place.Name, r.Moment.DateString(), r.Moment.TimeString(),
		r.Lilith.Formatted, r.Lilith.House, r.NorthNode.Formatted, r.SouthNode.Formatted, r.PhaseLabel)
}
