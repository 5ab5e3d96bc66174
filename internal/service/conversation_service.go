package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"natal-api/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Prompt keys returned to the caller. Rendering is up to the transport.
const (
	PromptAskCity      = "ask_city"
	PromptCityNotFound = "city_not_found"
	PromptAskDay       = "ask_day"
	PromptAskMonth     = "ask_month"
	PromptAskYear      = "ask_year"
	PromptAskHour      = "ask_hour"
	PromptDigitsOnly   = "digits_only"
	PromptInvalidDate  = "invalid_date"
	PromptInvalidHour  = "invalid_hour"
	PromptCancelled    = "cancelled"
	PromptResult       = "result"
)

var cancelInputs = map[string]struct{}{
	"cancel":          {},
	"❌ Отмена":        {},
	"🏠 Главное меню": {},
}

// SessionStore persists conversation sessions. GetSession returns
// models.ErrSessionNotFound for unknown ids.
type SessionStore interface {
	GetSession(ctx context.Context, id string) (*models.Session, error)
	SaveSession(ctx context.Context, sess models.Session) error
	DeleteSession(ctx context.Context, id string) error
}

// Reply is the outcome of one conversation step
type Reply struct {
	SessionID      string               `json:"session_id"`
	State          models.SessionState  `json:"state"`
	Prompt         string               `json:"prompt"`
	Place          *models.GeoPlace     `json:"place,omitempty"`
	BaselineOffset float64              `json:"baseline_offset,omitempty"`
	Lilith         *models.LilithReport `json:"lilith,omitempty"`
	Nodes          *models.NodesReport  `json:"nodes,omitempty"`
	Summary        string               `json:"summary,omitempty"`
}

// ConversationService drives the city -> day -> month -> year -> hour data
// collection state machine
type ConversationService struct {
	sessions SessionStore
	places   PlaceResolver
	charts   *ChartService
}

// NewConversationService creates a conversation service
func NewConversationService(sessions SessionStore, places PlaceResolver, charts *ChartService) *ConversationService {
	return &ConversationService{sessions: sessions, places: places, charts: charts}
}

// Start opens a session for flow. An empty id gets a generated one.
func (s *ConversationService) Start(ctx context.Context, id string, flow models.Flow) (Reply, error) {
	if flow != models.FlowLilith && flow != models.FlowNodes {
		return Reply{}, fmt.Errorf("service: unknown flow %q", flow)
	}
	if id == "" {
		id = uuid.NewString()
	}

	sess := models.Session{ID: id, Flow: flow, State: models.StateCity}
	if err := s.sessions.SaveSession(ctx, sess); err != nil {
		return Reply{}, fmt.Errorf("service: failed to save session: %w", err)
	}
	return Reply{SessionID: id, State: models.StateCity, Prompt: PromptAskCity}, nil
}

// Handle advances session id with the user's text
func (s *ConversationService) Handle(ctx context.Context, id, text string) (Reply, error) {
	sess, err := s.sessions.GetSession(ctx, id)
	if err != nil {
		return Reply{}, err
	}
	text = strings.TrimSpace(text)

	if _, ok := cancelInputs[text]; ok {
		return s.end(ctx, sess, Reply{Prompt: PromptCancelled})
	}

	switch sess.State {
	case models.StateCity:
		return s.handleCity(ctx, sess, text)
	case models.StateDay, models.StateMonth, models.StateYear:
		return s.handleDate(ctx, sess, text)
	case models.StateHour:
		return s.handleHour(ctx, sess, text)
	}
	return s.end(ctx, sess, Reply{Prompt: PromptCancelled})
}

func (s *ConversationService) handleCity(ctx context.Context, sess *models.Session, text string) (Reply, error) {
	place, err := s.places.Resolve(ctx, text)
	if errors.Is(err, models.ErrPlaceNotFound) {
		return s.reply(sess, PromptCityNotFound), nil
	}
	if err != nil {
		return Reply{}, err
	}

	sess.Place = &place
	sess.BaselineOffset = s.charts.Baseline(ctx, place)
	sess.State = models.StateDay
	if err := s.save(ctx, sess); err != nil {
		return Reply{}, err
	}

	r := s.reply(sess, PromptAskDay)
	r.Place = &place
	r.BaselineOffset = sess.BaselineOffset
	return r, nil
}

func (s *ConversationService) handleDate(ctx context.Context, sess *models.Session, text string) (Reply, error) {
	n, ok := digits(text)
	if !ok {
		return s.reply(sess, PromptDigitsOnly), nil
	}

	prompt := PromptAskMonth
	switch sess.State {
	case models.StateDay:
		sess.Day = n
		sess.State = models.StateMonth
	case models.StateMonth:
		sess.Month = n
		sess.State = models.StateYear
		prompt = PromptAskYear
	case models.StateYear:
		sess.Year = n
		sess.State = models.StateHour
		prompt = PromptAskHour
		if !models.ValidDate(sess.Day, sess.Month, sess.Year) {
			sess.State = models.StateDay
			prompt = PromptInvalidDate
		}
	}

	if err := s.save(ctx, sess); err != nil {
		return Reply{}, err
	}
	return s.reply(sess, prompt), nil
}

func (s *ConversationService) handleHour(ctx context.Context, sess *models.Session, text string) (Reply, error) {
	hour, ok := digits(text)
	if !ok {
		return s.reply(sess, PromptDigitsOnly), nil
	}
	if hour > 23 {
		return s.reply(sess, PromptInvalidHour), nil
	}

	baseline := sess.BaselineOffset
	req := ChartRequest{
		Place:    sess.Place,
		Moment:   models.BirthMoment{Day: sess.Day, Month: sess.Month, Year: sess.Year, Hour: hour},
		Baseline: &baseline,
	}

	out := Reply{Prompt: PromptResult, Place: sess.Place, BaselineOffset: baseline}
	switch sess.Flow {
	case models.FlowNodes:
		report, err := s.charts.Nodes(ctx, req)
		if err != nil {
			s.drop(ctx, sess.ID)
			return Reply{}, err
		}
		out.Nodes = report
	default:
		report, err := s.charts.Lilith(ctx, req)
		if err != nil {
			s.drop(ctx, sess.ID)
			return Reply{}, err
		}
		out.Lilith = report
		out.Summary = LilithSummary(report)
	}
	return s.end(ctx, sess, out)
}

func (s *ConversationService) end(ctx context.Context, sess *models.Session, r Reply) (Reply, error) {
	s.drop(ctx, sess.ID)
	r.SessionID = sess.ID
	r.State = models.StateEnded
	return r, nil
}

func (s *ConversationService) drop(ctx context.Context, id string) {
	if err := s.sessions.DeleteSession(ctx, id); err != nil {
		log.Warn().Err(err).Str("session", id).Msg("service: failed to delete session")
	}
}

func (s *ConversationService) save(ctx context.Context, sess *models.Session) error {
	if err := s.sessions.SaveSession(ctx, *sess); err != nil {
		return fmt.Errorf("service: failed to save session: %w", err)
	}
	return nil
}

func (s *ConversationService) reply(sess *models.Session, prompt string) Reply {
	return Reply{SessionID: sess.ID, State: sess.State, Prompt: prompt}
}

// digits parses a non-empty string of ASCII digits.
func digits(text string) (int, bool) {
	if text == "" {
		return 0, false
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}
	return n, true
}
