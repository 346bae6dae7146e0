package services

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"reviu-server/models"
	"reviu-server/utils"
)

// Step is the wizard position. Steps 5 and 8 are terminal; exactly one of
// them is reached per completed pass, decided by the breakdown mean at the
// moment step 4 completes.
type Step int

const (
	StepIdentify Step = iota // respondent name/email/age bracket
	StepFood
	StepService
	StepAmbiance
	StepMusic
	StepShare     // positive terminal: copy text + external redirect
	StepCategory  // negative flow: complaint category
	StepComplaint // negative flow: free text + optional phone
	StepDone      // negative terminal
)

// Dimension names one axis of the breakdown vector
type Dimension string

const (
	DimensionFood     Dimension = "food"
	DimensionService  Dimension = "service"
	DimensionAmbiance Dimension = "ambiance"
	DimensionMusic    Dimension = "music"
)

// StepPrompt carries the label and question shown for a rating step
type StepPrompt struct {
	Dimension Dimension `json:"dimension"`
	Label     string    `json:"label"`
	Question  string    `json:"question"`
}

// RatingPrompts lists the four rating steps in wizard order
var RatingPrompts = []StepPrompt{
	{DimensionFood, "GASTRONOMIA", "A QUALIDADE, SABOR E APRESENTAÇÃO DOS PRATOS SURPREENDERAM?"},
	{DimensionService, "ATENDIMENTO", "A EQUIPE DEMONSTROU CORTESIA, AGILIDADE E CONHECIMENTO TÉCNICO?"},
	{DimensionAmbiance, "AMBIENTE", "A ILUMINAÇÃO, TEMPERATURA E DECORAÇÃO CRIARAM O CLIMA IDEAL?"},
	{DimensionMusic, "MÚSICA / SOM", "A SELEÇÃO MUSICAL E O VOLUME ESTAVAM CONFORTÁVEIS PARA CONVERSAR?"},
}

// ShareFallbackText is used when a positive review carries no comments at all
const ShareFallbackText = "Experiência excelente!"

var (
	ErrSessionNotFound    = errors.New("wizard session not found")
	ErrStepIncomplete     = errors.New("current step requirements not met")
	ErrInvalidTransition  = errors.New("transition not allowed from current step")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrInvalidDimension   = errors.New("dimension does not match current step")
	ErrInvalidCategory    = errors.New("unknown complaint category")
	ErrAlreadySubmitted   = errors.New("review already submitted for this session")
	ErrSubmissionRejected = errors.New("review could not be persisted")
)

// ComplaintDetails is the negative-flow capture
type ComplaintDetails struct {
	Comment  string `json:"comment"`
	Category string `json:"category"`
	Phone    string `json:"phone"`
}

// WizardSession holds one customer's in-progress questionnaire. All fields
// reset to their zero values after a terminal step is dismissed.
type WizardSession struct {
	ID               string
	TenantID         string
	TenantName       string
	GoogleReviewLink string
	Waiter           *models.Waiter

	Step              Step
	UserInfo          models.UserInfo
	Breakdown         models.Breakdown
	BreakdownComments models.BreakdownComments
	Details           ComplaintDetails
	NegativeFlow      bool
	Submitted         bool

	LastActive time.Time
}

// SharePayload is what the positive terminal hands the client: the assembled
// comment text and where to take it. Copying and the redirect are client
// concerns; building the payload never fails.
type SharePayload struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

// ReviewSink persists a finished review. Exactly one call is made per
// completed wizard pass.
type ReviewSink func(*models.Review) error

// WizardManager owns the in-memory session store. Sessions are driven by one
// browser each, but the map is shared across requests.
type WizardManager struct {
	mu          sync.Mutex
	sessions    map[string]*WizardSession
	persist     ReviewSink
	defaultLink string
	now         func() time.Time
}

// NewWizardManager creates a wizard manager backed by the given review sink
func NewWizardManager(persist ReviewSink, defaultLink string) *WizardManager {
	return &WizardManager{
		sessions:    make(map[string]*WizardSession),
		persist:     persist,
		defaultLink: defaultLink,
		now:         time.Now,
	}
}

// Start opens a new session scoped to a tenant, optionally pre-bound to a
// waiter already validated against that tenant's active roster.
func (m *WizardManager) Start(tenant *models.Tenant, waiter *models.Waiter) *WizardSession {
	m.mu.Lock()
	defer m.mu.Unlock()

	session := &WizardSession{
		ID:               uuid.New().String(),
		TenantID:         tenant.ID,
		TenantName:       tenant.Name,
		GoogleReviewLink: tenant.GoogleReviewLink,
		Waiter:           waiter,
		Step:             StepIdentify,
		LastActive:       m.now(),
	}
	m.sessions[session.ID] = session
	return session
}

// Get returns a snapshot of a session's current state
func (m *WizardManager) Get(id string) (WizardSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok {
		return WizardSession{}, ErrSessionNotFound
	}
	return *session, nil
}

// SetIdentity records the respondent info. Only valid at step 0.
func (m *WizardManager) SetIdentity(id string, info models.UserInfo) error {
	return m.withSession(id, func(s *WizardSession) error {
		if s.Step != StepIdentify {
			return ErrInvalidTransition
		}
		if info.AgeRange != "" && !models.IsValidAgeRange(info.AgeRange) {
			return ErrStepIncomplete
		}
		s.UserInfo = info
		return nil
	})
}

// SetRating records the rating (and optional note) for the dimension of the
// current step.
func (m *WizardManager) SetRating(id string, dim Dimension, value int, comment string) error {
	return m.withSession(id, func(s *WizardSession) error {
		current, ok := dimensionForStep(s.Step)
		if !ok {
			return ErrInvalidTransition
		}
		if current != dim {
			return ErrInvalidDimension
		}
		if value < 1 || value > 5 {
			return ErrInvalidRating
		}
		switch dim {
		case DimensionFood:
			s.Breakdown.Food = value
			s.BreakdownComments.Food = comment
		case DimensionService:
			s.Breakdown.Service = value
			s.BreakdownComments.Service = comment
		case DimensionAmbiance:
			s.Breakdown.Ambiance = value
			s.BreakdownComments.Ambiance = comment
		case DimensionMusic:
			s.Breakdown.Music = value
			s.BreakdownComments.Music = comment
		}
		return nil
	})
}

// SetCategory selects the complaint category. Only valid at step 6.
func (m *WizardManager) SetCategory(id, category string) error {
	return m.withSession(id, func(s *WizardSession) error {
		if s.Step != StepCategory {
			return ErrInvalidTransition
		}
		if !models.IsValidComplaintCategory(category) {
			return ErrInvalidCategory
		}
		s.Details.Category = category
		return nil
	})
}

// Next advances the wizard. At step 4 the branch compares the UNROUNDED
// breakdown mean against the publish threshold; a mean of exactly 4.0 takes
// the positive branch, which persists the review before moving to step 5.
func (m *WizardManager) Next(id string) (WizardSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return WizardSession{}, ErrSessionNotFound
	}
	s.LastActive = m.now()

	switch s.Step {
	case StepIdentify:
		if s.UserInfo.Name == "" || s.UserInfo.Email == "" {
			return *s, ErrStepIncomplete
		}
		s.Step = StepFood

	case StepFood, StepService, StepAmbiance:
		if ratingForStep(s) == 0 {
			return *s, ErrStepIncomplete
		}
		s.Step++

	case StepMusic:
		if ratingForStep(s) == 0 {
			return *s, ErrStepIncomplete
		}
		if s.Breakdown.Mean() >= models.PublishThreshold {
			s.NegativeFlow = false
			if err := m.submitLocked(s); err != nil {
				return *s, err
			}
			s.Step = StepShare
		} else {
			s.NegativeFlow = true
			s.Step = StepCategory
		}

	case StepCategory:
		if s.Details.Category == "" {
			return *s, ErrStepIncomplete
		}
		s.Step = StepComplaint

	default:
		// Steps 5 and 8 finish via Reset; step 7 via Submit.
		return *s, ErrInvalidTransition
	}

	return *s, nil
}

// Back steps backwards: rating steps go to the previous step, the category
// step jumps back to the last rating, and step 0 is a no-op. Terminal steps
// and the complaint step have their own edges.
func (m *WizardManager) Back(id string) (WizardSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return WizardSession{}, ErrSessionNotFound
	}
	s.LastActive = m.now()

	switch s.Step {
	case StepIdentify:
		// entry state, nothing to go back to
	case StepFood, StepService, StepAmbiance, StepMusic:
		s.Step--
	case StepCategory:
		s.Step = StepMusic
	case StepComplaint:
		s.Step = StepCategory
	default:
		return *s, ErrInvalidTransition
	}

	return *s, nil
}

// Submit finishes the negative flow from step 7: records the complaint text
// and optional phone (stored already formatted), persists the review with
// status pending_resolution, and moves to step 8.
func (m *WizardManager) Submit(id, comment, phone string) (WizardSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return WizardSession{}, ErrSessionNotFound
	}
	s.LastActive = m.now()

	if s.Step != StepComplaint {
		return *s, ErrInvalidTransition
	}

	s.Details.Comment = comment
	s.Details.Phone = utils.FormatPhone(phone)

	if err := m.submitLocked(s); err != nil {
		return *s, err
	}
	s.Step = StepDone
	return *s, nil
}

// submitLocked builds and persists the review. The Submitted guard keeps the
// write to exactly once per pass, never on back-navigation.
func (m *WizardManager) submitLocked(s *WizardSession) error {
	if s.Submitted {
		return ErrAlreadySubmitted
	}

	review := &models.Review{
		ID:                uuid.New().String(),
		TenantID:          s.TenantID,
		UserInfo:          s.UserInfo,
		Breakdown:         s.Breakdown,
		BreakdownComments: s.BreakdownComments,
		Rating:            models.OverallRating(s.Breakdown),
		Comment:           s.Details.Comment,
		ContactInfo:       s.Details.Phone,
		Status:            models.StatusPublished,
		CreatedAt:         m.now(),
	}
	if s.Waiter != nil {
		waiterID := s.Waiter.ID
		review.WaiterID = &waiterID
	}
	if s.NegativeFlow {
		review.Category = s.Details.Category
		review.Status = models.StatusPendingResolution
	}

	if err := m.persist(review); err != nil {
		return errors.Join(ErrSubmissionRejected, err)
	}
	s.Submitted = true
	return nil
}

// Share returns the positive-terminal payload: the overall comment, else the
// non-empty per-dimension notes joined by ". ", else a fixed fallback, plus
// the tenant's configured redirect target.
func (m *WizardManager) Share(id string) (SharePayload, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return SharePayload{}, ErrSessionNotFound
	}
	if s.Step != StepShare {
		return SharePayload{}, ErrInvalidTransition
	}

	text := s.Details.Comment
	if text == "" {
		text = joinComments(s.BreakdownComments)
	}
	if text == "" {
		text = ShareFallbackText
	}

	link := s.GoogleReviewLink
	if link == "" {
		link = m.defaultLink
	}

	return SharePayload{Text: text, Link: link}, nil
}

// Reset returns the session to its initial empty state: all ratings,
// comments, respondent info, the bound waiter and the negative flag are
// cleared and the step index returns to 0.
func (m *WizardManager) Reset(id string) (WizardSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return WizardSession{}, ErrSessionNotFound
	}

	s.UserInfo = models.UserInfo{}
	s.Breakdown = models.Breakdown{}
	s.BreakdownComments = models.BreakdownComments{}
	s.Details = ComplaintDetails{}
	s.NegativeFlow = false
	s.Submitted = false
	s.Waiter = nil
	s.Step = StepIdentify
	s.LastActive = m.now()

	return *s, nil
}

// Cleanup drops sessions idle longer than ttl and reports how many were
// removed.
func (m *WizardManager) Cleanup(ttl time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.now().Add(-ttl)
	removed := 0
	for id, s := range m.sessions {
		if s.LastActive.Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// Len reports the number of live sessions
func (m *WizardManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *WizardManager) withSession(id string, fn func(*WizardSession) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	s.LastActive = m.now()
	return fn(s)
}

func dimensionForStep(step Step) (Dimension, bool) {
	switch step {
	case StepFood:
		return DimensionFood, true
	case StepService:
		return DimensionService, true
	case StepAmbiance:
		return DimensionAmbiance, true
	case StepMusic:
		return DimensionMusic, true
	default:
		return "", false
	}
}

func ratingForStep(s *WizardSession) int {
	switch s.Step {
	case StepFood:
		return s.Breakdown.Food
	case StepService:
		return s.Breakdown.Service
	case StepAmbiance:
		return s.Breakdown.Ambiance
	case StepMusic:
		return s.Breakdown.Music
	default:
		return 0
	}
}

func joinComments(c models.BreakdownComments) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{c.Food, c.Service, c.Ambiance, c.Music} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ". ")
}
