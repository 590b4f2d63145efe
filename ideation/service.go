package ideation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tom2tomtomtom/playbookwiz/ai"
	"github.com/tom2tomtomtom/playbookwiz/core"
	"github.com/tom2tomtomtom/playbookwiz/storage"
)

// defaultIdeaCount is the number of ideas requested per generation call.
const defaultIdeaCount = 3

// parseAttempts bounds retries when the model returns malformed JSON.
const parseAttempts = 3

// GenerateRequest describes an ideation run.
type GenerateRequest struct {
	Topic    string
	Personas []string // persona keys; empty means direct generation
	Context  string   // optional brand context extracted from documents
	Count    int      // ideas per persona (or total for direct), default 3
}

// Evaluation scores one idea against the requested criteria.
type Evaluation struct {
	IdeaIndex int            `json:"idea_index"`
	Scores    map[string]int `json:"scores"`
	Comments  string         `json:"comments"`
}

// ideaJSON is the wire structure ideas are parsed from.
type ideaJSON struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Service runs persona-driven creative ideation and persists the
// resulting sessions.
type Service struct {
	sessionRepository storage.SessionRepository
	generator         ai.Generator
	logger            *slog.Logger
}

// Option configures a Service.
type Option func(*Service) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewService creates a new ideation service.
func NewService(
	sessionRepository storage.SessionRepository,
	generator ai.Generator,
	opts ...Option,
) (*Service, error) {
	if sessionRepository == nil {
		return nil, ErrSessionRepositoryRequired
	}
	if generator == nil {
		return nil, ErrGeneratorRequired
	}

	s := &Service{
		sessionRepository: sessionRepository,
		generator:         generator,
		logger:            slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// GenerateIdeas produces ideas for a topic and persists them as a new
// session. With persona keys, each persona contributes its own ideas;
// without, a single direct generation runs.
func (s *Service) GenerateIdeas(ctx context.Context, req GenerateRequest) (*core.IdeationSession, error) {
	if strings.TrimSpace(req.Topic) == "" {
		return nil, ErrEmptyTopic
	}
	count := req.Count
	if count <= 0 {
		count = defaultIdeaCount
	}

	resolved, err := resolvePersonas(req.Personas)
	if err != nil {
		return nil, err
	}

	var ideas []core.Idea
	if len(resolved) == 0 {
		parsed, err := s.generateIdeaList(ctx, buildGeneratePrompt(req.Topic, req.Context, nil, count))
		if err != nil {
			return nil, err
		}
		ideas = toIdeas(parsed, "")
	} else {
		for _, persona := range resolved {
			parsed, err := s.generateIdeaList(ctx, buildGeneratePrompt(req.Topic, req.Context, &persona, count))
			if err != nil {
				return nil, err
			}
			ideas = append(ideas, toIdeas(parsed, persona.Key)...)
		}
	}

	added, err := s.sessionRepository.AddSessions(ctx, &core.IdeationSession{
		Topic:    req.Topic,
		Personas: req.Personas,
		Ideas:    ideas,
	})
	if err != nil {
		return nil, err
	}

	session := added[0]
	s.logger.Info("ideation session created",
		"session", session.Id,
		"topic", session.Topic,
		"personas", len(resolved),
		"ideas", len(session.Ideas))
	return session, nil
}

// EnhanceIdeas rewrites a session's ideas along one enhancement
// dimension and persists the result.
func (s *Service) EnhanceIdeas(ctx context.Context, sessionID core.ID, enhancementType string) (*core.IdeationSession, error) {
	instruction, ok := enhancementInstructions[enhancementType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEnhancement, enhancementType)
	}

	session, err := s.sessionRepository.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	parsed, err := s.generateIdeaList(ctx, buildEnhancePrompt(session.Ideas, instruction))
	if err != nil {
		return nil, err
	}

	enhanced := toIdeas(parsed, "")
	// Keep persona attribution when the model preserved idea order
	if len(enhanced) == len(session.Ideas) {
		for i := range enhanced {
			enhanced[i].Persona = session.Ideas[i].Persona
		}
	}
	session.Ideas = enhanced

	updated, err := s.sessionRepository.UpdateSessions(ctx, session)
	if err != nil {
		return nil, err
	}
	return updated[0], nil
}

// EvaluateIdeas scores a session's ideas against the given criteria.
// Empty criteria evaluates against all built-in criteria.
func (s *Service) EvaluateIdeas(ctx context.Context, sessionID core.ID, criteria []string) ([]Evaluation, error) {
	if len(criteria) == 0 {
		criteria = defaultCriteria
	}
	for _, criterion := range criteria {
		if _, ok := evaluationCriteria[criterion]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCriterion, criterion)
		}
	}

	session, err := s.sessionRepository.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	prompt := buildEvaluatePrompt(session.Ideas, criteria)

	var evaluations []Evaluation
	err = s.generateParsed(ctx, evaluationSystemPrompt, prompt, &evaluations)
	if err != nil {
		return nil, err
	}
	return evaluations, nil
}

// RefineIdeas rewrites the selected ideas along one refinement direction
// and persists the refined set as the session's ideas.
// selected holds 0-based indexes into the session's idea list; empty
// selects all ideas.
func (s *Service) RefineIdeas(ctx context.Context, sessionID core.ID, selected []int, direction string) (*core.IdeationSession, error) {
	instruction, ok := refinementInstructions[direction]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRefinement, direction)
	}

	session, err := s.sessionRepository.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	subject := session.Ideas
	if len(selected) > 0 {
		subject = make([]core.Idea, 0, len(selected))
		for _, idx := range selected {
			if idx < 0 || idx >= len(session.Ideas) {
				continue
			}
			subject = append(subject, session.Ideas[idx])
		}
	}
	if len(subject) == 0 {
		return nil, ErrNoIdeasSelected
	}

	parsed, err := s.generateIdeaList(ctx, buildRefinePrompt(subject, instruction))
	if err != nil {
		return nil, err
	}

	session.Ideas = toIdeas(parsed, "")
	updated, err := s.sessionRepository.UpdateSessions(ctx, session)
	if err != nil {
		return nil, err
	}
	return updated[0], nil
}

// GenerateDialogue stages a free-form conversation between personas to
// prime creative thinking on a topic.
func (s *Service) GenerateDialogue(ctx context.Context, topic string, personaKeys []string, brandContext string) (string, error) {
	if strings.TrimSpace(topic) == "" {
		return "", ErrEmptyTopic
	}

	keys := personaKeys
	if len(keys) == 0 {
		keys = personaOrder
	}
	participants, err := resolvePersonas(keys)
	if err != nil {
		return "", err
	}

	return s.generator.GenerateText(ctx, "", buildDialoguePrompt(topic, brandContext, participants))
}

// GetSession retrieves a session by ID.
func (s *Service) GetSession(ctx context.Context, id core.ID) (*core.IdeationSession, error) {
	return s.sessionRepository.GetSession(ctx, id)
}

// ListSessions lists sessions, most recent first.
func (s *Service) ListSessions(ctx context.Context, skip, limit int) ([]*core.IdeationSession, error) {
	return s.sessionRepository.ListSessions(ctx, skip, limit)
}

// DeleteSession removes a session.
func (s *Service) DeleteSession(ctx context.Context, id core.ID) error {
	return s.sessionRepository.DeleteSession(ctx, id)
}

// generateIdeaList runs a generation prompt expecting a JSON idea array.
func (s *Service) generateIdeaList(ctx context.Context, prompt string) ([]ideaJSON, error) {
	var parsed []ideaJSON
	if err := s.generateParsed(ctx, ideationSystemPrompt, prompt, &parsed); err != nil {
		return nil, err
	}
	return parsed, nil
}

// generateParsed calls the generator and unmarshals its JSON response
// into out, retrying on malformed output.
func (s *Service) generateParsed(ctx context.Context, system, prompt string, out any) error {
	var lastErr error
	for attempt := 0; attempt < parseAttempts; attempt++ {
		text, err := s.generator.GenerateText(ctx, system, prompt)
		if err != nil {
			s.logger.Error("failed to generate ideas", "attempt", attempt+1, "err", err)
			return err
		}

		cleaned := ai.RepairJSON(ai.StripCodeFences(text))
		if err := json.Unmarshal([]byte(cleaned), out); err != nil {
			lastErr = err
			s.logger.Warn("error parsing ideation response",
				"attempt", attempt+1,
				"response", cleaned,
				"err", err)
			continue
		}
		return nil
	}

	s.logger.Error("failed to parse ideation response after retries", "err", lastErr)
	return lastErr
}

// toIdeas converts parsed wire ideas into domain ideas.
func toIdeas(parsed []ideaJSON, personaKey string) []core.Idea {
	ideas := make([]core.Idea, 0, len(parsed))
	for _, p := range parsed {
		if strings.TrimSpace(p.Title) == "" && strings.TrimSpace(p.Description) == "" {
			continue
		}
		ideas = append(ideas, core.Idea{
			Title:       p.Title,
			Description: p.Description,
			Persona:     personaKey,
		})
	}
	return ideas
}
