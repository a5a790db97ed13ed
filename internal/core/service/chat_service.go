package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/profiledesk/profile-directory/internal/api/metrics"
	"github.com/profiledesk/profile-directory/internal/core/domain"
	"github.com/profiledesk/profile-directory/internal/core/ports"
)

// recentLimit caps the list intent.
const recentLimit = 10

const (
	replyNotConfigured = "The AI assistant is not configured on this server. You can still manage profiles from the directory view."
	replyRateLimited   = "I'm getting too many requests right now. Please wait a moment and try again."
	replyUnavailable   = "The AI service is temporarily unavailable. Please try again in a few seconds."
	replyUpstreamError = "Sorry, something went wrong while contacting the AI service. Please try again."
	replyUnparseable   = "I had trouble processing your request. Could you rephrase it?"
	replyFallback      = "I'm not sure how to help with that. Type \"help\" to see what I can do."

	msgCreateNeedsFields = "I need at least a name and email to create a profile."
	msgUpdateNeedsFields = "Tell me what to change: a role, email, bio or new name."
)

// HelpText lists what the chat assistant understands.
const HelpText = `I can help you manage the profile directory:
- Create: "Add Ana Ruiz, ana@example.com, Designer"
- Search: "Find everyone in engineering"
- Update: "Change Ana Ruiz's role to Lead Designer"
- List: "Show me the latest profiles"`

// TargetPolicy picks the profile an update-by-name applies to. It returns
// nil when none of the candidates qualifies.
type TargetPolicy func(candidates []*domain.Profile) *domain.Profile

// FirstMatch resolves to the first candidate in store order (newest first).
// Same-named profiles are not disambiguated.
func FirstMatch(candidates []*domain.Profile) *domain.Profile {
	if len(candidates) == 0 {
		return nil
	}
	return candidates[0]
}

// ChatOption customises a ChatService.
type ChatOption func(*ChatService)

// WithTargetPolicy replaces FirstMatch for update-by-name.
func WithTargetPolicy(p TargetPolicy) ChatOption {
	return func(s *ChatService) {
		if p != nil {
			s.target = p
		}
	}
}

// ChatService classifies a message and dispatches it onto the directory.
type ChatService struct {
	profiles   ports.ProfileService
	classifier ports.IntentClassifier
	target     TargetPolicy
	log        zerolog.Logger
}

// NewChatService builds the dispatcher. A nil classifier makes every reply the
// "not configured" message.
func NewChatService(profiles ports.ProfileService, classifier ports.IntentClassifier, log zerolog.Logger, opts ...ChatOption) *ChatService {
	s := &ChatService{
		profiles:   profiles,
		classifier: classifier,
		target:     FirstMatch,
		log:        log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handle classifies message and performs at most one directory operation.
// Upstream and parse failures are folded into the reply; only input
// validation and store failures are returned as errors.
func (s *ChatService) Handle(ctx context.Context, message string) (*domain.ChatReply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, domain.Errorf(domain.ErrValidation, "Message is required")
	}

	start := time.Now()
	defer func() { metrics.ChatDuration.Observe(time.Since(start).Seconds()) }()

	if s.classifier == nil {
		return s.failure(domain.FailureNotConfigured, replyNotConfigured), nil
	}

	raw, err := s.classifier.Classify(ctx, message)
	if err != nil {
		kind := ClassifyUpstreamError(err)
		s.log.Warn().Err(err).Str("kind", string(kind)).Msg("classifier call failed")
		return s.failure(kind, upstreamReply(kind)), nil
	}

	env, err := domain.ParseIntentEnvelope(raw)
	if err != nil {
		s.log.Warn().Err(err).Int("raw_len", len(raw)).Msg("classifier output not parseable")
		return s.failure(domain.FailureUnparseable, replyUnparseable), nil
	}

	metrics.ChatIntents.WithLabelValues(string(env.Intent)).Inc()

	action, err := s.dispatch(ctx, env)
	if err != nil {
		return nil, err
	}

	response := env.Response
	if response == "" && env.Intent == domain.IntentUnknown {
		response = replyFallback
	}

	return &domain.ChatReply{Intent: env.Intent, Response: response, Action: action}, nil
}

func (s *ChatService) dispatch(ctx context.Context, env *domain.IntentEnvelope) (*domain.Action, error) {
	e := env.Entities

	switch env.Intent {
	case domain.IntentCreate:
		if e.Name == nil || e.Email == nil {
			return errorAction(msgCreateNeedsFields), nil
		}
		p, err := s.profiles.CreateProfile(ctx, ports.CreateProfileInput{
			Name:  *e.Name,
			Email: *e.Email,
			Role:  deref(e.Role),
			Bio:   deref(e.Bio),
		})
		if err != nil {
			return recoverable(err)
		}
		return &domain.Action{Type: domain.ActionCreated, Profile: p}, nil

	case domain.IntentSearch:
		if e.SearchQuery == nil {
			return nil, nil
		}
		found, err := s.profiles.SearchProfiles(ctx, *e.SearchQuery)
		if err != nil {
			return nil, err
		}
		return listAction(domain.ActionSearch, found), nil

	case domain.IntentUpdate:
		if e.Name == nil {
			return nil, nil
		}
		return s.update(ctx, e)

	case domain.IntentList:
		recent, err := s.profiles.RecentProfiles(ctx, recentLimit)
		if err != nil {
			return nil, err
		}
		return listAction(domain.ActionList, recent), nil

	case domain.IntentHelp:
		return &domain.Action{Type: domain.ActionHelp, Message: HelpText}, nil
	}

	return nil, nil
}

// update resolves the target by name and applies the remaining entities.
// entities.name is only the lookup key; entities.newName renames.
func (s *ChatService) update(ctx context.Context, e domain.Entities) (*domain.Action, error) {
	candidates, err := s.profiles.FindProfilesByName(ctx, *e.Name)
	if err != nil {
		return recoverable(err)
	}

	target := s.target(candidates)
	if target == nil {
		return &domain.Action{
			Type:    domain.ActionNotFound,
			Message: fmt.Sprintf("No profile found matching %q.", *e.Name),
		}, nil
	}

	in := ports.UpdateProfileInput{
		Name:  e.NewName,
		Email: e.Email,
		Role:  e.Role,
		Bio:   e.Bio,
	}
	if in.Empty() {
		return errorAction(msgUpdateNeedsFields), nil
	}

	updated, err := s.profiles.UpdateProfile(ctx, target.ID, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.Action{
				Type:    domain.ActionNotFound,
				Message: fmt.Sprintf("No profile found matching %q.", *e.Name),
			}, nil
		}
		return recoverable(err)
	}
	return &domain.Action{Type: domain.ActionUpdated, Profile: updated}, nil
}

func (s *ChatService) failure(kind domain.UpstreamFailure, text string) *domain.ChatReply {
	metrics.ChatUpstreamFailures.WithLabelValues(string(kind)).Inc()
	return &domain.ChatReply{Intent: domain.IntentUnknown, Response: text, Failure: kind}
}

// ClassifyUpstreamError sorts a classifier failure into rate-limited,
// temporarily-unavailable or generic by inspecting the error chain and text.
func ClassifyUpstreamError(err error) domain.UpstreamFailure {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.FailureUnavailable
	}

	msg := strings.ToLower(err.Error())
	switch {
	case containsAny(msg, "429", "rate limit", "ratelimit", "too many requests", "quota", "resource_exhausted"):
		return domain.FailureRateLimited
	case containsAny(msg, "503", "502", "unavailable", "overloaded", "timeout", "timed out", "connection refused"):
		return domain.FailureUnavailable
	default:
		return domain.FailureGeneric
	}
}

func upstreamReply(kind domain.UpstreamFailure) string {
	switch kind {
	case domain.FailureRateLimited:
		return replyRateLimited
	case domain.FailureUnavailable:
		return replyUnavailable
	default:
		return replyUpstreamError
	}
}

// recoverable turns validation failures into an error action and passes
// anything else through.
func recoverable(err error) (*domain.Action, error) {
	if errors.Is(err, domain.ErrValidation) {
		return errorAction(domain.Message(err)), nil
	}
	return nil, err
}

func errorAction(msg string) *domain.Action {
	return &domain.Action{Type: domain.ActionError, Message: msg}
}

func listAction(t domain.ActionType, profiles []*domain.Profile) *domain.Action {
	if profiles == nil {
		profiles = []*domain.Profile{}
	}
	n := len(profiles)
	return &domain.Action{Type: t, Profiles: profiles, Count: &n}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
