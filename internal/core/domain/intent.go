package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Intent is the classified purpose of a chat message.
type Intent string

const (
	IntentCreate  Intent = "create"
	IntentSearch  Intent = "search"
	IntentUpdate  Intent = "update"
	IntentList    Intent = "list"
	IntentHelp    Intent = "help"
	IntentUnknown Intent = "unknown"
)

// ParseIntent maps free text onto the closed intent set. Anything outside
// the set is IntentUnknown.
func ParseIntent(raw string) Intent {
	switch Intent(strings.ToLower(strings.TrimSpace(raw))) {
	case IntentCreate:
		return IntentCreate
	case IntentSearch:
		return IntentSearch
	case IntentUpdate:
		return IntentUpdate
	case IntentList:
		return IntentList
	case IntentHelp:
		return IntentHelp
	default:
		return IntentUnknown
	}
}

// Entities are the values the classifier extracted. A nil field means the
// classifier did not supply a usable string for it.
type Entities struct {
	Name        *string
	NewName     *string
	Email       *string
	Role        *string
	Bio         *string
	SearchQuery *string
}

// IntentEnvelope is the validated classifier output.
type IntentEnvelope struct {
	Intent   Intent
	Entities Entities
	Response string
}

type rawEnvelope struct {
	Intent   json.RawMessage `json:"intent"`
	Entities json.RawMessage `json:"entities"`
	Response json.RawMessage `json:"response"`
}

// ParseIntentEnvelope extracts the JSON object from classifier text and
// validates its shape. Code fences and prose around the object are ignored.
// Fields of the wrong type are treated as absent; only a missing or
// undecodable object is an error.
func ParseIntentEnvelope(content string) (*IntentEnvelope, error) {
	trimmed := strings.TrimSpace(content)
	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, fmt.Errorf("%w: missing json object", ErrMalformedEnvelope)
	}

	var raw rawEnvelope
	if err := json.Unmarshal([]byte(trimmed[start:end+1]), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}

	env := &IntentEnvelope{Intent: IntentUnknown}
	if s := stringValue(raw.Intent); s != nil {
		env.Intent = ParseIntent(*s)
	}
	if s := stringValue(raw.Response); s != nil {
		env.Response = *s
	}

	var ents map[string]json.RawMessage
	if len(raw.Entities) > 0 && json.Unmarshal(raw.Entities, &ents) != nil {
		ents = nil
	}
	env.Entities = Entities{
		Name:        stringValue(ents["name"]),
		NewName:     stringValue(ents["newName"]),
		Email:       stringValue(ents["email"]),
		Role:        stringValue(ents["role"]),
		Bio:         stringValue(ents["bio"]),
		SearchQuery: stringValue(ents["searchQuery"]),
	}
	return env, nil
}

// stringValue returns the trimmed string held by msg, or nil when msg is
// absent, null, not a string, or blank.
func stringValue(msg json.RawMessage) *string {
	if len(msg) == 0 {
		return nil
	}
	var s string
	if err := json.Unmarshal(msg, &s); err != nil {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// ActionType tags the dispatcher's result envelope.
type ActionType string

const (
	ActionCreated  ActionType = "created"
	ActionSearch   ActionType = "search"
	ActionUpdated  ActionType = "updated"
	ActionNotFound ActionType = "not_found"
	ActionList     ActionType = "list"
	ActionHelp     ActionType = "help"
	ActionError    ActionType = "error"
)

// Action describes the store operation a chat message caused, if any.
type Action struct {
	Type     ActionType `json:"type"`
	Profile  *Profile   `json:"profile,omitempty"`
	Profiles []*Profile `json:"profiles,omitempty"`
	Count    *int       `json:"count,omitempty"`
	Message  string     `json:"message,omitempty"`
}

// MarshalJSON always renders the profiles array for search and list
// actions, so an empty result reads as [] rather than a missing key.
func (a Action) MarshalJSON() ([]byte, error) {
	type plain Action
	if a.Type != ActionSearch && a.Type != ActionList {
		return json.Marshal(plain(a))
	}
	profiles := a.Profiles
	if profiles == nil {
		profiles = []*Profile{}
	}
	return json.Marshal(struct {
		plain
		Profiles []*Profile `json:"profiles"`
	}{plain(a), profiles})
}

// UpstreamFailure classifies why the classifier call failed.
type UpstreamFailure string

const (
	FailureNone          UpstreamFailure = ""
	FailureRateLimited   UpstreamFailure = "rate_limited"
	FailureUnavailable   UpstreamFailure = "temporarily_unavailable"
	FailureGeneric       UpstreamFailure = "error"
	FailureUnparseable   UpstreamFailure = "unparseable"
	FailureNotConfigured UpstreamFailure = "not_configured"
)

// ChatReply is what the dispatcher hands back for one chat message.
type ChatReply struct {
	Intent   Intent          `json:"intent"`
	Response string          `json:"response"`
	Action   *Action         `json:"action"`
	Failure  UpstreamFailure `json:"-"`
}
