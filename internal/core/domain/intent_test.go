package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntentEnvelope_Plain(t *testing.T) {
	env, err := ParseIntentEnvelope(`{"intent":"create","entities":{"name":"Ana Ruiz","email":"ana@x.com","role":"Designer"},"response":"Done"}`)
	require.NoError(t, err)

	assert.Equal(t, IntentCreate, env.Intent)
	assert.Equal(t, "Done", env.Response)
	require.NotNil(t, env.Entities.Name)
	assert.Equal(t, "Ana Ruiz", *env.Entities.Name)
	assert.Equal(t, "ana@x.com", *env.Entities.Email)
	assert.Equal(t, "Designer", *env.Entities.Role)
	assert.Nil(t, env.Entities.Bio)
	assert.Nil(t, env.Entities.SearchQuery)
}

func TestParseIntentEnvelope_FencedAndWrapped(t *testing.T) {
	raw := "Here is the result:\n```json\n{\"intent\": \"SEARCH\", \"entities\": {\"searchQuery\": \"design\"}}\n```\nHope that helps."

	env, err := ParseIntentEnvelope(raw)
	require.NoError(t, err)
	assert.Equal(t, IntentSearch, env.Intent)
	require.NotNil(t, env.Entities.SearchQuery)
	assert.Equal(t, "design", *env.Entities.SearchQuery)
}

func TestParseIntentEnvelope_WrongTypesAreAbsent(t *testing.T) {
	env, err := ParseIntentEnvelope(`{"intent":42,"entities":{"name":null,"email":["a"],"role":"  ","bio":{"x":1},"newName":"Bo"},"response":7}`)
	require.NoError(t, err)

	assert.Equal(t, IntentUnknown, env.Intent)
	assert.Empty(t, env.Response)
	assert.Nil(t, env.Entities.Name)
	assert.Nil(t, env.Entities.Email)
	assert.Nil(t, env.Entities.Role)
	assert.Nil(t, env.Entities.Bio)
	require.NotNil(t, env.Entities.NewName)
	assert.Equal(t, "Bo", *env.Entities.NewName)
}

func TestParseIntentEnvelope_EntitiesNotAnObject(t *testing.T) {
	env, err := ParseIntentEnvelope(`{"intent":"list","entities":"none"}`)
	require.NoError(t, err)
	assert.Equal(t, IntentList, env.Intent)
	assert.Equal(t, Entities{}, env.Entities)
}

func TestParseIntentEnvelope_Malformed(t *testing.T) {
	for _, raw := range []string{"", "no json here", "} backwards {", `{"intent": "create",`} {
		_, err := ParseIntentEnvelope(raw)
		assert.ErrorIs(t, err, ErrMalformedEnvelope, "input %q", raw)
	}
}

func TestParseIntent(t *testing.T) {
	assert.Equal(t, IntentList, ParseIntent(" List "))
	assert.Equal(t, IntentHelp, ParseIntent("help"))
	assert.Equal(t, IntentUpdate, ParseIntent("UPDATE"))
	assert.Equal(t, IntentUnknown, ParseIntent("delete"))
	assert.Equal(t, IntentUnknown, ParseIntent(""))
}

func TestProfile_IsAdmin(t *testing.T) {
	assert.True(t, (&Profile{Role: "admin"}).IsAdmin())
	assert.True(t, (&Profile{Role: "ADMIN"}).IsAdmin())
	assert.False(t, (&Profile{Role: "Member"}).IsAdmin())
	assert.False(t, (&Profile{}).IsAdmin())
}

func TestMessage(t *testing.T) {
	err := Errorf(ErrValidation, "Name and email are required")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Name and email are required", Message(err))
	assert.Equal(t, ErrNotFound.Error(), Message(ErrNotFound))
}

func TestAction_MarshalJSON(t *testing.T) {
	zero := 0
	out, err := json.Marshal(&Action{Type: ActionSearch, Count: &zero})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"search","profiles":[],"count":0}`, string(out))

	out, err = json.Marshal(Action{Type: ActionCreated, Profile: &Profile{ID: "a", Name: "Ana", Email: "a@x.com"}})
	require.NoError(t, err)
	assert.NotContains(t, string(out), `"profiles"`)
	assert.Contains(t, string(out), `"profile":{`)
}
