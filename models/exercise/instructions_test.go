package exercise

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestInstructions_UnmarshalLegacyString(t *testing.T) {
	var instructions Instructions
	require.NoError(t, json.Unmarshal([]byte(`"Choose the correct answer."`), &instructions))

	assert.Equal(t, "Choose the correct answer.", instructions.Legacy)
	assert.Nil(t, instructions.Localized)
	assert.Equal(t, "Choose the correct answer.", instructions.Resolve("es", "en"))
}

func TestInstructions_UnmarshalLocalizedObject(t *testing.T) {
	var instructions Instructions
	require.NoError(t, json.Unmarshal([]byte(`{"en":"Fill in the blanks.","es":"Rellena los espacios."}`), &instructions))

	assert.Empty(t, instructions.Legacy)
	assert.Equal(t, "Rellena los espacios.", instructions.Resolve("es", "en"))
	assert.Equal(t, "Fill in the blanks.", instructions.Resolve("en", "en"))
}

func TestInstructions_ResolveFallsBack(t *testing.T) {
	instructions := Instructions{Localized: map[string]string{"en": "Match the pairs."}}

	// requested language missing, fallback hit
	assert.Equal(t, "Match the pairs.", instructions.Resolve("fr", "en"))

	// neither requested nor fallback present: any non-empty text
	instructions = Instructions{Localized: map[string]string{"pt": "Combine os pares."}}
	assert.Equal(t, "Combine os pares.", instructions.Resolve("fr", "en"))
}

func TestInstructions_MarshalRoundTrip(t *testing.T) {
	legacy := Instructions{Legacy: "Read the passage."}
	data, err := json.Marshal(legacy)
	require.NoError(t, err)
	assert.JSONEq(t, `"Read the passage."`, string(data))

	localized := Instructions{Localized: map[string]string{"en": "Read the passage."}}
	data, err = json.Marshal(localized)
	require.NoError(t, err)
	assert.JSONEq(t, `{"en":"Read the passage."}`, string(data))
}

func TestResolveInstructions(t *testing.T) {
	raw := datatypes.JSON([]byte(`{"en":"Pick one.","de":"Wähle eins."}`))
	assert.Equal(t, "Wähle eins.", ResolveInstructions(raw, "de", "en"))
	assert.Equal(t, "Pick one.", ResolveInstructions(raw, "it", "en"))

	assert.Equal(t, "", ResolveInstructions(nil, "en", "en"))
	assert.Equal(t, "", ResolveInstructions(datatypes.JSON([]byte(`[1,2]`)), "en", "en"))
}

func TestValidatePayload_MultipleChoice(t *testing.T) {
	valid := []byte(`{"options":["A","B","C"],"correct_option":"B"}`)
	assert.Empty(t, ValidatePayload(TypeMultipleChoice, valid))

	// correct option not among options (case-sensitive)
	invalid := []byte(`{"options":["A","B","C"],"correct_option":"b"}`)
	errors := ValidatePayload(TypeMultipleChoice, invalid)
	assert.Contains(t, errors, "correct_option")

	tooFew := []byte(`{"options":["A"],"correct_option":"A"}`)
	errors = ValidatePayload(TypeMultipleChoice, tooFew)
	assert.Contains(t, errors, "options")
}

func TestValidatePayload_FillBlanksAndMatching(t *testing.T) {
	errors := ValidatePayload(TypeFillBlanks, []byte(`{"blanks":[]}`))
	assert.Contains(t, errors, "blanks")

	errors = ValidatePayload(TypeMatching, []byte(`{"pairs":[{"left":"big","right":""},{"left":"hot","right":"cold"}]}`))
	assert.Contains(t, errors, "pairs")

	assert.Empty(t, ValidatePayload(TypeMatching, []byte(`{"pairs":[{"left":"big","right":"small"},{"left":"hot","right":"cold"}]}`)))
}

func TestValidatePayload_UnknownType(t *testing.T) {
	errors := ValidatePayload("crossword", []byte(`{}`))
	assert.Contains(t, errors, "type")
}

func TestQuestion_DecodePayload(t *testing.T) {
	q := Question{Type: TypeMatching, Payload: datatypes.JSON([]byte(`{"pairs":[{"left":"big","right":"small"}]}`))}
	payload, err := q.DecodePayload()
	require.NoError(t, err)

	matching, ok := payload.(MatchingPayload)
	require.True(t, ok)
	assert.Equal(t, "small", matching.Pairs[0].Right)

	q = Question{Type: "crossword", Payload: datatypes.JSON([]byte(`{}`))}
	_, err = q.DecodePayload()
	assert.Error(t, err)
}
