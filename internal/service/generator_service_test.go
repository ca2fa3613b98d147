package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveQuestionCount(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want int
	}{
		{"missing", nil, 5},
		{"json number", float64(12), 12},
		{"int", 7, 7},
		{"below minimum", float64(0), 1},
		{"negative", float64(-3), 1},
		{"above maximum", float64(200), 50},
		{"numeric string", "15", 15},
		{"padded numeric string", " 8 ", 8},
		{"non-numeric string", "lots", 5},
		{"boolean", true, 5},
		{"json.Number", json.Number("20"), 20},
		{"bad json.Number", json.Number("x"), 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveQuestionCount(tc.in))
		})
	}
}

func TestExtractJSONObject_StripsCodeFences(t *testing.T) {
	raw := "```json\n{\"title\": \"T\", \"questions\": []}\n```"

	payload, err := extractJSONObject(raw)

	require.NoError(t, err)
	assert.JSONEq(t, `{"title": "T", "questions": []}`, payload)
}

func TestExtractJSONObject_SlicesSurroundingProse(t *testing.T) {
	raw := "Sure! Here is your quiz:\n{\"title\": \"T\", \"questions\": []}\nHope that helps."

	payload, err := extractJSONObject(raw)

	require.NoError(t, err)
	assert.Equal(t, `{"title": "T", "questions": []}`, payload)
}

func TestExtractJSONObject_NoBracesIsMalformed(t *testing.T) {
	raw := "I cannot generate a quiz about that topic."

	_, err := extractJSONObject(raw)

	require.Error(t, err)
	var mre *MalformedResponseError
	require.ErrorAs(t, err, &mre)
	assert.Equal(t, raw, mre.Excerpt)
}

func TestExtractJSONObject_ExcerptTruncatedTo500(t *testing.T) {
	raw := strings.Repeat("a", 2000)

	_, err := extractJSONObject(raw)

	var mre *MalformedResponseError
	require.ErrorAs(t, err, &mre)
	assert.Len(t, mre.Excerpt, 500)
	assert.Equal(t, raw[:500], mre.Excerpt)
}

func TestExtractJSONObject_ExcerptKeepsRunesWhole(t *testing.T) {
	// Multi-byte input must truncate on a character boundary, not a byte offset.
	raw := strings.Repeat("é", 600)

	_, err := extractJSONObject(raw)

	var mre *MalformedResponseError
	require.ErrorAs(t, err, &mre)
	assert.True(t, utf8.ValidString(mre.Excerpt))
	assert.Equal(t, 500, utf8.RuneCountInString(mre.Excerpt))
}

func TestBuildQuizPrompt(t *testing.T) {
	prompt := buildQuizPrompt("Go concurrency", "mcq", 10)

	// The count is stated with a redundant restatement to bias the model.
	assert.Contains(t, prompt, "EXACTLY 10 questions")
	assert.Contains(t, prompt, "10 questions, no more and no fewer")
	assert.Contains(t, prompt, "Go concurrency")
	assert.Contains(t, prompt, `"questions"`)
	assert.Contains(t, prompt, "exactly 4 distinct strings")
	assert.Contains(t, prompt, "no code fences")
}

func TestBuildQuizPrompt_ListsAllTypeRules(t *testing.T) {
	// The model sometimes ignores the requested type, so every prompt carries
	// the structural rules for all three types.
	for _, questionType := range []string{"mcq", "true_false", "short_answer"} {
		t.Run(questionType, func(t *testing.T) {
			prompt := buildQuizPrompt("history", questionType, 5)
			assert.Contains(t, prompt, "exactly 4 distinct strings")
			assert.Contains(t, prompt, `["True","False"]`)
			assert.Contains(t, prompt, "empty array")
		})
	}
}

func TestGenerateQuiz_UnavailableWithoutClient(t *testing.T) {
	gen := &geminiQuizGenerator{client: nil}

	quiz, err := gen.GenerateQuiz(context.Background(), "anything", "mcq", 5)

	assert.Nil(t, quiz)
	assert.ErrorIs(t, err, ErrGenerationUnavailable)
}
