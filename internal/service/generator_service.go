package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/Quokka/config"
	"github.com/lshigami/Quokka/internal/dto"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

const (
	MinQuestionCount     = 1
	MaxQuestionCount     = 50
	DefaultQuestionCount = 5
)

// QuizGeneratorService turns user parameters into a candidate quiz by prompting an
// external text-generation model and extracting a JSON payload from its reply.
type QuizGeneratorService interface {
	GenerateQuiz(ctx context.Context, topic, questionType string, questionCount int) (*dto.GeneratedQuiz, error)
}

type geminiQuizGenerator struct {
	client *genai.GenerativeModel
	cfg    *config.Config
}

func NewQuizGeneratorService(cfg *config.Config) (QuizGeneratorService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Quiz generation will be unavailable.")
		return &geminiQuizGenerator{cfg: cfg, client: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	generativeModel := client.GenerativeModel("gemini-1.5-flash")
	generativeModel.SetTemperature(0.7)
	generativeModel.SetMaxOutputTokens(8192)
	return &geminiQuizGenerator{client: generativeModel, cfg: cfg}, nil
}

// ResolveQuestionCount coerces whatever the client sent (JSON number, numeric
// string, nothing) into an effective count, clamped to [MinQuestionCount, MaxQuestionCount].
// Non-numeric or missing input falls back to DefaultQuestionCount.
func ResolveQuestionCount(raw interface{}) int {
	switch v := raw.(type) {
	case nil:
		return DefaultQuestionCount
	case int:
		return clampQuestionCount(v)
	case float64:
		return clampQuestionCount(int(v))
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return DefaultQuestionCount
		}
		return clampQuestionCount(int(n))
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return DefaultQuestionCount
		}
		return clampQuestionCount(n)
	default:
		return DefaultQuestionCount
	}
}

func clampQuestionCount(n int) int {
	if n < MinQuestionCount {
		return MinQuestionCount
	}
	if n > MaxQuestionCount {
		return MaxQuestionCount
	}
	return n
}

func (s *geminiQuizGenerator) GenerateQuiz(ctx context.Context, topic, questionType string, questionCount int) (*dto.GeneratedQuiz, error) {
	if s.client == nil {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY not configured", ErrGenerationUnavailable)
	}

	prompt := buildQuizPrompt(topic, questionType, questionCount)

	resp, err := s.client.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Gemini API error during quiz generation")
		return nil, fmt.Errorf("%w: %v", ErrGenerationUnavailable, err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Msg("Gemini returned no candidates or parts")
		return nil, newMalformedResponseError("provider returned no content", "")
	}

	var rawText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			rawText.WriteString(string(txt))
		}
	}
	raw := rawText.String()
	if raw == "" {
		return nil, newMalformedResponseError("provider returned no text content", "")
	}

	payload, err := extractJSONObject(raw)
	if err != nil {
		log.Warn().Err(err).Msg("Could not locate a JSON object in provider response")
		return nil, err
	}

	var quiz dto.GeneratedQuiz
	if err := json.Unmarshal([]byte(payload), &quiz); err != nil {
		log.Warn().Err(err).Msg("Failed to parse quiz JSON from provider response")
		return nil, newMalformedResponseError(err.Error(), raw)
	}

	log.Info().Str("topic", topic).Int("requested", questionCount).Int("returned", len(quiz.Questions)).Msg("Quiz generated")
	return &quiz, nil
}

// buildQuizPrompt states the required count twice: the model drifts from the
// requested count often enough that the restatement measurably helps. The returned
// count is still advisory only; the normalizer and the service message handle drift.
func buildQuizPrompt(topic, questionType string, questionCount int) string {
	var b strings.Builder
	b.WriteString("You are a quiz author for an online learning platform.\n")
	fmt.Fprintf(&b, "Generate a quiz about the following topic: %s\n\n", topic)
	fmt.Fprintf(&b, "The quiz must contain EXACTLY %d questions of type %q. ", questionCount, questionType)
	fmt.Fprintf(&b, "That means %d questions, no more and no fewer.\n\n", questionCount)

	b.WriteString("Respond with a SINGLE JSON object of this exact shape:\n")
	b.WriteString(`{"title": string, "questions": [{"text": string, "type": string, "options": [string], "answer": string}]}` + "\n\n")

	b.WriteString("Structural rules per question type:\n")
	b.WriteString(`- "mcq": "options" must contain exactly 4 distinct strings, and "answer" must equal one of the options verbatim.` + "\n")
	b.WriteString(`- "true_false": "options" must be exactly ["True","False"], and "answer" must be "True" or "False".` + "\n")
	b.WriteString(`- "short_answer": "options" must be an empty array [], and "answer" is the expected free-text answer.` + "\n")

	b.WriteString("\nOutput only the JSON object. No surrounding prose, no markdown, no code fences.\n")
	return b.String()
}

// extractJSONObject slices the candidate JSON out of free-form model output:
// fenced-code markers are stripped, then the span from the first '{' to the last '}'
// is taken verbatim.
func extractJSONObject(raw string) (string, error) {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end < start {
		return "", newMalformedResponseError("no JSON object found in response", raw)
	}
	return cleaned[start : end+1], nil
}
