package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/model"
	"github.com/lshigami/Quokka/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// QuizService orchestrates quiz CRUD with ownership checks and composes the
// generator and normalizer for the preview flow. Generated previews are never
// persisted; only Create transitions a quiz into the store.
type QuizService interface {
	Generate(ctx context.Context, req dto.GenerateQuizRequest, requesterID uint) (*dto.GeneratedQuiz, string, error)
	Create(req dto.QuizCreateRequest, ownerID uint) (*dto.QuizResponse, error)
	List(ownerID uint, limit int) ([]dto.QuizSummaryResponse, error)
	GetByID(id, requesterID uint) (*dto.QuizResponse, error)
	Update(id, requesterID uint, patch dto.QuizUpdateRequest) (*dto.QuizResponse, error)
	Delete(id, requesterID uint) error
}

type quizService struct {
	quizRepo  repository.QuizRepository
	generator QuizGeneratorService
}

func NewQuizService(quizRepo repository.QuizRepository, generator QuizGeneratorService) QuizService {
	return &quizService{quizRepo: quizRepo, generator: generator}
}

func (s *quizService) Generate(ctx context.Context, req dto.GenerateQuizRequest, requesterID uint) (*dto.GeneratedQuiz, string, error) {
	if requesterID == 0 {
		return nil, "", ErrUnauthenticated
	}
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		return nil, "", fmt.Errorf("%w: prompt must not be empty", ErrInvalidInput)
	}

	questionType := req.QuestionType
	if questionType == "" {
		questionType = model.QuestionTypeMCQ
	}
	count := ResolveQuestionCount(req.QuestionCount)

	candidate, err := s.generator.GenerateQuiz(ctx, topic, questionType, count)
	if err != nil {
		return nil, "", err
	}

	quiz := NormalizeQuiz(*candidate)
	if strings.TrimSpace(quiz.Title) == "" {
		quiz.Title = fmt.Sprintf("Quiz on %s", topic)
	}
	if quiz.TimeLimit <= 0 {
		quiz.TimeLimit = model.DefaultTimeLimit
	}

	message := advisoryMessage(count, len(quiz.Questions))
	return &quiz, message, nil
}

// advisoryMessage implements the three-way count feedback: the provider's returned
// count is advisory only and a mismatch is never an error.
func advisoryMessage(requested, returned int) string {
	switch {
	case returned == requested:
		return fmt.Sprintf("Quiz generated successfully with %d questions", returned)
	case returned < requested:
		return fmt.Sprintf("Generated %d of %d questions (%d short). Add the missing ones manually or regenerate.",
			returned, requested, requested-returned)
	default:
		return fmt.Sprintf("Generated %d questions (%d extra beyond the requested %d). Remove the surplus if needed.",
			returned, returned-requested, requested)
	}
}

func (s *quizService) Create(req dto.QuizCreateRequest, ownerID uint) (*dto.QuizResponse, error) {
	if ownerID == 0 {
		return nil, ErrUnauthenticated
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title must not be empty", ErrInvalidInput)
	}
	if len(req.Questions) == 0 {
		return nil, fmt.Errorf("%w: a quiz needs at least one question", ErrInvalidInput)
	}
	weightageType := req.WeightageType
	if req.Weightage != nil && weightageType == "" {
		weightageType = model.WeightagePercentage
	}
	if req.Weightage != nil && weightageType == model.WeightagePercentage && (*req.Weightage < 0 || *req.Weightage > 100) {
		return nil, fmt.Errorf("%w: percentage weightage must be between 0 and 100", ErrInvalidInput)
	}

	timeLimit := req.TimeLimit
	if timeLimit <= 0 {
		timeLimit = model.DefaultTimeLimit
	}

	quiz := model.Quiz{
		Title:         req.Title,
		OwnerID:       ownerID,
		TimeLimit:     timeLimit,
		Weightage:     req.Weightage,
		WeightageType: weightageType,
		Questions:     questionsFromPayload(req.Questions),
	}

	if err := s.quizRepo.Create(&quiz); err != nil {
		log.Error().Err(err).Uint("ownerID", ownerID).Msg("Failed to create quiz")
		return nil, fmt.Errorf("database error creating quiz: %w", err)
	}

	created, err := s.quizRepo.FindByIDWithQuestions(quiz.ID)
	if err != nil {
		log.Error().Err(err).Uint("quizID", quiz.ID).Msg("Failed to reload created quiz")
		created = &quiz
	}

	var resp dto.QuizResponse
	if err := copier.Copy(&resp, created); err != nil {
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return &resp, nil
}

func (s *quizService) List(ownerID uint, limit int) ([]dto.QuizSummaryResponse, error) {
	if ownerID == 0 {
		return nil, ErrUnauthenticated
	}
	rows, err := s.quizRepo.FindByOwner(ownerID, limit)
	if err != nil {
		log.Error().Err(err).Uint("ownerID", ownerID).Msg("Failed to list quizzes")
		return nil, err
	}

	summaries := make([]dto.QuizSummaryResponse, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, dto.QuizSummaryResponse{
			ID:            row.ID,
			Title:         row.Title,
			QuestionCount: row.QuestionCount,
			TimeLimit:     row.TimeLimit,
			CreatedAt:     row.CreatedAt,
			UpdatedAt:     row.UpdatedAt,
		})
	}
	return summaries, nil
}

func (s *quizService) GetByID(id, requesterID uint) (*dto.QuizResponse, error) {
	quiz, err := s.findOwnedQuiz(id, requesterID, true)
	if err != nil {
		return nil, err
	}
	var resp dto.QuizResponse
	if err := copier.Copy(&resp, quiz); err != nil {
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return &resp, nil
}

func (s *quizService) Update(id, requesterID uint, patch dto.QuizUpdateRequest) (*dto.QuizResponse, error) {
	quiz, err := s.findOwnedQuiz(id, requesterID, false)
	if err != nil {
		return nil, err
	}

	// Validate everything before touching the store so a rejected patch
	// leaves the stored quiz untouched.
	if patch.Questions != nil && len(*patch.Questions) == 0 {
		return nil, fmt.Errorf("%w: a quiz needs at least one question", ErrInvalidInput)
	}

	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, fmt.Errorf("%w: title must not be empty", ErrInvalidInput)
		}
		quiz.Title = *patch.Title
	}
	if patch.TimeLimit != nil {
		if *patch.TimeLimit <= 0 {
			return nil, fmt.Errorf("%w: time limit must be a positive number of minutes", ErrInvalidInput)
		}
		quiz.TimeLimit = *patch.TimeLimit
	}
	if patch.Weightage != nil {
		quiz.Weightage = patch.Weightage
	}
	if patch.WeightageType != nil {
		quiz.WeightageType = *patch.WeightageType
	}

	if patch.Questions != nil {
		// Field changes and the question swap commit together.
		err = s.quizRepo.UpdateWithQuestions(quiz, questionsFromPayload(*patch.Questions))
	} else {
		err = s.quizRepo.Update(quiz)
	}
	if err != nil {
		log.Error().Err(err).Uint("quizID", id).Msg("Failed to update quiz")
		return nil, err
	}

	updated, err := s.quizRepo.FindByIDWithQuestions(id)
	if err != nil {
		return nil, err
	}
	var resp dto.QuizResponse
	if err := copier.Copy(&resp, updated); err != nil {
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return &resp, nil
}

func (s *quizService) Delete(id, requesterID uint) error {
	if _, err := s.findOwnedQuiz(id, requesterID, false); err != nil {
		return err
	}
	// Dependent assignments are managed by a separate service and are not cascaded here.
	if err := s.quizRepo.Delete(id); err != nil {
		log.Error().Err(err).Uint("quizID", id).Msg("Failed to delete quiz")
		return err
	}
	return nil
}

// findOwnedQuiz loads a quiz and enforces the ownership invariant: only the owner
// may read full detail, update or delete.
func (s *quizService) findOwnedQuiz(id, requesterID uint, withQuestions bool) (*model.Quiz, error) {
	if requesterID == 0 {
		return nil, ErrUnauthenticated
	}
	var (
		quiz *model.Quiz
		err  error
	)
	if withQuestions {
		quiz, err = s.quizRepo.FindByIDWithQuestions(id)
	} else {
		quiz, err = s.quizRepo.FindByID(id)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}
	if quiz.OwnerID != requesterID {
		return nil, ErrQuizAccessDenied
	}
	return quiz, nil
}

func questionsFromPayload(payloads []dto.QuestionPayload) []model.Question {
	questions := make([]model.Question, 0, len(payloads))
	for i, p := range payloads {
		questions = append(questions, model.Question{
			Text:         p.Text,
			Type:         p.Type,
			Options:      p.Options,
			Answer:       p.Answer,
			ImageURL:     p.ImageURL,
			OptionImages: p.OptionImages,
			OrderInQuiz:  i + 1,
		})
	}
	return questions
}
