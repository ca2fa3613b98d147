package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/middleware"
	"github.com/lshigami/Quokka/internal/service"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	quizService service.QuizService
}

func NewQuizController(quizService service.QuizService) *QuizController {
	return &QuizController{quizService: quizService}
}

// GenerateQuiz godoc
// @Summary Generate a quiz preview with AI
// @Description Builds a quiz from a topic via the text-generation provider. The result is a preview only; nothing is persisted until the admin confirms via the manual create endpoint.
// @Tags quiz
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GenerateQuizRequest true "Topic, question type and count"
// @Success 200 {object} dto.APIResponse "Normalized preview quiz plus an advisory message about the returned count"
// @Failure 400 {object} dto.APIResponse "Empty prompt"
// @Failure 401 {object} dto.APIResponse "No requester identity"
// @Failure 500 {object} dto.APIResponse "Provider unavailable or unparseable output"
// @Router /quiz/generate [post]
func (c *QuizController) GenerateQuiz(ctx *gin.Context) {
	var req dto.GenerateQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("Invalid request body", err.Error()))
		return
	}

	quiz, message, err := c.quizService.Generate(ctx.Request.Context(), req, middleware.UserIDFromContext(ctx))
	if err != nil {
		log.Error().Err(err).Str("topic", req.Topic).Msg("Quiz generation failed")
		ctx.JSON(statusFromError(err), dto.Error("Quiz generation failed", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Message: message,
		Data:    quiz,
		Preview: true,
	})
}

// CreateQuiz godoc
// @Summary Create a quiz
// @Description Persists a quiz, either hand-written or a confirmed AI preview
// @Tags quiz
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param quiz body dto.QuizCreateRequest true "Quiz with at least one question"
// @Success 201 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse "Missing title or questions"
// @Failure 401 {object} dto.APIResponse
// @Router /quiz/manual [post]
func (c *QuizController) CreateQuiz(ctx *gin.Context) {
	var req dto.QuizCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("Invalid request body", err.Error()))
		return
	}

	quiz, err := c.quizService.Create(req, middleware.UserIDFromContext(ctx))
	if err != nil {
		log.Error().Err(err).Msg("Failed to create quiz")
		ctx.JSON(statusFromError(err), dto.Error("Failed to create quiz", err.Error()))
		return
	}
	ctx.JSON(http.StatusCreated, dto.Success(quiz, "Quiz created"))
}

// ListQuizzes godoc
// @Summary List own quizzes
// @Description Returns the requester's quizzes, most recently created first
// @Tags quiz
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Cap the number of results"
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Router /quiz [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	quizzes, err := c.quizService.List(middleware.UserIDFromContext(ctx), limit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list quizzes")
		ctx.JSON(statusFromError(err), dto.Error("Failed to retrieve quizzes", err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(quizzes, ""))
}

// GetQuiz godoc
// @Summary Get a quiz by id
// @Description Full quiz detail; only the owner may read it
// @Tags quiz
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse "Requester is not the owner"
// @Failure 404 {object} dto.APIResponse "No such quiz"
// @Router /quiz/{id} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	id, ok := quizIDParam(ctx)
	if !ok {
		return
	}

	quiz, err := c.quizService.GetByID(id, middleware.UserIDFromContext(ctx))
	if err != nil {
		ctx.JSON(statusFromError(err), dto.Error("Failed to retrieve quiz", err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(quiz, ""))
}

// UpdateQuiz godoc
// @Summary Update a quiz
// @Description Partial update; omitted fields retain their prior value. Owner only.
// @Tags quiz
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Param patch body dto.QuizUpdateRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /quiz/{id} [put]
func (c *QuizController) UpdateQuiz(ctx *gin.Context) {
	id, ok := quizIDParam(ctx)
	if !ok {
		return
	}

	var patch dto.QuizUpdateRequest
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("Invalid request body", err.Error()))
		return
	}

	quiz, err := c.quizService.Update(id, middleware.UserIDFromContext(ctx), patch)
	if err != nil {
		log.Error().Err(err).Uint("quizID", id).Msg("Failed to update quiz")
		ctx.JSON(statusFromError(err), dto.Error("Failed to update quiz", err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(quiz, "Quiz updated"))
}

// DeleteQuiz godoc
// @Summary Delete a quiz
// @Description Removes the quiz and its questions. Owner only.
// @Tags quiz
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /quiz/{id} [delete]
func (c *QuizController) DeleteQuiz(ctx *gin.Context) {
	id, ok := quizIDParam(ctx)
	if !ok {
		return
	}

	if err := c.quizService.Delete(id, middleware.UserIDFromContext(ctx)); err != nil {
		log.Error().Err(err).Uint("quizID", id).Msg("Failed to delete quiz")
		ctx.JSON(statusFromError(err), dto.Error("Failed to delete quiz", err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(nil, "Quiz deleted"))
}

func quizIDParam(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("Invalid quiz ID format", err.Error()))
		return 0, false
	}
	return uint(id), true
}
