package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bnema/course-tutor/internal/domain"
)

const (
	msgIndexNotReady  = "Base não carregada."
	msgEmptyPrompt    = "prompt is required"
	msgInvalidBody    = "invalid request body"
	msgSuggestFailure = "Não foi possível gerar uma sugestão agora."
)

type Answerer interface {
	Answer(ctx context.Context, question string) string
}

type Suggester interface {
	Suggest(ctx context.Context, prompt string) (string, error)
}

type GenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// GenerateResponse echoes the request next to the answer.
type GenerateResponse struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
	Output string `json:"output"`
}

type SuggestRequest struct {
	Prompt string `json:"prompt"`
}

type SuggestResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type Handlers struct {
	answerer  Answerer
	suggester Suggester
	logger    *slog.Logger
}

func NewHandlers(answerer Answerer, suggester Suggester, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{answerer: answerer, suggester: suggester, logger: logger}
}

// HandleGenerate handles POST /api/generate. Answers that could not be
// produced still come back as 200 with the apology text in output.
func (h *Handlers) HandleGenerate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidBody})
		return
	}

	output := h.answerer.Answer(c.Request.Context(), req.Prompt)
	c.JSON(http.StatusOK, GenerateResponse{
		Model:  req.Model,
		Prompt: req.Prompt,
		Stream: req.Stream,
		Output: output,
	})
}

// HandleSuggest handles POST /api/suggest.
//
// Response:
//
//	200 OK: SuggestResponse
//	400 Bad Request: malformed body or blank prompt
//	503 Service Unavailable: no course index loaded yet
//	502 Bad Gateway: retrieval or reasoning failed
func (h *Handlers) HandleSuggest(c *gin.Context) {
	var req SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidBody})
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgEmptyPrompt})
		return
	}

	message, err := h.suggester.Suggest(c.Request.Context(), req.Prompt)
	switch {
	case errors.Is(err, domain.ErrIndexNotReady):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: msgIndexNotReady})
		return
	case err != nil:
		h.logger.Error("suggestion failed", slog.Any("error", err))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: msgSuggestFailure})
		return
	}

	c.JSON(http.StatusOK, SuggestResponse{Message: message})
}

func RegisterRoutes(group *gin.RouterGroup, h *Handlers) {
	group.POST("/generate", h.HandleGenerate)
	group.POST("/suggest", h.HandleSuggest)
}
