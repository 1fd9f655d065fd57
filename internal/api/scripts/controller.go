package scripts

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/promoforge/adscript/internal/llm"
	"github.com/promoforge/adscript/internal/prompt"
	"github.com/promoforge/adscript/internal/script"
	"github.com/promoforge/adscript/internal/utils"
)

type Controller struct {
	svc *Service
}

func NewController(svc *Service) *Controller {
	return &Controller{svc: svc}
}

// Generate handles POST /api/v1/scripts
func (ctl *Controller) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	resp, err := ctl.svc.Generate(c.Request.Context(), req.NewsText)
	if err != nil {
		ctl.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Recent handles GET /api/v1/scripts/recent
func (ctl *Controller) Recent(c *gin.Context) {
	limit := 20
	if l := c.Query("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	resp, err := ctl.svc.Recent(c.Request.Context(), limit)
	if err != nil {
		if errors.Is(err, ErrNoHistory) {
			c.JSON(http.StatusNotImplemented, gin.H{
				"error":   "history disabled",
				"message": "set DATABASE_URL to enable script history",
			})
			return
		}
		utils.Zlog.Error("Failed to read script history", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read history"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// writeError maps pipeline error kinds onto HTTP statuses with
// kind-specific remediation hints.
func (ctl *Controller) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, prompt.ErrEmptyNewsText):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "empty news_text",
			"message": "news_text must be a non-empty string",
		})
	case errors.Is(err, llm.ErrConnection):
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "model server unreachable",
			"message": "check that the Ollama server is running and OLLAMA_HOST points at it",
		})
	case errors.Is(err, llm.ErrModelNotFound):
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "model not found",
			"message": "pull the configured model first, e.g. `ollama pull <model>`",
		})
	case errors.Is(err, script.ErrParse):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "unparseable model output",
			"message": "the model reply did not match the expected schema",
		})
	default:
		utils.Zlog.Error("Script generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "script generation failed"})
	}
}
