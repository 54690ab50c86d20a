package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dailytoon-backend/internal/database"
	"dailytoon-backend/internal/models"
	"dailytoon-backend/internal/services"
)

type CutsHandler struct {
	dbClient   *database.Client
	genService *services.GenerationService
	log        *zap.Logger
}

func NewCutsHandler(dbClient *database.Client, genService *services.GenerationService, log *zap.Logger) *CutsHandler {
	return &CutsHandler{
		dbClient:   dbClient,
		genService: genService,
		log:        log,
	}
}

// RegenerateCut godoc
// @Summary     Re-render a single cut
// @Description Renders a new image for one cut, optionally with a prompt override. A failed render answers 200 with status "failed" and the placeholder image.
// @Tags        cuts
// @Accept      json
// @Produce     json
// @Param       cut_id path int true "Cut ID"
// @Param       request body models.RegenerateCutRequest false "Optional prompt override"
// @Success     200 {object} models.RegenerateCutResponse
// @Failure     404 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /cuts/{cut_id}/regenerate [post]
func (h *CutsHandler) RegenerateCut(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return
	}

	cutID, ok := parseIDParam(c, "cut_id")
	if !ok {
		return
	}

	if !h.ownsCut(c, cutID, userID) {
		return
	}

	var req models.RegenerateCutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Body is optional; absent means reuse the stored prompt
		req.PromptOverride = ""
	}

	resp, err := h.genService.RegenerateCut(context.Background(), cutID, req.PromptOverride)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "cut not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to regenerate cut", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ownsCut walks cut -> story -> diary to verify the authenticated user owns
// the cut. Foreign cuts answer 404, same as missing ones.
func (h *CutsHandler) ownsCut(c *gin.Context, cutID, userID int64) bool {
	cut, err := h.dbClient.GetCut(cutID)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "cut not found"})
		return false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to get cut", Message: err.Error()})
		return false
	}

	story, err := h.dbClient.GetStory(cut.StoryID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "cut not found"})
		return false
	}

	diary, err := h.dbClient.GetDiary(story.DiaryID)
	if err != nil || diary.UserID != userID {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "cut not found"})
		return false
	}

	return true
}
