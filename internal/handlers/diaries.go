package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dailytoon-backend/internal/database"
	"dailytoon-backend/internal/middleware"
	"dailytoon-backend/internal/models"
	"dailytoon-backend/internal/services"
)

type DiariesHandler struct {
	dbClient   *database.Client
	genService *services.GenerationService
	log        *zap.Logger
}

func NewDiariesHandler(dbClient *database.Client, genService *services.GenerationService, log *zap.Logger) *DiariesHandler {
	return &DiariesHandler{
		dbClient:   dbClient,
		genService: genService,
		log:        log,
	}
}

// currentUserID pulls the authenticated user set by the auth middleware.
func currentUserID(c *gin.Context) (int64, bool) {
	value, exists := c.Get(middleware.UserIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := value.(int64)
	return userID, ok
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return id, true
}

// ownedDiary loads the diary and hides other users' diaries behind a 404.
func (h *DiariesHandler) ownedDiary(c *gin.Context, diaryID, userID int64) (*models.Diary, bool) {
	diary, err := h.dbClient.GetDiary(diaryID)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "diary not found"})
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to get diary", Message: err.Error()})
		return nil, false
	}
	if diary.UserID != userID {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "diary not found"})
		return nil, false
	}
	return diary, true
}

// CreateDiary godoc
// @Summary     Create a diary and generate its comic
// @Description Persists the diary entry, adapts it into a story and renders the panel images
// @Tags        diaries
// @Accept      json
// @Produce     json
// @Param       request body models.CreateDiaryRequest true "Diary payload"
// @Success     200 {object} models.CreateDiaryResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /diaries [post]
func (h *DiariesHandler) CreateDiary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return
	}

	var req models.CreateDiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	// Detached context: generation keeps going if the client disconnects
	diary, err := h.genService.CreateDiary(context.Background(), userID, req)
	if err != nil {
		resp := models.ErrorResponse{Error: "comic generation failed", Message: err.Error()}
		if diary != nil {
			// The entry survived; the client can retry generation later
			h.log.Warn("generation failed, diary kept", zap.Int64("diary_id", diary.DiaryID))
		}
		c.JSON(http.StatusInternalServerError, resp)
		return
	}

	c.JSON(http.StatusOK, models.CreateDiaryResponse{
		Message: "comic generated",
		DiaryID: diary.DiaryID,
	})
}

// ListDiaries godoc
// @Summary     List the user's diaries
// @Tags        diaries
// @Produce     json
// @Success     200 {object} models.DiaryListResponse
// @Failure     500 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /diaries [get]
func (h *DiariesHandler) ListDiaries(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return
	}

	rows, err := h.dbClient.ListDiaries(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list diaries", Message: err.Error()})
		return
	}

	summaries := make([]models.DiarySummary, len(rows))
	for i, row := range rows {
		summaries[i] = models.DiarySummary{
			DiaryID:         row.Diary.DiaryID,
			Date:            row.Diary.CreatedAt.Format("2006-01-02"),
			OriginalContent: row.Diary.OriginalContent,
			FullStory:       row.FullStory.String,
		}
	}

	c.JSON(http.StatusOK, models.DiaryListResponse{Diaries: summaries})
}

// GetDiary godoc
// @Summary     Get a diary with its story and cuts
// @Tags        diaries
// @Produce     json
// @Param       diary_id path int true "Diary ID"
// @Success     200 {object} models.DiaryDetailResponse
// @Failure     404 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /diaries/{diary_id} [get]
func (h *DiariesHandler) GetDiary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return
	}

	diaryID, ok := parseIDParam(c, "diary_id")
	if !ok {
		return
	}

	diary, ok := h.ownedDiary(c, diaryID, userID)
	if !ok {
		return
	}

	detail := models.DiaryDetailResponse{
		DiaryID:         diary.DiaryID,
		Date:            diary.CreatedAt.Format("2006-01-02"),
		OriginalContent: diary.OriginalContent,
		Cuts:            []models.CutResponse{},
	}

	// A diary without a story is one whose generation never succeeded
	story, err := h.dbClient.GetStoryByDiary(diaryID)
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to get story", Message: err.Error()})
		return
	}

	if story != nil {
		detail.FullStory = story.FullStory
		detail.Settings = models.StorySettings{
			Genre:         story.Genre,
			Style:         story.Style,
			CharacterNote: story.CharacterNote,
			TotalCuts:     story.TotalCuts,
		}

		cuts, err := h.dbClient.GetCutsByStory(story.StoryID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to get cuts", Message: err.Error()})
			return
		}
		for _, cut := range cuts {
			detail.Cuts = append(detail.Cuts, models.CutResponse{
				CutID:     cut.CutID,
				CutNumber: cut.CutNumber,
				ImageURL:  cut.ImageURL,
				Status:    cut.Status,
				Text:      cut.CutContent,
			})
		}
	}

	c.JSON(http.StatusOK, detail)
}

// UpdateDiary godoc
// @Summary     Edit diary texts
// @Description Text-only edit of the diary entry, story text and cut captions; images are untouched
// @Tags        diaries
// @Accept      json
// @Produce     json
// @Param       diary_id path int true "Diary ID"
// @Param       request body models.UpdateDiaryRequest true "Edit payload"
// @Success     200 {object} models.MessageResponse
// @Failure     404 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /diaries/{diary_id} [put]
func (h *DiariesHandler) UpdateDiary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return
	}

	diaryID, ok := parseIDParam(c, "diary_id")
	if !ok {
		return
	}

	if _, ok := h.ownedDiary(c, diaryID, userID); !ok {
		return
	}

	var req models.UpdateDiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	if err := h.genService.UpdateDiaryTexts(diaryID, req); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to update diary", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "diary updated"})
}

// RegenerateDiary godoc
// @Summary     Regenerate the whole comic
// @Description Replaces the story and every cut using the new diary text and the stored settings
// @Tags        diaries
// @Accept      json
// @Produce     json
// @Param       diary_id path int true "Diary ID"
// @Param       request body models.FullRegenerateRequest true "New diary text"
// @Success     200 {object} models.MessageResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /diaries/{diary_id}/regenerate [post]
func (h *DiariesHandler) RegenerateDiary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return
	}

	diaryID, ok := parseIDParam(c, "diary_id")
	if !ok {
		return
	}

	if _, ok := h.ownedDiary(c, diaryID, userID); !ok {
		return
	}

	var req models.FullRegenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	if err := h.genService.RegenerateDiary(context.Background(), diaryID, req.OriginalContent); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "story not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "comic regeneration failed", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "comic regenerated"})
}

// DeleteDiary godoc
// @Summary     Delete a diary
// @Description Removes the diary, its story and cuts; stored panel images are cleaned up best effort
// @Tags        diaries
// @Param       diary_id path int true "Diary ID"
// @Success     204 "No Content"
// @Failure     404 {object} models.ErrorResponse
// @Security    BearerAuth
// @Router      /diaries/{diary_id} [delete]
func (h *DiariesHandler) DeleteDiary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return
	}

	diaryID, ok := parseIDParam(c, "diary_id")
	if !ok {
		return
	}

	if _, ok := h.ownedDiary(c, diaryID, userID); !ok {
		return
	}

	if err := h.genService.DeleteDiary(diaryID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "diary not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to delete diary", Message: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
