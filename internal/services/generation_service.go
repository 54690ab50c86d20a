package services

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"dailytoon-backend/internal/config"
	"dailytoon-backend/internal/gemini"
	"dailytoon-backend/internal/models"
	"dailytoon-backend/internal/prompts"
	"dailytoon-backend/internal/supabase"
)

const (
	defaultCutsCount = 4
	maxCutsCount     = 10
)

// NarrativeAdapter turns the assembled diary prompt into a story with panel
// descriptors. The production implementation is the Gemini client.
type NarrativeAdapter interface {
	Adapt(ctx context.Context, prompt string) (*gemini.Narrative, error)
}

// PanelRenderer produces one image for one panel prompt.
type PanelRenderer interface {
	Render(ctx context.Context, prompt string) ([]byte, error)
}

// AssetUploader stores rendered panels and cleans them up on diary deletion.
type AssetUploader interface {
	UploadPanelImage(storyID int64, cutNumber int, data []byte) (string, error)
	DeleteStoryFiles(storyID int64) error
}

// Store is the slice of the database client the generation pipeline needs.
type Store interface {
	CreateDiary(userID int64, originalContent string) (*models.Diary, error)
	GetDiary(diaryID int64) (*models.Diary, error)
	UpdateDiaryContent(diaryID int64, originalContent string) error
	DeleteDiary(diaryID int64) error
	CreateStory(diaryID int64, fullStory, genre, style, characterNote string, totalCuts int) (*models.Story, error)
	GetStoryByDiary(diaryID int64) (*models.Story, error)
	ResetStoryForRegeneration(storyID int64, fullStory string, totalCuts int) error
	UpdateStoryText(storyID int64, fullStory string) error
	InsertCuts(storyID int64, cuts []models.Cut) error
	GetCut(cutID int64) (*models.Cut, error)
	UpdateCutImage(cutID int64, imageURL, status, imagePrompt string) error
	UpdateCutText(cutID int64, text string) error
}

// GenerationService runs the diary-to-comic pipeline: narrative adaptation,
// parallel panel rendering, asset upload and persistence.
type GenerationService struct {
	adapter  NarrativeAdapter
	renderer PanelRenderer
	uploader AssetUploader
	store    Store
	realtime *supabase.RealtimeClient
	log      *zap.Logger

	renderConcurrency int
	renderInterval    time.Duration
}

func NewGenerationService(
	adapter NarrativeAdapter,
	renderer PanelRenderer,
	uploader AssetUploader,
	store Store,
	realtime *supabase.RealtimeClient,
	log *zap.Logger,
	cfg *config.Config,
) *GenerationService {
	concurrency := cfg.RenderConcurrency
	if concurrency < 1 {
		concurrency = 1
	}

	return &GenerationService{
		adapter:           adapter,
		renderer:          renderer,
		uploader:          uploader,
		store:             store,
		realtime:          realtime,
		log:               log,
		renderConcurrency: concurrency,
		renderInterval:    time.Duration(cfg.RenderIntervalMillis) * time.Millisecond,
	}
}

// CreateDiary persists the diary entry first, then runs the full generation
// pipeline. The returned diary is non-nil even when adaptation fails: the
// entry survives so the user can retry without retyping it.
func (s *GenerationService) CreateDiary(ctx context.Context, userID int64, req models.CreateDiaryRequest) (*models.Diary, error) {
	cutsCount := normalizeCutsCount(req.CutsCount)

	diary, err := s.store.CreateDiary(userID, req.OriginalContent)
	if err != nil {
		return nil, err
	}

	s.log.Info("diary created, starting generation",
		zap.Int64("diary_id", diary.DiaryID),
		zap.Int64("user_id", userID),
		zap.Int("cuts_count", cutsCount),
	)
	s.realtime.PublishDiaryEvent(diary.DiaryID, "generation", supabase.GenerationStartedPayload(diary.DiaryID, cutsCount))

	prompt := prompts.BuildNarrativePrompt(req.OriginalContent, req.Genre, req.Style, req.CharacterNote, cutsCount)
	narrative, err := s.adapter.Adapt(ctx, prompt)
	if err != nil {
		s.log.Error("narrative adaptation failed", zap.Int64("diary_id", diary.DiaryID), zap.Error(err))
		s.realtime.PublishDiaryEvent(diary.DiaryID, "generation", supabase.GenerationFailedPayload(diary.DiaryID, err.Error()))
		return diary, err
	}

	// The model decides the final panel count; the requested count is a hint
	story, err := s.store.CreateStory(diary.DiaryID, narrative.FullStory, req.Genre, req.Style, req.CharacterNote, len(narrative.Cuts))
	if err != nil {
		return diary, err
	}

	cuts := s.renderPanels(diary.DiaryID, story.StoryID, req.Style, req.CharacterNote, narrative.Cuts)
	if err := s.store.InsertCuts(story.StoryID, cuts); err != nil {
		return diary, err
	}

	completed, failed := countOutcomes(cuts)
	s.log.Info("generation finished",
		zap.Int64("diary_id", diary.DiaryID),
		zap.Int64("story_id", story.StoryID),
		zap.Int("completed", completed),
		zap.Int("failed", failed),
	)
	s.realtime.PublishDiaryEvent(diary.DiaryID, "generation", supabase.GenerationCompletedPayload(diary.DiaryID, completed, failed))

	return diary, nil
}

// RegenerateDiary reruns the whole pipeline for an existing diary with new
// text, reusing the stored genre, style and character settings. The old cut
// set is dropped only after adaptation succeeds, so a failed regeneration
// leaves the previous comic intact.
func (s *GenerationService) RegenerateDiary(ctx context.Context, diaryID int64, newContent string) error {
	diary, err := s.store.GetDiary(diaryID)
	if err != nil {
		return err
	}

	story, err := s.store.GetStoryByDiary(diaryID)
	if err != nil {
		return err
	}

	if err := s.store.UpdateDiaryContent(diary.DiaryID, newContent); err != nil {
		return err
	}

	cutsCount := normalizeCutsCount(story.TotalCuts)
	s.realtime.PublishDiaryEvent(diaryID, "generation", supabase.GenerationStartedPayload(diaryID, cutsCount))

	prompt := prompts.BuildNarrativePrompt(newContent, story.Genre, story.Style, story.CharacterNote, cutsCount)
	narrative, err := s.adapter.Adapt(ctx, prompt)
	if err != nil {
		s.log.Error("narrative adaptation failed", zap.Int64("diary_id", diaryID), zap.Error(err))
		s.realtime.PublishDiaryEvent(diaryID, "generation", supabase.GenerationFailedPayload(diaryID, err.Error()))
		return err
	}

	if err := s.store.ResetStoryForRegeneration(story.StoryID, narrative.FullStory, len(narrative.Cuts)); err != nil {
		return err
	}

	cuts := s.renderPanels(diaryID, story.StoryID, story.Style, story.CharacterNote, narrative.Cuts)
	if err := s.store.InsertCuts(story.StoryID, cuts); err != nil {
		return err
	}

	completed, failed := countOutcomes(cuts)
	s.log.Info("regeneration finished",
		zap.Int64("diary_id", diaryID),
		zap.Int64("story_id", story.StoryID),
		zap.Int("completed", completed),
		zap.Int("failed", failed),
	)
	s.realtime.PublishDiaryEvent(diaryID, "generation", supabase.GenerationCompletedPayload(diaryID, completed, failed))

	return nil
}

// RegenerateCut re-renders a single panel in place. A render or upload
// failure is not an HTTP error: the cut is marked failed with the placeholder
// image and that outcome is reported back to the caller.
func (s *GenerationService) RegenerateCut(ctx context.Context, cutID int64, promptOverride string) (*models.RegenerateCutResponse, error) {
	cut, err := s.store.GetCut(cutID)
	if err != nil {
		return nil, err
	}

	effectivePrompt := promptOverride
	if effectivePrompt == "" {
		effectivePrompt = cut.ImagePrompt
	}

	imageURL, renderErr := s.renderAndUpload(ctx, cut.StoryID, cut.CutNumber, effectivePrompt)
	if renderErr != nil {
		s.log.Warn("cut regeneration failed",
			zap.Int64("cut_id", cutID),
			zap.Error(renderErr),
		)
		if err := s.store.UpdateCutImage(cutID, models.PlaceholderImageURL, models.CutStatusFailed, effectivePrompt); err != nil {
			return nil, err
		}
		return &models.RegenerateCutResponse{
			NewImageURL: models.PlaceholderImageURL,
			Status:      models.CutStatusFailed,
		}, nil
	}

	if err := s.store.UpdateCutImage(cutID, imageURL, models.CutStatusCompleted, effectivePrompt); err != nil {
		return nil, err
	}

	return &models.RegenerateCutResponse{
		NewImageURL: imageURL,
		Status:      models.CutStatusCompleted,
	}, nil
}

// UpdateDiaryTexts applies a text-only edit: diary content, optionally the
// story text and individual cut captions. Images are never touched here.
func (s *GenerationService) UpdateDiaryTexts(diaryID int64, req models.UpdateDiaryRequest) error {
	if err := s.store.UpdateDiaryContent(diaryID, req.OriginalContent); err != nil {
		return err
	}

	if req.FullStory != "" {
		story, err := s.store.GetStoryByDiary(diaryID)
		if err != nil {
			return err
		}
		if err := s.store.UpdateStoryText(story.StoryID, req.FullStory); err != nil {
			return err
		}
	}

	for _, cu := range req.Cuts {
		if err := s.store.UpdateCutText(cu.CutID, cu.Text); err != nil {
			return err
		}
	}

	return nil
}

// DeleteDiary removes the diary row, which cascades to its story and cuts,
// then cleans up the stored panel images. Rows go first: if the delete fails
// the cuts must keep pointing at live assets, while orphaned storage objects
// after a successful delete only cost space.
func (s *GenerationService) DeleteDiary(diaryID int64) error {
	story, storyErr := s.store.GetStoryByDiary(diaryID)

	if err := s.store.DeleteDiary(diaryID); err != nil {
		return err
	}

	if storyErr == nil {
		if err := s.uploader.DeleteStoryFiles(story.StoryID); err != nil {
			s.log.Warn("failed to delete panel images",
				zap.Int64("story_id", story.StoryID),
				zap.Error(err),
			)
		}
	}

	return nil
}

// renderPanels renders every panel descriptor concurrently and returns one
// cut per descriptor, numbered by position. Panel failures are terminal for
// that panel only: the cut is marked failed with the placeholder URL and the
// siblings keep rendering.
func (s *GenerationService) renderPanels(diaryID, storyID int64, style, characterNote string, descriptors []gemini.NarrativeCut) []models.Cut {
	cuts := make([]models.Cut, len(descriptors))

	limiter := rate.NewLimiter(rate.Every(s.renderInterval), 1)
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(s.renderConcurrency)

	for i, desc := range descriptors {
		cuts[i] = models.Cut{
			StoryID:     storyID,
			CutNumber:   i + 1,
			CutContent:  desc.Dialogue,
			ImagePrompt: prompts.BuildImagePrompt(style, characterNote, desc.SceneDescription, desc.ImagePrompt),
			ImageURL:    models.PlaceholderImageURL,
			Status:      models.CutStatusFailed,
		}

		cut := &cuts[i]
		g.Go(func() error {
			if err := limiter.Wait(ctx); err != nil {
				return nil
			}

			imageURL, err := s.renderAndUpload(ctx, storyID, cut.CutNumber, cut.ImagePrompt)
			if err != nil {
				s.log.Warn("panel generation failed",
					zap.Int64("story_id", storyID),
					zap.Int("cut_number", cut.CutNumber),
					zap.Error(err),
				)
				s.realtime.PublishDiaryEvent(diaryID, "generation", supabase.PanelFailedPayload(diaryID, cut.CutNumber))
				return nil
			}

			cut.ImageURL = imageURL
			cut.Status = models.CutStatusCompleted
			s.realtime.PublishDiaryEvent(diaryID, "generation", supabase.PanelCompletedPayload(diaryID, cut.CutNumber, imageURL))
			return nil
		})
	}

	// Goroutines report failures through cut status, never as errors
	_ = g.Wait()

	return cuts
}

func (s *GenerationService) renderAndUpload(ctx context.Context, storyID int64, cutNumber int, prompt string) (string, error) {
	data, err := s.renderer.Render(ctx, prompt)
	if err != nil {
		return "", err
	}

	imageURL, err := s.uploader.UploadPanelImage(storyID, cutNumber, data)
	if err != nil {
		return "", err
	}

	return imageURL, nil
}

func normalizeCutsCount(requested int) int {
	if requested <= 0 {
		return defaultCutsCount
	}
	if requested > maxCutsCount {
		return maxCutsCount
	}
	return requested
}

func countOutcomes(cuts []models.Cut) (completed, failed int) {
	for _, cut := range cuts {
		if cut.Status == models.CutStatusCompleted {
			completed++
		} else {
			failed++
		}
	}
	return completed, failed
}
