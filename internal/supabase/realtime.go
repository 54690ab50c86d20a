package supabase

import (
	"fmt"

	"github.com/supabase-community/supabase-go"
)

type RealtimeClient struct {
	client *supabase.Client
}

func NewRealtimeClient(client *supabase.Client) *RealtimeClient {
	return &RealtimeClient{
		client: client,
	}
}

// PublishEvent is a no-op today: row changes on diaries and cuts already
// trigger Supabase Realtime for subscribed clients. Kept as the seam for
// explicit broadcast events if the frontend ever needs them.
func (r *RealtimeClient) PublishEvent(channel string, event string, payload map[string]interface{}) error {
	return nil
}

func (r *RealtimeClient) PublishDiaryEvent(diaryID int64, event string, payload map[string]interface{}) error {
	channel := fmt.Sprintf("diary:%d", diaryID)
	return r.PublishEvent(channel, event, payload)
}

// Event payloads
func GenerationStartedPayload(diaryID int64, cutsCount int) map[string]interface{} {
	return map[string]interface{}{
		"diary_id":   diaryID,
		"status":     "generating",
		"cuts_count": cutsCount,
	}
}

func PanelCompletedPayload(diaryID int64, cutNumber int, imageURL string) map[string]interface{} {
	return map[string]interface{}{
		"diary_id":   diaryID,
		"status":     "generating",
		"cut_number": cutNumber,
		"image_url":  imageURL,
	}
}

func PanelFailedPayload(diaryID int64, cutNumber int) map[string]interface{} {
	return map[string]interface{}{
		"diary_id":   diaryID,
		"status":     "generating",
		"cut_number": cutNumber,
		"failed":     true,
	}
}

func GenerationCompletedPayload(diaryID int64, completed, failed int) map[string]interface{} {
	return map[string]interface{}{
		"diary_id":  diaryID,
		"status":    "completed",
		"completed": completed,
		"failed":    failed,
	}
}

func GenerationFailedPayload(diaryID int64, errorMsg string) map[string]interface{} {
	return map[string]interface{}{
		"diary_id": diaryID,
		"status":   "failed",
		"error":    errorMsg,
	}
}
