package models

import "time"

// Cut status values. Cuts are only persisted once rendering reached a
// terminal outcome: completed when the image was rendered and uploaded,
// failed otherwise, with the placeholder URL so clients always have
// something to show.
const (
	CutStatusCompleted = "completed"
	CutStatusFailed    = "failed"
)

// PlaceholderImageURL is stored on cuts whose image could not be generated.
const PlaceholderImageURL = "https://via.placeholder.com/1024?text=Generation+Failed"

type Diary struct {
	DiaryID         int64
	UserID          int64
	OriginalContent string
	CreatedAt       time.Time
}

type Story struct {
	StoryID       int64
	DiaryID       int64
	FullStory     string
	Genre         string
	Style         string
	CharacterNote string
	TotalCuts     int
	CreatedAt     time.Time
}

type Cut struct {
	CutID       int64
	StoryID     int64
	CutNumber   int
	CutContent  string
	ImagePrompt string
	ImageURL    string
	Status      string
	CreatedAt   time.Time
}
