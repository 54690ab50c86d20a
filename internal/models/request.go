package models

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email" example:"test@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"strongpassword123"`
	Nickname string `json:"nickname" binding:"required" example:"ghibli-fan"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"test@example.com"`
	Password string `json:"password" binding:"required" example:"strongpassword123"`
}

type CreateDiaryRequest struct {
	OriginalContent string `json:"original_content" binding:"required" example:"On my way home I stumbled on an old treasure map."`
	Genre           string `json:"genre" binding:"required" example:"adventure/fantasy"`
	Style           string `json:"style" binding:"required" example:"ghibli"`
	CharacterNote   string `json:"character_note" example:"a boy wearing a straw hat"`
	CutsCount       int    `json:"cuts_count" example:"4"`
}

// CutUpdate edits a single cut's caption text.
type CutUpdate struct {
	CutID int64  `json:"cut_id" binding:"required"`
	Text  string `json:"text"`
}

// UpdateDiaryRequest is a text-only edit; it never touches images.
type UpdateDiaryRequest struct {
	OriginalContent string      `json:"original_content" binding:"required"`
	FullStory       string      `json:"full_story"`
	Cuts            []CutUpdate `json:"cuts"`
}

type FullRegenerateRequest struct {
	OriginalContent string `json:"original_content" binding:"required" example:"Rewrite it so the hero turns out to be an alien."`
}

type RegenerateCutRequest struct {
	// Empty override reuses the cut's stored image prompt verbatim.
	PromptOverride string `json:"prompt_override" example:"A cat flying in the sky, ghibli style, high quality"`
}
