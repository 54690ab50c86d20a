package models

type SignupResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      int64  `json:"user_id"`
	Nickname    string `json:"nickname"`
}

type CreateDiaryResponse struct {
	Message string `json:"message"`
	DiaryID int64  `json:"diary_id"`
}

type DiarySummary struct {
	DiaryID         int64  `json:"diary_id"`
	Date            string `json:"date"`
	OriginalContent string `json:"original_content"`
	FullStory       string `json:"full_story"`
}

type DiaryListResponse struct {
	Diaries []DiarySummary `json:"diaries"`
}

type StorySettings struct {
	Genre         string `json:"genre"`
	Style         string `json:"style"`
	CharacterNote string `json:"character"`
	TotalCuts     int    `json:"cuts"`
}

type CutResponse struct {
	CutID     int64  `json:"cut_id"`
	CutNumber int    `json:"cut_number"`
	ImageURL  string `json:"image_url"`
	Status    string `json:"status"`
	Text      string `json:"text"`
}

type DiaryDetailResponse struct {
	DiaryID         int64         `json:"diary_id"`
	Date            string        `json:"date"`
	OriginalContent string        `json:"original_content"`
	FullStory       string        `json:"full_story"`
	Settings        StorySettings `json:"settings"`
	Cuts            []CutResponse `json:"cuts"`
}

type RegenerateCutResponse struct {
	NewImageURL string `json:"new_image_url"`
	Status      string `json:"status"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
