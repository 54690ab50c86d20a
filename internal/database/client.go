package database

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
	"dailytoon-backend/internal/models"
)

// ErrNotFound is returned when a user, diary, story or cut does not exist.
// Handlers translate it to a 404.
var ErrNotFound = errors.New("not found")

type Client struct {
	db *sql.DB
}

func NewClient(connectionString string) (*Client, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Client{db: db}, nil
}

// Users

func (c *Client) CreateUser(email, passwordHash, nickname string) (*models.User, error) {
	var user models.User
	err := c.db.QueryRow(`
		INSERT INTO users (email, password_hash, nickname)
		VALUES ($1, $2, $3)
		RETURNING user_id, email, password_hash, nickname, created_at
	`, email, passwordHash, nickname).Scan(
		&user.UserID, &user.Email, &user.PasswordHash, &user.Nickname, &user.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

func (c *Client) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := c.db.QueryRow(`
		SELECT user_id, email, password_hash, nickname, created_at
		FROM users
		WHERE email = $1
	`, email).Scan(
		&user.UserID, &user.Email, &user.PasswordHash, &user.Nickname, &user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// Diaries

func (c *Client) CreateDiary(userID int64, originalContent string) (*models.Diary, error) {
	var diary models.Diary
	err := c.db.QueryRow(`
		INSERT INTO diaries (user_id, original_content)
		VALUES ($1, $2)
		RETURNING diary_id, user_id, original_content, created_at
	`, userID, originalContent).Scan(
		&diary.DiaryID, &diary.UserID, &diary.OriginalContent, &diary.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create diary: %w", err)
	}

	return &diary, nil
}

func (c *Client) GetDiary(diaryID int64) (*models.Diary, error) {
	var diary models.Diary
	err := c.db.QueryRow(`
		SELECT diary_id, user_id, original_content, created_at
		FROM diaries
		WHERE diary_id = $1
	`, diaryID).Scan(
		&diary.DiaryID, &diary.UserID, &diary.OriginalContent, &diary.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get diary: %w", err)
	}

	return &diary, nil
}

func (c *Client) UpdateDiaryContent(diaryID int64, originalContent string) error {
	result, err := c.db.Exec(`
		UPDATE diaries
		SET original_content = $1
		WHERE diary_id = $2
	`, originalContent, diaryID)
	if err != nil {
		return fmt.Errorf("failed to update diary: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

// DiaryListRow joins a diary with its story text. FullStory is null when
// narrative generation never succeeded for the diary.
type DiaryListRow struct {
	Diary     models.Diary
	FullStory sql.NullString
}

func (c *Client) ListDiaries(userID int64) ([]DiaryListRow, error) {
	rows, err := c.db.Query(`
		SELECT d.diary_id, d.user_id, d.original_content, d.created_at, s.full_story
		FROM diaries d
		LEFT JOIN stories s ON s.diary_id = d.diary_id
		WHERE d.user_id = $1
		ORDER BY d.created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list diaries: %w", err)
	}
	defer rows.Close()

	var list []DiaryListRow
	for rows.Next() {
		var row DiaryListRow
		err := rows.Scan(
			&row.Diary.DiaryID, &row.Diary.UserID, &row.Diary.OriginalContent,
			&row.Diary.CreatedAt, &row.FullStory,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan diary: %w", err)
		}
		list = append(list, row)
	}

	return list, rows.Err()
}

// DeleteDiary removes the diary; stories and cuts go with it through the
// ON DELETE CASCADE foreign keys, so no orphan rows can survive.
func (c *Client) DeleteDiary(diaryID int64) error {
	result, err := c.db.Exec(`
		DELETE FROM diaries
		WHERE diary_id = $1
	`, diaryID)
	if err != nil {
		return fmt.Errorf("failed to delete diary: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Stories

func (c *Client) CreateStory(diaryID int64, fullStory, genre, style, characterNote string, totalCuts int) (*models.Story, error) {
	var story models.Story
	err := c.db.QueryRow(`
		INSERT INTO stories (diary_id, full_story, genre, style, character_note, total_cuts)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING story_id, diary_id, full_story, genre, style, character_note, total_cuts, created_at
	`, diaryID, fullStory, genre, style, characterNote, totalCuts).Scan(
		&story.StoryID, &story.DiaryID, &story.FullStory, &story.Genre,
		&story.Style, &story.CharacterNote, &story.TotalCuts, &story.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create story: %w", err)
	}

	return &story, nil
}

func (c *Client) GetStoryByDiary(diaryID int64) (*models.Story, error) {
	var story models.Story
	err := c.db.QueryRow(`
		SELECT story_id, diary_id, full_story, genre, style, character_note, total_cuts, created_at
		FROM stories
		WHERE diary_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, diaryID).Scan(
		&story.StoryID, &story.DiaryID, &story.FullStory, &story.Genre,
		&story.Style, &story.CharacterNote, &story.TotalCuts, &story.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get story: %w", err)
	}

	return &story, nil
}

func (c *Client) GetStory(storyID int64) (*models.Story, error) {
	var story models.Story
	err := c.db.QueryRow(`
		SELECT story_id, diary_id, full_story, genre, style, character_note, total_cuts, created_at
		FROM stories
		WHERE story_id = $1
	`, storyID).Scan(
		&story.StoryID, &story.DiaryID, &story.FullStory, &story.Genre,
		&story.Style, &story.CharacterNote, &story.TotalCuts, &story.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get story: %w", err)
	}

	return &story, nil
}

func (c *Client) UpdateStoryText(storyID int64, fullStory string) error {
	result, err := c.db.Exec(`
		UPDATE stories
		SET full_story = $1
		WHERE story_id = $2
	`, fullStory, storyID)
	if err != nil {
		return fmt.Errorf("failed to update story: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

// ResetStoryForRegeneration overwrites the story text and drops the prior cut
// set in one transaction, so a regeneration can never leave old cuts mixed
// with the new ones.
func (c *Client) ResetStoryForRegeneration(storyID int64, fullStory string, totalCuts int) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec(`UPDATE stories SET full_story = $1, total_cuts = $2 WHERE story_id = $3`, fullStory, totalCuts, storyID); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to update story: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM cuts WHERE story_id = $1`, storyID); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete cuts: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit regeneration reset: %w", err)
	}
	return nil
}

// Cuts

func (c *Client) GetCut(cutID int64) (*models.Cut, error) {
	var cut models.Cut
	err := c.db.QueryRow(`
		SELECT cut_id, story_id, cut_number, cut_content, image_prompt, image_url, status, created_at
		FROM cuts
		WHERE cut_id = $1
	`, cutID).Scan(
		&cut.CutID, &cut.StoryID, &cut.CutNumber, &cut.CutContent,
		&cut.ImagePrompt, &cut.ImageURL, &cut.Status, &cut.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cut: %w", err)
	}

	return &cut, nil
}

func (c *Client) GetCutsByStory(storyID int64) ([]models.Cut, error) {
	rows, err := c.db.Query(`
		SELECT cut_id, story_id, cut_number, cut_content, image_prompt, image_url, status, created_at
		FROM cuts
		WHERE story_id = $1
		ORDER BY cut_number ASC
	`, storyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cuts: %w", err)
	}
	defer rows.Close()

	var cuts []models.Cut
	for rows.Next() {
		var cut models.Cut
		err := rows.Scan(
			&cut.CutID, &cut.StoryID, &cut.CutNumber, &cut.CutContent,
			&cut.ImagePrompt, &cut.ImageURL, &cut.Status, &cut.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cut: %w", err)
		}
		cuts = append(cuts, cut)
	}

	return cuts, rows.Err()
}

// InsertCuts commits the full cut set for a story in one transaction after
// every panel reached a terminal outcome.
func (c *Client) InsertCuts(storyID int64, cuts []models.Cut) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	for _, cut := range cuts {
		if _, err := tx.Exec(`
			INSERT INTO cuts (story_id, cut_number, cut_content, image_prompt, image_url, status)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, storyID, cut.CutNumber, cut.CutContent, cut.ImagePrompt, cut.ImageURL, cut.Status); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert cut %d: %w", cut.CutNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cuts: %w", err)
	}
	return nil
}

func (c *Client) UpdateCutImage(cutID int64, imageURL, status, imagePrompt string) error {
	result, err := c.db.Exec(`
		UPDATE cuts
		SET image_url = $1, status = $2, image_prompt = $3
		WHERE cut_id = $4
	`, imageURL, status, imagePrompt, cutID)
	if err != nil {
		return fmt.Errorf("failed to update cut image: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (c *Client) UpdateCutText(cutID int64, text string) error {
	result, err := c.db.Exec(`
		UPDATE cuts
		SET cut_content = $1
		WHERE cut_id = $2
	`, text, cutID)
	if err != nil {
		return fmt.Errorf("failed to update cut text: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (c *Client) Close() error {
	return c.db.Close()
}
