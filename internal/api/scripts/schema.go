package scripts

import "time"

// GenerateRequest is the input contract for POST /api/v1/scripts.
type GenerateRequest struct {
	NewsText string `json:"news_text"`
}

// GenerateResponse carries the decoded script material.
type GenerateResponse struct {
	ID          string `json:"id"`
	Headline    string `json:"headline"`
	VideoScript string `json:"video_script"`
	Model       string `json:"model"`
}

// HistoryItem is one stored generation in GET /api/v1/scripts/recent.
type HistoryItem struct {
	ID          string    `json:"id"`
	Headline    string    `json:"headline"`
	VideoScript string    `json:"video_script"`
	Model       string    `json:"model"`
	CreatedAt   time.Time `json:"created_at"`
}

type HistoryResponse struct {
	Scripts []HistoryItem `json:"scripts"`
}
