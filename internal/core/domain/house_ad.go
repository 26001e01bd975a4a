package domain

import "time"

// HouseAd is a promotional video submitted by an app's own developer. It is
// shown for free in the home feed and interstitial rotation while IsActive
// is set. House ads have no reward concept; only impressions and clicks are
// counted.
type HouseAd struct {
	ID               string    `json:"id"`
	AppID            string    `json:"app_id"`
	OwnerID          string    `json:"owner_id"`
	VideoURL         string    `json:"video_url"`
	Title            *string   `json:"title"`
	Description      *string   `json:"description"`
	IsActive         bool      `json:"is_active"`
	SkipAfterSeconds int       `json:"skip_after_seconds"`
	DurationSeconds  *int      `json:"duration_seconds"`
	ImpressionsCount int64     `json:"impressions_count"`
	ClicksCount      int64     `json:"clicks_count"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
