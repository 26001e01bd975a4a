package domain

import "time"

// AdKind distinguishes the two ad inventories events can be recorded
// against.
type AdKind string

const (
	KindCampaign AdKind = "campaign"
	KindHouse    AdKind = "house"
)

// EventType is the lifecycle event reported for a shown ad.
type EventType string

const (
	EventImpression     EventType = "impression"
	EventClick          EventType = "click"
	EventRewardComplete EventType = "reward_complete"
)

// Valid reports whether e is one of the known event types.
func (e EventType) Valid() bool {
	switch e {
	case EventImpression, EventClick, EventRewardComplete:
		return true
	}
	return false
}

// AllowedFor reports whether the event type can be recorded for the given
// ad kind. House ads have no reward concept.
func (e EventType) AllowedFor(kind AdKind) bool {
	if kind == KindHouse {
		return e == EventImpression || e == EventClick
	}
	return e.Valid()
}

// CounterColumn returns the denormalized counter column the event type
// increments.
func (e EventType) CounterColumn() string {
	switch e {
	case EventClick:
		return "clicks_count"
	case EventRewardComplete:
		return "rewards_count"
	default:
		return "impressions_count"
	}
}

// Attribution carries optional caller identity stored alongside an event.
type Attribution struct {
	APIKeyID  *string
	IPAddress string
	UserAgent string
	Metadata  map[string]any
}

// AdEvent is an immutable, append-only record of a single ad lifecycle
// event. Counters on campaigns and house ads are denormalized copies
// maintained transactionally alongside event inserts.
type AdEvent struct {
	ID        string         `json:"id"`
	AdID      string         `json:"ad_id"`
	AdKind    AdKind         `json:"ad_kind"`
	EventType EventType      `json:"event_type"`
	APIKeyID  *string        `json:"api_key_id,omitempty"`
	IPAddress string         `json:"ip_address"`
	UserAgent string         `json:"user_agent"`
	Metadata  map[string]any `json:"metadata"`
	CreatedAt time.Time      `json:"created_at"`
}
