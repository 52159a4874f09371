package domain

import "time"

type Review struct {
	ID            string            `json:"id"`
	EntityName    string            `json:"entityName"`
	EntityType    string            `json:"entityType"`
	Rating        int               `json:"rating"`
	Text          string            `json:"text"`
	Tags          []string          `json:"tags,omitempty"`
	Images        []string          `json:"images,omitempty"`
	Meta          map[string]string `json:"meta,omitempty"`
	IsScam        bool              `json:"isScam"`
	Keywords      []string          `json:"-"`
	Status        string            `json:"status"`
	ToxicityScore float64           `json:"toxicityScore"`
	VerifiedBadge bool              `json:"verifiedBadge"`
	Likes         int               `json:"likes"`
	Comments      int               `json:"comments"`
	UserID        string            `json:"userId"`
	UserName      string            `json:"userName"`
	CreatedAt     time.Time         `json:"createdAt"`
}

const (
	ReviewStatusActive  = "active"
	ReviewStatusHidden  = "hidden"
	ReviewStatusFlagged = "flagged"
)

type Comment struct {
	ID        string    `json:"id"`
	ReviewID  string    `json:"reviewId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Text      string    `json:"text"`
	Likes     int       `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
}

// Flag is a community report against a review, queued for moderation.
type Flag struct {
	ID        string    `json:"id"`
	ReviewID  string    `json:"reviewId"`
	Reason    string    `json:"reason"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Category drives the review submission form for one entity kind.
type Category struct {
	ID               string          `json:"id"`
	Label            string          `json:"label"`
	Icon             string          `json:"icon"`
	Color            string          `json:"color"`
	Title            string          `json:"title"`
	InputLabel       string          `json:"inputLabel"`
	InputPlaceholder string          `json:"inputPlaceholder"`
	Platforms        []string        `json:"platforms"`
	Tags             CategoryTags    `json:"tags"`
	SecondaryInputs  []CategoryInput `json:"secondaryInputs,omitempty"`
}

type CategoryTags struct {
	Positive []string `json:"positive"`
	Negative []string `json:"negative"`
}

type CategoryInput struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Placeholder string `json:"placeholder"`
	Type        string `json:"type"`
}
