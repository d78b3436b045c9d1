package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	OfferStatusActive   = "active"
	OfferStatusPaused   = "paused"
	OfferStatusArchived = "archived"

	CampaignStatusDraft   = "draft"
	CampaignStatusRunning = "running"
	CampaignStatusStopped = "stopped"
)

type Offer struct {
	Audit
	UserID      uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	Title       string    `gorm:"not null;column:title" json:"title"`
	Description string    `gorm:"column:description" json:"description"`
	Price       float64   `gorm:"not null;column:price" json:"price"`
	Category    string    `gorm:"index;column:category" json:"category"`
	Status      string    `gorm:"not null;default:'active';column:status" json:"status"`
	ImageURL    string    `gorm:"column:image_url" json:"image_url"`
}

func (Offer) TableName() string { return "offer" }

type Campaign struct {
	Audit
	UserID      uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	Name        string    `gorm:"not null;column:name" json:"name"`
	Budget      float64   `gorm:"not null;column:budget" json:"budget"`
	Status      string    `gorm:"not null;default:'draft';column:status" json:"status"`
	Impressions int64     `gorm:"not null;default:0;column:impressions" json:"impressions"`
	Clicks      int64     `gorm:"not null;default:0;column:clicks" json:"clicks"`
}

func (Campaign) TableName() string { return "campaign" }

// CTR is clicks over impressions; zero when the campaign has no impressions.
func (c *Campaign) CTR() float64 {
	if c.Impressions == 0 {
		return 0
	}
	return float64(c.Clicks) / float64(c.Impressions)
}

// CampaignOffer links an offer into a campaign. Identity is the pair, so at
// most one row exists per (campaign_id, offer_id).
type CampaignOffer struct {
	CampaignID uuid.UUID `gorm:"type:uuid;primaryKey;column:campaign_id" json:"campaign_id"`
	OfferID    uuid.UUID `gorm:"type:uuid;primaryKey;column:offer_id" json:"offer_id"`
	Position   int       `gorm:"not null;default:0;column:position" json:"position"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}

func (CampaignOffer) TableName() string { return "campaign_offer" }
