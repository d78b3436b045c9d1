// Package commands holds the immutable write/read inputs accepted by the
// service layer. Constructors validate fail-fast: no partially valid value
// ever escapes, so services can persist without re-checking fields.
package commands

import (
	"github.com/google/uuid"

	"github.com/offermart/marketplace-backend/internal/pkg/validate"
)

type CreateOfferCommand struct {
	UserID      uuid.UUID
	Title       string
	Description string
	Price       float64
	Category    string
	ImageURL    string
}

func NewCreateOfferCommand(userID uuid.UUID, title, description string, price float64, category, imageURL string) (CreateOfferCommand, error) {
	if err := validate.RequiredID("user_id", userID); err != nil {
		return CreateOfferCommand{}, err
	}
	if err := validate.NotBlank("title", title); err != nil {
		return CreateOfferCommand{}, err
	}
	if err := validate.MaxLen("description", description, 2000); err != nil {
		return CreateOfferCommand{}, err
	}
	if err := validate.Positive("price", price); err != nil {
		return CreateOfferCommand{}, err
	}
	return CreateOfferCommand{
		UserID:      userID,
		Title:       title,
		Description: description,
		Price:       price,
		Category:    category,
		ImageURL:    imageURL,
	}, nil
}

// UpdateOfferCommand carries partial-update semantics: a nil field means
// "leave unchanged".
type UpdateOfferCommand struct {
	OfferID     uuid.UUID
	Title       *string
	Description *string
	Price       *float64
	Category    *string
	Status      *string
	ImageURL    *string
}

func NewUpdateOfferCommand(offerID uuid.UUID, title, description *string, price *float64, category, status, imageURL *string) (UpdateOfferCommand, error) {
	if err := validate.RequiredID("offer_id", offerID); err != nil {
		return UpdateOfferCommand{}, err
	}
	if title != nil {
		if err := validate.NotBlank("title", *title); err != nil {
			return UpdateOfferCommand{}, err
		}
	}
	if description != nil {
		if err := validate.MaxLen("description", *description, 2000); err != nil {
			return UpdateOfferCommand{}, err
		}
	}
	if price != nil {
		if err := validate.Positive("price", *price); err != nil {
			return UpdateOfferCommand{}, err
		}
	}
	return UpdateOfferCommand{
		OfferID:     offerID,
		Title:       title,
		Description: description,
		Price:       price,
		Category:    category,
		Status:      status,
		ImageURL:    imageURL,
	}, nil
}

type CreateCampaignCommand struct {
	UserID uuid.UUID
	Name   string
	Budget float64
}

func NewCreateCampaignCommand(userID uuid.UUID, name string, budget float64) (CreateCampaignCommand, error) {
	if err := validate.RequiredID("user_id", userID); err != nil {
		return CreateCampaignCommand{}, err
	}
	if err := validate.NotBlank("name", name); err != nil {
		return CreateCampaignCommand{}, err
	}
	if err := validate.Positive("budget", budget); err != nil {
		return CreateCampaignCommand{}, err
	}
	return CreateCampaignCommand{UserID: userID, Name: name, Budget: budget}, nil
}

type UpdateCampaignCommand struct {
	CampaignID uuid.UUID
	Name       *string
	Budget     *float64
	Status     *string
}

func NewUpdateCampaignCommand(campaignID uuid.UUID, name *string, budget *float64, status *string) (UpdateCampaignCommand, error) {
	if err := validate.RequiredID("campaign_id", campaignID); err != nil {
		return UpdateCampaignCommand{}, err
	}
	if name != nil {
		if err := validate.NotBlank("name", *name); err != nil {
			return UpdateCampaignCommand{}, err
		}
	}
	if budget != nil {
		if err := validate.Positive("budget", *budget); err != nil {
			return UpdateCampaignCommand{}, err
		}
	}
	return UpdateCampaignCommand{CampaignID: campaignID, Name: name, Budget: budget, Status: status}, nil
}

// AttachOfferCommand puts an offer into a campaign slot.
type AttachOfferCommand struct {
	CampaignID uuid.UUID
	OfferID    uuid.UUID
	Position   int
}

func NewAttachOfferCommand(campaignID, offerID uuid.UUID, position int) (AttachOfferCommand, error) {
	if err := validate.RequiredID("campaign_id", campaignID); err != nil {
		return AttachOfferCommand{}, err
	}
	if err := validate.RequiredID("offer_id", offerID); err != nil {
		return AttachOfferCommand{}, err
	}
	if position < 0 {
		return AttachOfferCommand{}, validate.PositiveInt("position", position)
	}
	return AttachOfferCommand{CampaignID: campaignID, OfferID: offerID, Position: position}, nil
}
