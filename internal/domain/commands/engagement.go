package commands

import (
	"github.com/google/uuid"

	"github.com/offermart/marketplace-backend/internal/pkg/validate"
)

type CreateNotificationCommand struct {
	UserID    uuid.UUID
	Code      string
	Title     string
	Message   string
	RelatedID *uuid.UUID
}

func NewCreateNotificationCommand(userID uuid.UUID, code, title, message string, relatedID *uuid.UUID) (CreateNotificationCommand, error) {
	if err := validate.RequiredID("user_id", userID); err != nil {
		return CreateNotificationCommand{}, err
	}
	if err := validate.NotBlank("code", code); err != nil {
		return CreateNotificationCommand{}, err
	}
	if err := validate.NotBlank("title", title); err != nil {
		return CreateNotificationCommand{}, err
	}
	if err := validate.MaxLen("message", message, 2000); err != nil {
		return CreateNotificationCommand{}, err
	}
	return CreateNotificationCommand{
		UserID:    userID,
		Code:      code,
		Title:     title,
		Message:   message,
		RelatedID: relatedID,
	}, nil
}

type CreateFavoriteCommand struct {
	UserID  uuid.UUID
	OfferID uuid.UUID
}

func NewCreateFavoriteCommand(userID, offerID uuid.UUID) (CreateFavoriteCommand, error) {
	if err := validate.RequiredID("user_id", userID); err != nil {
		return CreateFavoriteCommand{}, err
	}
	if err := validate.RequiredID("offer_id", offerID); err != nil {
		return CreateFavoriteCommand{}, err
	}
	return CreateFavoriteCommand{UserID: userID, OfferID: offerID}, nil
}

type CreateReviewCommand struct {
	OfferID  uuid.UUID
	UserID   uuid.UUID
	UserName string
	Rating   int
	Text     string
}

func NewCreateReviewCommand(offerID, userID uuid.UUID, userName string, rating int, text string) (CreateReviewCommand, error) {
	if err := validate.RequiredID("offer_id", offerID); err != nil {
		return CreateReviewCommand{}, err
	}
	if err := validate.RequiredID("user_id", userID); err != nil {
		return CreateReviewCommand{}, err
	}
	if err := validate.NotBlank("user_name", userName); err != nil {
		return CreateReviewCommand{}, err
	}
	if err := validate.IntRange("rating", rating, 1, 5); err != nil {
		return CreateReviewCommand{}, err
	}
	if err := validate.MaxLen("text", text, 2000); err != nil {
		return CreateReviewCommand{}, err
	}
	return CreateReviewCommand{
		OfferID:  offerID,
		UserID:   userID,
		UserName: userName,
		Rating:   rating,
		Text:     text,
	}, nil
}

type UpdateReviewCommand struct {
	ReviewID uuid.UUID
	Rating   *int
	Text     *string
}

func NewUpdateReviewCommand(reviewID uuid.UUID, rating *int, text *string) (UpdateReviewCommand, error) {
	if err := validate.RequiredID("review_id", reviewID); err != nil {
		return UpdateReviewCommand{}, err
	}
	if rating != nil {
		if err := validate.IntRange("rating", *rating, 1, 5); err != nil {
			return UpdateReviewCommand{}, err
		}
	}
	if text != nil {
		if err := validate.MaxLen("text", *text, 2000); err != nil {
			return UpdateReviewCommand{}, err
		}
	}
	return UpdateReviewCommand{ReviewID: reviewID, Rating: rating, Text: text}, nil
}

type CreateSubscriptionCommand struct {
	UserID uuid.UUID
	Plan   string
	Months int
}

func NewCreateSubscriptionCommand(userID uuid.UUID, plan string, months int) (CreateSubscriptionCommand, error) {
	if err := validate.RequiredID("user_id", userID); err != nil {
		return CreateSubscriptionCommand{}, err
	}
	if err := validate.NotBlank("plan", plan); err != nil {
		return CreateSubscriptionCommand{}, err
	}
	if err := validate.IntRange("months", months, 1, 36); err != nil {
		return CreateSubscriptionCommand{}, err
	}
	return CreateSubscriptionCommand{UserID: userID, Plan: plan, Months: months}, nil
}
