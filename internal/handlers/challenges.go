package handlers

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/altuslab/challenges-api/auth"
	"github.com/altuslab/challenges-api/internal/store"
)

// ChallengeCreateRequest is the challenge creation payload. The creator
// is never part of the payload; it comes from the verified principal.
type ChallengeCreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CategoryID  string `json:"category_id"`
}

// Validate will validate the payload
func (r ChallengeCreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Description, validation.Required, validation.Length(20, 500)),
		validation.Field(&r.CategoryID, validation.Required),
	)
}

// ChallengeUpdateRequest carries a partial update. Absent fields stay
// untouched.
type ChallengeUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	CategoryID  *string `json:"category_id"`
	Active      *bool   `json:"active"`
}

// Validate will validate the payload
func (r ChallengeUpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Length(1, 200)),
		validation.Field(&r.Description, validation.Length(20, 500)),
	)
}

// CreateChallenge inserts a challenge owned by the authenticated user.
func (h *Handlers) CreateChallenge(c *fiber.Ctx) error {
	payload := new(ChallengeCreateRequest)
	if err := c.BodyParser(payload); err != nil {
		return invalidPayload(err)
	}
	if err := payload.Validate(); err != nil {
		return invalidPayload(err)
	}

	principal, ok := auth.PrincipalFromFiber(c)
	if !ok {
		return auth.ErrMissingCredentials
	}

	categoryID, err := primitive.ObjectIDFromHex(payload.CategoryID)
	if err != nil {
		return store.ErrInvalidObjectID
	}

	created, err := h.Challenges.CreateChallenge(c.UserContext(), &store.Challenge{
		Title:       payload.Title,
		Description: payload.Description,
		CategoryID:  categoryID,
		UserID:      principal.ID,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetChallenge returns one challenge.
func (h *Handlers) GetChallenge(c *fiber.Ctx) error {
	challenge, err := h.Challenges.GetChallenge(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(challenge)
}

// ListChallenges returns challenges, optionally filtered by the user_id
// and category_id query parameters.
func (h *Handlers) ListChallenges(c *fiber.Ctx) error {
	challenges, err := h.Challenges.ListChallenges(c.UserContext(), store.ChallengeFilter{
		UserID:     c.Query("user_id"),
		CategoryID: c.Query("category_id"),
	})
	if err != nil {
		return err
	}
	return c.JSON(challenges)
}

// UpdateChallenge applies a partial update to a challenge.
func (h *Handlers) UpdateChallenge(c *fiber.Ctx) error {
	payload := new(ChallengeUpdateRequest)
	if err := c.BodyParser(payload); err != nil {
		return invalidPayload(err)
	}
	if err := payload.Validate(); err != nil {
		return invalidPayload(err)
	}

	update := store.ChallengeUpdate{
		Title:       payload.Title,
		Description: payload.Description,
		Active:      payload.Active,
	}
	if payload.CategoryID != nil {
		categoryID, err := primitive.ObjectIDFromHex(*payload.CategoryID)
		if err != nil {
			return store.ErrInvalidObjectID
		}
		update.CategoryID = &categoryID
	}

	updated, err := h.Challenges.UpdateChallenge(c.UserContext(), c.Params("id"), update)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

// DeleteChallenge removes a challenge.
func (h *Handlers) DeleteChallenge(c *fiber.Ctx) error {
	if err := h.Challenges.DeleteChallenge(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "challenge deleted"})
}
