package handlers

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"

	"github.com/altuslab/challenges-api/auth"
)

// ParticipationRequest enrolls the authenticated user in a challenge.
type ParticipationRequest struct {
	ChallengeID string `json:"challenge_id"`
}

// Validate will validate the payload
func (r ParticipationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ChallengeID, validation.Required),
	)
}

// CreateParticipation enrolls the caller in a challenge. Joining the
// same challenge twice is a conflict.
func (h *Handlers) CreateParticipation(c *fiber.Ctx) error {
	payload := new(ParticipationRequest)
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

	participation, err := h.Participations.CreateParticipation(c.UserContext(), principal.ID, payload.ChallengeID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(participation)
}

// ListMyParticipations returns the caller's enrollments.
func (h *Handlers) ListMyParticipations(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromFiber(c)
	if !ok {
		return auth.ErrMissingCredentials
	}

	participations, err := h.Participations.ListParticipationsByUser(c.UserContext(), principal.ID)
	if err != nil {
		return err
	}
	return c.JSON(participations)
}
