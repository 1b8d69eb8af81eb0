package handlers

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"

	"github.com/altuslab/challenges-api/auth"
	"github.com/altuslab/challenges-api/internal/store"
)

// CommentRequest is the comment creation payload.
type CommentRequest struct {
	Text        string `json:"text"`
	ChallengeID string `json:"challenge_id"`
}

// Validate will validate the payload
func (r CommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text, validation.Required, validation.Length(1, 500)),
		validation.Field(&r.ChallengeID, validation.Required),
	)
}

// CreateComment adds a comment by the authenticated user.
func (h *Handlers) CreateComment(c *fiber.Ctx) error {
	payload := new(CommentRequest)
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

	created, err := h.Comments.CreateComment(c.UserContext(), &store.Comment{
		Text:        payload.Text,
		ChallengeID: payload.ChallengeID,
		UserID:      principal.ID,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// ListChallengeComments returns the comments on a challenge.
func (h *Handlers) ListChallengeComments(c *fiber.Ctx) error {
	comments, err := h.Comments.ListCommentsByChallenge(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(comments)
}

// DeleteComment removes a comment.
func (h *Handlers) DeleteComment(c *fiber.Ctx) error {
	if err := h.Comments.DeleteComment(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "comment deleted"})
}
