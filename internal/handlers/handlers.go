// Package handlers wires the HTTP surface: route registration, request
// payloads and their validation, and the error-to-response mapping.
package handlers

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-print"

	"github.com/altuslab/challenges-api/auth"
	"github.com/altuslab/challenges-api/internal/store"
)

// Version is reported by the root probe.
const Version = "0.1.0"

// CategoryStore is the slice of the store the category handlers use.
type CategoryStore interface {
	CreateCategory(ctx context.Context, category *store.Category) (*store.Category, error)
	ListCategories(ctx context.Context) ([]store.CategoryWithChallenges, error)
	GetCategory(ctx context.Context, id string) (*store.CategoryWithChallenges, error)
	UpdateCategory(ctx context.Context, id string, category *store.Category) (*store.CategoryWithChallenges, error)
	DeleteCategory(ctx context.Context, id string) error
}

// ChallengeStore is the slice of the store the challenge handlers use.
type ChallengeStore interface {
	CreateChallenge(ctx context.Context, challenge *store.Challenge) (*store.Challenge, error)
	GetChallenge(ctx context.Context, id string) (*store.Challenge, error)
	ListChallenges(ctx context.Context, filter store.ChallengeFilter) ([]store.Challenge, error)
	UpdateChallenge(ctx context.Context, id string, update store.ChallengeUpdate) (*store.Challenge, error)
	DeleteChallenge(ctx context.Context, id string) error
}

// ParticipationStore is the slice of the store the participation
// handlers use.
type ParticipationStore interface {
	CreateParticipation(ctx context.Context, userID, challengeID string) (*store.Participation, error)
	ListParticipationsByUser(ctx context.Context, userID string) ([]store.Participation, error)
}

// CommentStore is the slice of the store the comment handlers use.
type CommentStore interface {
	CreateComment(ctx context.Context, comment *store.Comment) (*store.Comment, error)
	ListCommentsByChallenge(ctx context.Context, challengeID string) ([]store.Comment, error)
	DeleteComment(ctx context.Context, id string) error
}

// Handlers holds every dependency the HTTP layer needs. All fields are
// injected; there is no package state.
type Handlers struct {
	Auther         *auth.Authenticator
	Gate           *auth.Gate
	Categories     CategoryStore
	Challenges     ChallengeStore
	Participations ParticipationStore
	Comments       CommentStore
	Logger         auth.Logger
}

// New creates the handler set. A nil logger falls back to the default.
func New(h Handlers) *Handlers {
	if h.Logger == nil {
		h.Logger = auth.DefaultLogger()
	}
	return &h
}

// Register binds every route. Gate placement: reads are public, creates
// need a user token, destructive cross-user operations need admin.
func (h *Handlers) Register(app *fiber.App) {
	requireUser := h.Gate.RequireUser()
	requireAdmin := h.Gate.RequireAdmin()

	app.Get("/", h.Root)
	app.Post("/login", h.Login)
	app.Post("/users", h.RegisterUser)

	app.Post("/categories", requireUser, h.CreateCategory)
	app.Get("/categories", h.ListCategories)
	app.Get("/categories/:id", h.GetCategory)
	app.Put("/categories/:id", requireAdmin, h.UpdateCategory)
	app.Delete("/categories/:id", requireAdmin, h.DeleteCategory)

	app.Post("/challenges", requireUser, h.CreateChallenge)
	app.Get("/challenges", h.ListChallenges)
	app.Get("/challenges/:id", h.GetChallenge)
	app.Put("/challenges/:id", requireUser, h.UpdateChallenge)
	app.Delete("/challenges/:id", requireAdmin, h.DeleteChallenge)
	app.Get("/challenges/:id/comments", h.ListChallengeComments)

	app.Post("/participations", requireUser, h.CreateParticipation)
	app.Get("/participations", requireUser, h.ListMyParticipations)

	app.Post("/comments", requireUser, h.CreateComment)
	app.Delete("/comments/:id", requireAdmin, h.DeleteComment)
}

// Root is the liveness/version probe.
func (h *Handlers) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"version": Version})
}

// ErrorHandler maps errors to responses. Rich errors carry their own
// HTTP status; anything else is a 500 with a generic body.
func ErrorHandler(logger auth.Logger) fiber.ErrorHandler {
	if logger == nil {
		logger = auth.DefaultLogger()
	}

	return func(c *fiber.Ctx, err error) error {
		var richErr *goerrors.Error
		if goerrors.As(err, &richErr) {
			if richErr.Code >= fiber.StatusInternalServerError {
				logger.Error("request failed", "path", c.Path(), "code", richErr.TextCode, "error", err)
			} else {
				logger.Debug("request rejected",
					"path", c.Path(),
					"code", richErr.TextCode,
					"metadata", print.MaybePrettyJSON(richErr.Metadata),
				)
			}

			body := fiber.Map{
				"error": richErr.Message,
				"code":  richErr.TextCode,
			}
			if len(richErr.Metadata) > 0 {
				body["details"] = richErr.Metadata
			}
			return c.Status(richErr.Code).JSON(body)
		}

		// bare token errors from lower layers still map to the taxonomy
		if auth.IsTokenExpiredError(err) {
			return c.Status(auth.ErrTokenExpired.Code).JSON(fiber.Map{
				"error": auth.ErrTokenExpired.Message,
				"code":  auth.ErrTokenExpired.TextCode,
			})
		}
		if auth.IsMalformedError(err) {
			return c.Status(auth.ErrTokenMalformed.Code).JSON(fiber.Map{
				"error": auth.ErrTokenMalformed.Message,
				"code":  auth.ErrTokenMalformed.TextCode,
			})
		}

		var fiberErr *fiber.Error
		if goerrors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
		}

		logger.Error("unhandled error", "path", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}
}

// invalidPayload converts a decode or validation failure into a rich
// error. ozzo field errors become response metadata.
func invalidPayload(err error) error {
	rich := goerrors.Wrap(err, goerrors.CategoryValidation, "invalid request payload").
		WithCode(goerrors.CodeBadRequest).
		WithTextCode("VALIDATION_ERROR")

	var fieldErrs validation.Errors
	if goerrors.As(err, &fieldErrs) {
		metadata := map[string]any{}
		for field, ferr := range fieldErrs {
			metadata[field] = ferr.Error()
		}
		rich = rich.WithMetadata(metadata)
	}

	return rich
}
