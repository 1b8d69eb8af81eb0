package handlers

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"

	"github.com/altuslab/challenges-api/internal/store"
)

// CategoryRequest is the create/update payload for categories.
type CategoryRequest struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Validate will validate the payload
func (r CategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Text, validation.Required, validation.Length(20, 300)),
	)
}

// CreateCategory inserts a new category. Duplicate names are rejected
// case-insensitively by the store.
func (h *Handlers) CreateCategory(c *fiber.Ctx) error {
	payload := new(CategoryRequest)
	if err := c.BodyParser(payload); err != nil {
		return invalidPayload(err)
	}
	if err := payload.Validate(); err != nil {
		return invalidPayload(err)
	}

	created, err := h.Categories.CreateCategory(c.UserContext(), &store.Category{
		Name: payload.Name,
		Text: payload.Text,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// ListCategories returns every category with its challenge summaries.
func (h *Handlers) ListCategories(c *fiber.Ctx) error {
	categories, err := h.Categories.ListCategories(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(categories)
}

// GetCategory returns one category with its challenge summaries.
func (h *Handlers) GetCategory(c *fiber.Ctx) error {
	category, err := h.Categories.GetCategory(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(category)
}

// UpdateCategory replaces a category's name and text.
func (h *Handlers) UpdateCategory(c *fiber.Ctx) error {
	payload := new(CategoryRequest)
	if err := c.BodyParser(payload); err != nil {
		return invalidPayload(err)
	}
	if err := payload.Validate(); err != nil {
		return invalidPayload(err)
	}

	updated, err := h.Categories.UpdateCategory(c.UserContext(), c.Params("id"), &store.Category{
		Name: payload.Name,
		Text: payload.Text,
	})
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

// DeleteCategory removes a category with no remaining challenges.
func (h *Handlers) DeleteCategory(c *fiber.Ctx) error {
	if err := h.Categories.DeleteCategory(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "category deleted"})
}
