package handlers

import (
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"

	"github.com/altuslab/challenges-api/auth"
)

var nameRe = regexp.MustCompile(`^[a-zA-Z\s]+$`)

// LoginRequest is the credential payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate will validate the payload
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 64)),
	)
}

// RegisterRequest is the account creation payload.
type RegisterRequest struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Admin     bool   `json:"admin"`
}

// Validate will validate the payload
func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Firstname, validation.Required, validation.Match(nameRe)),
		validation.Field(&r.Lastname, validation.Required, validation.Match(nameRe)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password,
			validation.Required,
			validation.Length(8, 64),
			validation.By(passwordComplexity),
		),
	)
}

var (
	upperRe   = regexp.MustCompile(`[A-Z]`)
	digitRe   = regexp.MustCompile(`\d`)
	specialRe = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

// passwordComplexity requires an upper-case letter, a digit, and a
// special character. Implemented as a By rule because RE2 has no
// lookahead to express this in one pattern.
func passwordComplexity(value any) error {
	password, _ := value.(string)
	if !upperRe.MatchString(password) {
		return errors.New("must contain at least one upper-case letter")
	}
	if !digitRe.MatchString(password) {
		return errors.New("must contain at least one number")
	}
	if !specialRe.MatchString(password) {
		return errors.New("must contain at least one special character")
	}
	return nil
}

// Login exchanges credentials for a signed token.
func (h *Handlers) Login(c *fiber.Ctx) error {
	payload := new(LoginRequest)
	if err := c.BodyParser(payload); err != nil {
		return invalidPayload(err)
	}
	if err := payload.Validate(); err != nil {
		return invalidPayload(err)
	}

	token, err := h.Auther.Login(c.UserContext(), payload.Email, payload.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "user authenticated",
		"idToken": token,
	})
}

// RegisterUser creates the provider account and the stored profile.
// The response never includes the password.
func (h *Handlers) RegisterUser(c *fiber.Ctx) error {
	payload := new(RegisterRequest)
	if err := c.BodyParser(payload); err != nil {
		return invalidPayload(err)
	}
	if err := payload.Validate(); err != nil {
		return invalidPayload(err)
	}

	profile, err := h.Auther.Register(c.UserContext(), auth.RegisterInput{
		Firstname: payload.Firstname,
		Lastname:  payload.Lastname,
		Email:     payload.Email,
		Password:  payload.Password,
		Admin:     payload.Admin,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(profile)
}
