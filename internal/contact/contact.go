// Package contact validates contact form submissions. Messages are only
// acknowledged; nothing is sent anywhere.
package contact

import (
	"errors"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/riradoro03/sports-insights-hub/internal/models"
)

var ErrInvalid = errors.New("invalid contact message")

var validate = validator.New(validator.WithRequiredStructEnabled())

type Message struct {
	Name    string `validate:"required,max=120"`
	Email   string `validate:"required,email"`
	Message string `validate:"required,max=5000"`
}

// FromForm reads a Message from posted form values, trimming each field.
func FromForm(form url.Values) Message {
	return Message{
		Name:    strings.TrimSpace(form.Get("name")),
		Email:   strings.TrimSpace(form.Get("email")),
		Message: strings.TrimSpace(form.Get("message")),
	}
}

func (m Message) Validate() error {
	if err := validate.Struct(m); err != nil {
		return errors.Join(ErrInvalid, err)
	}
	return nil
}

// Acknowledgement is the toast shown after a message is accepted.
func Acknowledgement() models.Toast {
	return models.Toast{
		Title:       "Message sent!",
		Description: "Thanks for reaching out. I'll get back to you soon.",
	}
}
