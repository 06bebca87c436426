// Package comments holds the transient comment threads shown under blog
// posts. Nothing here is persisted.
package comments

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/riradoro03/sports-insights-hub/internal/models"
)

const dateLayout = "Jan 2, 2006"

var ErrInvalid = errors.New("comment needs a name and a text")

var validate = validator.New(validator.WithRequiredStructEnabled())

type submission struct {
	Name string `validate:"required"`
	Text string `validate:"required"`
}

// Seed returns the two comments every new thread starts with.
func Seed() []models.Comment {
	return []models.Comment{
		{
			ID:    1,
			Name:  "María García",
			Date:  "Feb 13, 2025",
			Text:  "¡Excelente artículo! Muy interesante la perspectiva.",
			Likes: 3,
		},
		{
			ID:    2,
			Name:  "Carlos López",
			Date:  "Feb 13, 2025",
			Text:  "Buen contenido, esperando más publicaciones como esta.",
			Likes: 1,
		},
	}
}

// Thread is a newest-first list of comments.
type Thread struct {
	mu       sync.RWMutex
	comments []models.Comment
	now      func() time.Time
}

// NewThread starts a thread from the seed fixtures.
func NewThread() *Thread {
	return &Thread{comments: Seed(), now: time.Now}
}

// List returns a copy of the thread, newest first.
func (t *Thread) List() []models.Comment {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]models.Comment(nil), t.comments...)
}

func (t *Thread) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.comments)
}

// Append validates name and text after trimming and prepends a new
// comment. Invalid input leaves the thread unchanged.
func (t *Thread) Append(name, text string) (models.Comment, error) {
	sub := submission{Name: strings.TrimSpace(name), Text: strings.TrimSpace(text)}
	if err := validate.Struct(sub); err != nil {
		return models.Comment{}, errors.Join(ErrInvalid, err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	var id int64
	for _, c := range t.comments {
		id = max(id, c.ID)
	}
	c := models.Comment{
		ID:   id + 1,
		Name: sub.Name,
		Date: t.now().Format(dateLayout),
		Text: sub.Text,
	}
	t.comments = append([]models.Comment{c}, t.comments...)
	return c, nil
}

// Like adds one like to the comment with the given id. Unknown ids are
// ignored.
func (t *Thread) Like(id int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.comments {
		if t.comments[i].ID == id {
			t.comments[i].Likes++
			return true
		}
	}
	return false
}
