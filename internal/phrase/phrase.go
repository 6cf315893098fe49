package phrase

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"codeberg.org/snonux/learner/internal"
)

// Ungrouped marks a phrase that belongs to no group
const Ungrouped = -1

// Phrase is a single flashcard
type Phrase struct {
	OriginalText   string `json:"originalText" validate:"required"`
	TranslatedText string `json:"translatedText" validate:"required"`
	ID             string `json:"id" validate:"required,max=64"`
	Group          int    `json:"group" validate:"min=-1"`
}

var validate = validator.New()

// New creates an ungrouped phrase. An empty id is replaced with a generated one.
func New(originalText, translatedText, id string) Phrase {
	if id == "" {
		id = internal.GenerateID()
	}
	return Phrase{
		OriginalText:   originalText,
		TranslatedText: translatedText,
		ID:             id,
		Group:          Ungrouped,
	}
}

// WithGroup returns a copy of the phrase tagged with group
func (p Phrase) WithGroup(group int) Phrase {
	p.Group = group
	return p
}

// IsGrouped reports whether the phrase carries a group tag
func (p Phrase) IsGrouped() bool {
	return p.Group != Ungrouped
}

// Validate checks the phrase fields. Texts consisting only of whitespace
// count as empty.
func (p Phrase) Validate() error {
	trimmed := p
	trimmed.OriginalText = strings.TrimSpace(p.OriginalText)
	trimmed.TranslatedText = strings.TrimSpace(p.TranslatedText)
	if err := validate.Struct(trimmed); err != nil {
		return fmt.Errorf("invalid phrase %q: %w", p.ID, err)
	}
	return nil
}

// String renders the phrase the way batch files write it
func (p Phrase) String() string {
	return fmt.Sprintf("%s = %s", p.OriginalText, p.TranslatedText)
}

// UnmarshalJSON decodes a phrase, treating a missing group as ungrouped
func (p *Phrase) UnmarshalJSON(data []byte) error {
	type plain Phrase
	decoded := plain{Group: Ungrouped}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*p = Phrase(decoded)
	return nil
}
