package huhforms

import (
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"

	"github.com/thenoetrevino/jobzy/internal/models"
)

// CardFormValues is what the add/edit card form writes into
type CardFormValues struct {
	Title         string
	Company       string
	Description   string
	JobLink       string
	MinExperience string
	Tags          []models.Tag
	Column        models.ColumnID
	Pinned        bool
	ActionTask    string
	ActionDate    string
	Confirm       bool
}

// NewCardFormValues prefills the form from card. A zero card gives an empty
// form targeting the default column.
func NewCardFormValues(card models.Card) *CardFormValues {
	column := card.ColumnID
	if column == "" {
		column = models.DefaultColumnID
	}
	return &CardFormValues{
		Title:         card.Title,
		Company:       card.Company,
		Description:   card.Description,
		JobLink:       card.JobLink,
		MinExperience: card.MinExperience,
		Tags:          append([]models.Tag(nil), card.Tags...),
		Column:        column,
		Pinned:        card.IsPinned,
		ActionTask:    card.ActionTask,
		ActionDate:    card.ActionDate,
		Confirm:       true,
	}
}

// Input converts the form values into a store input
func (v *CardFormValues) Input() models.CardInput {
	return models.CardInput{
		Title:         strings.TrimSpace(v.Title),
		Company:       strings.TrimSpace(v.Company),
		Description:   strings.TrimSpace(v.Description),
		JobLink:       strings.TrimSpace(v.JobLink),
		MinExperience: strings.TrimSpace(v.MinExperience),
		Tags:          v.Tags,
		IsPinned:      v.Pinned,
		ColumnID:      v.Column,
		ActionTask:    strings.TrimSpace(v.ActionTask),
		ActionDate:    strings.TrimSpace(v.ActionDate),
	}
}

// TagOptions returns the five tags as multi-select options
func TagOptions() []huh.Option[models.Tag] {
	tags := models.AllTags()
	opts := make([]huh.Option[models.Tag], len(tags))
	for i, tag := range tags {
		opts[i] = huh.NewOption(string(tag), tag)
	}
	return opts
}

// ColumnOptions returns the seven columns as select options
func ColumnOptions() []huh.Option[models.ColumnID] {
	ids := models.ColumnIDs()
	opts := make([]huh.Option[models.ColumnID], len(ids))
	for i, id := range ids {
		opts[i] = huh.NewOption(id.Title(), id)
	}
	return opts
}

// ValidateRequired rejects values that are blank after trimming
func ValidateRequired(err error) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return err
		}
		return nil
	}
}

// ValidateActionDate accepts an empty value or a YYYY-MM-DD date
func ValidateActionDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := time.Parse(models.ActionDateLayout, s); err != nil {
		return models.ErrInvalidActionDate
	}
	return nil
}

// CreateCardForm creates a huh form for adding/editing a card.
// The column select is only shown when adding.
func CreateCardForm(v *CardFormValues, adding bool) *huh.Form {
	details := []huh.Field{
		huh.NewInput().
			Key("title").
			Title("Job Title").
			Placeholder("Backend Engineer").
			Validate(ValidateRequired(models.ErrEmptyTitle)).
			Value(&v.Title),
		huh.NewInput().
			Key("company").
			Title("Company").
			Placeholder("Acme Inc.").
			Validate(ValidateRequired(models.ErrEmptyCompany)).
			Value(&v.Company),
		huh.NewInput().
			Key("link").
			Title("Job Link").
			Placeholder("https://").
			Value(&v.JobLink),
		huh.NewInput().
			Key("min_experience").
			Title("Min Experience").
			Placeholder("3 years").
			Value(&v.MinExperience),
	}
	if adding {
		details = append(details,
			huh.NewSelect[models.ColumnID]().
				Key("column").
				Title("Column").
				Options(ColumnOptions()...).
				Value(&v.Column),
		)
	}

	extras := []huh.Field{
		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("Markdown supported").
			CharLimit(5000).
			Lines(4).
			Value(&v.Description),
		huh.NewMultiSelect[models.Tag]().
			Key("tags").
			Title("Tags").
			Options(TagOptions()...).
			Value(&v.Tags),
		huh.NewInput().
			Key("action_task").
			Title("Next Action").
			Placeholder("Follow up with recruiter").
			Value(&v.ActionTask),
		huh.NewInput().
			Key("action_date").
			Title("Action Date").
			Placeholder(models.ActionDateLayout).
			Validate(ValidateActionDate).
			Value(&v.ActionDate),
		huh.NewConfirm().
			Key("confirm").
			Title("Save this job?").
			Affirmative("Save").
			Negative("Cancel").
			Value(&v.Confirm),
	}

	form := huh.NewForm(huh.NewGroup(details...), huh.NewGroup(extras...))
	return form.WithKeyMap(keyMap()).WithShowHelp(false)
}

// keyMap adds shift+enter for newlines in the description, next to the
// default alt+enter and ctrl+j.
func keyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Text.NewLine = key.NewBinding(
		key.WithKeys("shift+enter", "alt+enter", "ctrl+j"),
		key.WithHelp("shift+enter", "new line"),
	)
	return km
}
