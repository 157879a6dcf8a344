package models

import "time"

// Card is one job application. It belongs to exactly one column.
type Card struct {
	ID            string    `json:"id" yaml:"id"`
	Title         string    `json:"title" yaml:"title"`
	Company       string    `json:"company" yaml:"company"`
	Description   string    `json:"description,omitempty" yaml:"description,omitempty"`
	JobLink       string    `json:"jobLink,omitempty" yaml:"job_link,omitempty"`
	MinExperience string    `json:"minExperience,omitempty" yaml:"min_experience,omitempty"`
	Tags          []Tag     `json:"tags" yaml:"tags"`
	IsPinned      bool      `json:"isPinned" yaml:"pinned"`
	ColumnID      ColumnID  `json:"columnId" yaml:"column"`
	DateCreated   time.Time `json:"dateCreated" yaml:"date_created"`
	ActionTask    string    `json:"actionTask,omitempty" yaml:"action_task,omitempty"`
	ActionDate    string    `json:"actionDate,omitempty" yaml:"action_date,omitempty"`
}

// CardInput carries the user supplied fields of a card. Identity and creation
// time are assigned by the store.
type CardInput struct {
	Title         string
	Company       string
	Description   string
	JobLink       string
	MinExperience string
	Tags          []Tag
	IsPinned      bool
	ColumnID      ColumnID
	ActionTask    string
	ActionDate    string
}

// Clone returns a copy that shares no slices with c
func (c Card) Clone() Card {
	out := c
	if c.Tags != nil {
		out.Tags = append([]Tag(nil), c.Tags...)
	}
	return out
}

// HasTag reports whether the card carries tag
func (c Card) HasTag(tag Tag) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasTags reports whether the card carries every tag in tags.
// An empty set always matches.
func (c Card) HasTags(tags []Tag) bool {
	for _, tag := range tags {
		if !c.HasTag(tag) {
			return false
		}
	}
	return true
}

// Input returns the editable fields of the card
func (c Card) Input() CardInput {
	return CardInput{
		Title:         c.Title,
		Company:       c.Company,
		Description:   c.Description,
		JobLink:       c.JobLink,
		MinExperience: c.MinExperience,
		Tags:          append([]Tag(nil), c.Tags...),
		IsPinned:      c.IsPinned,
		ColumnID:      c.ColumnID,
		ActionTask:    c.ActionTask,
		ActionDate:    c.ActionDate,
	}
}

// ApplyInput overwrites the editable fields of c with in.
// ID, DateCreated and ColumnID are left untouched.
func (c Card) ApplyInput(in CardInput) Card {
	c.Title = in.Title
	c.Company = in.Company
	c.Description = in.Description
	c.JobLink = in.JobLink
	c.MinExperience = in.MinExperience
	c.Tags = NormalizeTags(in.Tags)
	c.IsPinned = in.IsPinned
	c.ActionTask = in.ActionTask
	c.ActionDate = in.ActionDate
	return c
}

// GetID satisfies the CLI formatter's quiet mode
func (c Card) GetID() string {
	return c.ID
}
