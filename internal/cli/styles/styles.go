package styles

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/jobzy/internal/models"
	"github.com/thenoetrevino/jobzy/internal/theme"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 72

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Company:", "Tags:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Description"
	PinStyle      lipgloss.Style
	TagStyle      lipgloss.Style
	MutedStyle    lipgloss.Style

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
)

func init() {
	Init(models.DefaultSettings())
}

// Init initializes all CLI styles from the board's theme settings
func Init(settings models.Settings) {
	t := theme.NewStyles(settings)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = t.Title
	SubtitleStyle = t.Company
	LabelStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
	ValueStyle = t.ColumnHeader.UnsetBold()
	SectionStyle = lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true).
		MarginTop(1)
	PinStyle = t.Pin
	TagStyle = t.Tag
	MutedStyle = t.Muted
	SuccessStyle = t.Success
	ErrorStyle = t.Error
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// RenderTagChips renders the tags of a card side by side
func RenderTagChips(tags []models.Tag) string {
	chips := make([]string, len(tags))
	for i, tag := range tags {
		chips[i] = TagStyle.Render(string(tag))
	}
	return strings.Join(chips, " ")
}

// RenderCardLine renders the one-line summary used by list output
// Format: "📌 1a2b3c4d  Backend Engineer @ Acme  [🏠 Remote]"
func RenderCardLine(card models.Card, shortID string) string {
	var b strings.Builder
	if card.IsPinned {
		b.WriteString(PinStyle.Render("📌") + " ")
	} else {
		b.WriteString("   ")
	}
	b.WriteString(SubtitleStyle.Render(shortID))
	b.WriteString("  ")
	b.WriteString(TitleStyle.Render(card.Title))
	b.WriteString(" @ ")
	b.WriteString(ValueStyle.Render(card.Company))
	if len(card.Tags) > 0 {
		b.WriteString("  ")
		b.WriteString(RenderTagChips(card.Tags))
	}
	return b.String()
}

// RenderCardDetail renders every field of a card inside a card border.
// description is expected to be rendered markdown already.
func RenderCardDetail(card models.Card, column models.ColumnID, description string) string {
	field := func(label, value string) string {
		return LabelStyle.Render(label+":") + " " + ValueStyle.Render(value)
	}

	title := TitleStyle.Render(card.Title)
	if card.IsPinned {
		title = PinStyle.Render("📌 ") + title
	}

	lines := []string{
		title,
		SubtitleStyle.Render(card.Company),
		"",
		field("ID", card.ID),
		field("Status", column.Title()),
		field("Created", card.DateCreated.Local().Format("2006-01-02 15:04")),
	}
	if card.JobLink != "" {
		lines = append(lines, field("Link", card.JobLink))
	}
	if card.MinExperience != "" {
		lines = append(lines, field("Min Experience", card.MinExperience))
	}
	if len(card.Tags) > 0 {
		lines = append(lines, LabelStyle.Render("Tags:")+" "+RenderTagChips(card.Tags))
	}
	if card.ActionTask != "" || card.ActionDate != "" {
		lines = append(lines, field("Next Action", NextAction(card)))
	}
	if description != "" {
		lines = append(lines, SectionStyle.Render("Description"), description)
	}

	return CardStyle.Render(strings.Join(lines, "\n"))
}

// NextAction formats the action task and its due date, e.g. "Send thank-you (due 2025-04-01)"
func NextAction(card models.Card) string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", card.ActionTask, dueSuffix(card.ActionDate)))
}

func dueSuffix(date string) string {
	if date == "" {
		return ""
	}
	return "(due " + date + ")"
}
