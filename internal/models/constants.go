package models

import "strings"

// ============================================================================
// TAG CONSTANTS
// ============================================================================

// Tag is one of the fixed job labels. The value is the display string, which
// is also what gets persisted.
type Tag string

const (
	TagUrgent   Tag = "🔥 Urgent"
	TagRemote   Tag = "🏠 Remote"
	TagDreamJob Tag = "⭐ Dream Job"
	TagFollowUp Tag = "⏳ Follow Up"
	TagReferred Tag = "🤝 Referred"
)

var tagKeys = []struct {
	key string
	tag Tag
}{
	{"urgent", TagUrgent},
	{"remote", TagRemote},
	{"dream-job", TagDreamJob},
	{"follow-up", TagFollowUp},
	{"referred", TagReferred},
}

// AllTags returns every tag in display order
func AllTags() []Tag {
	tags := make([]Tag, len(tagKeys))
	for i, tk := range tagKeys {
		tags[i] = tk.tag
	}
	return tags
}

// Key returns the short, shell friendly name of the tag (e.g. "dream-job")
func (t Tag) Key() string {
	for _, tk := range tagKeys {
		if tk.tag == t {
			return tk.key
		}
	}
	return ""
}

// Label returns the tag without its emoji prefix
func (t Tag) Label() string {
	s := string(t)
	if i := strings.Index(s, " "); i >= 0 {
		return s[i+1:]
	}
	return s
}

// IsValid reports whether t belongs to the fixed enumeration
func (t Tag) IsValid() bool {
	return t.Key() != ""
}

// ParseTag resolves a key ("dream-job"), a display value ("⭐ Dream Job") or a
// bare label ("dream job") to a Tag. Matching is case-insensitive.
func ParseTag(s string) (Tag, bool) {
	needle := strings.ToLower(strings.TrimSpace(s))
	if needle == "" {
		return "", false
	}
	for _, tk := range tagKeys {
		switch needle {
		case tk.key, strings.ToLower(string(tk.tag)), strings.ToLower(tk.tag.Label()):
			return tk.tag, true
		}
	}
	return "", false
}

// ============================================================================
// COLUMN CONSTANTS
// ============================================================================

// ColumnID identifies one of the fixed pipeline stages
type ColumnID string

const (
	ColumnJobList    ColumnID = "job-list"
	ColumnReferral   ColumnID = "referral"
	ColumnApplied    ColumnID = "applied"
	ColumnAssessment ColumnID = "assessment"
	ColumnInterview  ColumnID = "interview"
	ColumnOffer      ColumnID = "offer"
	ColumnRejected   ColumnID = "rejected"
)

// DefaultColumnID is where new cards land when no column is given
const DefaultColumnID = ColumnJobList

type columnDef struct {
	id         ColumnID
	title      string
	icon       string
	emptyState string
}

var columnDefs = []columnDef{
	{ColumnJobList, "Job List", "📋", "Start your job hunt here"},
	{ColumnReferral, "Waiting for Referral", "🤝", "Reach out to your network"},
	{ColumnApplied, "Applied", "📤", "Hope is in the inbox"},
	{ColumnAssessment, "Online Assessment", "📝", "Tests incoming?"},
	{ColumnInterview, "Interview", "🎤", "Nail that next round!"},
	{ColumnOffer, "Offer", "🏆", "Great news awaits"},
	{ColumnRejected, "Rejected", "❌", "Rejections ≠ Failure"},
}

// ColumnIDs returns the fixed column identifiers in board order
func ColumnIDs() []ColumnID {
	ids := make([]ColumnID, len(columnDefs))
	for i, def := range columnDefs {
		ids[i] = def.id
	}
	return ids
}

// IsValid reports whether id is one of the fixed columns
func (id ColumnID) IsValid() bool {
	_, ok := lookupColumn(id)
	return ok
}

// Title returns the display title, or the raw id for unknown columns
func (id ColumnID) Title() string {
	if def, ok := lookupColumn(id); ok {
		return def.title
	}
	return string(id)
}

// EmptyStateMessage is shown when a column has nothing to display
func (id ColumnID) EmptyStateMessage() string {
	if def, ok := lookupColumn(id); ok {
		return def.emptyState
	}
	return ""
}

// Index returns the board position of the column, -1 when unknown
func (id ColumnID) Index() int {
	for i, def := range columnDefs {
		if def.id == id {
			return i
		}
	}
	return -1
}

// ParseColumnID accepts a column id or its title, case-insensitive
func ParseColumnID(s string) (ColumnID, bool) {
	needle := strings.TrimSpace(s)
	if needle == "" {
		return "", false
	}
	for _, def := range columnDefs {
		if strings.EqualFold(needle, string(def.id)) || strings.EqualFold(needle, def.title) {
			return def.id, true
		}
	}
	return "", false
}

func lookupColumn(id ColumnID) (columnDef, bool) {
	for _, def := range columnDefs {
		if def.id == id {
			return def, true
		}
	}
	return columnDef{}, false
}

// ============================================================================
// THEME CONSTANTS
// ============================================================================

// DefaultPrimaryColor is blue-500
const DefaultPrimaryColor = "#3B82F6"

// DuplicateTitleSuffix is appended to the title of a duplicated card
const DuplicateTitleSuffix = " (Copy)"

// ActionDateLayout is the format of a card's follow-up date
const ActionDateLayout = "2006-01-02"
