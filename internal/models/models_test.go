package models

import (
	"errors"
	"testing"
	"time"
)

// ============================================================================
// Error Tests
// ============================================================================

func TestErrors_Unique(t *testing.T) {
	errs := []error{
		ErrEmptyTitle, ErrEmptyCompany, ErrUnknownTag, ErrUnknownColumn,
		ErrInvalidActionDate, ErrInvalidThemeMode, ErrInvalidColor,
		ErrInvalidSortKey, ErrInvalidViewMode,
	}
	for i := range errs {
		for j := range errs {
			if i != j && errors.Is(errs[i], errs[j]) {
				t.Errorf("%v should not match %v", errs[i], errs[j])
			}
		}
	}
}

// ============================================================================
// Tag Tests
// ============================================================================

func TestAllTags_Order(t *testing.T) {
	want := []Tag{TagUrgent, TagRemote, TagDreamJob, TagFollowUp, TagReferred}
	got := AllTags()
	if len(got) != len(want) {
		t.Fatalf("Expected %d tags, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Tag %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestParseTag(t *testing.T) {
	tests := []struct {
		input string
		want  Tag
		ok    bool
	}{
		{"urgent", TagUrgent, true},
		{"DREAM-JOB", TagDreamJob, true},
		{"⭐ Dream Job", TagDreamJob, true},
		{"follow up", TagFollowUp, true},
		{"  referred ", TagReferred, true},
		{"Remote", TagRemote, true},
		{"", "", false},
		{"hybrid", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseTag(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParseTag(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestTag_KeyAndLabel(t *testing.T) {
	if TagDreamJob.Key() != "dream-job" {
		t.Errorf("Expected key 'dream-job', got '%s'", TagDreamJob.Key())
	}
	if TagDreamJob.Label() != "Dream Job" {
		t.Errorf("Expected label 'Dream Job', got '%s'", TagDreamJob.Label())
	}
	if Tag("nope").IsValid() {
		t.Error("Unknown tag should not be valid")
	}
}

// ============================================================================
// Column Tests
// ============================================================================

func TestDefaultColumns(t *testing.T) {
	cols := DefaultColumns()
	want := []ColumnID{
		ColumnJobList, ColumnReferral, ColumnApplied, ColumnAssessment,
		ColumnInterview, ColumnOffer, ColumnRejected,
	}
	if len(cols) != len(want) {
		t.Fatalf("Expected %d columns, got %d", len(want), len(cols))
	}
	for i, id := range want {
		if cols[i].ID != id {
			t.Errorf("Column %d: expected %s, got %s", i, id, cols[i].ID)
		}
		if cols[i].Cards == nil || len(cols[i].Cards) != 0 {
			t.Errorf("Column %s should start with an empty card slice", id)
		}
		if id.EmptyStateMessage() == "" {
			t.Errorf("Column %s should have an empty-state message", id)
		}
	}
	if cols[1].Title != "Waiting for Referral" {
		t.Errorf("Expected 'Waiting for Referral', got '%s'", cols[1].Title)
	}
}

func TestParseColumnID(t *testing.T) {
	tests := []struct {
		input string
		want  ColumnID
		ok    bool
	}{
		{"applied", ColumnApplied, true},
		{"Online Assessment", ColumnAssessment, true},
		{"JOB-LIST", ColumnJobList, true},
		{"archived", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseColumnID(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseColumnID(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestColumn_CloneIsIndependent(t *testing.T) {
	col := Column{ID: ColumnApplied, Cards: []Card{{ID: "a", Tags: []Tag{TagRemote}}}}
	clone := col.Clone()
	clone.Cards[0].Tags[0] = TagUrgent
	clone.Cards[0].Title = "changed"

	if col.Cards[0].Tags[0] != TagRemote {
		t.Error("Clone should not share tag slices")
	}
	if col.Cards[0].Title != "" {
		t.Error("Clone should not share cards")
	}
}

// ============================================================================
// Validation Tests
// ============================================================================

func TestValidateCardInput(t *testing.T) {
	valid := CardInput{Title: "Backend Engineer", Company: "Acme"}

	tests := []struct {
		name    string
		mutate  func(in *CardInput)
		wantErr error
	}{
		{"valid", func(in *CardInput) {}, nil},
		{"blank title", func(in *CardInput) { in.Title = "   " }, ErrEmptyTitle},
		{"blank company", func(in *CardInput) { in.Company = "\t" }, ErrEmptyCompany},
		{"unknown tag", func(in *CardInput) { in.Tags = []Tag{"Hybrid"} }, ErrUnknownTag},
		{"bad action date", func(in *CardInput) { in.ActionDate = "12/01/2025" }, ErrInvalidActionDate},
		{"good action date", func(in *CardInput) { in.ActionDate = "2025-12-01" }, nil},
		{"unknown column", func(in *CardInput) { in.ColumnID = "archive" }, ErrUnknownColumn},
		{"empty column allowed", func(in *CardInput) { in.ColumnID = "" }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			err := ValidateCardInput(in)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestNormalizeTags_KeepsFirstOccurrence(t *testing.T) {
	got := NormalizeTags([]Tag{TagRemote, TagUrgent, TagRemote})
	if len(got) != 2 || got[0] != TagRemote || got[1] != TagUrgent {
		t.Errorf("Unexpected normalized tags: %v", got)
	}
}

func TestValidateSettings(t *testing.T) {
	if err := ValidateSettings(DefaultSettings()); err != nil {
		t.Fatalf("Default settings should be valid: %v", err)
	}

	bad := DefaultSettings()
	bad.Theme.Mode = "sepia"
	if !errors.Is(ValidateSettings(bad), ErrInvalidThemeMode) {
		t.Error("Expected ErrInvalidThemeMode")
	}

	bad = DefaultSettings()
	bad.Theme.PrimaryColor = "blue"
	if !errors.Is(ValidateSettings(bad), ErrInvalidColor) {
		t.Error("Expected ErrInvalidColor")
	}
}

// ============================================================================
// Snapshot Tests
// ============================================================================

func TestNormalizeSnapshot_Default(t *testing.T) {
	out, repairs := NormalizeSnapshot(DefaultSnapshot())
	if repairs.Any() {
		t.Errorf("Default snapshot should need no repairs, got %+v", repairs)
	}
	if len(out.Columns) != 7 {
		t.Errorf("Expected 7 columns, got %d", len(out.Columns))
	}
}

func TestNormalizeSnapshot_Repairs(t *testing.T) {
	created := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	in := Snapshot{
		Columns: []Column{
			{ID: ColumnOffer, Cards: []Card{
				{ID: "a", Title: "A", Company: "X", ColumnID: ColumnApplied, DateCreated: created},
				{ID: "a", Title: "dup", Company: "X", ColumnID: ColumnOffer},
			}},
			{ID: "archive", Cards: []Card{
				{ID: "b", Title: "B", Company: "Y", ColumnID: "archive", Tags: []Tag{TagRemote, "Hybrid"}},
			}},
			{ID: ColumnApplied, Cards: []Card{
				{ID: "", Title: "C", Company: "Z", ColumnID: ColumnApplied},
			}},
		},
		Settings: Settings{Theme: Theme{Mode: "neon", PrimaryColor: "#123456"}},
	}

	out, repairs := NormalizeSnapshot(in)

	if len(out.Columns) != 7 {
		t.Fatalf("Expected 7 columns, got %d", len(out.Columns))
	}
	for i, id := range ColumnIDs() {
		if out.Columns[i].ID != id {
			t.Errorf("Column %d: expected %s, got %s", i, id, out.Columns[i].ID)
		}
	}

	offer := out.Columns[ColumnOffer.Index()]
	if len(offer.Cards) != 1 || offer.Cards[0].ColumnID != ColumnOffer {
		t.Errorf("Offer column should hold one card with a fixed column id, got %+v", offer.Cards)
	}

	jobs := out.Columns[ColumnJobList.Index()]
	if len(jobs.Cards) != 1 || jobs.Cards[0].ID != "b" {
		t.Fatalf("Orphaned card should be re-homed to job-list, got %+v", jobs.Cards)
	}
	if len(jobs.Cards[0].Tags) != 1 || jobs.Cards[0].Tags[0] != TagRemote {
		t.Errorf("Unknown tags should be dropped, got %v", jobs.Cards[0].Tags)
	}

	applied := out.Columns[ColumnApplied.Index()]
	if len(applied.Cards) != 1 || applied.Cards[0].ID == "" {
		t.Errorf("Card without id should get a fresh one, got %+v", applied.Cards)
	}

	if out.Settings != DefaultSettings() {
		t.Errorf("Invalid settings should be reset, got %+v", out.Settings)
	}

	if repairs.ColumnsAdded != 5 {
		t.Errorf("Expected 5 columns added, got %d", repairs.ColumnsAdded)
	}
	if repairs.CardsRehomed != 1 {
		t.Errorf("Expected 1 card re-homed, got %d", repairs.CardsRehomed)
	}
	if repairs.DuplicatesDropped != 1 {
		t.Errorf("Expected 1 duplicate dropped, got %d", repairs.DuplicatesDropped)
	}
	if repairs.IDsAssigned != 1 {
		t.Errorf("Expected 1 id assigned, got %d", repairs.IDsAssigned)
	}
	if repairs.TagsDropped != 1 {
		t.Errorf("Expected 1 tag dropped, got %d", repairs.TagsDropped)
	}
	if !repairs.SettingsReset {
		t.Error("Expected settings reset")
	}

	// input untouched
	if in.Columns[0].Cards[0].ColumnID != ColumnApplied {
		t.Error("NormalizeSnapshot should not modify its input")
	}
}

// ============================================================================
// Criteria Tests
// ============================================================================

func TestParseSortKeyAndViewMode(t *testing.T) {
	if k, err := ParseSortKey("company"); err != nil || k != SortCompany {
		t.Errorf("ParseSortKey(company) = %q, %v", k, err)
	}
	if _, err := ParseSortKey("salary"); !errors.Is(err, ErrInvalidSortKey) {
		t.Errorf("Expected ErrInvalidSortKey, got %v", err)
	}
	if m, err := ParseViewMode("compact"); err != nil || m != ViewCompact {
		t.Errorf("ParseViewMode(compact) = %q, %v", m, err)
	}
	if _, err := ParseViewMode("grid"); !errors.Is(err, ErrInvalidViewMode) {
		t.Errorf("Expected ErrInvalidViewMode, got %v", err)
	}
}

func TestCard_ApplyInputPreservesIdentity(t *testing.T) {
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	card := Card{ID: "id-1", Title: "Old", Company: "Acme", ColumnID: ColumnApplied, DateCreated: created}

	updated := card.ApplyInput(CardInput{
		Title:    "New",
		Company:  "Globex",
		Tags:     []Tag{TagUrgent, TagUrgent},
		ColumnID: ColumnOffer,
	})

	if updated.ID != "id-1" || !updated.DateCreated.Equal(created) || updated.ColumnID != ColumnApplied {
		t.Errorf("Identity fields changed: %+v", updated)
	}
	if updated.Title != "New" || updated.Company != "Globex" {
		t.Errorf("Editable fields not applied: %+v", updated)
	}
	if len(updated.Tags) != 1 {
		t.Errorf("Duplicate tags should collapse, got %v", updated.Tags)
	}
}
