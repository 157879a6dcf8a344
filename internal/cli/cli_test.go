package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/jobzy/internal/app"
	"github.com/thenoetrevino/jobzy/internal/database"
	"github.com/thenoetrevino/jobzy/internal/export"
	"github.com/thenoetrevino/jobzy/internal/models"
	"github.com/thenoetrevino/jobzy/internal/store"
)

func newTestApp(t *testing.T, ids ...string) *app.App {
	t.Helper()
	ctx := context.Background()
	db, err := database.OpenInMemory(ctx)
	require.NoError(t, err)

	next := 0
	a, err := app.NewWithDB(ctx, db, app.WithIDGenerator(func() string {
		id := ids[next%len(ids)]
		next++
		return id
	}))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = a.Close()
		_ = db.Close()
	})
	return a
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err      error
		wantExit int
		wantCode string
	}{
		{fmt.Errorf("%w: abc", ErrCardNotFound), ExitNotFound, "CARD_NOT_FOUND"},
		{ErrAmbiguousID, ExitUsage, "AMBIGUOUS_ID"},
		{models.ErrUnknownColumn, ExitNotFound, "COLUMN_NOT_FOUND"},
		{store.ErrPinLimitReached, ExitValidation, "PIN_LIMIT_REACHED"},
		{ErrReadInput, ExitDataErr, "STDIN_READ_ERROR"},
		{export.ErrUnknownFormat, ExitUsage, "INVALID_FORMAT"},
		{models.ErrEmptyTitle, ExitValidation, "VALIDATION_ERROR"},
		{fmt.Errorf("wrapped: %w", models.ErrInvalidColor), ExitValidation, "VALIDATION_ERROR"},
		{errors.New("disk on fire"), ExitError, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.wantCode+"/"+tt.err.Error(), func(t *testing.T) {
			exit, code := Classify(tt.err)
			assert.Equal(t, tt.wantExit, exit)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitError, ExitCode(errors.New("plain")))

	err := fmt.Errorf("command failed: %w", &ExitCodeError{Code: ExitNotFound, Err: ErrCardNotFound})
	assert.Equal(t, ExitNotFound, ExitCode(err))
	assert.True(t, Reported(err))
	assert.False(t, Reported(errors.New("plain")))
	assert.ErrorIs(t, err, ErrCardNotFound)
}

func TestOutputFormatter_Fail(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		var out bytes.Buffer
		f := &OutputFormatter{JSON: true, Out: &out}

		err := f.FailWith(fmt.Errorf("%w: 1a2b", ErrCardNotFound), "Use 'jobzy card list'")
		assert.Equal(t, ExitNotFound, ExitCode(err))

		var payload struct {
			Success bool `json:"success"`
			Error   struct {
				Code       string `json:"code"`
				Message    string `json:"message"`
				Suggestion string `json:"suggestion"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(out.Bytes(), &payload))
		assert.False(t, payload.Success)
		assert.Equal(t, "CARD_NOT_FOUND", payload.Error.Code)
		assert.Equal(t, "card not found: 1a2b", payload.Error.Message)
		assert.Equal(t, "Use 'jobzy card list'", payload.Error.Suggestion)
	})

	t.Run("Human output goes to stderr", func(t *testing.T) {
		var out, errOut bytes.Buffer
		f := &OutputFormatter{Out: &out, Err: &errOut}

		err := f.Fail(ExitUsage, "NO_CHANGES", errors.New("nothing to set"), "Pass --mode")
		assert.Equal(t, ExitUsage, ExitCode(err))
		assert.Empty(t, out.String())
		assert.Contains(t, errOut.String(), "Error: nothing to set")
		assert.Contains(t, errOut.String(), "Suggestion: Pass --mode")
	})
}

func TestOutputFormatter_Success(t *testing.T) {
	card := models.Card{ID: "card-1", Title: "SRE"}

	t.Run("Quiet prints the id", func(t *testing.T) {
		var out bytes.Buffer
		f := &OutputFormatter{Quiet: true, Out: &out}
		require.NoError(t, f.Success(card))
		assert.Equal(t, "card-1\n", out.String())
	})

	t.Run("JSON wraps data", func(t *testing.T) {
		var out bytes.Buffer
		f := &OutputFormatter{JSON: true, Out: &out}
		require.NoError(t, f.Success(map[string]int{"n": 1}))
		assert.JSONEq(t, `{"success":true,"data":{"n":1}}`, out.String())
	})

	t.Run("Printf is silent outside human mode", func(t *testing.T) {
		var out bytes.Buffer
		(&OutputFormatter{JSON: true, Out: &out}).Printf("hello")
		(&OutputFormatter{Quiet: true, Out: &out}).Printf("hello")
		assert.Empty(t, out.String())

		(&OutputFormatter{Out: &out}).Printf("hello %s", "there")
		assert.Equal(t, "hello there", out.String())
	})
}

func TestResolveCard(t *testing.T) {
	a := newTestApp(t, "abc123", "abd456", "xyz789")
	for _, title := range []string{"A", "B", "C"} {
		_, err := a.Store.AddCard(models.CardInput{Title: title, Company: "Acme"})
		require.NoError(t, err)
	}

	card, err := ResolveCard(a.Store, "xyz789")
	require.NoError(t, err)
	assert.Equal(t, "C", card.Title)

	card, err = ResolveCard(a.Store, " abd ")
	require.NoError(t, err)
	assert.Equal(t, "B", card.Title)

	_, err = ResolveCard(a.Store, "ab")
	assert.ErrorIs(t, err, ErrAmbiguousID)

	_, err = ResolveCard(a.Store, "q")
	assert.ErrorIs(t, err, ErrCardNotFound)

	_, err = ResolveCard(a.Store, "")
	assert.ErrorIs(t, err, ErrCardNotFound)
}

func TestFindColumn(t *testing.T) {
	id, err := FindColumn("Online Assessment")
	require.NoError(t, err)
	assert.Equal(t, models.ColumnAssessment, id)

	id, err = FindColumn("OFFER")
	require.NoError(t, err)
	assert.Equal(t, models.ColumnOffer, id)

	_, err = FindColumn("backlog")
	assert.ErrorIs(t, err, models.ErrUnknownColumn)

	assert.Equal(t, "job-list, referral, applied, assessment, interview, offer, rejected", FormatAvailableColumns())
}

func TestParseTags(t *testing.T) {
	tags, err := ParseTags([]string{"remote, urgent", "Dream Job", "remote"})
	require.NoError(t, err)
	assert.Equal(t, []models.Tag{models.TagRemote, models.TagUrgent, models.TagDreamJob}, tags)

	tags, err = ParseTags(nil)
	require.NoError(t, err)
	assert.Empty(t, tags)

	_, err = ParseTags([]string{"remote,onsite"})
	assert.ErrorIs(t, err, models.ErrUnknownTag)
	assert.Contains(t, err.Error(), "onsite")
}

func TestReadText(t *testing.T) {
	got, err := ReadText("inline", strings.NewReader("ignored"))
	require.NoError(t, err)
	assert.Equal(t, "inline", got)

	got, err = ReadText("-", strings.NewReader("line one\nline two\n\n"))
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", got)

	_, err = ReadText("-", iotest.ErrReader(errors.New("broken pipe")))
	assert.ErrorIs(t, err, ErrReadInput)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"y", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"yeah\n", false},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		assert.Equal(t, tt.want, Confirm(strings.NewReader(tt.input), &out, "Delete?"), "input %q", tt.input)
		assert.Equal(t, "Delete? (y/N): ", out.String())
	}
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "12345678", ShortID("1234567890"))
	assert.Equal(t, "abc", ShortID("abc"))
}

func TestGetCLIFromContext_BorrowedApp(t *testing.T) {
	a := newTestApp(t, "only")
	c, err := GetCLIFromContext(WithApp(context.Background(), a))
	require.NoError(t, err)
	assert.Same(t, a, c.App)

	// Closing a borrowed CLI leaves the app usable
	require.NoError(t, c.Close())
	_, err = a.Store.AddCard(models.CardInput{Title: "SRE", Company: "Acme"})
	assert.NoError(t, err)
}

func TestNewCLI_FromConfigPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("JOBZY_DATA_DIR", dir)
	cfgPath := dir + "/config.yaml"

	ctx := WithConfigPath(context.Background(), cfgPath)
	c, err := GetCLIFromContext(ctx)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	assert.Equal(t, dir, c.App.Config.ResolvedDataDir())
	assert.Equal(t, 0, c.App.Store.CardCount())
}
