package cli

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/jobzy/internal/models"
)

// AddCriteriaFlags registers the search, tag and sort flags shared by
// card list and board
func AddCriteriaFlags(cmd *cobra.Command) {
	cmd.Flags().String("search", "", "Case-insensitive match on title or company")
	cmd.Flags().StringSlice("tag", nil, "Only cards carrying every given tag (repeatable)")
	cmd.Flags().String("sort", "", "Sort by recent or company (default from config)")
	cmd.Flags().Bool("no-pinned-first", false, "Do not float pinned cards to the top")
}

// CriteriaFromFlags starts from base and applies the criteria flags
func CriteriaFromFlags(cmd *cobra.Command, base models.Criteria) (models.Criteria, error) {
	c := base.Clone()
	flags := cmd.Flags()

	if flags.Changed("search") {
		c.SearchTerm, _ = flags.GetString("search")
	}
	if flags.Changed("tag") {
		values, _ := flags.GetStringSlice("tag")
		tags, err := ParseTags(values)
		if err != nil {
			return c, err
		}
		c.SelectedTags = tags
	}
	if flags.Changed("sort") {
		raw, _ := flags.GetString("sort")
		key, err := models.ParseSortKey(raw)
		if err != nil {
			return c, err
		}
		c.Sort = key
	}
	if off, _ := flags.GetBool("no-pinned-first"); off {
		c.PinnedFirst = false
	}
	return c, nil
}
