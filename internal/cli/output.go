package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and Err default to os.Stdout and os.Stderr
	Out io.Writer
	Err io.Writer
}

// NewFormatter reads the agent-friendly --json and --quiet flags of cmd
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// AddOutputFlags registers --json and --quiet on cmd
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out != nil {
		return f.Out
	}
	return os.Stdout
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.Err != nil {
		return f.Err
	}
	return os.Stderr
}

// Styled returns the human-readable writer. Colors are downsampled to what
// the terminal supports and dropped entirely when output is not a terminal.
func (f *OutputFormatter) Styled() io.Writer {
	return colorprofile.NewWriter(f.out(), os.Environ())
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() string }); ok {
			_, err := fmt.Fprintln(f.out(), idGetter.GetID())
			return err
		}
	}

	if f.JSON {
		return f.Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// Encode writes v as a single JSON document
func (f *OutputFormatter) Encode(v any) error {
	return json.NewEncoder(f.out()).Encode(v)
}

// Printf writes human-readable output. It is silent in JSON and quiet mode.
func (f *OutputFormatter) Printf(format string, args ...any) {
	if f.JSON || f.Quiet {
		return
	}
	_, _ = fmt.Fprintf(f.Styled(), format, args...)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return f.Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	if _, err := fmt.Fprintf(f.errOut(), "❌ Error: %s\n", message); err != nil {
		return err
	}
	if suggestion != "" {
		if _, err := fmt.Fprintf(f.errOut(), "💡 Suggestion: %s\n", suggestion); err != nil {
			return err
		}
	}
	return nil
}

// Fail reports err and returns it wrapped with the exit code.
// An empty code is derived from err with Classify.
func (f *OutputFormatter) Fail(exitCode int, code string, err error, suggestion string) error {
	if code == "" {
		exitCode, code = Classify(err)
	}
	if fmtErr := f.ErrorWithSuggestion(code, err.Error(), suggestion); fmtErr != nil {
		return fmt.Errorf("failed to report error %q: %w", err.Error(), fmtErr)
	}
	return &ExitCodeError{Code: exitCode, Err: err}
}

// FailWith classifies err and reports it with an optional suggestion
func (f *OutputFormatter) FailWith(err error, suggestion string) error {
	return f.Fail(0, "", err, suggestion)
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	// Default implementation - can be enhanced per data type
	_, err := fmt.Fprintf(f.out(), "%+v\n", data)
	return err
}
