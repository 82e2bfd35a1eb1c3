package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"

	"accessor-naming/internal/diagnostic"
)

// structured writes v as JSON or YAML. It reports false for table output.
func (a *app) structured(out io.Writer, v any) (bool, error) {
	switch a.opts.output {
	case OutputJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		return true, errors.Wrap(enc.Encode(v), "failed to encode JSON")
	case OutputYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)

		if err := enc.Encode(v); err != nil {
			return true, errors.Wrap(err, "failed to encode YAML")
		}

		return true, errors.Wrap(enc.Close(), "failed to encode YAML")
	default:
		return false, nil
	}
}

func writeTable(out io.Writer, header []string, rows [][]string) error {
	data := append(pterm.TableData{header}, rows...)

	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "failed to render table")
	}

	_, err = fmt.Fprintln(out, s)

	return err
}

func writeTitle(out io.Writer, format string, args ...any) {
	fmt.Fprintln(out, pterm.Bold.Sprintf(format, args...))
}

func writeDiagnostics(out io.Writer, diags diagnostic.Diagnostics) {
	for _, d := range diags.Errors {
		fmt.Fprint(out, pterm.Error.Sprintln(d.String()))
	}

	for _, d := range diags.Warnings {
		fmt.Fprint(out, pterm.Warning.Sprintln(d.String()))
	}

	for _, d := range diags.Infos {
		fmt.Fprint(out, pterm.Info.Sprintln(d.String()))
	}
}

func joinList(items []string) string {
	return strings.Join(items, ", ")
}

// diagnosticReport is the structured form of a diagnostic.
type diagnosticReport struct {
	Severity    string   `json:"severity" yaml:"severity"`
	Code        string   `json:"code" yaml:"code"`
	Message     string   `json:"message" yaml:"message"`
	Type        string   `json:"type,omitempty" yaml:"type,omitempty"`
	Member      string   `json:"member,omitempty" yaml:"member,omitempty"`
	Suggestions []string `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}

func diagnosticReports(diags diagnostic.Diagnostics) []diagnosticReport {
	all := diags.All()

	out := make([]diagnosticReport, len(all))
	for i, d := range all {
		out[i] = diagnosticReport{
			Severity:    d.Severity.String(),
			Code:        d.Code,
			Message:     d.Message,
			Type:        d.Type,
			Member:      d.Member,
			Suggestions: d.Suggestions,
		}
	}

	return out
}
