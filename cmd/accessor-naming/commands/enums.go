package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"accessor-naming/internal/descriptor"
	"accessor-naming/internal/enummap"
	"accessor-naming/internal/protojava"
)

type constantReport struct {
	Name      string `json:"name" yaml:"name"`
	Ordinal   int    `json:"ordinal" yaml:"ordinal"`
	Canonical string `json:"canonical" yaml:"canonical"`
}

type enumReport struct {
	Type          string             `json:"type" yaml:"type"`
	WireEnum      bool               `json:"wireEnum" yaml:"wireEnum"`
	Postfix       string             `json:"postfix,omitempty" yaml:"postfix,omitempty"`
	DefaultAbsent string             `json:"defaultAbsent,omitempty" yaml:"defaultAbsent,omitempty"`
	Constants     []constantReport   `json:"constants" yaml:"constants"`
	Diagnostics   []diagnosticReport `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
	Error         string             `json:"error,omitempty" yaml:"error,omitempty"`
}

func (a *app) newMapper(graph *descriptor.Graph) (*enummap.Mapper, error) {
	mc, err := a.cfg.MapperConfig()
	if err != nil {
		return nil, err
	}

	opts := append(a.cfg.MapperOptions(), enummap.WithLogger(a.logger))

	return enummap.NewMapper(graph, mc, opts...), nil
}

func newEnumsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "enums [ENUM...]",
		Short: "Map enum constants onto the absent-value convention",
		Long: `Validate enums and print the canonical, prefix-stripped name of every
constant. The zero constant named <PREFIX>_<POSTFIX> and UNRECOGNIZED map to
the absent value. Postfixes come from enum.default_postfix and
enum.postfix_overrides.

Without arguments every enum of the input is mapped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			graph, err := a.loadGraph()
			if err != nil {
				return err
			}

			mapper, err := a.newMapper(graph)
			if err != nil {
				return err
			}

			types, err := lookupTypes(graph, args, func(t *descriptor.TypeDescriptor) bool {
				return t.Kind == descriptor.KindEnum && !protojava.IsRuntimeType(t.QualifiedName)
			})
			if err != nil {
				return err
			}

			for _, t := range types {
				if t.Kind != descriptor.KindEnum {
					return errors.Newf("%s is a %s, not an enum", t.QualifiedName, t.Kind)
				}
			}

			diags := mapper.Config().Overrides.Diagnostics()

			results := mapper.MapAll(types)
			reports := make([]enumReport, len(results))

			for i, res := range results {
				reports[i] = newEnumReport(res)
				diags.Merge(res.Diagnostics)
			}

			out := cmd.OutOrStdout()

			done, err := a.structured(out, reports)
			if err != nil {
				return err
			}

			if !done {
				if err := writeEnumReports(out, reports); err != nil {
					return err
				}

				writeDiagnostics(out, diags)
			}

			return a.finish(diags)
		},
	}
}

func newEnumReport(res *enummap.EnumResult) enumReport {
	r := enumReport{
		Type:          res.Type.QualifiedName,
		WireEnum:      res.WireEnum,
		Postfix:       res.Postfix,
		DefaultAbsent: res.DefaultAbsent,
		Diagnostics:   diagnosticReports(res.Diagnostics),
	}

	if res.Err != nil {
		r.Error = res.Err.Error()
	}

	for _, c := range res.Constants {
		r.Constants = append(r.Constants, constantReport{Name: c.Name, Ordinal: c.Ordinal, Canonical: c.Canonical})
	}

	return r
}

func writeEnumReports(out io.Writer, reports []enumReport) error {
	for _, r := range reports {
		writeTitle(out, "%s (wire enum: %t, postfix: %s, default absent: %s)",
			r.Type, r.WireEnum, r.Postfix, r.DefaultAbsent)

		if r.Error != "" {
			fmt.Fprintln(out, r.Error)
			continue
		}

		rows := make([][]string, 0, len(r.Constants))
		for _, c := range r.Constants {
			rows = append(rows, []string{c.Name, strconv.Itoa(c.Ordinal), c.Canonical})
		}

		if err := writeTable(out, []string{"Constant", "Ordinal", "Canonical"}, rows); err != nil {
			return err
		}
	}

	return nil
}
