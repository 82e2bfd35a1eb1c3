package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"accessor-naming/internal/accessor"
	"accessor-naming/internal/analyze"
	"accessor-naming/internal/descriptor"
	"accessor-naming/internal/diagnostic"
	"accessor-naming/internal/plan"
)

type fieldReport struct {
	Field         string   `json:"field" yaml:"field"`
	Property      string   `json:"property,omitempty" yaml:"property,omitempty"`
	Match         string   `json:"match" yaml:"match"`
	Strategy      string   `json:"strategy,omitempty" yaml:"strategy,omitempty"`
	Compatibility string   `json:"compatibility,omitempty" yaml:"compatibility,omitempty"`
	Confidence    float64  `json:"confidence" yaml:"confidence"`
	Reason        string   `json:"reason,omitempty" yaml:"reason,omitempty"`
	Candidates    []string `json:"candidates,omitempty" yaml:"candidates,omitempty"`
}

type pairReport struct {
	Wire        string             `json:"wire" yaml:"wire"`
	Target      string             `json:"target" yaml:"target"`
	Fields      []fieldReport      `json:"fields" yaml:"fields"`
	Unused      []string           `json:"unused,omitempty" yaml:"unused,omitempty"`
	Diagnostics []diagnosticReport `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`

	diags diagnostic.Diagnostics
}

const matchUnmapped = "unmapped"

func newPairCmd(a *app) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "pair WIRE_TYPE GO_TYPE",
		Short: "Pair wire properties with the fields of a Go type",
		Long: `Pair the properties of a wire-format message with the exported fields of a
Go struct, or the constants of a wire enum with the constants of a Go enum.
GO_TYPE is written as import/path.TypeName.

Fields are matched by normalized name first (accessor and json tags are
honoured), then by fuzzy ranking. Unmapped fields are reported as warnings;
with --strict they fail the command.`,
		Example: "  accessor-naming pair com.acme.orders.v1.Order accessor-naming/dto.Order -I proto --proto acme/orders/v1/orders.proto",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			graph, err := a.loadGraph()
			if err != nil {
				return err
			}

			wires, err := lookupTypes(graph, args[:1], nil)
			if err != nil {
				return err
			}

			id, err := analyze.ParseTypeID(args[1])
			if err != nil {
				return err
			}

			analyzer := analyze.NewAnalyzer(analyze.WithDir(dir))
			if _, err := analyzer.LoadPackages(id.PkgPath); err != nil {
				return err
			}

			cfg := a.cfg.PairerConfig()
			cfg.Graph = graph
			cfg.Logger = a.logger

			var report *pairReport

			if wires[0].Kind == descriptor.KindEnum {
				report, err = a.pairEnum(graph, plan.NewPairer(cfg), wires[0], analyzer, id)
			} else {
				report, err = a.pairMessage(graph, plan.NewPairer(cfg), wires[0], analyzer, id)
			}

			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			done, err := a.structured(out, report)
			if err != nil {
				return err
			}

			if !done {
				if err := writePairReport(out, report); err != nil {
					return err
				}
			}

			return a.finish(report.diags)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Directory to load Go packages from (default: current)")

	return cmd
}

func (a *app) pairMessage(
	graph *descriptor.Graph,
	pairer *plan.Pairer,
	wire *descriptor.TypeDescriptor,
	analyzer *analyze.Analyzer,
	id analyze.TypeID,
) (*pairReport, error) {
	target, err := analyzer.GetStruct(id.PkgPath, id.Name)
	if err != nil {
		return nil, err
	}

	engine := accessor.NewEngine(graph, accessor.WithLogger(a.logger))

	res, err := engine.ClassifyType(wire)
	if err != nil {
		return nil, err
	}

	pairing, diags := pairer.Pair(res, target)
	diags.Merge(res.Diagnostics)

	report := &pairReport{Wire: wire.QualifiedName, Target: id.String()}

	if pairing != nil {
		for _, f := range pairing.Fields {
			report.Fields = append(report.Fields, fieldReport{
				Field:         f.Target.Name,
				Property:      f.Property.Name,
				Match:         f.Source.String(),
				Strategy:      f.Strategy.String(),
				Compatibility: f.Compat.Compatibility.String(),
				Confidence:    f.Confidence,
			})
		}

		for _, u := range pairing.Unmapped {
			report.Fields = append(report.Fields, fieldReport{
				Field:      u.Target.Name,
				Match:      matchUnmapped,
				Reason:     u.Reason,
				Candidates: u.Candidates.Names(),
			})
		}

		report.Unused = pairing.UnusedProperties
	}

	report.setDiagnostics(diags)

	return report, nil
}

func (a *app) pairEnum(
	graph *descriptor.Graph,
	pairer *plan.Pairer,
	wire *descriptor.TypeDescriptor,
	analyzer *analyze.Analyzer,
	id analyze.TypeID,
) (*pairReport, error) {
	target, err := analyzer.GetEnum(id.PkgPath, id.Name)
	if err != nil {
		return nil, err
	}

	mapper, err := a.newMapper(graph)
	if err != nil {
		return nil, err
	}

	res, err := mapper.MapEnum(wire)
	if err != nil {
		return nil, err
	}

	pairing, diags := pairer.PairEnum(res, target)
	diags.Merge(res.Diagnostics)

	report := &pairReport{Wire: wire.QualifiedName, Target: id.String()}

	if pairing != nil {
		for _, c := range pairing.Constants {
			report.Fields = append(report.Fields, fieldReport{
				Field:      c.Go.Name,
				Property:   c.Wire.Name,
				Match:      plan.MatchExact.String(),
				Strategy:   plan.StrategyEnumMap.String(),
				Confidence: 1,
			})
		}

		for _, name := range pairing.UnmappedGo {
			report.Fields = append(report.Fields, fieldReport{Field: name, Match: matchUnmapped})
		}

		report.Unused = pairing.UnmappedWire
	}

	report.setDiagnostics(diags)

	return report, nil
}

func (r *pairReport) setDiagnostics(diags diagnostic.Diagnostics) {
	r.diags = diags
	r.Diagnostics = diagnosticReports(diags)
}

func writePairReport(out io.Writer, r *pairReport) error {
	writeTitle(out, "%s -> %s", r.Wire, r.Target)

	rows := make([][]string, 0, len(r.Fields))
	for _, f := range r.Fields {
		detail := f.Compatibility
		if f.Match == matchUnmapped {
			detail = f.Reason
		}

		rows = append(rows, []string{
			f.Field, f.Property, f.Match, f.Strategy, detail, fmt.Sprintf("%.2f", f.Confidence),
		})
	}

	if err := writeTable(out, []string{"Field", "Property", "Match", "Strategy", "Detail", "Score"}, rows); err != nil {
		return err
	}

	writeDiagnostics(out, r.diags)

	return nil
}
