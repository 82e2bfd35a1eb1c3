package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"accessor-naming/internal/accessor"
	"accessor-naming/internal/descriptor"
	"accessor-naming/internal/diagnostic"
	"accessor-naming/internal/protojava"
)

type propertyReport struct {
	Name          string   `json:"name" yaml:"name"`
	Getters       []string `json:"getters,omitempty" yaml:"getters,omitempty"`
	Setters       []string `json:"setters,omitempty" yaml:"setters,omitempty"`
	PresenceCheck string   `json:"presenceCheck,omitempty" yaml:"presenceCheck,omitempty"`
}

type methodReport struct {
	Method   string `json:"method" yaml:"method"`
	Role     string `json:"role" yaml:"role"`
	Property string `json:"property,omitempty" yaml:"property,omitempty"`
}

type typeReport struct {
	Type        string             `json:"type" yaml:"type"`
	WireFormat  bool               `json:"wireFormat" yaml:"wireFormat"`
	Properties  []propertyReport   `json:"properties" yaml:"properties"`
	Methods     []methodReport     `json:"methods,omitempty" yaml:"methods,omitempty"`
	Diagnostics []diagnosticReport `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
	Error       string             `json:"error,omitempty" yaml:"error,omitempty"`
}

func newClassifyCmd(a *app) *cobra.Command {
	var showMethods bool

	cmd := &cobra.Command{
		Use:   "classify [TYPE...]",
		Short: "Classify accessor methods and resolve property names",
		Long: `Classify every method of the given types as getter, setter, presence check,
internal or not an accessor, and group the accessors by property name.

Without arguments every wire-format message and builder class is classified.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			graph, err := a.loadGraph()
			if err != nil {
				return err
			}

			engine := accessor.NewEngine(graph,
				accessor.WithLogger(a.logger),
				accessor.WithConcurrency(a.cfg.Batch.Concurrency))

			types, err := lookupTypes(graph, args, func(t *descriptor.TypeDescriptor) bool {
				return t.Kind == descriptor.KindClass &&
					!protojava.IsRuntimeType(t.QualifiedName) &&
					engine.IsWireFormat(t)
			})
			if err != nil {
				return err
			}

			results, err := engine.ClassifyAll(cmd.Context(), types)
			if err != nil {
				return err
			}

			var diags diagnostic.Diagnostics

			reports := make([]typeReport, len(results))
			for i, res := range results {
				reports[i] = newTypeReport(res, showMethods)
				diags.Merge(res.Diagnostics)
			}

			out := cmd.OutOrStdout()

			done, err := a.structured(out, reports)
			if err != nil {
				return err
			}

			if !done {
				if err := writeTypeReports(out, reports); err != nil {
					return err
				}

				writeDiagnostics(out, diags)
			}

			return a.finish(diags)
		},
	}

	cmd.Flags().BoolVar(&showMethods, "methods", false, "List every method with its role")

	return cmd
}

func newTypeReport(res *accessor.TypeResult, showMethods bool) typeReport {
	r := typeReport{
		Type:        res.Type.QualifiedName,
		WireFormat:  res.WireFormat,
		Diagnostics: diagnosticReports(res.Diagnostics),
	}

	if res.Err != nil {
		r.Error = res.Err.Error()
		return r
	}

	for _, p := range res.Properties() {
		pr := propertyReport{Name: p.Name}

		for _, g := range p.Getters {
			pr.Getters = append(pr.Getters, g.String())
		}

		for _, s := range p.Setters {
			pr.Setters = append(pr.Setters, s.String())
		}

		if p.PresenceCheck != nil {
			pr.PresenceCheck = p.PresenceCheck.String()
		}

		r.Properties = append(r.Properties, pr)
	}

	if showMethods {
		for _, mr := range res.Methods {
			r.Methods = append(r.Methods, methodReport{
				Method:   mr.Method.String(),
				Role:     mr.Role.String(),
				Property: mr.Property,
			})
		}
	}

	return r
}

func writeTypeReports(out io.Writer, reports []typeReport) error {
	for _, r := range reports {
		writeTitle(out, "%s (wire format: %t)", r.Type, r.WireFormat)

		if r.Error != "" {
			fmt.Fprintln(out, r.Error)
			continue
		}

		rows := make([][]string, 0, len(r.Properties))
		for _, p := range r.Properties {
			rows = append(rows, []string{p.Name, joinList(p.Getters), joinList(p.Setters), p.PresenceCheck})
		}

		if err := writeTable(out, []string{"Property", "Getters", "Setters", "Presence"}, rows); err != nil {
			return err
		}

		if len(r.Methods) == 0 {
			continue
		}

		rows = rows[:0]
		for _, m := range r.Methods {
			rows = append(rows, []string{m.Method, m.Role, m.Property})
		}

		if err := writeTable(out, []string{"Method", "Role", "Property"}, rows); err != nil {
			return err
		}
	}

	return nil
}
