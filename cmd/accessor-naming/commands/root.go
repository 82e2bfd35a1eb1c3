// Package commands implements the accessor-naming subcommands.
package commands

import (
	"slices"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/protobuf/reflect/protoreflect"

	"accessor-naming/internal/config"
	"accessor-naming/internal/descriptor"
	"accessor-naming/internal/diagnostic"
	"accessor-naming/internal/logging"
	"accessor-naming/internal/protojava"
)

// Output formats.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

type options struct {
	configPath     string
	protos         []string
	importPaths    []string
	descriptorSets []string
	descriptors    []string
	output         string
	strict         bool
	logLevel       string
	logJSON        bool
}

// app carries the state shared by all subcommands of one invocation.
type app struct {
	opts   options
	cfg    *config.Config
	logger *zap.Logger
}

// NewRootCmd builds the accessor-naming command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "accessor-naming",
		Short: "Accessor classification and enum conventions for protobuf Java types",
		Long: `accessor-naming reads protobuf definitions, synthesizes the accessor surface
protoc generates for Java and reports how a bean mapper should see it.

Input types come from .proto sources (--proto with --import-path), compiled
descriptor sets (--descriptor-set) or hand-written YAML descriptors
(--descriptors). Any combination may be given.

Examples:
  accessor-naming classify -I proto --proto acme/orders/v1/orders.proto
  accessor-naming enums --descriptor-set orders.pb -o yaml
  accessor-naming pair com.acme.orders.v1.Order accessor-naming/dto.Order -I proto --proto acme/orders/v1/orders.proto`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.opts.configPath, "config", "", "Config file (YAML, TOML or JSON)")
	flags.StringSliceVar(&a.opts.protos, "proto", nil, "Proto files to parse, relative to the import paths")
	flags.StringSliceVarP(&a.opts.importPaths, "import-path", "I", nil, "Proto import paths (overrides proto.import_paths)")
	flags.StringSliceVar(&a.opts.descriptorSets, "descriptor-set", nil, "Serialized FileDescriptorSet files")
	flags.StringSliceVar(&a.opts.descriptors, "descriptors", nil, "YAML descriptor files")
	flags.StringVarP(&a.opts.output, "output", "o", OutputTable, "Output format: table, json or yaml")
	flags.BoolVar(&a.opts.strict, "strict", false, "Fail when warnings are reported")
	flags.StringVar(&a.opts.logLevel, "log-level", "", "Log level (overrides log.level)")
	flags.BoolVar(&a.opts.logJSON, "log-json", false, "Log as JSON (overrides log.json)")

	root.AddCommand(
		newClassifyCmd(a),
		newEnumsCmd(a),
		newPairCmd(a),
		newVersionCmd(),
	)

	return root
}

// setup loads the configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	if !slices.Contains([]string{OutputTable, OutputJSON, OutputYAML}, a.opts.output) {
		return errors.WithHint(errors.Newf("unknown output format %q", a.opts.output),
			"use table, json or yaml")
	}

	cfg, err := config.Load(a.opts.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("import-path") {
		cfg.Proto.ImportPaths = a.opts.importPaths
	}

	if flags.Changed("log-level") {
		cfg.Log.Level = a.opts.logLevel
	}

	if flags.Changed("log-json") {
		cfg.Log.JSON = a.opts.logJSON
	}

	logger, err := logging.New(cfg.LoggingOptions())
	if err != nil {
		return err
	}

	a.cfg, a.logger = cfg, logger

	return nil
}

// loadGraph builds the descriptor graph from every input flag.
func (a *app) loadGraph() (*descriptor.Graph, error) {
	if len(a.opts.protos) == 0 && len(a.opts.descriptorSets) == 0 && len(a.opts.descriptors) == 0 {
		return nil, errors.WithHint(errors.New("no input types"),
			"pass --proto, --descriptor-set or --descriptors")
	}

	var files []protoreflect.FileDescriptor

	if len(a.opts.protos) > 0 {
		fds, err := protojava.ParseProtoFiles(a.cfg.Proto.ImportPaths, a.opts.protos...)
		if err != nil {
			return nil, err
		}

		files = append(files, fds...)
	}

	for _, path := range a.opts.descriptorSets {
		fds, err := protojava.LoadDescriptorSet(path)
		if err != nil {
			return nil, err
		}

		files = append(files, fds...)
	}

	graph := protojava.NewGraph(files...)

	for _, path := range a.opts.descriptors {
		g, err := descriptor.LoadFile(path)
		if err != nil {
			return nil, err
		}

		graph.Add(g.Types()...)

		a.logger.Debug("descriptors loaded", zap.String(logging.FieldFile, path), zap.Int(logging.FieldCount, g.Len()))
	}

	a.logger.Debug("descriptor graph built",
		zap.Int("files", len(files)),
		zap.Int(logging.FieldCount, graph.Len()))

	return graph, nil
}

// lookupTypes resolves the named types, or selects every type kept by keep
// when no names are given.
func lookupTypes(graph *descriptor.Graph, names []string, keep func(*descriptor.TypeDescriptor) bool) ([]*descriptor.TypeDescriptor, error) {
	if len(names) == 0 {
		return graph.Filter(keep), nil
	}

	out := make([]*descriptor.TypeDescriptor, 0, len(names))

	for _, name := range names {
		t := graph.Lookup(name)
		if t == nil {
			err := errors.Wrapf(descriptor.ErrUnknownType, "%s", name)
			if similar := similarTypes(graph, name); len(similar) > 0 {
				err = errors.WithHintf(err, "did you mean one of: %v", similar)
			}

			return nil, err
		}

		out = append(out, t)
	}

	return out, nil
}

func similarTypes(graph *descriptor.Graph, name string) []string {
	const maxSuggestions = 3

	names := make([]string, 0, graph.Len())
	for _, t := range graph.Types() {
		names = append(names, t.QualifiedName)
	}

	ranks := fuzzy.RankFindNormalizedFold(name, names)
	sort.Sort(ranks)

	var out []string
	for _, r := range ranks {
		if len(out) == maxSuggestions {
			break
		}

		out = append(out, r.Target)
	}

	return out
}

// finish turns collected diagnostics into the command's exit status.
func (a *app) finish(diags diagnostic.Diagnostics) error {
	if diags.HasErrors() {
		return errors.Newf("%d error(s) reported", len(diags.Errors))
	}

	if a.opts.strict && diags.HasWarnings() {
		return errors.WithHint(errors.Newf("%d warning(s) reported in strict mode", len(diags.Warnings)),
			"resolve the warnings or drop --strict")
	}

	return nil
}
