package enummap

import (
	"sort"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"accessor-naming/internal/descriptor"
	"accessor-naming/internal/diagnostic"
	"accessor-naming/internal/logging"
)

const (
	// DefaultPostfix marks the zero constant of an enum when no override applies.
	DefaultPostfix = "UNSPECIFIED"
	// Unrecognized is the constant the protobuf runtime adds for unknown numbers.
	Unrecognized = "UNRECOGNIZED"
	// Absent is the canonical name of every constant that means "no value".
	Absent = "<ABSENT>"
)

// Interfaces that mark a generated protobuf enum.
const (
	ProtocolMessageEnum = "com.google.protobuf.ProtocolMessageEnum"
	EnumLite            = "com.google.protobuf.Internal.EnumLite"
)

var (
	// ErrMissingZeroConstant is returned for a wire enum without an ordinal 0 constant.
	ErrMissingZeroConstant = errors.New("wire enum has no zero-ordinal constant")
	// ErrMissingSentinel is returned for a wire enum without UNRECOGNIZED.
	ErrMissingSentinel = errors.New("wire enum has no " + Unrecognized + " constant")
)

// Config holds the naming convention settings.
type Config struct {
	// DefaultPostfix is used when no override matches. Empty means DefaultPostfix.
	DefaultPostfix string
	// Overrides are consulted in declaration order.
	Overrides OverrideTable
}

// Mapper applies the absent-value naming convention to enum constants.
// It is safe for concurrent use.
type Mapper struct {
	graph          *descriptor.Graph
	cfg            Config
	wireOnly       bool
	enumInterfaces []string
	logger         *zap.Logger

	mu    sync.RWMutex
	wires map[string]bool
}

// Option configures a Mapper.
type Option func(*Mapper)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(m *Mapper) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithWireEnumsOnly leaves enums that are not generated protobuf enums
// untouched: every constant keeps its name and none is absent.
func WithWireEnumsOnly() Option {
	return func(m *Mapper) { m.wireOnly = true }
}

// WithEnumInterfaces replaces the interface names that mark a wire enum.
func WithEnumInterfaces(names ...string) Option {
	return func(m *Mapper) { m.enumInterfaces = names }
}

// NewMapper creates a Mapper. graph may be nil when enums are only passed
// directly.
func NewMapper(graph *descriptor.Graph, cfg Config, opts ...Option) *Mapper {
	if graph == nil {
		graph = descriptor.NewGraph()
	}

	if cfg.DefaultPostfix == "" {
		cfg.DefaultPostfix = DefaultPostfix
	}

	m := &Mapper{
		graph:          graph,
		cfg:            cfg,
		enumInterfaces: []string{ProtocolMessageEnum, EnumLite},
		logger:         zap.NewNop(),
		wires:          make(map[string]bool),
	}

	for _, opt := range opts {
		opt(m)
	}

	for _, pair := range cfg.Overrides.Overlaps() {
		m.logger.Warn("overlapping enum postfix overrides, first declared wins",
			zap.String("first", pair[0]), zap.String("second", pair[1]))
	}

	return m
}

// IsWireEnum reports whether t directly implements one of the protobuf enum
// interfaces.
func (m *Mapper) IsWireEnum(t *descriptor.TypeDescriptor) bool {
	if t == nil {
		return false
	}

	m.mu.RLock()
	cached, ok := m.wires[t.QualifiedName]
	m.mu.RUnlock()

	if ok {
		return cached
	}

	result := false

	for _, iface := range t.Interfaces {
		for _, name := range m.enumInterfaces {
			if iface.Raw() == name {
				result = true
			}
		}
	}

	m.mu.Lock()
	if _, ok := m.wires[t.QualifiedName]; !ok {
		m.wires[t.QualifiedName] = result
	}
	m.mu.Unlock()

	return result
}

// Postfix returns the absent-value postfix for t: the first override whose
// prefix starts the qualified name, else the default.
func (m *Mapper) Postfix(t *descriptor.TypeDescriptor) string {
	if postfix, ok := m.cfg.Overrides.Lookup(t.QualifiedName); ok {
		return postfix
	}

	return m.cfg.DefaultPostfix
}

// Prefix returns the constant prefix derived from the simple name of t,
// e.g. "STATUS_CODE_" for StatusCode.
func Prefix(t *descriptor.TypeDescriptor) string {
	return CamelToUpperSnake(t.SimpleName()) + "_"
}

// ShouldMapToAbsent reports whether constant denotes "no value" for t.
func (m *Mapper) ShouldMapToAbsent(t *descriptor.TypeDescriptor, constant string) bool {
	if m.passThrough(t) {
		return false
	}

	if constant == Unrecognized {
		return true
	}

	return strings.TrimPrefix(constant, Prefix(t)) == m.Postfix(t)
}

// CanonicalConstant returns Absent for absent constants and the constant
// without its type prefix otherwise. An empty constant stands for an absent
// source value and yields DefaultAbsentConstant.
func (m *Mapper) CanonicalConstant(t *descriptor.TypeDescriptor, constant string) string {
	if constant == "" {
		return m.DefaultAbsentConstant(t)
	}

	if m.passThrough(t) {
		return constant
	}

	if m.ShouldMapToAbsent(t, constant) {
		return Absent
	}

	return strings.TrimPrefix(constant, Prefix(t))
}

// DefaultAbsentConstant synthesizes the wire constant an absent value encodes
// to, e.g. "STATUS_UNSPECIFIED". Pass-through enums have none.
func (m *Mapper) DefaultAbsentConstant(t *descriptor.TypeDescriptor) string {
	if m.passThrough(t) {
		return ""
	}

	return Prefix(t) + m.Postfix(t)
}

// Validate checks that a wire enum carries both the zero-ordinal constant and
// the UNRECOGNIZED sentinel. Other enums are always valid.
func (m *Mapper) Validate(t *descriptor.TypeDescriptor) error {
	if t == nil {
		return errors.New("nil enum descriptor")
	}

	if !m.IsWireEnum(t) {
		return nil
	}

	if _, ok := t.ConstantAt(0); !ok {
		return errors.WithHint(
			errors.Wrapf(ErrMissingZeroConstant, "%s", t.QualifiedName),
			"declare "+Prefix(t)+m.Postfix(t)+" = 0",
		)
	}

	if _, ok := t.Constant(Unrecognized); !ok {
		return errors.WithHint(
			errors.Wrapf(ErrMissingSentinel, "%s", t.QualifiedName),
			"descriptors of generated enums must include the runtime sentinel",
		)
	}

	return nil
}

func (m *Mapper) passThrough(t *descriptor.TypeDescriptor) bool {
	return m.wireOnly && !m.IsWireEnum(t)
}

// ConstantMapping is the mapping of one enum constant.
type ConstantMapping struct {
	Name      string
	Ordinal   int
	Canonical string
}

// IsAbsent reports whether the constant maps to Absent.
func (c ConstantMapping) IsAbsent() bool {
	return c.Canonical == Absent
}

// EnumResult is the mapping of a whole enum type.
type EnumResult struct {
	Type          *descriptor.TypeDescriptor
	WireEnum      bool
	Postfix       string
	DefaultAbsent string
	Constants     []ConstantMapping
	Diagnostics   diagnostic.Diagnostics
	Err           error
}

// Present returns canonical names of the constants that carry a value,
// sorted.
func (r *EnumResult) Present() []string {
	var out []string

	for _, c := range r.Constants {
		if !c.IsAbsent() {
			out = append(out, c.Canonical)
		}
	}

	sort.Strings(out)

	return out
}

// MapEnum validates t and maps every constant. Constants are returned in
// ordinal order.
func (m *Mapper) MapEnum(t *descriptor.TypeDescriptor) (*EnumResult, error) {
	if err := m.Validate(t); err != nil {
		return nil, err
	}

	res := &EnumResult{
		Type:          t,
		WireEnum:      m.IsWireEnum(t),
		DefaultAbsent: m.DefaultAbsentConstant(t),
	}

	if !m.passThrough(t) {
		res.Postfix = m.Postfix(t)
	}

	for _, c := range t.Constants {
		res.Constants = append(res.Constants, ConstantMapping{
			Name:      c.Name,
			Ordinal:   c.Ordinal,
			Canonical: m.CanonicalConstant(t, c.Name),
		})
	}

	sort.SliceStable(res.Constants, func(i, j int) bool {
		return res.Constants[i].Ordinal < res.Constants[j].Ordinal
	})

	if res.WireEnum {
		if zero, _ := t.ConstantAt(0); !m.ShouldMapToAbsent(t, zero.Name) {
			res.Diagnostics.AddWarning(diagnostic.CodeInvalidEnum,
				"zero constant "+zero.Name+" does not follow the absent-value convention",
				t.QualifiedName, zero.Name, res.DefaultAbsent)
		}
	}

	m.logger.Debug("enum mapped",
		zap.String(logging.FieldType, t.QualifiedName),
		zap.Bool("wire", res.WireEnum),
		zap.Int(logging.FieldCount, len(res.Constants)))

	return res, nil
}

// MapAll maps every enum in types, sorted by qualified name. A type that
// fails validation carries its error in the result and does not stop the
// others.
func (m *Mapper) MapAll(types []*descriptor.TypeDescriptor) []*EnumResult {
	var out []*EnumResult

	for _, t := range types {
		if t == nil || t.Kind != descriptor.KindEnum {
			continue
		}

		res, err := m.MapEnum(t)
		if err != nil {
			m.logger.Warn("enum rejected",
				zap.String(logging.FieldType, t.QualifiedName), zap.Error(err))

			res = &EnumResult{Type: t, WireEnum: m.IsWireEnum(t), Err: err}
			res.Diagnostics.AddError(diagnostic.CodeInvalidEnum, err.Error(), t.QualifiedName, "")
		}

		out = append(out, res)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Type.QualifiedName < out[j].Type.QualifiedName
	})

	return out
}

// Config returns the mapper's configuration.
func (m *Mapper) Config() Config {
	return m.cfg
}

// Graph returns the graph the mapper resolves enums from.
func (m *Mapper) Graph() *descriptor.Graph {
	return m.graph
}

// Enums returns every enum type in the mapper's graph.
func (m *Mapper) Enums() []*descriptor.TypeDescriptor {
	return m.graph.Filter(func(t *descriptor.TypeDescriptor) bool {
		return t.Kind == descriptor.KindEnum
	})
}
