package accessor

import (
	"sync"

	"go.uber.org/zap"

	"accessor-naming/internal/descriptor"
	"accessor-naming/internal/logging"
)

// MessageLiteOrBuilder is the root interface every generated message and
// builder implements.
const MessageLiteOrBuilder = "com.google.protobuf.MessageLiteOrBuilder"

// DefaultInternalRoots are the base contracts whose methods are never
// accessors.
var DefaultInternalRoots = []string{
	"com.google.protobuf.MessageLite",
	"com.google.protobuf.MessageLite.Builder",
	"com.google.protobuf.Message",
	"com.google.protobuf.Message.Builder",
}

const defaultConcurrency = 4

// Engine classifies methods of the types in one Graph.
// It is safe for concurrent use once constructed.
type Engine struct {
	graph       *descriptor.Graph
	kinds       descriptor.TypeKinds
	marker      string
	roots       []string
	internal    MethodSet
	getterRules []SpecialRule
	setterRules []SpecialRule
	logger      *zap.Logger
	concurrency int

	mu        sync.RWMutex
	wireCache map[string]bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithTypeKinds replaces the collection/string type recognition.
func WithTypeKinds(k descriptor.TypeKinds) Option {
	return func(e *Engine) { e.kinds = k }
}

// WithWireMarker changes the interface-name prefix that marks a wire-format type.
func WithWireMarker(prefix string) Option {
	return func(e *Engine) { e.marker = prefix }
}

// WithInternalRoots replaces the base contracts walked for internal methods.
func WithInternalRoots(roots ...string) Option {
	return func(e *Engine) { e.roots = roots }
}

// WithConcurrency bounds the number of types classified in parallel by ClassifyAll.
func WithConcurrency(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// WithGetterRules appends rows to the special getter table.
func WithGetterRules(rules ...SpecialRule) Option {
	return func(e *Engine) { e.getterRules = append(e.getterRules, rules...) }
}

// NewEngine creates an Engine for graph and materializes the internal method
// set from the base contracts present in it.
func NewEngine(graph *descriptor.Graph, opts ...Option) *Engine {
	if graph == nil {
		graph = descriptor.NewGraph()
	}

	e := &Engine{
		graph:       graph,
		kinds:       descriptor.JavaTypeKinds(),
		marker:      MessageLiteOrBuilder,
		roots:       DefaultInternalRoots,
		getterRules: SpecialGetterRules(),
		setterRules: SpecialSetterRules(),
		logger:      zap.NewNop(),
		concurrency: defaultConcurrency,
		wireCache:   make(map[string]bool),
	}

	for _, opt := range opts {
		opt(e)
	}

	e.internal = BuildInternalMethodSet(graph, e.roots...)
	e.logger.Debug("internal method set built",
		zap.Strings("roots", e.roots),
		zap.Int(logging.FieldCount, e.internal.Len()))

	return e
}

// Graph returns the graph the engine reads from.
func (e *Engine) Graph() *descriptor.Graph {
	return e.graph
}

// Kinds returns the type-kind predicates in use.
func (e *Engine) Kinds() descriptor.TypeKinds {
	return e.kinds
}

// InternalMethods returns the read-only internal method set.
func (e *Engine) InternalMethods() MethodSet {
	return e.internal
}

// IsWireFormat reports whether t implements the wire-format marker interface,
// directly or through its interface and superclass chains.
func (e *Engine) IsWireFormat(t *descriptor.TypeDescriptor) bool {
	if t == nil {
		return false
	}

	e.mu.RLock()
	cached, ok := e.wireCache[t.QualifiedName]
	e.mu.RUnlock()

	if ok {
		return cached
	}

	result := e.implementsMarker(t, make(map[string]bool))

	e.mu.Lock()
	if prev, ok := e.wireCache[t.QualifiedName]; ok {
		result = prev
	} else {
		e.wireCache[t.QualifiedName] = result
	}
	e.mu.Unlock()

	return result
}

func (e *Engine) implementsMarker(t *descriptor.TypeDescriptor, visited map[string]bool) bool {
	if visited[t.QualifiedName] {
		return false
	}

	visited[t.QualifiedName] = true

	for _, iface := range t.Interfaces {
		if iface.HasPrefix(e.marker) {
			return true
		}

		if super := e.graph.Lookup(iface.Raw()); super != nil && e.implementsMarker(super, visited) {
			return true
		}
	}

	if t.Superclass.IsResolved() {
		if super := e.graph.Lookup(t.Superclass.Raw()); super != nil {
			return e.implementsMarker(super, visited)
		}
	}

	return false
}
