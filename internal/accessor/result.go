package accessor

import (
	"context"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"accessor-naming/internal/descriptor"
	"accessor-naming/internal/diagnostic"
	"accessor-naming/internal/logging"
)

// ErrUnresolvedType marks a type whose method signatures reference a type the
// introspector could not resolve.
var ErrUnresolvedType = errors.New("unresolved type in method signature")

// MethodResult is the classification of one method.
type MethodResult struct {
	Method   *descriptor.MethodDescriptor
	Role     descriptor.AccessorRole
	Property string // empty unless Role is an accessor role
}

// Property groups the accessors of one logical field.
type Property struct {
	Name          string
	Getters       []*descriptor.MethodDescriptor
	Setters       []*descriptor.MethodDescriptor
	PresenceCheck *descriptor.MethodDescriptor
}

// Getter returns the first getter, or nil.
func (p *Property) Getter() *descriptor.MethodDescriptor {
	if len(p.Getters) == 0 {
		return nil
	}

	return p.Getters[0]
}

// TypeResult is the classification of every method of one type.
type TypeResult struct {
	Type        *descriptor.TypeDescriptor
	WireFormat  bool
	Methods     []MethodResult // sorted by signature
	Diagnostics diagnostic.Diagnostics
	Err         error
}

// ByRole returns the method results with the given role.
func (r *TypeResult) ByRole(role descriptor.AccessorRole) []MethodResult {
	var out []MethodResult

	for _, mr := range r.Methods {
		if mr.Role == role {
			out = append(out, mr)
		}
	}

	return out
}

// Lookup returns the result for the method with the given signature.
func (r *TypeResult) Lookup(sig descriptor.Signature) (MethodResult, bool) {
	for _, mr := range r.Methods {
		if mr.Method.Signature() == sig {
			return mr, true
		}
	}

	return MethodResult{}, false
}

// Properties groups accessor methods by property name, sorted by name.
func (r *TypeResult) Properties() []*Property {
	byName := make(map[string]*Property)

	for _, mr := range r.Methods {
		if !mr.Role.IsAccessor() {
			continue
		}

		p, ok := byName[mr.Property]
		if !ok {
			p = &Property{Name: mr.Property}
			byName[mr.Property] = p
		}

		switch mr.Role {
		case descriptor.RoleGetter:
			p.Getters = append(p.Getters, mr.Method)
		case descriptor.RoleSetter:
			p.Setters = append(p.Setters, mr.Method)
		case descriptor.RolePresenceCheck:
			p.PresenceCheck = mr.Method
		}
	}

	out := make([]*Property, 0, len(byName))
	for _, p := range byName {
		out = append(out, p)
	}

	slices.SortFunc(out, func(a, b *Property) int { return strings.Compare(a.Name, b.Name) })

	return out
}

// ClassifyType classifies every method of t. An unresolvable signature fails
// the whole type.
func (e *Engine) ClassifyType(t *descriptor.TypeDescriptor) (*TypeResult, error) {
	if t == nil {
		return nil, errors.New("nil type descriptor")
	}

	if err := checkResolved(t); err != nil {
		return nil, err
	}

	result := &TypeResult{
		Type:       t,
		WireFormat: e.IsWireFormat(t),
		Methods:    make([]MethodResult, 0, len(t.Methods)),
	}

	for i := range t.Methods {
		m := &t.Methods[i]
		mr := MethodResult{Method: m, Role: e.Classify(m, t)}

		if mr.Role.IsAccessor() {
			mr.Property = e.propertyName(m, t)
		}

		result.Methods = append(result.Methods, mr)
	}

	slices.SortStableFunc(result.Methods, func(a, b MethodResult) int {
		return a.Method.Signature().Compare(b.Method.Signature())
	})

	reportAmbiguousGetters(result)

	e.logger.Debug("classified type",
		zap.String(logging.FieldType, t.QualifiedName),
		zap.Bool("wire_format", result.WireFormat),
		zap.Int("getters", len(result.ByRole(descriptor.RoleGetter))),
		zap.Int("setters", len(result.ByRole(descriptor.RoleSetter))),
		zap.Int("internal", len(result.ByRole(descriptor.RoleInternal))))

	return result, nil
}

// ClassifyAll classifies types in parallel. A failing type records its error
// on its own result; only context cancellation fails the call. Results keep
// the input order.
func (e *Engine) ClassifyAll(ctx context.Context, types []*descriptor.TypeDescriptor) ([]*TypeResult, error) {
	results := make([]*TypeResult, len(types))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for i, t := range types {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := e.ClassifyType(t)
			if err != nil {
				e.logger.Warn("classification failed",
					zap.String(logging.FieldType, qualifiedName(t)),
					zap.Error(err))

				res = &TypeResult{Type: t, Err: err}
				res.Diagnostics.AddError(diagnostic.CodeClassificationFail, err.Error(), qualifiedName(t), "")
			}

			results[i] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "classification batch interrupted")
	}

	return results, nil
}

func checkResolved(t *descriptor.TypeDescriptor) error {
	for i := range t.Methods {
		m := &t.Methods[i]

		unresolved := !m.Returns.IsResolved()
		for _, p := range m.Params {
			unresolved = unresolved || !p.IsResolved()
		}

		if unresolved {
			return errors.WithHint(
				errors.Wrapf(ErrUnresolvedType, "%s: method %s returning %q", t.QualifiedName, m, m.Returns.String()),
				"make sure every referenced type is part of the generation unit",
			)
		}
	}

	return nil
}

// reportAmbiguousGetters flags properties reached through more than one
// getter. This happens when a map field exposes getFoo() and getFooMap() and
// neither is deprecated; both are kept.
func reportAmbiguousGetters(r *TypeResult) {
	for _, p := range r.Properties() {
		if len(p.Getters) < 2 {
			continue
		}

		names := make([]string, len(p.Getters))
		for i, g := range p.Getters {
			names[i] = g.String()
		}

		r.Diagnostics.AddWarning(diagnostic.CodeAmbiguousGetter,
			"property "+p.Name+" has several getters: "+strings.Join(names, ", "),
			r.Type.QualifiedName, p.Name)
	}
}

func qualifiedName(t *descriptor.TypeDescriptor) string {
	if t == nil {
		return ""
	}

	return t.QualifiedName
}
