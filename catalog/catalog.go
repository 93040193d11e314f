// Package catalog exposes the formula signature catalog as data: every
// formula in this module is listed in an embedded descriptor together with
// its parameter order, optional-parameter defaults and guard status, and can
// be evaluated by its catalog name with loosely typed arguments.
package catalog

import (
	_ "embed"
	"fmt"
	"reflect"
	"sort"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/joeychilson/finance-formulas/portfolio"
)

//go:embed descriptor.yaml
var descriptorYAML []byte

// Param kinds in the descriptor.
const (
	KindScalar   = "scalar"
	KindSequence = "sequence"
	KindPairs    = "pairs"
)

type Param struct {
	Name string `yaml:"name"`
	// Kind defaults to scalar when omitted.
	Kind string `yaml:"kind,omitempty"`
	// Default makes the parameter optional; only trailing scalar
	// parameters carry one.
	Default *float64 `yaml:"default,omitempty"`
}

type Formula struct {
	Name    string  `yaml:"name"`
	Package string  `yaml:"package"`
	Params  []Param `yaml:"params"`
	// Guarded formulas reject a zero denominator with a precondition
	// error instead of returning Inf/NaN.
	Guarded bool `yaml:"guarded"`
}

type descriptor struct {
	Formulas []Formula `yaml:"formulas"`
}

type Catalog struct {
	logger l.Wrapper

	formulas map[string]Formula
	names    []string
}

// New parses the embedded descriptor and checks it one-to-one against the
// registry bindings.
func New(logger l.Wrapper) (*Catalog, error) {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "catalog"))

	var d descriptor

	if err := yaml.Unmarshal(descriptorYAML, &d); err != nil {
		return nil, fmt.Errorf("parse descriptor: %w", err)
	}

	c := &Catalog{
		logger:   logger,
		formulas: make(map[string]Formula, len(d.Formulas)),
	}

	for _, f := range d.Formulas {
		b, ok := bindings[f.Name]
		if !ok {
			return nil, fmt.Errorf("descriptor entry %s has no binding", f.Name)
		}

		if len(f.Params) != b.arity {
			return nil, fmt.Errorf("descriptor entry %s declares %d params, binding takes %d",
				f.Name, len(f.Params), b.arity)
		}

		if _, exists := c.formulas[f.Name]; exists {
			return nil, fmt.Errorf("duplicate descriptor entry %s", f.Name)
		}

		c.formulas[f.Name] = f
		c.names = append(c.names, f.Name)
	}

	for name := range bindings {
		if _, ok := c.formulas[name]; !ok {
			return nil, fmt.Errorf("binding %s has no descriptor entry", name)
		}
	}

	sort.Strings(c.names)

	return c, nil
}

// Names lists every formula name in the catalog, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)

	return names
}

// Lookup returns the descriptor entry for a catalog name.
func (c *Catalog) Lookup(name string) (Formula, bool) {
	f, ok := c.formulas[name]

	return f, ok
}

// Eval evaluates a formula by its catalog name. Scalar arguments are coerced
// with cast, sequence arguments accept any numeric slice, and omitted
// trailing optionals take their declared defaults. Guard errors from the
// formula itself pass through unchanged.
func (c *Catalog) Eval(name string, args ...any) (float64, error) {
	f, ok := c.formulas[name]
	if !ok {
		return 0, fmt.Errorf("%w: unknown formula %s", commerr.ErrInvalidArgument, name)
	}

	if len(args) > len(f.Params) {
		return 0, fmt.Errorf("%w: %s takes at most %d arguments, got %d",
			commerr.ErrInvalidArgument, name, len(f.Params), len(args))
	}

	normalized := make([]any, len(f.Params))

	for i, p := range f.Params {
		if i >= len(args) {
			if p.Default == nil {
				return 0, fmt.Errorf("%w: %s: missing argument %s",
					commerr.ErrInvalidArgument, name, p.Name)
			}

			normalized[i] = *p.Default

			continue
		}

		v, err := normalizeArg(p, args[i])
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %v", commerr.ErrInvalidArgument, name, err)
		}

		normalized[i] = v
	}

	result, err := bindings[name].fn(normalized)
	if err != nil {
		c.logger.WithFields(l.ErrorField(err), l.StringField("formula", name)).Debug("eval rejected")

		return 0, err
	}

	return result, nil
}

func normalizeArg(p Param, arg any) (any, error) {
	switch p.Kind {
	case KindSequence:
		return toFloatSlice(p.Name, arg)
	case KindPairs:
		return toPairs(p.Name, arg)
	default:
		v, err := cast.ToFloat64E(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %s: %v", p.Name, err)
		}

		return v, nil
	}
}

func toFloatSlice(name string, arg any) ([]float64, error) {
	if vs, ok := arg.([]float64); ok {
		return vs, nil
	}

	rv := reflect.ValueOf(arg)
	if rv.Kind() != reflect.Slice {
		return nil, fmt.Errorf("argument %s: not a sequence", name)
	}

	vs := make([]float64, rv.Len())

	for i := 0; i < rv.Len(); i++ {
		v, err := cast.ToFloat64E(rv.Index(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("argument %s[%d]: %v", name, i, err)
		}

		vs[i] = v
	}

	return vs, nil
}

func toPairs(name string, arg any) ([]portfolio.WeightedValue, error) {
	switch vs := arg.(type) {
	case []portfolio.WeightedValue:
		return vs, nil
	case [][2]float64:
		pairs := make([]portfolio.WeightedValue, len(vs))
		for i, p := range vs {
			pairs[i] = portfolio.WeightedValue{Weight: p[0], Value: p[1]}
		}

		return pairs, nil
	default:
		return nil, fmt.Errorf("argument %s: not a pair sequence", name)
	}
}
