// Package loader populates an editors.Registry and editors.Hierarchy from a
// declarative registration file. Loading runs to completion before the
// returned registry is handed to any resolver, which establishes the
// happens-before edge the engine's lock-free read path relies on.
package loader

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/attrkit/attrkit/editors"
)

// FactorySet maps the factory names used in registration files to editor
// factories supplied by the presentation layer.
type FactorySet map[string]editors.Factory

// Options configures a load.
type Options struct {
	// Factories binds registration factory names to implementations.
	Factories FactorySet

	// AllowMissingFactories substitutes a stub for factory names absent from
	// Factories instead of failing. Inspection tooling uses this; a real
	// presentation layer should not.
	AllowMissingFactories bool

	// Logger receives structured load diagnostics. Nil means silent.
	Logger *zap.Logger
}

// Result is a fully populated registry and the hierarchy it resolves against.
type Result struct {
	Registry  *editors.Registry
	Hierarchy *editors.Hierarchy
}

// File is the root structure of a registration file. The same schema is
// accepted in YAML and JSON (JSON being a YAML subset).
type File struct {
	Version   int            `yaml:"version" json:"version"`
	Types     []TypeDef      `yaml:"types" json:"types"`
	Dedicated []DedicatedDef `yaml:"dedicated" json:"dedicated"`
	Editors   []EditorDef    `yaml:"editors" json:"editors"`
}

// TypeDef declares one nominal type and its direct parent. Ancestor chains
// are assembled by following extends links at load time, so the engine's
// hierarchy stays a pure lookup table.
type TypeDef struct {
	Name    string `yaml:"name" json:"name"`
	Extends string `yaml:"extends,omitempty" json:"extends,omitempty"`
}

// DedicatedDef declares a dedicated editor registration.
type DedicatedDef struct {
	Component string `yaml:"component" json:"component"`
	Attribute string `yaml:"attribute" json:"attribute"`
	Factory   string `yaml:"factory" json:"factory"`
}

// EditorDef declares a type editor registration. Quantifier defaults to "any"
// when omitted.
type EditorDef struct {
	Type        string   `yaml:"type" json:"type"`
	Constraints []string `yaml:"constraints,omitempty" json:"constraints,omitempty"`
	Quantifier  string   `yaml:"quantifier,omitempty" json:"quantifier,omitempty"`
	Factory     string   `yaml:"factory" json:"factory"`
}

// Load reads and parses the registration file at path and builds the registry
// and hierarchy from it.
func Load(fsys fs.FS, path string, opts Options) (*Result, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read registrations %s: %w", path, err)
	}
	res, err := LoadBytes(data, opts)
	if err != nil {
		return nil, fmt.Errorf("load registrations %s: %w", path, err)
	}
	return res, nil
}

// LoadBytes builds the registry and hierarchy from in-memory file content.
func LoadBytes(data []byte, opts Options) (*Result, error) {
	start := time.Now()
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse registrations: %w", err)
	}

	hierarchy, err := buildHierarchy(file.Types, logger)
	if err != nil {
		return nil, err
	}

	registry := editors.NewRegistry()
	seenDedicated := make(map[[2]string]bool, len(file.Dedicated))
	for i, def := range file.Dedicated {
		if def.Component == "" || def.Attribute == "" {
			return nil, fmt.Errorf("dedicated registration %d: component and attribute are required", i)
		}
		pair := [2]string{def.Component, def.Attribute}
		if seenDedicated[pair] {
			return nil, fmt.Errorf("dedicated registration %d: %s.%s is already registered", i, def.Component, def.Attribute)
		}
		seenDedicated[pair] = true
		factory, err := bindFactory(def.Factory, opts)
		if err != nil {
			return nil, fmt.Errorf("dedicated registration %d (%s.%s): %w", i, def.Component, def.Attribute, err)
		}
		registry.AddDedicated(editors.DedicatedRegistration{
			ID:            uuid.NewString(),
			ComponentType: def.Component,
			AttributeKey:  def.Attribute,
			Factory:       factory,
		})
	}

	for i, def := range file.Editors {
		if def.Type == "" {
			return nil, fmt.Errorf("type registration %d: type is required", i)
		}
		quantifier := editors.QuantifierAny
		if def.Quantifier != "" {
			quantifier, err = editors.ParseQuantifier(def.Quantifier)
			if err != nil {
				return nil, fmt.Errorf("type registration %d (%s): %w", i, def.Type, err)
			}
		}
		factory, err := bindFactory(def.Factory, opts)
		if err != nil {
			return nil, fmt.Errorf("type registration %d (%s): %w", i, def.Type, err)
		}
		kinds := make([]editors.ConstraintKind, 0, len(def.Constraints))
		for _, c := range def.Constraints {
			kinds = append(kinds, editors.ConstraintKind(c))
		}
		registry.AddType(editors.TypeRegistration{
			ID:                   uuid.NewString(),
			ValueType:            def.Type,
			SupportedConstraints: editors.NewConstraintSet(kinds...),
			Quantifier:           quantifier,
			Factory:              factory,
		})
	}

	logger.Info("editor registry loaded",
		zap.Int("types", len(file.Types)),
		zap.Int("dedicated", registry.NumDedicated()),
		zap.Int("type_editors", registry.NumType()),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &Result{Registry: registry, Hierarchy: hierarchy}, nil
}

// buildHierarchy assembles ancestor chains by following extends links.
func buildHierarchy(defs []TypeDef, logger *zap.Logger) (*editors.Hierarchy, error) {
	parents := make(map[string]string, len(defs))
	for i, def := range defs {
		if def.Name == "" {
			return nil, fmt.Errorf("type %d: name is required", i)
		}
		if _, dup := parents[def.Name]; dup {
			return nil, fmt.Errorf("type %q declared twice", def.Name)
		}
		parents[def.Name] = def.Extends
	}

	hierarchy := editors.NewHierarchy()
	for name := range parents {
		var chain []string
		seen := map[string]bool{name: true}
		for parent := parents[name]; parent != ""; parent = parents[parent] {
			if seen[parent] {
				return nil, fmt.Errorf("type %q: inheritance cycle through %q", name, parent)
			}
			seen[parent] = true
			chain = append(chain, parent)
			if _, known := parents[parent]; !known {
				// Chain ends at an undeclared type; treat it as a leaf ancestor.
				logger.Warn("ancestor type not declared", zap.String("type", name), zap.String("ancestor", parent))
				break
			}
		}
		hierarchy.Register(name, chain...)
	}
	return hierarchy, nil
}

func bindFactory(name string, opts Options) (editors.Factory, error) {
	if name == "" {
		return nil, fmt.Errorf("factory is required")
	}
	if factory, ok := opts.Factories[name]; ok {
		return factory, nil
	}
	if opts.AllowMissingFactories {
		stub := stubEditor{factoryName: name}
		return func() editors.Editor { return stub }, nil
	}
	return nil, fmt.Errorf("unknown factory %q", name)
}

// stubEditor stands in for editors whose factories are not bound, so that
// inspection tooling can still exercise resolution.
type stubEditor struct {
	factoryName string
}

func (s stubEditor) String() string { return "stub editor (" + s.factoryName + ")" }
