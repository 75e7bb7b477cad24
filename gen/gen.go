// Package gen expands a registration target into one group of system
// registrations per simulation instance.
//
// For every index i in [0, N) the generated function contains:
//
//	app.AddStartupSystem(SetupPhysics(i))
//	app.AddSystem(BoardMovement(i))
//	app.AddSystem(ResetSimulation(i).RunIf(MustReset(i)))
//
// The generator only references the routines by name. Whether they exist with
// matching signatures is left to the compiler.
package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"strings"
	"text/template"
)

// DefaultInstances is the number of instances the demo registers.
const DefaultInstances = 2000

// DefaultImport is the package providing the registration target's type.
const DefaultImport = "github.com/edwinsyarief/tiltboard/ecs"

var (
	// ErrEmptyTarget is returned when no registration target is given.
	ErrEmptyTarget = errors.New("gen: empty registration target")
	// ErrBadCount is returned when the instance count is not positive.
	ErrBadCount = errors.New("gen: instance count must be positive")
	// ErrBadIdentifier is returned for package, function or routine names
	// that are not Go identifiers.
	ErrBadIdentifier = errors.New("gen: invalid identifier")
)

// Template names the routines every statement group calls.
type Template struct {
	Setup     string // startup system factory
	Update    string // per-frame system factory
	Reset     string // gated system factory
	Predicate string // condition factory gating Reset
}

// DefaultTemplate returns the routine names of package sim.
func DefaultTemplate() Template {
	return Template{
		Setup:     "SetupPhysics",
		Update:    "BoardMovement",
		Reset:     "ResetSimulation",
		Predicate: "MustReset",
	}
}

// Config describes one expansion.
type Config struct {
	// Package is the package clause of the generated file.
	Package string
	// Func is the name of the generated registration function.
	Func string
	// Target is the registration-target expression, evaluated inside Func
	// where the parameter app is in scope.
	Target string
	// Import is the import path of the ecs package.
	Import string
	// N is the number of statement groups.
	N        int
	Template Template
}

// DefaultConfig returns the configuration used by go:generate in package sim.
func DefaultConfig() Config {
	return Config{
		Package:  "sim",
		Func:     "registerSimulations",
		Target:   "app",
		Import:   DefaultImport,
		N:        DefaultInstances,
		Template: DefaultTemplate(),
	}
}

const source = `// Code generated by cmd/generate; DO NOT EDIT.

package {{.Package}}

import "{{.Import}}"

// Instances is the number of simulation instances registered by {{.Func}}.
const Instances = {{.N}}

// {{.Func}} registers, for every instance, its setup system, its per-frame
// update system and its reset system gated by the reset predicate.
func {{.Func}}(app *ecs.App) {
{{- range .Indices}}
	{{$.Target}}.AddStartupSystem({{$.T.Setup}}({{.}}))
	{{$.Target}}.AddSystem({{$.T.Update}}({{.}}))
	{{$.Target}}.AddSystem({{$.T.Reset}}({{.}}).RunIf({{$.T.Predicate}}({{.}})))
{{- end}}
}
`

var tmpl = template.Must(template.New("simulations").Parse(source))

// Expand renders the registration file described by cfg. On error no output
// is returned.
func Expand(cfg Config) ([]byte, error) {
	target, err := parseTarget(cfg.Target)
	if err != nil {
		return nil, err
	}
	if cfg.N <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCount, cfg.N)
	}
	if cfg.Import == "" {
		cfg.Import = DefaultImport
	}
	names := []struct{ what, name string }{
		{"package", cfg.Package},
		{"function", cfg.Func},
		{"setup routine", cfg.Template.Setup},
		{"update routine", cfg.Template.Update},
		{"reset routine", cfg.Template.Reset},
		{"predicate routine", cfg.Template.Predicate},
	}
	for _, n := range names {
		if !token.IsIdentifier(n.name) {
			return nil, fmt.Errorf("%w: %s %q", ErrBadIdentifier, n.what, n.name)
		}
	}

	indices := make([]int, cfg.N)
	for i := range indices {
		indices[i] = i
	}
	var buf bytes.Buffer
	err = tmpl.Execute(&buf, struct {
		Config
		Target  string
		T       Template
		Indices []int
	}{Config: cfg, Target: target, T: cfg.Template, Indices: indices})
	if err != nil {
		return nil, fmt.Errorf("gen: render: %w", err)
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gen: format: %w", err)
	}
	return out, nil
}

// parseTarget checks that target is exactly one Go expression and returns it
// in a form that can be followed by a method call.
func parseTarget(target string) (string, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return "", ErrEmptyTarget
	}
	expr, err := parser.ParseExpr(target)
	if err != nil {
		return "", fmt.Errorf("gen: parse target %q: %w", target, err)
	}
	// printed from the AST so comments in the input cannot swallow the call
	var buf bytes.Buffer
	if err := format.Node(&buf, token.NewFileSet(), expr); err != nil {
		return "", fmt.Errorf("gen: print target %q: %w", target, err)
	}
	printed := buf.String()
	switch expr.(type) {
	case *ast.Ident, *ast.SelectorExpr, *ast.CallExpr, *ast.IndexExpr, *ast.ParenExpr:
		return printed, nil
	}
	return "(" + printed + ")", nil
}
