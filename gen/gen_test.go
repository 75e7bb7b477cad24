package gen

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"strconv"
	"strings"
	"testing"
)

// registration is one call statement of the generated function.
type registration struct {
	receiver string // printed target expression
	method   string // AddStartupSystem or AddSystem
	routine  string // outermost routine called in the argument
	gate     string // predicate routine, if RunIf is used
	index    int    // index passed to routine
	gateIdx  int    // index passed to the predicate
}

// parseRegistrations parses src and returns the statements of fn's body.
func parseRegistrations(t *testing.T, src []byte, fn string) []registration {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "simulations_generated.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("generated source does not parse: %v\n%s", err, src)
	}
	var body *ast.BlockStmt
	for _, decl := range file.Decls {
		if fd, ok := decl.(*ast.FuncDecl); ok && fd.Name.Name == fn {
			body = fd.Body
		}
	}
	if body == nil {
		t.Fatalf("function %s not found", fn)
	}
	regs := make([]registration, 0, len(body.List))
	for _, stmt := range body.List {
		call := stmt.(*ast.ExprStmt).X.(*ast.CallExpr)
		sel := call.Fun.(*ast.SelectorExpr)
		r := registration{receiver: exprString(t, src, fset, sel.X), method: sel.Sel.Name, gateIdx: -1}
		arg := call.Args[0].(*ast.CallExpr)
		if runIf, ok := arg.Fun.(*ast.SelectorExpr); ok && runIf.Sel.Name == "RunIf" {
			pred := arg.Args[0].(*ast.CallExpr)
			r.gate = pred.Fun.(*ast.Ident).Name
			r.gateIdx = literal(t, pred.Args[0])
			arg = runIf.X.(*ast.CallExpr)
		}
		r.routine = arg.Fun.(*ast.Ident).Name
		r.index = literal(t, arg.Args[0])
		regs = append(regs, r)
	}
	return regs
}

func exprString(t *testing.T, src []byte, fset *token.FileSet, e ast.Expr) string {
	t.Helper()
	return string(src[fset.Position(e.Pos()).Offset:fset.Position(e.End()).Offset])
}

func literal(t *testing.T, e ast.Expr) int {
	t.Helper()
	lit, ok := e.(*ast.BasicLit)
	if !ok || lit.Kind != token.INT {
		t.Fatalf("expected an integer literal, got %T", e)
	}
	n, err := strconv.Atoi(lit.Value)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestExpandGroups(t *testing.T) {
	for _, n := range []int{1, 3, 17, DefaultInstances} {
		cfg := DefaultConfig()
		cfg.N = n
		src, err := Expand(cfg)
		if err != nil {
			t.Fatalf("N=%d: %v", n, err)
		}
		regs := parseRegistrations(t, src, cfg.Func)
		if len(regs) != 3*n {
			t.Fatalf("N=%d: expected %d statements, got %d", n, 3*n, len(regs))
		}
		seen := make(map[int]bool, n)
		for g := 0; g < n; g++ {
			group := regs[3*g : 3*g+3]
			idx := group[0].index
			for _, r := range group {
				if r.index != idx {
					t.Fatalf("N=%d group %d mixes indices %d and %d", n, g, idx, r.index)
				}
				if r.gateIdx >= 0 && r.gateIdx != idx {
					t.Fatalf("N=%d group %d gates index %d with predicate %d", n, g, idx, r.gateIdx)
				}
			}
			if seen[idx] {
				t.Fatalf("N=%d index %d generated twice", n, idx)
			}
			seen[idx] = true
		}
		for i := range n {
			if !seen[i] {
				t.Fatalf("N=%d index %d missing", n, i)
			}
		}
	}
}

func TestExpandThreeInstances(t *testing.T) {
	cfg := DefaultConfig()
	cfg.N = 3
	cfg.Target = "H"
	src, err := Expand(cfg)
	if err != nil {
		t.Fatal(err)
	}
	regs := parseRegistrations(t, src, "registerSimulations")
	tpl := DefaultTemplate()
	for i := range 3 {
		want := []registration{
			{receiver: "H", method: "AddStartupSystem", routine: tpl.Setup, index: i, gateIdx: -1},
			{receiver: "H", method: "AddSystem", routine: tpl.Update, index: i, gateIdx: -1},
			{receiver: "H", method: "AddSystem", routine: tpl.Reset, gate: tpl.Predicate, index: i, gateIdx: i},
		}
		for j, w := range want {
			if got := regs[3*i+j]; got != w {
				t.Errorf("group %d statement %d: got %+v, want %+v", i, j, got, w)
			}
		}
	}
	if !strings.Contains(string(src), "const Instances = 3") {
		t.Error("missing Instances constant")
	}
	if !strings.HasPrefix(string(src), "// Code generated") {
		t.Error("missing generated-code header")
	}
}

func TestExpandTargetExpressions(t *testing.T) {
	tests := []struct {
		target   string
		receiver string
	}{
		{"app", "app"},
		{"  app  ", "app"},
		{"s.app", "s.app"},
		{"apps[2]", "apps[2]"},
		{"newApp()", "newApp()"},
		{"*appPtr", "(*appPtr)"},
		{"app // registration target", "app"},
		{"/* the app */ app", "app"},
		{"s . app", "s.app"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.N = 2
			cfg.Target = tt.target
			src, err := Expand(cfg)
			if err != nil {
				t.Fatal(err)
			}
			regs := parseRegistrations(t, src, cfg.Func)
			if len(regs) != 3*cfg.N {
				t.Fatalf("expected %d registrations, got %d:\n%s", 3*cfg.N, len(regs), src)
			}
			for _, r := range regs {
				if r.receiver != tt.receiver {
					t.Fatalf("expected receiver %q, got %q", tt.receiver, r.receiver)
				}
			}
		})
	}
}

func TestExpandRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Config)
		want error
	}{
		{"empty target", func(c *Config) { c.Target = "" }, ErrEmptyTarget},
		{"blank target", func(c *Config) { c.Target = " \t" }, ErrEmptyTarget},
		{"two expressions", func(c *Config) { c.Target = "a b" }, nil},
		{"statement", func(c *Config) { c.Target = "x := app" }, nil},
		{"unbalanced", func(c *Config) { c.Target = "app.(" }, nil},
		{"keyword", func(c *Config) { c.Target = "return" }, nil},
		{"zero count", func(c *Config) { c.N = 0 }, ErrBadCount},
		{"negative count", func(c *Config) { c.N = -5 }, ErrBadCount},
		{"bad routine", func(c *Config) { c.Template.Reset = "reset-sim" }, ErrBadIdentifier},
		{"bad func", func(c *Config) { c.Func = "1register" }, ErrBadIdentifier},
		{"bad package", func(c *Config) { c.Package = "" }, ErrBadIdentifier},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.N = 3
			tt.edit(&cfg)
			src, err := Expand(cfg)
			if err == nil {
				t.Fatal("expected an error")
			}
			if src != nil {
				t.Error("no output may be produced on error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestExpandCustomTemplate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.N = 2
	cfg.Package = "demo"
	cfg.Func = "wire"
	cfg.Template = Template{Setup: "Spawn", Update: "Tick", Reset: "Respawn", Predicate: "Fell"}
	src, err := Expand(cfg)
	if err != nil {
		t.Fatal(err)
	}
	regs := parseRegistrations(t, src, "wire")
	if regs[0].routine != "Spawn" || regs[1].routine != "Tick" || regs[2].routine != "Respawn" || regs[2].gate != "Fell" {
		t.Errorf("template names not applied: %+v", regs[:3])
	}
	if !strings.Contains(string(src), "package demo") {
		t.Error("package clause not applied")
	}
}

func TestCommittedRegistrationsAreCurrent(t *testing.T) {
	want, err := Expand(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile("../sim/simulations_generated.go")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(want) {
		t.Fatal("sim/simulations_generated.go is stale; run go generate ./sim")
	}
}
