package internal

import (
	"fmt"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/formalverse/flin/internal/syntax"
	tt "github.com/formalverse/flin/internal/types"
)

// Rule names reported by the engine.
const (
	RuleInvalidFormula   = "invalid-formula"
	RuleOperatorBasis    = "operator-basis"
	RuleMaxDepth         = "max-depth"
	RuleDuplicateFormula = "duplicate-formula"
)

// Notations accepted for formula files.
const (
	NotationInfix  = "infix"
	NotationPolish = "polish"
)

// DefaultExtensions are the file extensions checked when the configuration
// does not name any.
var DefaultExtensions = []string{".prop"}

// Options configures an Engine.
type Options struct {
	// Notation selects the grammar for formula files: "infix" (default)
	// or "polish".
	Notation string
	// Basis, when non-empty, is the allowed operator vocabulary. Formulas
	// using operators or constants outside it are flagged.
	Basis []string
	// Rewrites maps an operator to a template (over the reserved variables
	// p and q, written in canonical infix notation) used to suggest a
	// rewrite into the basis.
	Rewrites map[string]string
	// MaxDepth flags formulas whose tree depth exceeds it. 0 disables the
	// check.
	MaxDepth int
	// Extensions lists the file extensions treated as formula files.
	Extensions []string
}

// Engine checks formula files line by line.
type Engine struct {
	notation     string
	basis        map[string]bool
	rewrites     map[string]*syntax.Formula
	maxDepth     int
	extensions   []string
	ignoredRules map[string]bool
	ignoredPaths []string

	watcher    *fsnotify.Watcher
	isWatching bool
}

// NewEngine builds an Engine from the given options, validating the
// notation, the basis tokens, and the rewrite templates up front.
func NewEngine(opts Options) (*Engine, error) {
	notation := opts.Notation
	if notation == "" {
		notation = NotationInfix
	}
	if notation != NotationInfix && notation != NotationPolish {
		return nil, fmt.Errorf("unknown notation %q", notation)
	}

	basis := make(map[string]bool, len(opts.Basis))
	for _, op := range opts.Basis {
		switch syntax.ClassOf(op) {
		case syntax.KindConstant, syntax.KindUnary, syntax.KindBinary:
			basis[op] = true
		default:
			return nil, fmt.Errorf("basis entry %q is not an operator or constant", op)
		}
	}

	rewrites := make(map[string]*syntax.Formula, len(opts.Rewrites))
	for op, src := range opts.Rewrites {
		switch syntax.ClassOf(op) {
		case syntax.KindConstant, syntax.KindUnary, syntax.KindBinary:
		default:
			return nil, fmt.Errorf("rewrite key %q is not an operator or constant", op)
		}
		tmpl, err := syntax.Parse(src)
		if err != nil {
			return nil, fmt.Errorf("rewrite template for %q: %w", op, err)
		}
		for _, v := range tmpl.Variables() {
			if v != syntax.TemplateFirst && v != syntax.TemplateSecond {
				return nil, fmt.Errorf("rewrite template for %q uses variable %q outside {p, q}", op, v)
			}
		}
		rewrites[op] = tmpl
	}

	extensions := opts.Extensions
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	return &Engine{
		notation:     notation,
		basis:        basis,
		rewrites:     rewrites,
		maxDepth:     opts.MaxDepth,
		extensions:   extensions,
		ignoredRules: make(map[string]bool),
	}, nil
}

// IgnoreRule suppresses all issues reported under the given rule name.
func (e *Engine) IgnoreRule(rule string) {
	e.ignoredRules[rule] = true
}

// IgnorePath suppresses checking for files under the given path prefix.
func (e *Engine) IgnorePath(path string) {
	e.ignoredPaths = append(e.ignoredPaths, path)
}

// Notation returns the notation the engine parses formula files with.
func (e *Engine) Notation() string { return e.notation }

// TargetExtensions returns the file extensions treated as formula files.
func (e *Engine) TargetExtensions() []string {
	return append([]string(nil), e.extensions...)
}

// Run checks a single formula file and returns its issues.
func (e *Engine) Run(filePath string) ([]tt.Issue, error) {
	for _, ignored := range e.ignoredPaths {
		if strings.HasPrefix(filePath, ignored) {
			return nil, nil
		}
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	issues := e.checkSource(content)
	for i := range issues {
		issues[i].Filename = filePath
	}
	return issues, nil
}

// RunSource checks in-memory formula file content.
func (e *Engine) RunSource(source []byte) ([]tt.Issue, error) {
	return e.checkSource(source), nil
}

func (e *Engine) checkSource(src []byte) []tt.Issue {
	issues := []tt.Issue{}
	seen := make(map[uint64]int) // formula hash -> first line

	for i, raw := range strings.Split(string(src), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		f, issue := e.parseLine(line, i+1)
		if issue != nil {
			issues = e.appendIssue(issues, *issue)
			continue
		}
		issues = e.checkFormula(issues, f, i+1, seen)
	}

	return issues
}

func (e *Engine) appendIssue(issues []tt.Issue, issue tt.Issue) []tt.Issue {
	if e.ignoredRules[issue.Rule] {
		return issues
	}
	return append(issues, issue)
}

func (e *Engine) parseLine(line string, lineno int) (*syntax.Formula, *tt.Issue) {
	var (
		f    *syntax.Formula
		rest string
		err  error
	)
	if e.notation == NotationPolish {
		f, rest, err = syntax.ParsePolishPrefix(line)
	} else {
		f, rest, err = syntax.ParsePrefix(line)
	}

	if err != nil {
		return nil, &tt.Issue{
			Rule:     RuleInvalidFormula,
			Category: "syntax",
			Line:     lineno,
			Column:   failureColumn(line, rest),
			Message:  err.Error(),
		}
	}
	if rest != "" {
		return nil, &tt.Issue{
			Rule:     RuleInvalidFormula,
			Category: "syntax",
			Line:     lineno,
			Column:   failureColumn(line, rest),
			Message:  fmt.Sprintf("trailing input %q after a complete formula", rest),
		}
	}
	return f, nil
}

// failureColumn maps an unconsumed remainder back to a 1-based column in the
// line. The parsers only ever consume from the front, so the remainder is a
// suffix of the line.
func failureColumn(line, rest string) int {
	if !strings.HasSuffix(line, rest) {
		return len(line)
	}
	return len(line) - len(rest) + 1
}

func (e *Engine) checkFormula(issues []tt.Issue, f *syntax.Formula, lineno int, seen map[uint64]int) []tt.Issue {
	if first, ok := seen[f.Hash()]; ok {
		issues = e.appendIssue(issues, tt.Issue{
			Rule:     RuleDuplicateFormula,
			Category: "style",
			Line:     lineno,
			Column:   1,
			Message:  fmt.Sprintf("formula %s already appears in this file", f),
			Note:     fmt.Sprintf("first occurrence at line %d", first),
		})
	} else {
		seen[f.Hash()] = lineno
	}

	if e.maxDepth > 0 && f.Depth() > e.maxDepth {
		issues = e.appendIssue(issues, tt.Issue{
			Rule:     RuleMaxDepth,
			Category: "style",
			Line:     lineno,
			Column:   1,
			Message:  fmt.Sprintf("formula depth %d exceeds the limit of %d", f.Depth(), e.maxDepth),
		})
	}

	if len(e.basis) > 0 {
		var outside []string
		for _, op := range f.Operators() {
			if !e.basis[op] {
				outside = append(outside, op)
			}
		}
		if len(outside) > 0 {
			issue := tt.Issue{
				Rule:     RuleOperatorBasis,
				Category: "style",
				Line:     lineno,
				Column:   1,
				Message:  fmt.Sprintf("operators outside the configured basis: %s", strings.Join(outside, " ")),
			}
			if rewritten, ok := e.rewriteToBasis(f, outside); ok {
				issue.Suggestion = rewritten
			}
			issues = e.appendIssue(issues, issue)
		}
	}

	return issues
}

// rewriteToBasis applies the configured rewrite templates to eliminate the
// out-of-basis operators. It reports false when some operator has no
// template or when a single pass still leaves the formula outside the basis.
func (e *Engine) rewriteToBasis(f *syntax.Formula, outside []string) (string, bool) {
	m := make(map[string]*syntax.Formula, len(outside))
	for _, op := range outside {
		tmpl, ok := e.rewrites[op]
		if !ok {
			return "", false
		}
		m[op] = tmpl
	}

	g, err := f.SubstituteOperators(m)
	if err != nil {
		return "", false
	}
	for _, op := range g.Operators() {
		if !e.basis[op] {
			return "", false
		}
	}

	if e.notation == NotationPolish {
		return g.Polish(), true
	}
	return g.String(), true
}
