// Package rules holds the lint rules that run on top of component
// detection. A rule registers walker callbacks next to the detector's
// own; because the detector installs first, a rule callback always sees
// registry state that already reflects the current node.
package rules

import (
	"sort"

	"reactlint/internal/components"
	"reactlint/internal/jsast"
)

// Violation is one finding, addressed by file and line.
type Violation struct {
	RuleID  string `json:"rule_id"`
	File    string `json:"file"`
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// Context is what a rule gets to work with during one file pass.
type Context struct {
	File     *jsast.File
	Detector *components.Detector
	Report   func(Violation)
}

// Rule is a single lint check. Install registers its callbacks before
// the walk; Finish runs after the walk for whole-file checks.
type Rule interface {
	ID() string
	Install(w *jsast.Walker, ctx *Context)
	Finish(ctx *Context)
}

// Sort orders violations by file, then line, then rule, then message,
// so output is stable across runs regardless of detection order.
func Sort(vs []Violation) {
	sort.Slice(vs, func(i, j int) bool {
		a, b := vs[i], vs[j]
		if a.File != b.File {
			return a.File < b.File
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.RuleID != b.RuleID {
			return a.RuleID < b.RuleID
		}
		return a.Message < b.Message
	})
}

// Defaults returns the built-in rule set for the given limits.
func Defaults(maxComponents int) []Rule {
	return []Rule{
		&NoThisInFunctionComponent{},
		&MaxComponentsPerFile{Max: maxComponents},
	}
}
