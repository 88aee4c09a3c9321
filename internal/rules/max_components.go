package rules

import (
	"fmt"

	"reactlint/internal/jsast"
)

// MaxComponentsPerFile reports files defining more confirmed components
// than the configured limit. Max <= 0 disables the rule.
type MaxComponentsPerFile struct {
	Max int
}

func (r *MaxComponentsPerFile) ID() string { return "max-components-per-file" }

func (r *MaxComponentsPerFile) Install(*jsast.Walker, *Context) {}

func (r *MaxComponentsPerFile) Finish(ctx *Context) {
	if r.Max <= 0 {
		return
	}
	count := ctx.Detector.ComponentCount()
	if count <= r.Max {
		return
	}
	// Point at the first component past the limit.
	comps := ctx.Detector.Components()
	ctx.Report(Violation{
		RuleID:  r.ID(),
		File:    ctx.File.Path,
		Line:    comps[r.Max].Node.Line(),
		Message: fmt.Sprintf("file declares %d components, limit is %d", count, r.Max),
	})
}
