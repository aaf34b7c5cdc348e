// Package pipeline sequences analysis stages behind the same small
// Pipeline/Processor shape funvibe-funxy's internal/pipeline uses for its
// parse-then-analyze stages (the PipelineContext/Processor split its own
// tests reference), generalized here to carry a translation unit and an
// Analyzer instead of funxy's raw source text.
package pipeline

import (
	"github.com/soypat/fortran-asr/internal/analyzer"
	"github.com/soypat/fortran-asr/internal/ast"
	"github.com/soypat/fortran-asr/internal/diagnostics"
)

// PipelineContext is the value threaded through every stage.
type PipelineContext struct {
	Unit     *ast.TranslationUnit
	Analyzer *analyzer.Analyzer
	Diags    []*diagnostics.Diagnostic
}

// Processor is one pipeline stage.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		// Continue on errors to collect diagnostics from all stages
		// (e.g. a driver reporting to both a terminal and a log file
		// needs every stage's diagnostics, not just the first failure).
	}
	return ctx
}

// AnalyzeStage runs both passes of the two-pass semantic analyzer
// (internal/analyzer.Analyzer.Analyze) as a single stage — the
// symbol-table pass and the body pass are not split into separate
// Processors because pass 2 must re-enter pass 1's scopes by identity
// (spec.md §3), which only holds within one Analyze call.
type AnalyzeStage struct{}

func (AnalyzeStage) Process(ctx *PipelineContext) *PipelineContext {
	ctx.Analyzer.Analyze(ctx.Unit)
	ctx.Diags = ctx.Analyzer.Diags.Items()
	return ctx
}
