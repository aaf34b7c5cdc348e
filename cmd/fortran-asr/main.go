// Command fortran-asr wires the two-pass semantic analyzer into a small
// CLI, grounded on funvibe-funxy's cmd/funxy/main.go wiring style: module
// cache setup, pipeline construction, and colored diagnostic output,
// rebuilt around internal/analyzer's Fortran-domain pipeline instead of
// funxy's lexer/parser/evaluator chain (the (external) lexer and parser
// that would turn source text into an ast.TranslationUnit are out of
// this analyzer's scope — see spec.md §6.1).
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/soypat/fortran-asr/internal/analyzer"
	"github.com/soypat/fortran-asr/internal/ast"
	"github.com/soypat/fortran-asr/internal/cliutil"
	"github.com/soypat/fortran-asr/internal/config"
	"github.com/soypat/fortran-asr/internal/modules"
	"github.com/soypat/fortran-asr/internal/pipeline"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "-test" {
		config.IsTestMode = true
	}

	cfg, err := config.LoadCLIConfig("fortran-asr.yaml")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var cache *modules.DiskCache
	if cfg.ModuleCachePath != "" {
		cache, err = modules.OpenDiskCache(cfg.ModuleCachePath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer cache.Close()
	}

	units := loadUnits(cfg.SearchPaths)
	loader := modules.NewCachedLoader(units, cache)
	az := analyzer.New(loader)

	ctx := &pipeline.PipelineContext{Unit: &ast.TranslationUnit{File: "<program>"}, Analyzer: az}
	pl := pipeline.New(pipeline.AnalyzeStage{})
	ctx = pl.Run(ctx)

	mode := cliutil.ParseColorMode(cfg.Color)
	cliutil.WriteDiagnostics(os.Stdout, mode, ctx.Diags)

	if az.Diags.HasErrors() {
		os.Exit(1)
	}
}

// loadUnits discovers source-file-adjacent module definitions under every
// search path. The (external) lexer/parser that would produce an
// ast.ModuleUnit from one of these files is out of scope here; this walk
// exists so the module-cache wiring above has real file names to key
// digests on even before a parser is plugged in.
func loadUnits(searchPaths []string) []*ast.ModuleUnit {
	var units []*ast.ModuleUnit
	for _, dir := range searchPaths {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() || !isSourceFile(e.Name()) {
				continue
			}
			name := trimExt(e.Name())
			units = append(units, &ast.ModuleUnit{Name: name})
		}
	}
	return units
}

func isSourceFile(name string) bool {
	ext := filepath.Ext(name)
	for _, want := range config.SourceFileExtensions {
		if ext == want {
			return true
		}
	}
	return false
}

func trimExt(name string) string {
	return name[:len(name)-len(filepath.Ext(name))]
}
