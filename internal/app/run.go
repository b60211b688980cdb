package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/oplcutils/gluegen/internal/aggregate"
	"github.com/oplcutils/gluegen/internal/ctxlog"
	"github.com/oplcutils/gluegen/internal/emit"
	"github.com/oplcutils/gluegen/internal/iec"
)

// Run executes one full generation pass: open the located variables file,
// open the output file, run the pipeline, and close both. The two open
// failures carry the distinct exit codes of the CLI contract.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	ctx = ctxlog.With(ctx, "input", a.model.InputPath)

	in, err := os.Open(a.model.InputPath)
	if err != nil {
		return &ExitError{
			Code:    ExitInputFile,
			Message: fmt.Sprintf("error opening located variables file at %s: %v", a.model.InputPath, err),
		}
	}
	defer in.Close()

	out, err := os.Create(a.model.OutputPath)
	if err != nil {
		return &ExitError{
			Code:    ExitOutputFile,
			Message: fmt.Sprintf("error opening glue variables file at %s: %v", a.model.OutputPath, err),
		}
	}

	if err := a.Generate(ctx, in, out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Generate runs the transformation pipeline: scan and decode every
// declaration, emit the direct-assignment function over the full list,
// aggregate bit variables into boolean groups, then emit the group
// constants, the unified table, and the content checksum.
func (a *App) Generate(ctx context.Context, r io.Reader, w io.Writer) error {
	logger := ctxlog.FromContext(ctx)

	scanner := iec.NewScanner(r)
	var decls []iec.Declaration
	for {
		decl, err := scanner.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		logger.Debug("Parsed located variable.",
			"name", decl.Name, "type", decl.Type,
			"major", decl.Major, "minor", decl.Minor)
		decls = append(decls, decl)
	}
	logger.Debug("Input consumed.", "declarations", len(decls), "lines", scanner.Line())

	survivors, groups, err := aggregate.Apply(ctx, decls, aggregate.Options{
		OnSlotCollision: a.model.OnSlotCollision,
		OnMinorOverflow: a.model.OnMinorOverflow,
	})
	if err != nil {
		return err
	}

	if a.dump {
		spew.Fdump(a.logW, survivors, groups)
	}

	em := emit.New(ctx, w, a.model.BufferSize)
	em.Header()
	if err := em.Assignments(decls); err != nil {
		return err
	}
	em.Groups(groups)
	em.Table(survivors)
	em.Checksum(scanner.Sum())
	em.Footer()
	return em.Flush()
}
