package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// ExecuteOptions configures execution behavior.
type ExecuteOptions struct {
	DryRun   bool
	Resolver *Resolver // decides what to do with existing files; nil means skip them
	Writer   io.Writer // where to write progress output (defaults to os.Stdout)
}

// Result reports what the executor did.
type Result struct {
	Created []string // paths written
	Skipped []string // paths left untouched because they already existed
}

// Execute validates and runs a plan of operations.
//
// Validation happens for the whole plan before any file is written. An
// operation whose target already exists is resolved via opts.Resolver:
// Skip drops it from the plan (reported, non-fatal), Overwrite keeps it,
// Cancel aborts the whole run before anything is written.
func Execute(ctx context.Context, ops []Operation, opts ExecuteOptions) (*Result, error) {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	if opts.Resolver == nil {
		opts.Resolver = NewResolver(false, false)
	}

	result := &Result{}

	// Phase 1: validate all operations, resolving conflicts as we go.
	var planned []Operation
	for _, op := range ops {
		err := op.Validate(ctx, false)
		if err == nil {
			planned = append(planned, op)
			continue
		}

		var conflict *ConflictError
		if !errors.As(err, &conflict) {
			return nil, fmt.Errorf("validation failed: %w", err)
		}

		wf, ok := op.(*WriteFileOp)
		if !ok {
			return nil, fmt.Errorf("validation failed: %w", err)
		}

		existing, readErr := os.ReadFile(conflict.Path)
		if readErr != nil {
			return nil, fmt.Errorf("reading existing file %s: %w", conflict.Path, readErr)
		}

		resolution, resErr := opts.Resolver.ResolveConflict(conflict.Path, existing, wf.Content)
		if resErr != nil {
			return nil, resErr
		}
		switch resolution {
		case Skip:
			fmt.Fprintf(opts.Writer, "⚠ Skipped %s (already exists)\n", conflict.Path)
			result.Skipped = append(result.Skipped, conflict.Path)
		case Overwrite:
			planned = append(planned, op)
		case Cancel:
			return nil, fmt.Errorf("cancelled at %s", conflict.Path)
		}
	}

	// Phase 2: execute or report.
	for _, op := range planned {
		if opts.DryRun {
			fmt.Fprintf(opts.Writer, "✓ [DRY RUN] %s\n", op.Description())
		} else {
			if err := op.Execute(ctx); err != nil {
				return nil, fmt.Errorf("execution failed: %w", err)
			}
			fmt.Fprintf(opts.Writer, "✓ %s\n", op.Description())
		}
		if wf, ok := op.(*WriteFileOp); ok && !opts.DryRun {
			result.Created = append(result.Created, wf.Path)
		}
	}

	return result, nil
}
