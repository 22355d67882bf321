package generator

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Operation represents a filesystem operation that can be validated and
// executed.
//
// Validate checks whether the operation would succeed without executing it.
// Creating parent directories during validation is allowed (it is
// idempotent). force=true skips conflict checks.
//
// Execute performs the actual operation and should only be called after
// Validate succeeds or the conflict has been resolved.
//
// Description returns a human-readable description for output
// (e.g., "Create Features/Login/BUILD.bazel (312 bytes)").
type Operation interface {
	Validate(ctx context.Context, force bool) error
	Execute(ctx context.Context) error
	Description() string
}

// ConflictError reports that an operation's target already exists.
// The executor turns it into a resolver decision instead of a failure.
type ConflictError struct {
	Path string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("file already exists: %s", e.Path)
}

// WriteFileOp creates a new file with content.
//
// Validation creates parent directories (idempotent side effect), rejects
// nil content, and returns *ConflictError when the file exists and force is
// false.
type WriteFileOp struct {
	Path    string      // File path to create
	Content []byte      // File content (can be empty, must not be nil)
	Mode    fs.FileMode // File permissions (e.g., 0644)
}

func (op *WriteFileOp) Validate(ctx context.Context, force bool) error {
	dir := filepath.Dir(op.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", dir, err)
	}

	if !force {
		if _, err := os.Stat(op.Path); err == nil {
			return &ConflictError{Path: op.Path}
		}
	}

	if op.Content == nil {
		return fmt.Errorf("content is nil for file: %s", op.Path)
	}

	return nil
}

func (op *WriteFileOp) Execute(ctx context.Context) error {
	dir := filepath.Dir(op.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(op.Path, op.Content, op.Mode)
}

func (op *WriteFileOp) Description() string {
	return fmt.Sprintf("Create %s (%d bytes)", op.Path, len(op.Content))
}

// MkdirOp creates a directory (and parents). Creating an already-existing
// directory is not an error.
type MkdirOp struct {
	Path string
}

func (op *MkdirOp) Validate(ctx context.Context, force bool) error {
	info, err := os.Stat(op.Path)
	if err == nil && !info.IsDir() {
		return fmt.Errorf("%s exists and is not a directory", op.Path)
	}
	return nil
}

func (op *MkdirOp) Execute(ctx context.Context) error {
	return os.MkdirAll(op.Path, 0755)
}

func (op *MkdirOp) Description() string {
	return fmt.Sprintf("Create directory %s", op.Path)
}
