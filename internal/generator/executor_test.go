package generator_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mason-build/mason/internal/generator"
)

func TestExecute_DryRun(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	ops := []generator.Operation{
		&generator.WriteFileOp{
			Path:    filepath.Join(tmpDir, "test.txt"),
			Content: []byte("hello"),
			Mode:    0644,
		},
	}

	var buf bytes.Buffer
	result, err := generator.Execute(ctx, ops, generator.ExecuteOptions{
		DryRun: true,
		Writer: &buf,
	})
	if err != nil {
		t.Fatalf("dry run failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(tmpDir, "test.txt")); !os.IsNotExist(err) {
		t.Error("dry run created file")
	}
	if len(result.Created) != 0 {
		t.Errorf("dry run reported created paths: %v", result.Created)
	}
	if !strings.Contains(buf.String(), "[DRY RUN]") {
		t.Errorf("output missing [DRY RUN] marker, got: %s", buf.String())
	}
}

func TestExecute_RealRun(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "test.txt")

	ops := []generator.Operation{
		&generator.MkdirOp{Path: filepath.Join(tmpDir, "nested")},
		&generator.WriteFileOp{Path: path, Content: []byte("hello"), Mode: 0644},
	}

	var buf bytes.Buffer
	result, err := generator.Execute(ctx, ops, generator.ExecuteOptions{Writer: &buf})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("file not written: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("unexpected content: %q", data)
	}
	if len(result.Created) != 1 || result.Created[0] != path {
		t.Errorf("unexpected created paths: %v", result.Created)
	}
}

func TestExecute_SkipsExistingFilesByDefault(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "test.txt")

	if err := os.WriteFile(path, []byte("hand-edited"), 0644); err != nil {
		t.Fatalf("writing existing file: %v", err)
	}

	ops := []generator.Operation{
		&generator.WriteFileOp{Path: path, Content: []byte("generated"), Mode: 0644},
	}

	var buf bytes.Buffer
	result, err := generator.Execute(ctx, ops, generator.ExecuteOptions{Writer: &buf})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "hand-edited" {
		t.Errorf("existing file was overwritten: %q", data)
	}
	if len(result.Skipped) != 1 {
		t.Errorf("expected 1 skipped path, got %v", result.Skipped)
	}
	if !strings.Contains(buf.String(), "Skipped") {
		t.Errorf("skip not reported, got: %s", buf.String())
	}
}

func TestExecute_ForceOverwrites(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "test.txt")

	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatalf("writing existing file: %v", err)
	}

	ops := []generator.Operation{
		&generator.WriteFileOp{Path: path, Content: []byte("new"), Mode: 0644},
	}

	var buf bytes.Buffer
	_, err := generator.Execute(ctx, ops, generator.ExecuteOptions{
		Resolver: generator.NewResolver(true, false),
		Writer:   &buf,
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "new" {
		t.Errorf("force did not overwrite: %q", data)
	}
}
