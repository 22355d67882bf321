// Package generator provides the file-operation toolkit underneath mason's
// scaffolding: template rendering, planned filesystem operations with
// validation, conflict resolution (skip by default, --force, --diff), and a
// dry-run executor.
//
// Scaffolding is expressed as a plan of operations that are validated before
// anything touches disk:
//
//	ops, _ := scaffolder.Plan(arch, name)
//	result, err := generator.Execute(ctx, ops, generator.ExecuteOptions{})
//
// Existing files are never overwritten unless the resolver says so; the
// default resolution is Skip, which preserves hand-edited files and makes
// re-running a scaffold safe.
package generator
