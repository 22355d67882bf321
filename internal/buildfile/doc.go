// Package buildfile edits Bazel declaration files in place.
//
// mason never regenerates a BUILD file it has already written; it splices
// new dependency references into existing files. To do that safely the file
// is parsed into a typed structure first (blocks with bracketed list fields
// and section marker comments), the insertion point is chosen by walking
// that structure, and the result is written back atomically. Content the
// parser does not recognize is preserved byte for byte.
//
// Linking is idempotent: inserting a reference that is already present is a
// no-op reported as AlreadyLinked, so any link operation can be re-run any
// number of times and converges to the same file content.
package buildfile
