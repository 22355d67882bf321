// Package mason holds metadata shared across the CLI.
package mason

// Version is the current mason release. Bumped manually at release time.
const Version = "0.3.0"
