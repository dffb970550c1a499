// Package runconfig defines TestRunConfiguration, the declarative description of a test run
// (which test files to include or exclude, what to execute before certain files, whether to stop
// on the first failure, and which keyword-tagged tests to skip), and the loader that reads it
// from a JSON or YAML document.
//
// The loader validates shape only. It does not look at the filesystem, evaluate preexec
// statements, or check glob syntax; see Lint for an opt-in syntax check and the selection
// package for predicates that apply a loaded configuration to file paths and keywords.
package runconfig
