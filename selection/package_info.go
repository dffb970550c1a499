// Package selection applies a loaded runconfig.TestRunConfiguration to individual test files and
// keywords. Everything here is a pure function of its inputs; nothing reads the filesystem.
package selection
