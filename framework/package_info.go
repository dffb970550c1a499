// Package framework contains small pieces of infrastructure shared by the other packages in
// this module: the Logger interface and its null, prefixed, and capturing implementations.
//
// Optional values are in the subpackage opt.
package framework
