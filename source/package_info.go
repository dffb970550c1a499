// Package source fetches raw configuration documents from wherever they are kept, so that a
// fleet of test runners can share one configuration. A location is either a file path or a URL:
//
//	windows.utsc
//	file:///etc/uts/windows.utsc
//	https://ci.example.com/configs/windows.utsc
//	consul://localhost:8500/uts/windows
//	redis://:password@localhost:6379/uts:windows?db=1
//	dynamodb://uts-configs/windows?region=us-east-1&endpoint=http://localhost:8000
//
// The bytes that are read are handed to runconfig.Loader unchanged.
package source
