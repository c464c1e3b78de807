// Package main provides the axonscan command.
//
// Usage:
//
//	axonscan serve --root ./ --listen :8080
//	axonscan scan --annotation web::controller --base-package ./internal/...
//
// See --help for all available options.
package main

func main() {
	Execute()
}
