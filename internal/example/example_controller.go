// Package example holds the type the scan command finds by default.
package example

import "fmt"

// ExampleController answers the hello route.
//
//example::scan_me "Example controller"
//web::rest_controller
type ExampleController struct{}

// SayHello returns a fixed greeting.
//
//web::get_mapping /hello
func (c *ExampleController) SayHello() string {
	return "Hello from ExampleController"
}

// ExampleMethod formats its parameters.
func (c *ExampleController) ExampleMethod(param1 string, param2 int) string {
	return fmt.Sprintf("%s:%d", param1, param2)
}
