package annotations

import "fmt"

// Well-known annotation identifiers
const (
	Controller     = "web::controller"
	RestController = "web::rest_controller"
	RequestMapping = "web::request_mapping"
	GetMapping     = "web::get_mapping"
	PostMapping    = "web::post_mapping"
	PutMapping     = "web::put_mapping"
	DeleteMapping  = "web::delete_mapping"
	Service        = "stereotype::service"
	Component      = "stereotype::component"
	ScanMe         = "example::scan_me"
)

// Built-in annotation declarations

// WebAnnotations declares the web:: namespace
var WebAnnotations = []AnnotationDecl{
	{ID: Controller, Targets: NewTargetSet(TargetType), HasValue: true, Description: "Marks a struct as an MVC controller rendering views"},
	{ID: RestController, Targets: NewTargetSet(TargetType), HasValue: true, Description: "Marks a struct as a REST controller writing response bodies directly"},
	{ID: RequestMapping, Targets: NewTargetSet(TargetType, TargetMethod), HasValue: true, Description: "Maps requests onto a handler type or method"},
	{ID: GetMapping, Targets: NewTargetSet(TargetMethod), HasValue: true, Description: "Maps HTTP GET requests onto a handler method"},
	{ID: PostMapping, Targets: NewTargetSet(TargetMethod), HasValue: true, Description: "Maps HTTP POST requests onto a handler method"},
	{ID: PutMapping, Targets: NewTargetSet(TargetMethod), HasValue: true, Description: "Maps HTTP PUT requests onto a handler method"},
	{ID: DeleteMapping, Targets: NewTargetSet(TargetMethod), HasValue: true, Description: "Maps HTTP DELETE requests onto a handler method"},
}

// StereotypeAnnotations declares the stereotype:: namespace
var StereotypeAnnotations = []AnnotationDecl{
	{ID: Service, Targets: NewTargetSet(TargetType), HasValue: true, Description: "Marks a struct as a service"},
	{ID: Component, Targets: NewTargetSet(TargetType), HasValue: true, Description: "Marks a struct as a generic component"},
}

// AxonAnnotations declares the axon:: namespace understood by the axon code generator
var AxonAnnotations = []AnnotationDecl{
	{ID: "axon::controller", Targets: NewTargetSet(TargetType), Description: "axon HTTP controller"},
	{ID: "axon::route", Targets: NewTargetSet(TargetMethod), HasValue: true, Description: "axon HTTP route handler"},
	{ID: "axon::middleware", Targets: NewTargetSet(TargetType), HasValue: true, Description: "axon middleware"},
	{ID: "axon::core", Targets: NewTargetSet(TargetType), Description: "axon core service"},
	{ID: "axon::interface", Targets: NewTargetSet(TargetType), Description: "axon generated interface"},
	{ID: "axon::logger", Targets: NewTargetSet(TargetType), Description: "axon logger service"},
}

// ExampleAnnotations declares the example:: namespace used by the bundled fixture
var ExampleAnnotations = []AnnotationDecl{
	{ID: ScanMe, Targets: NewTargetSet(TargetType), HasValue: true, Description: "Marks a type for the default scan"},
}

// BuiltinDecls returns every built-in declaration
func BuiltinDecls() []AnnotationDecl {
	var all []AnnotationDecl
	all = append(all, WebAnnotations...)
	all = append(all, StereotypeAnnotations...)
	all = append(all, AxonAnnotations...)
	all = append(all, ExampleAnnotations...)
	return all
}

// RegisterBuiltins registers all built-in declarations with the provided registry
func RegisterBuiltins(registry AnnotationRegistry) error {
	for _, decl := range BuiltinDecls() {
		if err := registry.Register(decl); err != nil {
			return fmt.Errorf("failed to register builtin annotation %s: %w", decl.ID, err)
		}
	}
	return nil
}
