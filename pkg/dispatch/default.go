package dispatch

// The package-level registry and dispatcher cover the common case of
// module-scope free functions, so small programs can register and call
// overloads without wiring their own Registry.

// DefaultModule is the scope used by the package-level helpers.
var DefaultModule = ModuleScope("main")

var (
	defaultRegistry   = NewRegistry()
	defaultDispatcher = NewDispatcher(defaultRegistry)
)

// DefaultRegistry returns the registry behind the package-level helpers.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register derives the signature of fn and registers it as an overload of
// name in the default module scope.
func Register(name string, fn any) error {
	return defaultRegistry.RegisterFunc(DefaultModule, name, fn)
}

// Dispatch resolves and invokes an overload of name in the default module
// scope.
func Dispatch(name string, args ...any) (any, error) {
	return defaultDispatcher.Dispatch(DefaultModule, name, nil, args...)
}
