package ports

import "context"

// ClassModuleReader reads the module name from a compiled module-info class.
//
//go:generate mockgen -source=module_reader.go -destination=mocks/mock_module_reader.go -package=mocks
type ClassModuleReader interface {
	// ReadModuleName returns the module name declared by the class file bytes.
	ReadModuleName(data []byte) (string, error)
}

// SourceModuleReader reads the module name from module-info source text.
type SourceModuleReader interface {
	// ParseModuleName returns the module name declared by the source text.
	ParseModuleName(ctx context.Context, src []byte) (string, error)
}
