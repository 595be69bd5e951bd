// Package ports defines the interfaces (ports) that adapters must implement.
// This package contains both input ports (use cases) and output ports (repositories, external services).
// The core domain depends only on these interfaces, never on concrete implementations.
package ports
