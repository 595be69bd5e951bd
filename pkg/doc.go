// Package pkg contains shared utilities that can be imported by adapters.
// This package should contain generic, reusable code that doesn't belong to the core domain.
package pkg
