// Package services contains the application services (use cases).
// Services orchestrate domain entities and interact with the outside world through ports.
// This package must have ZERO external dependencies - only standard library and core packages.
package services
