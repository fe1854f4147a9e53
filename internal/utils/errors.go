package utils

import "fmt"

// Common error wrapping patterns used throughout the codebase
// to ensure consistent error formatting.

// WrapLoadError wraps an error with a "failed to load" message
func WrapLoadError(item string, err error) error {
	return fmt.Errorf("failed to load %s: %w", item, err)
}

// WrapWriteError wraps an error with a "failed to write" message
func WrapWriteError(item string, err error) error {
	return fmt.Errorf("failed to write %s: %w", item, err)
}

// WrapProcessError wraps an error with a "failed to process" message
func WrapProcessError(item string, err error) error {
	return fmt.Errorf("failed to process %s: %w", item, err)
}

// WrapCreateError wraps an error with a "failed to create" message
func WrapCreateError(item string, err error) error {
	return fmt.Errorf("failed to create %s: %w", item, err)
}
