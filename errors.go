package thenvoitest

import "fmt"

// CapabilityError indicates that an optional capability required by a test
// is not configured or installed. It fails loudly at call time with a hint
// naming what to enable, rather than silently falling back and masking a
// misconfigured environment.
type CapabilityError struct {
	Capability string
	Hint       string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("capability %q not available: %s", e.Capability, e.Hint)
}
