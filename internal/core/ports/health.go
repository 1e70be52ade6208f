package ports

import "context"

// HealthChecker abstracts a dependency health probe.
// Implementations should return error if unhealthy.
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}

// UpstreamStatus reports the circuit state of an external provider.
// An open circuit degrades data to fallbacks but does not make the service unhealthy.
type UpstreamStatus interface {
	Name() string
	State() string
}
