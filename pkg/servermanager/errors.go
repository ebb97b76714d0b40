package servermanager

import "fmt"

// ConfigErrorCode is reported by ConfigError.Code.
const ConfigErrorCode = 2001

// ConfigError reports a required setting that is missing.
type ConfigError struct {
	Manager string
	Missing string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("The %q server manager is not fully configured. Please configure the %s", e.Manager, e.Missing)
}

// Code returns the numeric error code shown by the host.
func (e *ConfigError) Code() int { return ConfigErrorCode }

// RemoteError is a failure reported by the panel itself.
type RemoteError struct {
	Endpoint string
	Message  string
}

func (e *RemoteError) Error() string { return e.Message }

// UnsupportedError is returned for actions a manager cannot perform.
type UnsupportedError struct {
	Manager string
	Action  string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s does not support %s", e.Manager, e.Action)
}

// TransportError wraps failures below the panel protocol: timeouts, refused
// connections, TLS handshakes, unexpected status codes or undecodable bodies.
type TransportError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("request %s: status %d: %v", e.Endpoint, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("request %s: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
