package config

import "fmt"

var (
	errMissing       = fmt.Errorf("value is required")
	errUnknownDriver = fmt.Errorf("expected %q or %q", DriverS3, DriverLocal)
)
