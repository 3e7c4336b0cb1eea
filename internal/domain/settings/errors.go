package settings

import "errors"

// Mail settings domain errors
var (
	ErrNotConfigured = errors.New("mail settings have not been configured")
)
