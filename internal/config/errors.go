package config

import "errors"

var errInvalidConfig = errors.New("invalid config")
