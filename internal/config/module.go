package config

import "go.uber.org/fx"

// Module provides *Config built from flags, environment and CONFIG_FILE.
var Module = fx.Provide(Load)
