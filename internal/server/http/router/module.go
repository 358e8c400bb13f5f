package router

import "go.uber.org/fx"

// Module provides the portal gin engine.
var Module = fx.Provide(Setup)
