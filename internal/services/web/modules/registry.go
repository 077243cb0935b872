// Package modules defines web module registry helpers.
package modules

import (
	module "github.com/louisbranch/karta/internal/services/web/module"
	"github.com/louisbranch/karta/internal/services/web/modules/api"
	"github.com/louisbranch/karta/internal/services/web/modules/public"
)

// Module aliases the module interface contract.
type Module = module.Module

// DefaultModules returns the modules mounted by the web server.
func DefaultModules() []Module {
	return []Module{
		public.New(),
		api.New(),
	}
}
