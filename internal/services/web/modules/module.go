// Package modules defines web module registry helpers.
package modules

import module "github.com/louisbranch/mythic.nexus/internal/services/web/module"

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module
