package app

import (
	"github.com/vk/actiongraph/internal/registry"
	"github.com/vk/actiongraph/modules/accessrel"
	"github.com/vk/actiongraph/modules/mathrel"
)

// coreModules is the definitive list of all relationship modules that are
// compiled into the actiongraph binary.
var coreModules = []registry.Module{
	&mathrel.Module{},
	&accessrel.Module{},
}
