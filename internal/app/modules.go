package app

import "github.com/specialistvlad/mathgrid/internal/registry"

// coreModules is the list of operator modules compiled into the mathgrid
// binary.
var coreModules = []registry.Module{
	registry.Arithmetic{},
}
