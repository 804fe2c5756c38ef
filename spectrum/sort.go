package spectrum

import (
	"sort"

	"github.com/osmcore/osm/internal/netmodel"
)

func sortFibers(fibers []netmodel.Fiber) {
	sort.Slice(fibers, func(i, j int) bool { return fibers[i].IdentityKey() < fibers[j].IdentityKey() })
}

func sortModules(modules []netmodel.ModuleRef) {
	sort.Slice(modules, func(i, j int) bool { return modules[i].IdentityKey() < modules[j].IdentityKey() })
}
