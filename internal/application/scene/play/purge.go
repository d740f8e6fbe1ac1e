package play

import "github.com/younwookim/mario/internal/domain/entity"

// PurgeDeleted removes deleted entities from objects in place, preserving
// the order of the survivors. The first pass nils deleted slots, the second
// compacts. Returns the shortened slice and the number of entities removed.
func PurgeDeleted(objects []entity.Entity) ([]entity.Entity, int) {
	removed := 0
	for i, o := range objects {
		if o != nil && o.IsDeleted() {
			objects[i] = nil
			removed++
		}
	}

	n := 0
	for _, o := range objects {
		if o != nil {
			objects[n] = o
			n++
		}
	}
	clear(objects[n:])
	return objects[:n], removed
}
