package components

import "github.com/yohamta/donburi"

// Contacts remembers which entities a trigger overlapped on the previous
// tick, so systems can tell a new contact from a lingering one.
type Contacts map[donburi.Entity]struct{}

// Refresh replaces the set with current and returns the entities that were
// not in it before, in the order given.
func (c *Contacts) Refresh(current []donburi.Entity) []donburi.Entity {
	var entered []donburi.Entity
	next := make(Contacts, len(current))
	for _, e := range current {
		if _, ok := (*c)[e]; !ok {
			entered = append(entered, e)
		}
		next[e] = struct{}{}
	}
	*c = next
	return entered
}

func (c Contacts) Has(e donburi.Entity) bool {
	_, ok := c[e]
	return ok
}
