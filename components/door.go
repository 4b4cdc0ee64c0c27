package components

import (
	"sort"

	"github.com/yohamta/donburi"
)

// UnlockedKeyID is held by every key ring. Doors with this id open for
// anyone.
const UnlockedKeyID = 0

// KeyRingData is the session's set of collected key ids.
type KeyRingData struct {
	held map[int]struct{}
}

func NewKeyRing() KeyRingData {
	k := KeyRingData{}
	k.Clear()
	return k
}

func (k *KeyRingData) AddKey(id int) {
	if k.held == nil {
		k.Clear()
	}
	k.held[id] = struct{}{}
}

func (k *KeyRingData) HasKey(id int) bool {
	if id == UnlockedKeyID {
		return true
	}
	_, ok := k.held[id]
	return ok
}

// Clear drops every key except the always-held one.
func (k *KeyRingData) Clear() {
	k.held = map[int]struct{}{UnlockedKeyID: {}}
}

// Keys returns the held ids in ascending order.
func (k *KeyRingData) Keys() []int {
	ids := make([]int, 0, len(k.held))
	for id := range k.held {
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		ids = append(ids, UnlockedKeyID)
	}
	sort.Ints(ids)
	return ids
}

// DoorOutcome is the result of touching a door.
type DoorOutcome int

const (
	DoorUnchanged DoorOutcome = iota
	DoorOpened
	DoorLocked
)

type DoorData struct {
	ID       int
	IsOpen   bool
	Contacts Contacts
}

// AttemptToOpen opens a closed door whose key is on the ring.
func (d *DoorData) AttemptToOpen(keys *KeyRingData) DoorOutcome {
	if d.IsOpen {
		return DoorUnchanged
	}
	if d.ID == UnlockedKeyID || (keys != nil && keys.HasKey(d.ID)) {
		d.IsOpen = true
		return DoorOpened
	}
	return DoorLocked
}

var Door = donburi.NewComponentType[DoorData]()
var KeyRing = donburi.NewComponentType[KeyRingData]()
