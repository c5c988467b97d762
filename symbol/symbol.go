// Package symbol interns symbol names so that the reader and evaluator can
// compare identifiers by integer ID instead of by text.  There is one table
// per process and interned names are never released.
package symbol

import (
	"fmt"
	"sync"
)

// An ID identifies an interned symbol name.  The zero ID is never assigned.
type ID uint32

var names = struct {
	sync.RWMutex
	byID   []string
	byName map[string]ID
}{
	byID:   []string{""},
	byName: make(map[string]ID),
}

// Intern returns the ID of name, assigning the next unused ID the first time
// name is seen.
func Intern(name string) ID {
	names.Lock()
	defer names.Unlock()
	return intern(name)
}

// InternAll interns every name under a single lock acquisition and returns
// their IDs in order.
func InternAll(name ...string) []ID {
	ids := make([]ID, len(name))
	names.Lock()
	defer names.Unlock()
	for i := range name {
		ids[i] = intern(name[i])
	}
	return ids
}

func intern(name string) ID {
	if id, ok := names.byName[name]; ok {
		return id
	}
	id := ID(len(names.byID))
	names.byID = append(names.byID, name)
	names.byName[name] = id
	return id
}

// Name returns the name interned as id.  Name returns false if no name was
// ever interned as id.
func Name(id ID) (string, bool) {
	names.RLock()
	defer names.RUnlock()
	if id == 0 || int(id) >= len(names.byID) {
		return "", false
	}
	return names.byID[id], true
}

// String returns the name interned as id, or a diagnostic string if id is
// unknown.
func (id ID) String() string {
	s, ok := Name(id)
	if !ok {
		return fmt.Sprintf("#<SYMBOL %#x>", uint32(id))
	}
	return s
}
