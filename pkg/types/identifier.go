package types

import (
	"sync"
)

type Identifier int

const (
	MaxIdentifier = 128
)

// Reserved keywords; matched by exact text, the language is case sensitive.
const (
	SYMBOLS Identifier = -(iota + 1)
	EXPRESSION
	LOCAL
	ID_RULE
	PRINT
)

// Builtin function names; interned up front so the evaluator can switch on
// them without a string compare.
const (
	SIN Identifier = iota + 1
	COS
	EXP
	LOG
)

var (
	keywords = map[string]Identifier{
		"Symbols":    SYMBOLS,
		"Expression": EXPRESSION,
		"Local":      LOCAL,
		"id":         ID_RULE,
		"Print":      PRINT,
	}

	identifiers = map[string]Identifier{
		"sin": SIN,
		"cos": COS,
		"exp": EXP,
		"log": LOG,
	}

	names          = map[Identifier]string{}
	lastIdentifier Identifier
	mutex          sync.RWMutex
)

func init() {
	for s, id := range keywords {
		names[id] = s
	}
	for s, id := range identifiers {
		names[id] = s
		if id > lastIdentifier {
			lastIdentifier = id
		}
	}
}

func lookupID(s string, create bool) (Identifier, bool) {
	if id, ok := keywords[s]; ok {
		return id, true
	}
	if id, ok := identifiers[s]; ok {
		return id, true
	}

	if create {
		lastIdentifier += 1
		identifiers[s] = lastIdentifier
		names[lastIdentifier] = s
		return lastIdentifier, true
	}

	return 0, false
}

func ID(s string) Identifier {
	if len(s) > MaxIdentifier {
		s = s[:MaxIdentifier]
	}

	mutex.RLock()
	id, ok := lookupID(s, false)
	mutex.RUnlock()
	if ok {
		return id
	}

	// Check again -- another thread might have created it between the RUnlock
	// and the Lock.

	mutex.Lock()
	defer mutex.Unlock()

	id, _ = lookupID(s, true)
	return id
}

func (id Identifier) String() string {
	mutex.RLock()
	defer mutex.RUnlock()

	return names[id]
}

func (id Identifier) IsReserved() bool {
	if id < 0 {
		return true
	}
	return false
}
