// Package key implements the backend key scheme for stored programs.
//
// Every key owned by the store is the namespace prefix followed by the
// program name, e.g. "endbasic-program:HELLO.BAS". Names are compared
// case-insensitively and the upper-cased form is canonical; keys with a
// differently-cased name only appear in backends written by older,
// case-sensitive versions of the store and are renamed at startup.
package key

import "strings"

// Prefix namespaces all keys that belong to the store within the shared
// backend keyspace.
const Prefix = "endbasic-program:"

// Extension is the fixed program name extension, matched case-insensitively.
const Extension = ".BAS"

// Key identifies one stored program at the backend level. The zero value is
// not a valid key; construct with ForName or Parse.
type Key struct {
	raw string
}

// ForName builds the canonical key for a program name.
//
// The name is unconditionally upper-cased so that lookups are
// case-insensitive. Callers must pass a name ending in .BAS (in any case);
// anything else is a programming error at the call site.
func ForName(name string) Key {
	if !hasExtension(name) {
		panic("progstore: program name " + name + " lacks the " + Extension + " extension")
	}
	return Key{raw: Prefix + strings.ToUpper(name)}
}

// Parse reconstructs a Key from a raw backend key, reporting false for keys
// that do not belong to the store. The name's case is preserved so that the
// startup migration can tell legacy-cased keys from canonical ones.
func Parse(raw string) (Key, bool) {
	if !strings.HasPrefix(raw, Prefix) || !hasExtension(raw) {
		return Key{}, false
	}
	return Key{raw: raw}, true
}

// Canonical returns the key with its name portion upper-cased.
func (k Key) Canonical() Key {
	return Key{raw: Prefix + strings.ToUpper(k.Name())}
}

// Name returns the program name portion of the key, prefix stripped.
func (k Key) Name() string {
	return k.raw[len(Prefix):]
}

// String returns the exact string used as the backend key.
func (k Key) String() string {
	return k.raw
}

func hasExtension(s string) bool {
	return len(s) >= len(Extension) && strings.EqualFold(s[len(s)-len(Extension):], Extension)
}
