package key

import "testing"

func TestForName(t *testing.T) {
	if got := ForName("hello.bas").String(); got != "endbasic-program:HELLO.BAS" {
		t.Fatalf("ForName(hello.bas) = %q", got)
	}
	if got := ForName("OTHER.BAS").String(); got != "endbasic-program:OTHER.BAS" {
		t.Fatalf("ForName(OTHER.BAS) = %q", got)
	}
}

func TestForNameCaseInsensitiveCanonical(t *testing.T) {
	// Any casing of the same name must land on the same canonical key.
	a := ForName("Mixed Case.Bas")
	b := ForName("MIXED CASE.BAS")
	if a.Canonical() != b.Canonical() {
		t.Fatalf("canonical keys differ: %q vs %q", a.Canonical(), b.Canonical())
	}
}

func TestForNamePanicsWithoutExtension(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("ForName should panic on a name without %s", Extension)
		}
	}()
	ForName("hello.txt")
}

func TestParse(t *testing.T) {
	for _, raw := range []string{
		"endbasic-program:X.BAS",
		"endbasic-program:hello.bas",
	} {
		k, ok := Parse(raw)
		if !ok {
			t.Fatalf("Parse(%q) should succeed", raw)
		}
		if k.String() != raw {
			t.Fatalf("Parse(%q) did not preserve case: %q", raw, k.String())
		}
	}

	for _, raw := range []string{
		"endbasic-program:unknown.bat",
		"endbasic-program:",
		"foo-program:hello.bas",
	} {
		if _, ok := Parse(raw); ok {
			t.Fatalf("Parse(%q) should fail", raw)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	k := ForName("some name.bas")
	parsed, ok := Parse(k.String())
	if !ok {
		t.Fatalf("Parse should recognize a key built by ForName")
	}
	if parsed.Name() != "SOME NAME.BAS" {
		t.Fatalf("round-tripped name = %q", parsed.Name())
	}
	if parsed != parsed.Canonical() {
		t.Fatalf("a ForName key must already be canonical")
	}
}

func TestName(t *testing.T) {
	if got := ForName("hello.bas").Name(); got != "HELLO.BAS" {
		t.Fatalf("Name = %q", got)
	}
}

func TestCanonicalDetectsLegacyKeys(t *testing.T) {
	k, ok := Parse("endbasic-program:lower.bas")
	if !ok {
		t.Fatalf("Parse failed")
	}
	if k == k.Canonical() {
		t.Fatalf("legacy-cased key should differ from its canonical form")
	}
	if got := k.Canonical().String(); got != "endbasic-program:LOWER.BAS" {
		t.Fatalf("Canonical = %q", got)
	}
}
