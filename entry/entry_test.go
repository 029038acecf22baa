package entry

import (
	"strings"
	"testing"
	"time"
)

func TestNewNormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("PST", -8*60*60)
	mtime := time.Date(2021, 6, 1, 12, 30, 0, 0, loc)

	e := New("content", mtime)
	if e.Version != SchemaVersion {
		t.Fatalf("Version = %d, want %d", e.Version, SchemaVersion)
	}
	if e.MTime.Location() != time.UTC {
		t.Fatalf("MTime not normalized to UTC: %v", e.MTime)
	}
	if !e.MTime.Equal(mtime) {
		t.Fatalf("MTime changed instant: %v vs %v", e.MTime, mtime)
	}
}

func TestJSONEncodeShape(t *testing.T) {
	e := New("PRINT 1", time.Unix(1234, 0))
	raw, err := JSON{}.Encode(e)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := `{"version":1,"content":"PRINT 1","mtime":"1970-01-01T00:20:34Z"}`
	if raw != want {
		t.Fatalf("Encode = %s, want %s", raw, want)
	}
}

func TestCodecRoundTrip(t *testing.T) {
	codecs := map[string]Codec{
		"json":    JSON{},
		"cbor":    MustCBOR(true),
		"msgpack": Msgpack{},
	}
	e := New("10 PRINT \"HI\"\n20 GOTO 10\n", time.Unix(987654321, 0))

	for name, c := range codecs {
		t.Run(name, func(t *testing.T) {
			raw, err := c.Encode(e)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, err := c.Decode(raw)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if got.Version != e.Version || got.Content != e.Content || !got.MTime.Equal(e.MTime) {
				t.Fatalf("round trip mismatch: %+v vs %+v", got, e)
			}
		})
	}
}

func TestJSONDecodeRejectsGarbage(t *testing.T) {
	if _, err := (JSON{}).Decode("first"); err == nil {
		t.Fatalf("Decode should fail on non-JSON input")
	}
	if _, err := (JSON{}).Decode(`{"version":"one"}`); err == nil {
		t.Fatalf("Decode should fail on a structurally invalid entry")
	}
}

func TestMetadata(t *testing.T) {
	e := New(strings.Repeat("x", 42), time.Unix(1234, 0))

	loc := time.FixedZone("CET", 60*60)
	md := e.Metadata(loc)
	if md.Length != 42 {
		t.Fatalf("Length = %d, want 42", md.Length)
	}
	if md.MTime.Location() != loc {
		t.Fatalf("MTime location = %v, want %v", md.MTime.Location(), loc)
	}
	if !md.MTime.Equal(e.MTime) {
		t.Fatalf("Metadata changed the instant: %v vs %v", md.MTime, e.MTime)
	}
}
