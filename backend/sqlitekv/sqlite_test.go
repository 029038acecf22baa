package sqlitekv

import (
	"context"
	"testing"
)

func TestRoundTripAndEnumeration(t *testing.T) {
	ctx := context.Background()
	s, err := New(t.TempDir() + "/store.db")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close(ctx)

	if _, ok, err := s.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get on empty db: ok=%v err=%v", ok, err)
	}

	if err := s.Set(ctx, "b", "1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set(ctx, "a", "2"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set(ctx, "b", "3"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}

	if v, ok, err := s.Get(ctx, "b"); err != nil || !ok || v != "3" {
		t.Fatalf("Get(b): ok=%v err=%v v=%q", ok, err, v)
	}

	n, err := s.Len(ctx)
	if err != nil || n != 2 {
		t.Fatalf("Len = %d err=%v, want 2", n, err)
	}
	// Key order is the table's key order.
	for i, want := range []string{"a", "b"} {
		k, ok, err := s.Key(ctx, i)
		if err != nil || !ok || k != want {
			t.Fatalf("Key(%d) = %q ok=%v err=%v, want %q", i, k, ok, err, want)
		}
	}
	if _, ok, _ := s.Key(ctx, 2); ok {
		t.Fatalf("Key past the end should report no key")
	}

	if err := s.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete of absent key should be a no-op, got %v", err)
	}
	if n, _ := s.Len(ctx); n != 1 {
		t.Fatalf("Len after delete = %d, want 1", n)
	}
}
