package domain

import "testing"

func TestKinds_CanonicalOrder(t *testing.T) {
	got := Kinds()
	want := []Kind{KindTradition, KindPolicy, KindEthnic, KindCreative}
	if len(got) != len(want) {
		t.Fatalf("expected %d kinds, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestKind_Valid(t *testing.T) {
	for _, k := range Kinds() {
		if !k.Valid() {
			t.Fatalf("%q should be valid", k)
		}
	}
	for _, k := range []Kind{"", "folklore", "Tradition"} {
		if k.Valid() {
			t.Fatalf("%q should not be valid", k)
		}
	}
}
