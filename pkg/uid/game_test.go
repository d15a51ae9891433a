package uid

import "testing"

func TestGenerateGameID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateGameID()
		if !IsGameID(id) {
			t.Fatalf("generated id %q is not a v4 uuid", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestIsGameIDRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "game-1", "00000000-0000-0000-0000-000000000000"} {
		if IsGameID(s) {
			t.Errorf("%q should not be accepted", s)
		}
	}
}
