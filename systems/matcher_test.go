package systems

import "testing"

func TestMatchWord(t *testing.T) {
	claimedSet := map[string]bool{"gamma": true}
	claimed := func(w string) bool { return claimedSet[w] }
	words := []string{"alpha", "beta", "gamma", "delta"}

	tests := []struct {
		name  string
		probe string
		want  string
		ok    bool
	}{
		{"no match", "xxxxxx", "", false},
		{"single match", "xxbetaxx", "beta", true},
		{"dictionary order wins", "deltaalpha", "alpha", true},
		{"claimed word skipped", "gamma", "", false},
		{"claimed skipped, next taken", "gammadelta", "delta", true},
		{"empty probe", "", "", false},
		{"not contiguous", "b-e-t-a", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MatchWord(tt.probe, words, claimed)
			if got != tt.want || ok != tt.ok {
				t.Errorf("MatchWord(%q) = (%q, %v), want (%q, %v)", tt.probe, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestMatchWordHebrew(t *testing.T) {
	none := func(string) bool { return false }
	got, ok := MatchWord("אבשלוםגד", []string{"שלום"}, none)
	if !ok || got != "שלום" {
		t.Errorf("Expected to match שלום, got (%q, %v)", got, ok)
	}
}
