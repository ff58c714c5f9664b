package textutil

import "testing"

func TestNormalizeSpace(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "Tan Wei Ming", "Tan Wei Ming"},
		{"runs", "  Tan \t Wei \n Ming ", "Tan Wei Ming"},
		{"nbsp", "Tan Wei Ming", "Tan Wei Ming"},
		{"only space", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeSpace(tt.in); got != tt.want {
				t.Errorf("NormalizeSpace(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"simple", "I beg to move", 4},
		{"punctuation", "Thank you, Mr Speaker.", 4},
		{"numbers", "Section 33B applies", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WordCount(tt.in); got != tt.want {
				t.Errorf("WordCount(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestTokenizeFiltersShortTokens(t *testing.T) {
	got := Tokenize("I beg to move, That the Bill be now read")
	for _, token := range got {
		if len(token) < 3 {
			t.Errorf("token %q shorter than 3 runes", token)
		}
	}
}
