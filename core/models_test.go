package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		wantSame bool
	}{
		{
			name:     "identical content produces identical IDs",
			a:        "alpha institute of technology",
			b:        "alpha institute of technology",
			wantSame: true,
		},
		{
			name:     "different content produces different IDs",
			a:        "alpha institute of technology",
			b:        "beta institute of technology",
			wantSame: false,
		},
		{
			name:     "case matters",
			a:        "Alpha",
			b:        "alpha",
			wantSame: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idA := IDFromContent(tt.a)
			idB := IDFromContent(tt.b)
			if (idA == idB) != tt.wantSame {
				t.Errorf("IDFromContent(%q) == IDFromContent(%q): got %v, want %v",
					tt.a, tt.b, idA == idB, tt.wantSame)
			}
		})
	}
}

func TestIDFromContent_NonZero(t *testing.T) {
	if IDFromContent("alpha") == 0 {
		t.Error("expected a non-zero ID for non-empty content")
	}
}
