package locale

import (
	"slices"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty falls back", "", "en"},
		{"supported", "fr", "fr"},
		{"case insensitive", "DE", "de"},
		{"region tag", "pt-BR", "pt"},
		{"underscore region tag", "es_MX", "es"},
		{"unsupported", "xx", "en"},
		{"unsupported region", "xx-YY", "en"},
		{"whitespace", "  es ", "es"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.in); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSupported(t *testing.T) {
	codes := Supported()
	if !slices.Contains(codes, Default) {
		t.Errorf("Supported() = %v, missing %q", codes, Default)
	}
	if !slices.IsSorted(codes) {
		t.Errorf("Supported() = %v, want sorted", codes)
	}
}

func TestFor(t *testing.T) {
	if got := For("nope").Send; got != "Send" {
		t.Errorf("For(unsupported).Send = %q, want %q", got, "Send")
	}
	if got := For("es").Cancel; got != "Cancelar" {
		t.Errorf("For(es).Cancel = %q, want %q", got, "Cancelar")
	}
	for _, code := range Supported() {
		l := For(code)
		if l.LoadEarlier == "" || l.Send == "" || l.CopyText == "" || l.Cancel == "" {
			t.Errorf("locale %q has empty labels: %+v", code, l)
		}
	}
}
