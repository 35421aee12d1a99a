package fonts

import (
	"bytes"
	"testing"
)

func TestLoadBuiltin(t *testing.T) {
	for _, name := range []string{"Go", "embed:Go Regular", "go-bold", "  GO   Mono ", "sans-serif"} {
		data, err := Load(name)
		if err != nil {
			t.Fatalf("Load(%q): %v", name, err)
		}
		if len(data) == 0 {
			t.Fatalf("Load(%q) returned no data", name)
		}
	}
	a, _ := Load("go")
	b, _ := Load(Default)
	if !bytes.Equal(a, b) {
		t.Fatalf("alias go should resolve to %s", Default)
	}
}

func TestAliases(t *testing.T) {
	regular, _ := Load(Default)
	mono, _ := Load("go mono")
	for name, want := range map[string][]byte{
		"sans":       regular,
		"sans-serif": regular,
		"Sans Serif": regular,
		"monospace":  mono,
	} {
		got, err := Load(name)
		if err != nil {
			t.Fatalf("Load(%q): %v", name, err)
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("alias %q resolved to the wrong font", name)
		}
		if !Has(name) {
			t.Fatalf("Has(%q) = false", name)
		}
	}
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"embed:Go-Bold":     "go bold",
		"  Noto   Sans_SC ": "noto sans_sc",
		"sans-serif":        "sans serif",
		"":                  "",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLoadUnknown(t *testing.T) {
	if _, err := Load("Comic Sans"); err == nil {
		t.Fatalf("expected error for unknown font")
	}
	if Has("Comic Sans") {
		t.Fatalf("Has reported an unknown font")
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) != 6 {
		t.Fatalf("expected 6 fonts, got %d", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}
