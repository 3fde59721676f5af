package langmeta

import (
	"reflect"
	"strings"
	"testing"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lang string
		name string
		ok   bool
	}{
		{lang: "en", name: "English", ok: true},
		{lang: "EN", name: "English", ok: true},
		{lang: " ja ", name: "Japanese", ok: true},
		{lang: "pt-BR", name: "Portuguese", ok: true},
		{lang: "zh_CN", name: "Chinese", ok: true},
		{lang: "xx", ok: false},
		{lang: "", ok: false},
	}

	for _, tc := range tests {
		m, ok := Resolve(tc.lang)
		if ok != tc.ok {
			t.Fatalf("Resolve(%q) ok = %v, want %v", tc.lang, ok, tc.ok)
		}
		if ok && m.Name != tc.name {
			t.Fatalf("Resolve(%q).Name = %q, want %q", tc.lang, m.Name, tc.name)
		}
	}
}

func TestNameFallsBackToCode(t *testing.T) {
	t.Parallel()

	if got := Name("xx"); got != "xx" {
		t.Fatalf("Name(xx) = %q, want %q", got, "xx")
	}
	if got := Native("hi"); got != "हिन्दी" {
		t.Fatalf("Native(hi) = %q", got)
	}
}

func TestParseList(t *testing.T) {
	t.Parallel()

	got, err := ParseList("en,zh,ja,es,fr,hi")
	if err != nil {
		t.Fatalf("ParseList: %v", err)
	}
	want := []string{"en", "zh", "ja", "es", "fr", "hi"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseList = %v, want %v", got, want)
	}
}

func TestParseListRejectsUnknown(t *testing.T) {
	t.Parallel()

	if _, err := ParseList("en,xx"); err == nil {
		t.Fatal("ParseList(en,xx) expected error")
	} else if !strings.Contains(err.Error(), "xx") {
		t.Fatalf("error should name the bad code, got: %v", err)
	}
}

func TestParseListDedupAndNormalize(t *testing.T) {
	t.Parallel()

	got, err := ParseList(" EN , en-GB ,fr,, fr ")
	if err != nil {
		t.Fatalf("ParseList: %v", err)
	}
	want := []string{"en", "fr"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseList = %v, want %v", got, want)
	}
}

func TestParseListEmpty(t *testing.T) {
	t.Parallel()

	if _, err := ParseList(" , "); err == nil {
		t.Fatal("ParseList of empty spec expected error")
	}
}

func TestCodesSortedAndKnown(t *testing.T) {
	t.Parallel()

	codes := Codes()
	if len(codes) != len(Registry) {
		t.Fatalf("Codes() returned %d entries, registry has %d", len(codes), len(Registry))
	}
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Fatalf("Codes() not sorted at %d: %q >= %q", i, codes[i-1], codes[i])
		}
	}
	for _, c := range codes {
		if !Known(c) {
			t.Fatalf("registry code %q not Known", c)
		}
	}
}
