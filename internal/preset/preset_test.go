package preset

import (
	"sort"
	"testing"
)

func TestGetSupportedPresets(t *testing.T) {
	names := GetSupportedPresets()
	if !sort.StringsAreSorted(names) {
		t.Errorf("preset names should be sorted: %v", names)
	}
	want := map[string]bool{"default": false, "karaoke": false, "minimal": false}
	for _, n := range names {
		if _, ok := want[n]; ok {
			want[n] = true
		}
	}
	for n, seen := range want {
		if !seen {
			t.Errorf("preset %q not registered", n)
		}
	}
}

func TestGetUnknownPreset(t *testing.T) {
	if _, err := Get("nope"); err == nil {
		t.Fatal("expected error for unknown preset")
	}
}

func TestPresetStylesValidate(t *testing.T) {
	for _, name := range GetSupportedPresets() {
		p, err := Get(name)
		if err != nil {
			t.Fatalf("Get(%q): %v", name, err)
		}
		if p.GetName() != name {
			t.Errorf("preset %q reports name %q", name, p.GetName())
		}
		style := p.GetStyle()
		if _, err := style.Validate(); err != nil {
			t.Errorf("preset %q style does not validate: %v", name, err)
		}
	}
}
