package config

import (
	"errors"
	"reflect"
	"testing"
)

func TestLoadNames(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
		want []string
	}{
		{
			name: "text lines",
			file: "names.txt",
			body: "# staff\nAda Lovelace\n\n  Grace Hopper  \nAda Lovelace\n",
			want: []string{"Ada Lovelace", "Grace Hopper", "Ada Lovelace"},
		},
		{
			name: "yaml list",
			file: "names.yaml",
			body: "- Ada\n- \"Grace / Linus\"\n- ''\n",
			want: []string{"Ada", "Grace / Linus"},
		},
		{
			name: "yaml mapping",
			file: "names.yml",
			body: "segments:\n  - Ada\n  - Grace\n",
			want: []string{"Ada", "Grace"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadNames(writeFile(t, tt.file, tt.body))
			if err != nil {
				t.Fatalf("LoadNames: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadNamesEmpty(t *testing.T) {
	for _, f := range []struct{ file, body string }{
		{"empty.txt", "# nobody\n\n"},
		{"empty.yaml", ""},
	} {
		if _, err := LoadNames(writeFile(t, f.file, f.body)); !errors.Is(err, ErrNoNames) {
			t.Errorf("%s: err = %v, want ErrNoNames", f.file, err)
		}
	}
}

func TestLoadNamesScalarYAML(t *testing.T) {
	if _, err := LoadNames(writeFile(t, "one.yaml", "just a string\n")); err == nil {
		t.Error("expected error for scalar YAML")
	}
}

func TestDefaultSegmentsIsACopy(t *testing.T) {
	a := DefaultSegments()
	a[0] = "changed"
	if DefaultSegments()[0] == "changed" {
		t.Error("DefaultSegments exposes the shared roster")
	}
}
