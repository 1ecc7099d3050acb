package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-html2pdf/internal/yamlutil"
)

type printSettings struct {
	Format    string `yaml:"format"`
	Landscape bool   `yaml:"landscape"`
	Margin    struct {
		Top string `yaml:"top"`
	} `yaml:"margin"`
}

// ---------------------------------------------------------------------------
// TestDecodeStrict - Parses YAML and rejects unknown keys
// ---------------------------------------------------------------------------

func TestDecodeStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		data       []byte
		dest       any
		wantErr    error
		wantAnyErr bool
	}{
		{
			name: "known keys",
			data: []byte("format: Letter\nlandscape: true\nmargin:\n  top: 2cm\n"),
			dest: &printSettings{},
		},
		{
			name:    "empty input",
			data:    nil,
			dest:    &printSettings{},
			wantErr: yamlutil.ErrEmptyInput,
		},
		{
			name:    "nil destination",
			data:    []byte("format: A4"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
		{
			name:       "unknown key rejected",
			data:       []byte("format: A4\npaper: A3\n"),
			dest:       &printSettings{},
			wantAnyErr: true,
		},
		{
			name:       "malformed YAML",
			data:       []byte("format: [A4\n"),
			dest:       &printSettings{},
			wantAnyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.DecodeStrict(tt.data, tt.dest)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("DecodeStrict() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if tt.wantAnyErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			got := tt.dest.(*printSettings)
			if got.Format != "Letter" || !got.Landscape || got.Margin.Top != "2cm" {
				t.Errorf("DecodeStrict() = %+v", got)
			}
		})
	}
}

func TestDecodeStrict_TooLarge(t *testing.T) {
	t.Parallel()

	data := []byte("format: " + strings.Repeat("x", yamlutil.MaxInputSize))

	err := yamlutil.DecodeStrict(data, &printSettings{})
	if !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("DecodeStrict() error = %v, want %v", err, yamlutil.ErrInputTooLarge)
	}
}

// ---------------------------------------------------------------------------
// TestEncode - Renders structs back to YAML
// ---------------------------------------------------------------------------

func TestEncode(t *testing.T) {
	t.Parallel()

	in := printSettings{Format: "A4", Landscape: true}
	in.Margin.Top = "0"

	out, err := yamlutil.Encode(in)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	for _, want := range []string{"format: A4", "landscape: true", "top:"} {
		if !strings.Contains(string(out), want) {
			t.Errorf("Encode() output missing %q:\n%s", want, out)
		}
	}
}
