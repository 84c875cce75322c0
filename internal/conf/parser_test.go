package conf

import (
	"errors"
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name     string
		line     Line
		want     Entry
		wantKind ErrorKind
	}{
		{
			name: "basic entry",
			line: Line{Number: 1, Text: "net.ipv4.ip_forward = 1"},
			want: Entry{Key: "net.ipv4.ip_forward", Value: "1", Line: 1},
		},
		{
			name: "no spaces around separator",
			line: Line{Number: 7, Text: "vm.swappiness=10"},
			want: Entry{Key: "vm.swappiness", Value: "10", Line: 7},
		},
		{
			name: "empty value is legal",
			line: Line{Number: 2, Text: "kernel.domainname ="},
			want: Entry{Key: "kernel.domainname", Value: "", Line: 2},
		},
		{
			name: "value may contain further equals signs",
			line: Line{Number: 3, Text: "kernel.core_pattern = key=value=more"},
			want: Entry{Key: "kernel.core_pattern", Value: "key=value=more", Line: 3},
		},
		{
			name: "value may contain a comment marker",
			line: Line{Number: 4, Text: "kernel.core_pattern = /tmp/core#%p"},
			want: Entry{Key: "kernel.core_pattern", Value: "/tmp/core#%p", Line: 4},
		},
		{
			name:     "missing separator",
			line:     Line{Number: 5, Text: "net.ipv4.ip_forward 1"},
			wantKind: MissingSeparator,
		},
		{
			name:     "empty key",
			line:     Line{Number: 6, Text: "= 1"},
			wantKind: EmptyKey,
		},
		{
			name:     "whitespace-only key",
			line:     Line{Number: 8, Text: "   = x"},
			wantKind: EmptyKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(tt.line)
			if tt.wantKind != "" {
				var perr *ParseError
				if !errors.As(err, &perr) {
					t.Fatalf("ParseLine() error = %v, want *ParseError", err)
				}
				if perr.Kind != tt.wantKind {
					t.Errorf("fault kind = %q, want %q", perr.Kind, tt.wantKind)
				}
				if perr.Line != tt.line.Number {
					t.Errorf("fault line = %d, want %d", perr.Line, tt.line.Number)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLine() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseLine() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
