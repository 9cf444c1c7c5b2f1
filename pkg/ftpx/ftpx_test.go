package ftpx

import (
	"testing"

	"github.com/jlaffaye/ftp"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		in   ftp.EntryType
		want EntryKind
	}{
		{ftp.EntryTypeFile, KindFile},
		{ftp.EntryTypeFolder, KindDir},
		{ftp.EntryTypeLink, KindLink},
	}
	for _, tt := range tests {
		if got := kindOf(tt.in); got != tt.want {
			t.Errorf("kindOf(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEntryKindString(t *testing.T) {
	tests := []struct {
		kind EntryKind
		want string
	}{
		{KindFile, "file"},
		{KindDir, "dir"},
		{KindLink, "link"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%v.String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
