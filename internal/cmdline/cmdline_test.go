package cmdline

import (
	"strings"
	"testing"
)

func TestSplitSelfInvocation(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"unquoted token", `RunDetached.exe notepad.exe file.txt`, `notepad.exe file.txt`},
		{"quoted token", `"C:\a b\x.exe" arg1 arg2`, `arg1 arg2`},
		{"quoted child kept verbatim", `RunDetached.exe "C:\Program Files\App\app.exe" --flag`, `"C:\Program Files\App\app.exe" --flag`},
		{"unterminated quote", `"C:\a b\x.exe arg1`, ``},
		{"lone quote", `"`, ``},
		{"token only", `RunDetached.exe`, ``},
		{"quoted token only", `"C:\a b\x.exe"`, ``},
		{"empty", ``, ``},
		{"trailing spaces only", `RunDetached.exe   `, ``},
		{"several spaces", `RunDetached.exe    notepad.exe`, `notepad.exe`},
		{"inner spacing untouched", `RunDetached.exe a   b `, `a   b `},
		{"tab ends token but is not skipped", "RunDetached.exe\tnotepad.exe", "\tnotepad.exe"},
		{"text glued to closing quote", `"x.exe"y z`, `y z`},
		{"empty quoted token", `"" child arg`, `child arg`},
		{"non ascii token", `Übersicht.exe läuft`, `läuft`},
		{"non breaking space stays in token", "my\u00a0tool.exe child", "child"},
		{"next line stays in token", "my\u0085tool.exe child", "child"},
		{"carriage return ends token", "tool\rchild", "\rchild"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitSelfInvocation(tt.raw); got != tt.want {
				t.Errorf("SplitSelfInvocation(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func FuzzSplitSelfInvocation(f *testing.F) {
	for _, seed := range []string{
		``,
		`"`,
		`""`,
		`tool child`,
		`"C:\a b\x.exe" arg1 arg2`,
		"tool\t\"child\"",
		"\xff\xfe tool",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, raw string) {
		got := SplitSelfInvocation(raw)
		if !strings.HasSuffix(raw, got) {
			t.Fatalf("SplitSelfInvocation(%q) = %q, not a suffix of the input", raw, got)
		}
		if strings.HasPrefix(got, " ") {
			t.Fatalf("SplitSelfInvocation(%q) = %q, leading space not skipped", raw, got)
		}
	})
}
