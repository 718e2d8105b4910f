package textclean

import "testing"

func TestClean(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "   ", ""},
		{"plain", "degree required", "degree required"},
		{"br variants", "one<br>two<BR/>three<br />four", "one\ntwo\nthree\nfour"},
		{"tags stripped", "<p><b>Bachelor</b> in <i>law</i></p>", "Bachelor in law"},
		{"entities decoded", "R&amp;D &quot;team&quot; &lt;5&gt;", `R&D "team" <5>`},
		{"edges trimmed", "<br>text<br>", "text"},
	}

	cleaner := New(0)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cleaner.Clean(tc.in); got != tc.want {
				t.Fatalf("Clean(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestCleanCachesResults(t *testing.T) {
	cleaner := New(2)
	first := cleaner.Clean("a<br>b")
	if cleaner.cache.Len() != 1 {
		t.Fatalf("cache len = %d, want 1", cleaner.cache.Len())
	}
	if second := cleaner.Clean("a<br>b"); second != first {
		t.Fatalf("cached result %q differs from %q", second, first)
	}
	if cleaner.Hits() != 1 {
		t.Fatalf("hits = %d, want 1", cleaner.Hits())
	}
	cleaner.Clean("x")
	cleaner.Clean("y")
	if cleaner.cache.Len() != 2 {
		t.Fatalf("cache len = %d, want 2", cleaner.cache.Len())
	}
}
