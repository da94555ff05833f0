package slug_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/ai-blog-api/pkg/slug"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestMake(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"The Future of AI!!!", "the-future-of-ai"},
		{"  --- Already -- Hyphenated --- ", "already-hyphenated"},
		{"CAPS and 123 numbers", "caps-and-123-numbers"},
		{"Unicode: Café & Résumé", "unicode-caf-r-sum"},
		{"!!!", ""},
		{"", ""},
		{"a", "a"},
	}

	for _, tc := range cases {
		got := slug.Make(tc.title)
		if got != tc.want {
			t.Errorf("Make(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestMakeAlwaysMatchesPattern(t *testing.T) {
	titles := []string{
		"Hello World",
		"What's New in Web Development?",
		"100% Uptime: Myth or Reality",
		"   spaces   everywhere   ",
		"----",
		"Données & Analyse",
	}

	for _, title := range titles {
		got := slug.Make(title)
		if got == "" {
			continue
		}
		if !slugPattern.MatchString(got) {
			t.Errorf("Make(%q) = %q does not match slug pattern", title, got)
		}
	}
}

func TestMakeIsIdempotent(t *testing.T) {
	titles := []string{"Hello World", "The Future of AI!!!", "a-b-c"}
	for _, title := range titles {
		once := slug.Make(title)
		twice := slug.Make(once)
		if once != twice {
			t.Errorf("Make not idempotent for %q: %q != %q", title, once, twice)
		}
	}
}

func TestUnique(t *testing.T) {
	ts := time.UnixMilli(1700000000000)

	got := slug.Unique("Hello World", ts)
	want := "hello-world-1700000000000"
	if got != want {
		t.Errorf("Unique = %q, want %q", got, want)
	}

	// A title with no slug-able characters still yields a non-empty value
	got = slug.Unique("!!!", ts)
	if got != "1700000000000" {
		t.Errorf("Unique on empty slug = %q", got)
	}
}

// Uniqueness comes only from the timestamp suffix: two posts slugged in the
// same millisecond collide.
func TestUniqueSameTickCollides(t *testing.T) {
	ts := time.UnixMilli(1700000000000)

	a := slug.Unique("Hello World", ts)
	b := slug.Unique("Hello World", ts)
	if a != b {
		t.Fatalf("expected identical slugs for same tick, got %q and %q", a, b)
	}

	c := slug.Unique("Hello World", ts.Add(time.Millisecond))
	if a == c {
		t.Fatal("expected different slugs across ticks")
	}
}

func BenchmarkMake(b *testing.B) {
	for i := 0; i < b.N; i++ {
		slug.Make("The Future of Technology: 10 Trends to Watch in 2025!")
	}
}
