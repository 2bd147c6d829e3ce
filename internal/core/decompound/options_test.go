package decompound

import (
	"strings"
	"testing"
)

func TestOptions_SetOps(t *testing.T) {
	t.Parallel()

	var o Options
	if o.Has(Shatter) {
		t.Fatalf("zero value should have nothing set")
	}
	o = o.With(Shatter).With(TryTitlecaseSuffix)
	if !o.Has(Shatter) || !o.Has(TryTitlecaseSuffix) || !o.Has(Shatter|TryTitlecaseSuffix) {
		t.Fatalf("With lost a flag: %s", o)
	}
	if o.Has(SplitHyphenated) || o.Has(SplitHyphenated|Shatter) {
		t.Fatalf("Has must require every flag: %s", o)
	}
	o = o.Without(Shatter)
	if o.Has(Shatter) || !o.Has(TryTitlecaseSuffix) {
		t.Fatalf("Without cleared the wrong flag: %s", o)
	}
}

func TestOptions_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   Options
		want string
	}{
		{0, "none"},
		{Shatter, "shatter"},
		{Shatter | TryTitlecaseSuffix, "try-titlecase-suffix|shatter"},
		{TryTitlecaseSuffix | SplitHyphenated | Shatter, "try-titlecase-suffix|split-hyphenated|shatter"},
	}
	for _, c := range cases {
		if got := c.in.String(); got != c.want {
			t.Fatalf("%d.String() = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseOption(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want Options
	}{
		{"shatter", Shatter},
		{"SHATTER", Shatter},
		{" split-hyphenated ", SplitHyphenated},
		{"try_titlecase_suffix", TryTitlecaseSuffix},
	}
	for _, c := range cases {
		got, err := ParseOption(c.in)
		if err != nil || got != c.want {
			t.Fatalf("ParseOption(%q) = %v, %v; want %v", c.in, got, err, c.want)
		}
	}

	if _, err := ParseOption("explode"); err == nil || !strings.Contains(err.Error(), `"explode"`) {
		t.Fatalf("expected unknown option error, got %v", err)
	}
}

func TestParseOptions(t *testing.T) {
	t.Parallel()

	got, err := ParseOptions("shatter", "split-hyphenated", "shatter")
	if err != nil {
		t.Fatalf("ParseOptions: %v", err)
	}
	if got != Shatter|SplitHyphenated {
		t.Fatalf("got %s", got)
	}

	if got, err := ParseOptions(); err != nil || got != 0 {
		t.Fatalf("empty list should be zero: %v, %v", got, err)
	}
	if _, err := ParseOptions("shatter", "nope"); err == nil {
		t.Fatalf("expected error for unknown name")
	}
}
