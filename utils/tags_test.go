package utils

import (
	"reflect"
	"testing"
)

func TestNormalizeTagsJSONArray(t *testing.T) {
	got := NormalizeTags(`["Modern", "Eclectic"]`)
	want := []string{"Modern", "Eclectic"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeTags(JSON array) = %v, want %v", got, want)
	}
	if rendered := JoinTags(got); rendered != "Modern, Eclectic" {
		t.Errorf("JoinTags = %q, want %q", rendered, "Modern, Eclectic")
	}
}

func TestNormalizeTagsSingleQuotedPseudoArray(t *testing.T) {
	got := NormalizeTags(`['Modern', 'Eclectic']`)
	want := []string{"Modern", "Eclectic"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeTags(pseudo-array) = %v, want %v", got, want)
	}
}

func TestNormalizeTagsMalformedBracketFallsBackToCommaSplit(t *testing.T) {
	// No inner quotes: invalid JSON, no quoted substrings
	got := NormalizeTags(`[Modern, Eclectic]`)
	want := []string{"Modern", "Eclectic"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeTags(unquoted bracket) = %v, want %v", got, want)
	}
}

func TestNormalizeTagsPlainString(t *testing.T) {
	got := NormalizeTags("  Living Room  ")
	want := []string{"Living Room"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeTags(plain) = %v, want %v", got, want)
	}
}

func TestNormalizeTagsEmptyInputs(t *testing.T) {
	for _, raw := range []string{"", "   ", "[]", "['']", `[""]`, "[ , ]"} {
		if got := NormalizeTags(raw); len(got) != 0 {
			t.Errorf("NormalizeTags(%q) = %v, want empty", raw, got)
		}
	}
}

func TestNormalizeTagsNeverReturnsEmptyStrings(t *testing.T) {
	inputs := []string{
		`["a", "", "  ", "b"]`,
		`['a', '', 'b']`,
		`[a,, b,]`,
		`["a", null, false, 0, "b"]`,
		"plain",
	}
	for _, raw := range inputs {
		for _, tag := range NormalizeTags(raw) {
			if tag == "" {
				t.Errorf("NormalizeTags(%q) contains an empty string", raw)
			}
		}
	}
}

func TestNormalizeTagsOrderPreserved(t *testing.T) {
	got := NormalizeTags(`["Zen", "Art Deco", "Bohemian"]`)
	want := []string{"Zen", "Art Deco", "Bohemian"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order not preserved: got %v, want %v", got, want)
	}
}

func TestNormalizeTagsIdempotent(t *testing.T) {
	inputs := []string{
		`["Modern", "Eclectic"]`,
		`['Rustic']`,
		"Coastal",
		"",
	}
	for _, raw := range inputs {
		first := NormalizeTags(raw)
		second := NormalizeTags(raw)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("NormalizeTags(%q) not deterministic: %v vs %v", raw, first, second)
		}
	}

	// Re-normalizing a simple rendered value is a no-op
	single := NormalizeTags("Coastal")
	again := NormalizeTags(JoinTags(single))
	if !reflect.DeepEqual(single, again) {
		t.Errorf("re-normalizing rendering changed result: %v vs %v", single, again)
	}
}

func TestNormalizeTagsQuotedFallbackStripsQuotes(t *testing.T) {
	got := NormalizeTags(`["Modern", "Eclectic"`) // unterminated, not bracket-wrapped
	want := []string{`["Modern", "Eclectic"`}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("non-bracketed value should stay a single tag: got %v, want %v", got, want)
	}
}

func TestNormalizeTagList(t *testing.T) {
	got := NormalizeTagList([]string{" a ", "", "b", "   "})
	want := []string{"a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeTagList = %v, want %v", got, want)
	}
}

func TestMatchesFilterEmptySelection(t *testing.T) {
	if !MatchesFilter("Living Room", nil) {
		t.Error("empty selection must always match")
	}
	if !MatchesFilter("", nil) {
		t.Error("empty selection must match even on empty values")
	}
}

func TestMatchesFilterCaseInsensitive(t *testing.T) {
	if !MatchesFilter("Living Room", []string{"living room", "Office"}) {
		t.Error("expected case-insensitive match for Living Room")
	}
	if MatchesFilter("Bedroom", []string{"living room", "Office"}) {
		t.Error("Bedroom should not match")
	}
}

func TestMatchesFilterIntersectionNotSubset(t *testing.T) {
	// One overlapping tag is enough
	if !MatchesFilter(`["Hallway", "Office"]`, []string{"office"}) {
		t.Error("one overlapping tag should match")
	}
	// Empty raw value never matches a non-empty selection
	if MatchesFilter("", []string{"Office"}) {
		t.Error("empty value should not match a non-empty selection")
	}
}
