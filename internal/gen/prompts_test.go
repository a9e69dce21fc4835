package gen

import (
	"strings"
	"testing"
)

func TestSectionDeepDiveIsDeterministic(t *testing.T) {
	a := SectionDeepDive("Find Your Spark", "Where it begins.")
	b := SectionDeepDive("Find Your Spark", "Where it begins.")
	if a != b {
		t.Error("SectionDeepDive is not deterministic for identical inputs")
	}
	if !strings.Contains(a, "Find Your Spark") || !strings.Contains(a, "Where it begins.") {
		t.Errorf("prompt %q does not interpolate title and summary", a)
	}
}

func TestSectionDeepDiveToneConstraints(t *testing.T) {
	p := SectionDeepDive("t", "s")
	if !strings.Contains(p, "two short paragraphs") {
		t.Errorf("prompt %q missing the paragraph bound", p)
	}
	if !strings.Contains(p, "negative framing") {
		t.Errorf("prompt %q missing the tone constraint", p)
	}
}

func TestIconImageRequestsSquareAsset(t *testing.T) {
	p := IconImage("Momentum")
	if !strings.Contains(p, "Momentum") {
		t.Errorf("prompt %q does not interpolate the phase label", p)
	}
	if !strings.Contains(p, "square") {
		t.Errorf("prompt %q does not request a square asset", p)
	}
}

func TestVisionStatementListsTitlesInOrder(t *testing.T) {
	p := VisionStatement([]string{"First", "Second", "Third"})
	i1 := strings.Index(p, "First")
	i2 := strings.Index(p, "Second")
	i3 := strings.Index(p, "Third")
	if i1 < 0 || i2 < 0 || i3 < 0 || !(i1 < i2 && i2 < i3) {
		t.Errorf("prompt %q does not list titles in page order", p)
	}
	if !strings.Contains(p, "3 to 4 sentences") {
		t.Errorf("prompt %q missing the sentence bound", p)
	}
}

func TestVisionStatementEmptyTitles(t *testing.T) {
	// Inputs are always well-formed page text or empty; empty must not panic.
	if VisionStatement(nil) == "" {
		t.Error("VisionStatement(nil) returned an empty prompt")
	}
}
