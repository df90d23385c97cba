package cv

import "testing"

func TestVocabularyExtractor_SubstringMatching(t *testing.T) {
	ex := NewProgrammingLanguageExtractor()

	got := ex.Extract("Senior C# developer, also writes Python and some JavaScript", "")

	// "Java" matches inside "JavaScript": containment is intentionally naive.
	want := []string{"C#", "Java", "Python", "JavaScript"}
	if len(got) != len(want) {
		t.Fatalf("expected %d terms, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestVocabularyExtractor_CaseInsensitive(t *testing.T) {
	ex := NewTechnicalSkillExtractor()

	got := ex.Extract("experience with DOCKER and docker and sql", "")

	if len(got) != 2 {
		t.Fatalf("expected 2 deduplicated terms, got %v", got)
	}
	if got[0] != "SQL" || got[1] != "Docker" {
		t.Fatalf("expected display form from vocabulary in vocabulary order, got %v", got)
	}
}

func TestVocabularyExtractor_BlankInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t "} {
		if got := NewFrameworkExtractor().Extract(input, ""); len(got) != 0 {
			t.Fatalf("expected no terms for blank input %q, got %v", input, got)
		}
	}
}

func TestVocabularyExtractor_TargetRoleIgnored(t *testing.T) {
	ex := NewTechnicalSkillExtractor()

	a := ex.Extract("Docker and SQL", "")
	b := ex.Extract("Docker and SQL", "platform engineer")

	if len(a) != len(b) {
		t.Fatalf("target role must not affect extraction: %v vs %v", a, b)
	}
}

func TestVocabularyExtractor_OrderIndependentSet(t *testing.T) {
	terms := []string{"SQL", "Docker", "Kubernetes", "Git"}
	reversed := []string{"Git", "Kubernetes", "Docker", "SQL"}

	text := "We use Docker, Kubernetes and Git daily."

	setOf := func(items []string) map[string]struct{} {
		set := make(map[string]struct{}, len(items))
		for _, it := range items {
			set[it] = struct{}{}
		}
		return set
	}

	a := setOf(newVocabularyExtractor(CategoryTechnical, terms).Extract(text, ""))
	b := setOf(newVocabularyExtractor(CategoryTechnical, reversed).Extract(text, ""))

	if len(a) != len(b) {
		t.Fatalf("vocabulary order changed the matched set: %v vs %v", a, b)
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			t.Fatalf("term %q missing after vocabulary reorder", k)
		}
	}
}
