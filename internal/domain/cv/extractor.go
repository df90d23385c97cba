package cv

import "strings"

// Category identifies the analysis bucket an extractor feeds. Routing is done
// by this tag, never by inspecting the concrete extractor type.
type Category string

const (
	CategoryTechnical Category = "technical"
	CategorySoft      Category = "soft"
	CategoryLanguage  Category = "programming_language"
	CategoryFramework Category = "framework"
)

// Extractor scans raw CV text for terms of a single skill category.
// Implementations are stateless and never fail; blank input yields no terms.
// targetRole is accepted for forward compatibility and unused by the
// vocabulary extractors.
type Extractor interface {
	Extract(cvText, targetRole string) []string
	Category() Category
}

type vocabularyExtractor struct {
	category Category
	terms    []string
}

func newVocabularyExtractor(category Category, terms []string) *vocabularyExtractor {
	return &vocabularyExtractor{category: category, terms: terms}
}

func (e *vocabularyExtractor) Category() Category { return e.category }

// Extract returns every vocabulary term contained in cvText, deduplicated, in
// vocabulary order. Matching is plain case-insensitive substring containment;
// a term that happens to sit inside an unrelated word still matches. Known
// limitation, kept as-is.
func (e *vocabularyExtractor) Extract(cvText, _ string) []string {
	if strings.TrimSpace(cvText) == "" {
		return nil
	}

	lower := strings.ToLower(cvText)
	found := make([]string, 0, len(e.terms))
	seen := make(map[string]struct{}, len(e.terms))
	for _, term := range e.terms {
		key := strings.ToLower(term)
		if _, dup := seen[key]; dup {
			continue
		}
		if strings.Contains(lower, key) {
			seen[key] = struct{}{}
			found = append(found, term)
		}
	}
	return found
}

func NewTechnicalSkillExtractor() Extractor {
	return newVocabularyExtractor(CategoryTechnical, technicalSkillVocabulary)
}

func NewSoftSkillExtractor() Extractor {
	return newVocabularyExtractor(CategorySoft, softSkillVocabulary)
}

func NewProgrammingLanguageExtractor() Extractor {
	return newVocabularyExtractor(CategoryLanguage, programmingLanguageVocabulary)
}

func NewFrameworkExtractor() Extractor {
	return newVocabularyExtractor(CategoryFramework, frameworkVocabulary)
}

// DefaultExtractors returns one extractor per category, in the order their
// output is flattened for matching.
func DefaultExtractors() []Extractor {
	return []Extractor{
		NewTechnicalSkillExtractor(),
		NewProgrammingLanguageExtractor(),
		NewFrameworkExtractor(),
		NewSoftSkillExtractor(),
	}
}
