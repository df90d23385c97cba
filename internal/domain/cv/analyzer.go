package cv

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrEmptyText signals a client-caused validation failure: the CV text was
// empty or all-whitespace.
var ErrEmptyText = errors.New("cv text is empty")

// AnalysisResult holds the categorized output of one CV analysis. Immutable
// after construction. YearsOfExperience is nil when not inferable (never 0).
type AnalysisResult struct {
	TechnicalSkills      []string
	SoftSkills           []string
	ProgrammingLanguages []string
	Frameworks           []string
	YearsOfExperience    *int
	Summary              string
}

// TotalSkills counts extracted terms across all categories.
func (r AnalysisResult) TotalSkills() int {
	return len(r.TechnicalSkills) + len(r.SoftSkills) + len(r.ProgrammingLanguages) + len(r.Frameworks)
}

// Analyzer runs the registered extractors over CV text and aggregates their
// output by category tag.
type Analyzer struct {
	extractors []Extractor
}

func NewAnalyzer(extractors []Extractor) *Analyzer {
	return &Analyzer{extractors: extractors}
}

// "5 years of experience", "3+ years experience"
var yearsBeforeExperience = regexp.MustCompile(`(?i)(\d+)\s*\+?\s*years?\s*(?:of\s+)?experience`)

// "experience: 5 years", "experience spanning 10 years"
var experienceBeforeYears = regexp.MustCompile(`(?i)experience\D*?(\d+)\s*years?`)

// Analyze invokes every extractor once over cvText and routes each result into
// its category, then derives years of experience and a one-line summary.
func (a *Analyzer) Analyze(cvText, targetRole string) (AnalysisResult, error) {
	if strings.TrimSpace(cvText) == "" {
		return AnalysisResult{}, ErrEmptyText
	}

	res := AnalysisResult{}
	for _, ex := range a.extractors {
		terms := ex.Extract(cvText, targetRole)
		switch ex.Category() {
		case CategoryTechnical:
			res.TechnicalSkills = append(res.TechnicalSkills, terms...)
		case CategorySoft:
			res.SoftSkills = append(res.SoftSkills, terms...)
		case CategoryLanguage:
			res.ProgrammingLanguages = append(res.ProgrammingLanguages, terms...)
		case CategoryFramework:
			res.Frameworks = append(res.Frameworks, terms...)
		}
	}

	res.YearsOfExperience = extractYearsOfExperience(cvText)
	res.Summary = buildSummary(res)
	return res, nil
}

func extractYearsOfExperience(text string) *int {
	for _, re := range []*regexp.Regexp{yearsBeforeExperience, experienceBeforeYears} {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		years, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		return &years
	}
	return nil
}

func buildSummary(res AnalysisResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Identified %d skills", res.TotalSkills())

	if len(res.ProgrammingLanguages) > 0 {
		langs := res.ProgrammingLanguages
		if len(langs) > 3 {
			langs = langs[:3]
		}
		fmt.Fprintf(&sb, ", including %s", strings.Join(langs, ", "))
	}
	if res.YearsOfExperience != nil {
		fmt.Fprintf(&sb, ", with %d years of experience", *res.YearsOfExperience)
	}

	sb.WriteString(".")
	return sb.String()
}
