package matching

import (
	"fmt"
	"sort"
	"strings"

	"cv-match/internal/domain/job"
)

const (
	frequencyBonusCapPerSkill = 5
	missingPenaltyPerSkill    = 5
	missingPenaltyCap         = 30
)

// SkillFrequencyStrategy is the default strategy. It rewards skills that the
// posting mentions repeatedly and penalizes commonly requested skills the CV
// lacks.
type SkillFrequencyStrategy struct {
	reference []string
}

func NewSkillFrequencyStrategy() *SkillFrequencyStrategy {
	return &SkillFrequencyStrategy{reference: referenceSkillVocabulary}
}

func (s *SkillFrequencyStrategy) Name() string { return "skill_frequency" }

func (s *SkillFrequencyStrategy) CalculateMatch(cvSkills []string, posting job.Posting) Outcome {
	searchText := strings.ToLower(posting.Headline + " " + posting.Description)

	type skillFrequency struct {
		name  string
		count int
	}

	matched := make([]string, 0, len(cvSkills))
	frequencies := make([]skillFrequency, 0, len(cvSkills))
	counted := make(map[string]struct{}, len(cvSkills))
	bonus := 0
	for _, skill := range cvSkills {
		count := countOccurrences(searchText, strings.ToLower(skill))
		if count == 0 {
			continue
		}
		matched = append(matched, skill)
		extra := count - 1
		if extra > frequencyBonusCapPerSkill {
			extra = frequencyBonusCapPerSkill
		}
		bonus += extra
		if _, dup := counted[strings.ToLower(skill)]; !dup {
			counted[strings.ToLower(skill)] = struct{}{}
			frequencies = append(frequencies, skillFrequency{name: skill, count: count})
		}
	}

	missing := make([]string, 0)
	for _, ref := range s.reference {
		if !strings.Contains(searchText, strings.ToLower(ref)) {
			continue
		}
		if containsFold(cvSkills, ref) {
			continue
		}
		missing = append(missing, ref)
	}

	base := 0
	if len(cvSkills) > 0 {
		base = 100 * len(matched) / len(cvSkills)
	}
	penalty := len(missing) * missingPenaltyPerSkill
	if penalty > missingPenaltyCap {
		penalty = missingPenaltyCap
	}
	score := clampScore(base + bonus - penalty)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d of %d skills matched (%d%%).", len(matched), len(cvSkills), base)

	repeated := false
	for _, f := range frequencies {
		if f.count > 1 {
			repeated = true
			break
		}
	}
	if repeated {
		sort.SliceStable(frequencies, func(i, j int) bool { return frequencies[i].count > frequencies[j].count })
		top := frequencies
		if len(top) > 3 {
			top = top[:3]
		}
		parts := make([]string, 0, len(top))
		for _, f := range top {
			parts = append(parts, fmt.Sprintf("%s (%dx)", f.name, f.count))
		}
		fmt.Fprintf(&sb, " Frequently mentioned: %s.", strings.Join(parts, ", "))
	}

	if len(missing) > 0 {
		fmt.Fprintf(&sb, " %d relevant skills missing from the CV.", len(missing))
	} else if len(matched) > 0 {
		sb.WriteString(" No relevant skills missing.")
	}

	return Outcome{
		Job:           posting,
		Score:         score,
		MatchedSkills: matched,
		MissingSkills: missing,
		Explanation:   sb.String(),
	}
}

// countOccurrences counts non-overlapping occurrences of term in text,
// advancing past each match by the term's length.
func countOccurrences(text, term string) int {
	if term == "" {
		return 0
	}
	count := 0
	for idx := 0; ; {
		i := strings.Index(text[idx:], term)
		if i < 0 {
			return count
		}
		count++
		idx += i + len(term)
	}
}

func containsFold(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.EqualFold(s, needle) {
			return true
		}
	}
	return false
}
