package matching

// referenceSkillVocabulary lists commonly requested industry skills and tools.
// Terms found in a posting but absent from the CV skill set are reported as
// missing. Detection uses the same substring containment as the extractors.
var referenceSkillVocabulary = []string{
	"C#",
	".NET",
	"Java",
	"Python",
	"JavaScript",
	"TypeScript",
	"React",
	"Angular",
	"SQL",
	"Docker",
	"Kubernetes",
	"Azure",
	"AWS",
	"Linux",
	"Agile",
	"Scrum",
	"CI/CD",
	"REST",
}
