package cv

// Fixed, compiled-in vocabularies. Treated as data; swap for a
// configuration-loaded set if runtime extensibility is ever needed.

var technicalSkillVocabulary = []string{
	"SQL",
	"Docker",
	"Kubernetes",
	"Git",
	"Azure",
	"AWS",
	"Google Cloud",
	"Linux",
	"REST",
	"GraphQL",
	"CI/CD",
	"Terraform",
	"Microservices",
	"Unit Testing",
	"Agile",
	"Scrum",
}

var programmingLanguageVocabulary = []string{
	"C#",
	"Java",
	"Python",
	"JavaScript",
	"TypeScript",
	"Go",
	"Rust",
	"C++",
	"PHP",
	"Ruby",
	"Kotlin",
	"Swift",
}

var frameworkVocabulary = []string{
	".NET",
	"ASP.NET",
	"Blazor",
	"Entity Framework",
	"React",
	"Angular",
	"Vue",
	"Spring",
	"Django",
	"Flask",
	"Node.js",
	"Express",
}

var softSkillVocabulary = []string{
	"teamwork",
	"communication",
	"leadership",
	"problem solving",
	"mentoring",
	"time management",
	"adaptability",
	"collaboration",
}
