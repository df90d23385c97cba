package dto

type CvAnalysisResponse struct {
	TechnicalSkills      []string `json:"technical_skills"`
	SoftSkills           []string `json:"soft_skills"`
	ProgrammingLanguages []string `json:"programming_languages"`
	Frameworks           []string `json:"frameworks"`
	YearsOfExperience    *int     `json:"years_of_experience,omitempty"`
	Summary              string   `json:"summary"`
}
