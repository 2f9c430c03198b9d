package parsing

// SkillCategory groups a named bucket of canonical skill labels.
type SkillCategory struct {
	Name   string
	Skills []string
}

// DegreeKeyword maps a degree keyword to its ordinal education level. Two-letter
// abbreviations that double as common English words ("be", "ma") carry their
// dotted form so prose never reads as a degree.
type DegreeKeyword struct {
	Keyword string
	Level   int
}

// DomainVocab holds the keyword list for one industry domain.
type DomainVocab struct {
	Name     string
	Keywords []string
}

// Vocabulary is the immutable lookup data the parser works from. It is built once at
// process start and shared across requests; nothing mutates it after construction.
type Vocabulary struct {
	SkillCategories   []SkillCategory
	DegreeKeywords    []DegreeKeyword
	Domains           []DomainVocab
	TitleKeywords     []string
	InstitutionWords  []string
	ProfessionalVerbs []string
}

// DefaultVocabulary returns the built-in skill, education, and domain tables.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		SkillCategories: []SkillCategory{
			{Name: "programming", Skills: []string{"Python", "Java", "JavaScript", "TypeScript", "C++", "C#", "Ruby", "PHP", "Swift", "Kotlin", "Go", "Rust", "Scala", "R"}},
			{Name: "web", Skills: []string{"HTML", "CSS", "React", "Angular", "Vue.js", "Node.js", "Express", "Django", "Flask", "Spring", "ASP.NET", "jQuery", "Bootstrap", "Tailwind"}},
			{Name: "database", Skills: []string{"SQL", "MySQL", "PostgreSQL", "MongoDB", "Redis", "Oracle", "MS SQL Server", "SQLite", "Cassandra", "DynamoDB"}},
			{Name: "cloud", Skills: []string{"AWS", "Azure", "Google Cloud", "GCP", "Heroku", "DigitalOcean", "Firebase", "Kubernetes", "Docker", "Jenkins"}},
			{Name: "data_science", Skills: []string{"Machine Learning", "Deep Learning", "TensorFlow", "PyTorch", "Keras", "Pandas", "NumPy", "Scikit-learn", "NLP", "Computer Vision"}},
			{Name: "tools", Skills: []string{"Git", "GitHub", "GitLab", "Jira", "Agile", "Scrum", "CI/CD", "REST API", "GraphQL", "Microservices"}},
			{Name: "marketing", Skills: []string{"SEO", "SEM", "Google Analytics", "Content Marketing", "Social Media Marketing", "Email Marketing", "PPC", "Facebook Ads", "Google Ads"}},
			{Name: "design", Skills: []string{"Photoshop", "Illustrator", "Figma", "Sketch", "Adobe XD", "UI/UX", "InDesign", "CorelDRAW"}},
			{Name: "business", Skills: []string{"Project Management", "Business Analysis", "Financial Analysis", "Strategic Planning", "Budgeting", "Forecasting", "Leadership"}},
		},
		DegreeKeywords: []DegreeKeyword{
			{"phd", 5},
			{"doctorate", 5},
			{"ph.d", 5},
			{"master", 4},
			{"mba", 4},
			{"msc", 4},
			{"m.a.", 4},
			{"bachelor", 3},
			{"bsc", 3},
			{"ba", 3},
			{"btech", 3},
			{"b.e.", 3},
			{"associate", 2},
			{"diploma", 2},
			{"high school", 1},
			{"secondary", 1},
		},
		Domains: []DomainVocab{
			{Name: "IT", Keywords: []string{"software", "developer", "programmer", "engineer", "coding", "technology", "systems", "database", "cloud", "devops", "frontend", "backend", "fullstack"}},
			{Name: "Data Science", Keywords: []string{"data scientist", "machine learning", "ai", "artificial intelligence", "analytics", "statistics", "data mining", "deep learning"}},
			{Name: "Marketing", Keywords: []string{"marketing", "advertising", "branding", "campaigns", "social media", "content", "seo", "sem", "digital marketing"}},
			{Name: "Finance", Keywords: []string{"finance", "accounting", "investment", "banking", "financial analysis", "auditing", "taxation", "economics"}},
			{Name: "HR", Keywords: []string{"human resources", "recruitment", "talent acquisition", "hr management", "employee relations", "payroll", "compensation"}},
			{Name: "Sales", Keywords: []string{"sales", "business development", "account management", "client relations", "revenue", "lead generation", "crm"}},
			{Name: "Design", Keywords: []string{"designer", "ui/ux", "graphic design", "visual design", "creative", "illustration", "branding", "typography"}},
			{Name: "Management", Keywords: []string{"manager", "director", "executive", "leadership", "strategy", "planning", "operations", "team lead"}},
		},
		TitleKeywords: []string{
			"developer", "engineer", "manager", "analyst", "designer",
			"specialist", "consultant", "director", "lead", "architect",
			"intern", "associate", "senior", "junior", "trainee",
		},
		InstitutionWords: []string{"university", "college", "institute", "school"},
		ProfessionalVerbs: []string{
			"experience", "developed", "managed", "led", "created",
			"implemented", "designed", "analyzed", "coordinated",
		},
	}
}

// AllSkills flattens the category table into a single ordered list.
func (v *Vocabulary) AllSkills() []string {
	var out []string
	for _, cat := range v.SkillCategories {
		out = append(out, cat.Skills...)
	}
	return out
}

// CategoryOf returns the category name a canonical skill belongs to, or "".
func (v *Vocabulary) CategoryOf(skill string) string {
	for _, cat := range v.SkillCategories {
		for _, s := range cat.Skills {
			if s == skill {
				return cat.Name
			}
		}
	}
	return ""
}
