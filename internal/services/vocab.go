package services

// SkillsList is the fixed vocabulary scanned against resume text. All
// entries are lowercase; matching is substring containment, so short
// entries like "r" or "ai" can fire inside longer words. Initialized
// once, never mutated, safe for concurrent reads.
var SkillsList = []string{
	// Programming languages
	"python", "java", "javascript", "c++", "c#", "php", "ruby", "swift",
	"kotlin", "go", "rust", "typescript", "r", "matlab", "scala",

	// Web technologies
	"html", "css", "react", "angular", "vue", "nodejs", "node.js",
	"django", "flask", "fastapi", "express", "spring", "asp.net",

	// Databases
	"sql", "mysql", "postgresql", "mongodb", "redis", "oracle",
	"sqlite", "cassandra", "dynamodb",

	// Cloud & DevOps
	"aws", "azure", "gcp", "google cloud", "docker", "kubernetes",
	"jenkins", "git", "github", "gitlab", "ci/cd", "terraform",

	// Data science & ML
	"machine learning", "deep learning", "data analysis", "data science",
	"artificial intelligence", "ai", "ml", "nlp", "computer vision",
	"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch", "keras",

	// Tools & other
	"excel", "power bi", "tableau", "jira", "agile", "scrum",
	"rest api", "graphql", "microservices", "linux", "windows",

	// Soft skills
	"leadership", "communication", "teamwork", "problem solving",
	"project management", "analytical thinking",
}

// ImportantKeywords is the second, smaller vocabulary used only for
// job/resume keyword matching. It overlaps SkillsList but is kept as a
// separate list on purpose.
var ImportantKeywords = []string{
	"python", "java", "javascript", "react", "angular", "vue",
	"django", "flask", "spring", "nodejs", "sql", "nosql",
	"aws", "azure", "docker", "kubernetes", "git", "agile",
	"machine learning", "data analysis", "api", "microservices",
	"leadership", "communication", "teamwork", "problem solving",
}
