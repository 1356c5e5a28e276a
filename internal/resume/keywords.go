package resume

import "strings"

const DefaultIndustry = "Software Engineering"

var industryKeywords = map[string][]string{
	"Software Engineering": {
		"JavaScript", "Python", "React", "Node.js", "AWS", "Docker", "Kubernetes",
		"Git", "API", "Database", "Agile", "Scrum", "CI/CD", "Microservices",
		"Cloud Computing", "DevOps", "MongoDB", "PostgreSQL", "Redis", "GraphQL",
	},
	"Data Science": {
		"Python", "R", "SQL", "Machine Learning", "Deep Learning", "TensorFlow",
		"PyTorch", "Pandas", "NumPy", "Scikit-learn", "Statistics", "Data Visualization",
		"Tableau", "Power BI", "Jupyter", "Apache Spark", "Hadoop", "Big Data",
	},
	"Digital Marketing": {
		"SEO", "SEM", "Google Analytics", "Facebook Ads", "Google Ads", "Content Marketing",
		"Social Media Marketing", "Email Marketing", "Conversion Optimization", "A/B Testing",
		"Marketing Automation", "CRM", "Lead Generation", "Brand Management",
	},
	"Product Management": {
		"Product Strategy", "Roadmap Planning", "User Research", "A/B Testing", "Analytics",
		"Agile", "Scrum", "JIRA", "Product Launch", "Stakeholder Management",
		"Market Research", "Competitive Analysis", "UX/UI", "KPIs", "OKRs",
	},
	"Finance": {
		"Financial Analysis", "Excel", "Financial Modeling", "Valuation", "Risk Management",
		"Investment Banking", "Portfolio Management", "Accounting", "GAAP", "CFA",
		"Bloomberg", "SQL", "Python", "Derivatives", "Fixed Income",
	},
}

// KeywordsFor returns the keyword list for an industry, matched
// case-insensitively. Unknown industries get the software list.
func KeywordsFor(industry string) []string {
	for name, kws := range industryKeywords {
		if strings.EqualFold(name, strings.TrimSpace(industry)) {
			return kws
		}
	}
	return industryKeywords[DefaultIndustry]
}
