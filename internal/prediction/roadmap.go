package prediction

import (
	"net/url"
	"strings"

	"github.com/yourusername/careerradar-api/internal/model"
)

var learningPlatforms = []model.LearningPlatform{
	{Name: "freeCodeCamp", URL: "https://www.freecodecamp.org", Description: "Free coding bootcamp with hands-on projects",
		Specialization: []string{"Web Development", "JavaScript", "Python", "Data Science"}},
	{Name: "Coursera", URL: "https://www.coursera.org", Description: "University-level courses from top institutions",
		Specialization: []string{"Machine Learning", "Data Science", "Cloud Computing", "AI"}},
	{Name: "Udemy", URL: "https://www.udemy.com", Description: "Practical courses for all skill levels",
		Specialization: []string{"Programming", "Web Development", "Mobile Development", "DevOps"}},
	{Name: "Pluralsight", URL: "https://www.pluralsight.com", Description: "Technology skills platform for professionals",
		Specialization: []string{"Cloud Platforms", "Software Development", "IT Operations", "Security"}},
	{Name: "edX", URL: "https://www.edx.org", Description: "University-level courses and certifications",
		Specialization: []string{"Computer Science", "AI", "Data Analysis", "Engineering"}},
	{Name: "Codecademy", URL: "https://www.codecademy.com", Description: "Interactive coding lessons and projects",
		Specialization: []string{"Programming Languages", "Web Development", "Data Science", "Computer Science"}},
}

var courseCatalog = map[string][]model.Course{
	"javascript": {
		{Title: "The Complete JavaScript Course", Provider: "Udemy", URL: "https://www.udemy.com/course/the-complete-javascript-course/", Duration: "69 hours", Level: "Beginner to Advanced", Price: "Paid"},
		{Title: "JavaScript Algorithms and Data Structures", Provider: "freeCodeCamp", URL: "https://www.freecodecamp.org/learn/javascript-algorithms-and-data-structures/", Duration: "300 hours", Level: "Intermediate", Price: "Free"},
		{Title: "Modern JavaScript From The Beginning", Provider: "Udemy", URL: "https://www.udemy.com/course/modern-javascript-from-the-beginning/", Duration: "37 hours", Level: "Beginner", Price: "Paid"},
	},
	"python": {
		{Title: "Python for Everybody Specialization", Provider: "Coursera", URL: "https://www.coursera.org/specializations/python", Duration: "8 months", Level: "Beginner", Price: "Free/Paid Certificate"},
		{Title: "Complete Python Bootcamp", Provider: "Udemy", URL: "https://www.udemy.com/course/complete-python-bootcamp/", Duration: "22 hours", Level: "Beginner to Advanced", Price: "Paid"},
		{Title: "Scientific Computing with Python", Provider: "freeCodeCamp", URL: "https://www.freecodecamp.org/learn/scientific-computing-with-python/", Duration: "300 hours", Level: "Intermediate", Price: "Free"},
	},
	"react": {
		{Title: "React - The Complete Guide", Provider: "Udemy", URL: "https://www.udemy.com/course/react-the-complete-guide-incl-redux/", Duration: "48 hours", Level: "Beginner to Advanced", Price: "Paid"},
		{Title: "Front End Development Libraries", Provider: "freeCodeCamp", URL: "https://www.freecodecamp.org/learn/front-end-development-libraries/", Duration: "300 hours", Level: "Intermediate", Price: "Free"},
		{Title: "React Specialization", Provider: "Coursera", URL: "https://www.coursera.org/specializations/react", Duration: "6 months", Level: "Intermediate", Price: "Free/Paid Certificate"},
	},
	"machine learning": {
		{Title: "Machine Learning Course", Provider: "Coursera", URL: "https://www.coursera.org/learn/machine-learning", Duration: "11 weeks", Level: "Intermediate", Price: "Free/Paid Certificate"},
		{Title: "Machine Learning A-Z", Provider: "Udemy", URL: "https://www.udemy.com/course/machinelearning/", Duration: "44 hours", Level: "Beginner to Advanced", Price: "Paid"},
		{Title: "Machine Learning with Python", Provider: "freeCodeCamp", URL: "https://www.freecodecamp.org/learn/machine-learning-with-python/", Duration: "300 hours", Level: "Advanced", Price: "Free"},
	},
	"node.js": {
		{Title: "The Complete Node.js Developer Course", Provider: "Udemy", URL: "https://www.udemy.com/course/the-complete-nodejs-developer-course-2/", Duration: "35 hours", Level: "Beginner to Advanced", Price: "Paid"},
		{Title: "APIs and Microservices", Provider: "freeCodeCamp", URL: "https://www.freecodecamp.org/learn/apis-and-microservices/", Duration: "300 hours", Level: "Intermediate", Price: "Free"},
	},
}

// BuildRoadmap attaches courses to each skill gap and merges in the
// videos already fetched for the learning-resource analysis.
func BuildRoadmap(gaps []model.SkillGap, videos []model.SkillVideos) model.LearningRoadmap {
	courses := make([]model.SkillCourses, 0, len(gaps))
	for _, g := range gaps {
		courses = append(courses, model.SkillCourses{Skill: g.Skill, Courses: coursesFor(g.Skill)})
	}

	if videos == nil {
		videos = []model.SkillVideos{}
	}

	return model.LearningRoadmap{
		RecommendedCourses: courses,
		YoutubeVideos:      videos,
		LearningPlatforms:  append([]model.LearningPlatform(nil), learningPlatforms...),
	}
}

func coursesFor(skill string) []model.Course {
	if c, ok := courseCatalog[strings.ToLower(strings.TrimSpace(skill))]; ok {
		return append([]model.Course(nil), c...)
	}
	return []model.Course{
		{Title: "Complete " + skill + " Course", Provider: "Udemy",
			URL:      "https://www.udemy.com/courses/search/?q=" + url.QueryEscape(skill),
			Duration: "20-40 hours", Level: "All Levels", Price: "Paid"},
		{Title: skill + " Documentation & Tutorials", Provider: "Official Docs",
			URL:      "https://www.google.com/search?q=" + url.QueryEscape(skill+" official documentation"),
			Duration: "Self-paced", Level: "All Levels", Price: "Free"},
		{Title: skill + " Free Course", Provider: "freeCodeCamp",
			URL:      "https://www.youtube.com/results?search_query=" + url.QueryEscape(skill+" freeCodeCamp"),
			Duration: "Varies", Level: "Beginner to Advanced", Price: "Free"},
	}
}
