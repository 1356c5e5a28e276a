package resume

import (
	"encoding/json"
	"strconv"
	"strings"
)

type Section struct {
	Score        int      `json:"score"`
	Feedback     []string `json:"feedback"`
	Improvements []string `json:"improvements"`
}

type KeywordSection struct {
	Score           int      `json:"score"`
	MatchedKeywords []string `json:"matchedKeywords"`
	MissingKeywords []string `json:"missingKeywords"`
	Feedback        []string `json:"feedback"`
}

type Sections struct {
	ATSCompatibility    Section        `json:"atsCompatibility"`
	ContentQuality      Section        `json:"contentQuality"`
	KeywordOptimization KeywordSection `json:"keywordOptimization"`
	Formatting          Section        `json:"formatting"`
	ExperienceRelevance Section        `json:"experienceRelevance"`
}

type DetailedAnalysis struct {
	Strengths          []string `json:"strengths"`
	Weaknesses         []string `json:"weaknesses"`
	Recommendations    []string `json:"recommendations"`
	IndustryComparison string   `json:"industryComparison"`
}

type PersonalInfo struct {
	Name     flexString `json:"name,omitempty"`
	Email    flexString `json:"email,omitempty"`
	Phone    flexString `json:"phone,omitempty"`
	Location flexString `json:"location,omitempty"`
	LinkedIn flexString `json:"linkedin,omitempty"`
	GitHub   flexString `json:"github,omitempty"`
}

type Experience struct {
	Title       flexString `json:"title"`
	Company     flexString `json:"company"`
	Duration    flexString `json:"duration"`
	Description flexString `json:"description"`
}

type Education struct {
	Degree flexString `json:"degree"`
	School flexString `json:"school"`
	Year   flexString `json:"year"`
	GPA    flexString `json:"gpa,omitempty"`
}

// ExtractedData is the structured view of a resume.
type ExtractedData struct {
	PersonalInfo   PersonalInfo `json:"personalInfo"`
	Skills         []string     `json:"skills"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	Certifications []string     `json:"certifications"`
}

func emptyExtraction() ExtractedData {
	return ExtractedData{
		Skills:         []string{},
		Experience:     []Experience{},
		Education:      []Education{},
		Certifications: []string{},
	}
}

// Analysis is the full ATS report for one resume.
type Analysis struct {
	OverallScore     int              `json:"overallScore"`
	Sections         Sections         `json:"sections"`
	DetailedAnalysis DetailedAnalysis `json:"detailedAnalysis"`
	ExtractedData    ExtractedData    `json:"extractedData"`
}

// flexString accepts a JSON string, number or boolean. Models often send
// years and GPAs as numbers.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	switch {
	case s == "null":
		*f = ""
	case strings.HasPrefix(s, `"`):
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*f = flexString(v)
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err == nil {
			*f = flexString(n.String())
			return nil
		}
		v, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		*f = flexString(strconv.FormatBool(v))
	}
	return nil
}
