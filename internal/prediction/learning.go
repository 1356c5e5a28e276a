package prediction

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/yourusername/careerradar-api/internal/model"
)

const (
	maxLearningSkills = 5
	maxSkillVideos    = 6
	defaultDifficulty = 60
)

// LearningData is the Learning-Resource Collector output.
type LearningData struct {
	Resources  []model.LearningResource
	Difficulty map[string]int
	Videos     []model.SkillVideos
}

var difficultyTiers = []struct {
	weight   int
	keywords []string
}{
	{90, []string{"beginner", "basic", "intro", "getting started", "fundamentals", "crash course", "tutorial"}},
	{60, []string{"intermediate", "advanced beginner", "next level", "deep dive", "complete guide"}},
	{30, []string{"advanced", "expert", "master", "complex", "optimization", "architecture", "production"}},
}

func videoQueries(skill string, year int) []string {
	return []string{
		fmt.Sprintf("%s tutorial %d beginners", skill, year),
		fmt.Sprintf("%s complete course", skill),
		fmt.Sprintf("learn %s step by step", skill),
		fmt.Sprintf("%s project tutorial", skill),
	}
}

// learningSkills merges the user's skills with the top trending terms,
// dropping case-insensitive duplicates, and keeps the first five.
func learningSkills(current, trending []string) []string {
	candidates := append([]string{}, current...)
	if len(trending) > 3 {
		trending = trending[:3]
	}
	candidates = append(candidates, trending...)

	seen := make(map[string]bool)
	var out []string
	for _, s := range candidates {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
		if len(out) == maxLearningSkills {
			break
		}
	}
	return out
}

// collectLearningResources never fails: a skill whose lookups error out
// gets the canned videos and the default difficulty.
func collectLearningResources(ctx context.Context, vs VideoSearcher, skills []string, year int) *LearningData {
	data := &LearningData{Difficulty: make(map[string]int)}

	for _, skill := range skills {
		videos, err := skillVideos(ctx, vs, skill, year)
		if err != nil {
			log.Warn().Err(err).Str("skill", skill).Msg("Video lookup failed, using fallback videos")
			data.Difficulty[skill] = defaultDifficulty
			data.Videos = append(data.Videos, model.SkillVideos{Skill: skill, Videos: fallbackVideos(skill)})
			continue
		}
		if len(videos) == 0 {
			continue
		}

		difficulty := learningDifficulty(videos)
		data.Difficulty[skill] = difficulty
		data.Videos = append(data.Videos, model.SkillVideos{Skill: skill, Videos: videos})

		var views int64
		for _, v := range videos {
			views += v.ViewCount
		}
		data.Resources = append(data.Resources, model.LearningResource{
			Skill:           skill,
			VideoCount:      len(videos),
			TotalViews:      views,
			DifficultyScore: difficulty,
			PopularChannels: popularChannels(videos, 3),
		})
	}

	log.Info().
		Int("skills", len(skills)).
		Int("resources", len(data.Resources)).
		Msg("Learning resource collection complete")

	return data
}

// skillVideos returns the most viewed videos across all queries for a skill.
func skillVideos(ctx context.Context, vs VideoSearcher, skill string, year int) ([]model.Video, error) {
	if vs == nil {
		return nil, fmt.Errorf("video search not configured")
	}

	seen := make(map[string]bool)
	var all []model.Video
	for _, q := range videoQueries(skill, year) {
		ids, err := vs.SearchVideoIDs(ctx, q)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			continue
		}
		videos, err := vs.VideoDetails(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, v := range videos {
			if v.VideoID != "" && seen[v.VideoID] {
				continue
			}
			seen[v.VideoID] = true
			all = append(all, v)
		}
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].ViewCount > all[j].ViewCount })
	if len(all) > maxSkillVideos {
		all = all[:maxSkillVideos]
	}
	return all, nil
}

// learningDifficulty scores 0-100, higher meaning easier to pick up.
// Each video counts toward the first tier whose keywords it mentions.
func learningDifficulty(videos []model.Video) int {
	total, sum := 0, 0
	for _, v := range videos {
		content := strings.ToLower(v.Title + " " + v.Description)
	tiers:
		for _, tier := range difficultyTiers {
			for _, kw := range tier.keywords {
				if strings.Contains(content, kw) {
					total++
					sum += tier.weight
					break tiers
				}
			}
		}
	}
	if total == 0 {
		return defaultDifficulty
	}
	return int(float64(sum)/float64(total) + 0.5)
}

func popularChannels(videos []model.Video, n int) []string {
	seen := make(map[string]bool)
	channels := []string{}
	for _, v := range videos {
		if v.ChannelTitle == "" || seen[v.ChannelTitle] {
			continue
		}
		seen[v.ChannelTitle] = true
		channels = append(channels, v.ChannelTitle)
		if len(channels) == n {
			break
		}
	}
	return channels
}

var cannedVideos = map[string][]model.Video{
	"javascript": {
		{Title: "JavaScript Full Course for Beginners", ChannelTitle: "freeCodeCamp.org", VideoID: "PkZNo7MFNFg", Duration: "8:38:00"},
		{Title: "JavaScript Crash Course For Beginners", ChannelTitle: "Traversy Media", VideoID: "hdI2bqOjy3c", Duration: "1:40:25"},
	},
	"python": {
		{Title: "Python Full Course for Beginners", ChannelTitle: "Programming with Mosh", VideoID: "_uQrJ0TkZlc", Duration: "6:14:07"},
		{Title: "Python Tutorial for Beginners", ChannelTitle: "freeCodeCamp.org", VideoID: "rfscVS0vtbw", Duration: "4:26:52"},
	},
	"react": {
		{Title: "React Course - Beginner's Tutorial", ChannelTitle: "freeCodeCamp.org", VideoID: "bMknfKXIFA8", Duration: "11:55:27"},
		{Title: "React JS Crash Course", ChannelTitle: "Traversy Media", VideoID: "w7ejDZ8SWv8", Duration: "1:48:49"},
	},
}

func fallbackVideos(skill string) []model.Video {
	if videos, ok := cannedVideos[strings.ToLower(skill)]; ok {
		return append([]model.Video(nil), videos...)
	}
	return []model.Video{
		{Title: fmt.Sprintf("Learn %s - Complete Tutorial", skill), ChannelTitle: "Tech Academy", Duration: "2:30:00"},
		{Title: fmt.Sprintf("%s Crash Course", skill), ChannelTitle: "Code Master", Duration: "1:45:00"},
	}
}
