package catalog

import (
	"sort"
	"strings"

	"github.com/phrazzld/polyglot-api/internal/domain"
)

type lessonTemplate struct {
	id, title, description string
	level                  domain.Level
}

type chapterTemplate struct {
	id, title, description string
	lessons                []lessonTemplate
}

// Every course shares the same syllabus; only the greeting videos differ.
var syllabus = []chapterTemplate{
	{"1", "Fundamentals", "Master the basics of %s", []lessonTemplate{
		{"1.1", "Basic Greetings", "Essential %s greetings", domain.LevelA1},
		{"1.2", "Numbers & Counting", "Numbers 1-100", domain.LevelA1},
		{"1.3", "Calendar & Time", "Days, months, and time", domain.LevelA1},
	}},
	{"2", "Daily Communication", "Essential everyday conversations", []lessonTemplate{
		{"2.1", "Self Introduction", "Introduce yourself confidently", domain.LevelA1},
		{"2.2", "Family & Relations", "Talk about your family", domain.LevelA1},
		{"2.3", "Daily Activities", "Describe your routine", domain.LevelA2},
	}},
	{"3", "Practical Skills", "Real-world language applications", []lessonTemplate{
		{"3.1", "Shopping & Money", "Shopping conversations", domain.LevelA2},
		{"3.2", "Directions & Travel", "Navigate with confidence", domain.LevelA2},
		{"3.3", "Food & Dining", "Restaurant vocabulary", domain.LevelA2},
	}},
}

var greetingVideos = map[string][]domain.VideoOption{
	"es": {
		{ID: "TZ0bPXFHiiY", Title: "Spanish Lesson 1: Greetings"},
		{ID: "j91m55N7e9I", Title: "Learn Spanish 1.1 - Greetings and Introductions"},
		{ID: "R865tE-jkcM", Title: "Basic Spanish Greetings - Part 1"},
		{ID: "zYEzw29zNms", Title: "Lesson 1 - Basic Greeting in Spanish"},
		{ID: "hq_ci0u45_k", Title: "Learn Spanish Greetings for Beginners"},
	},
	"fr": {
		{ID: "car6SARpDDc", Title: "French Greetings for Beginners (With Pronunciations)"},
		{ID: "VE2m0OGPoQE", Title: "Basic French Greetings for Beginners"},
		{ID: "m8xTQus9Y24", Title: "French Greetings for Beginners"},
		{ID: "FyYeL_OEC2U", Title: "Learn French Greetings and Basic Phrases"},
	},
	"de": {
		{ID: "e784UaFETQg", Title: "Basic German Greetings, Introductions, and Phrases"},
		{ID: "_WHzlca3r3c", Title: "Lesson 1: Greetings in German"},
		{ID: "n0eA7ERpsF8", Title: "Deutsch A1 - Guten Tag: Begrüßungen"},
		{ID: "noal4Uk9luA", Title: "A1 - Lesson 1 Begrüßungen"},
	},
	"it": {
		{ID: "3d7SSE6fJvo", Title: "Simple Italian Greetings for Beginners"},
		{ID: "w89QV6akOeY", Title: "Complete Guide to Italian Greetings"},
		{ID: "i5t51Byl4Sw", Title: "Italian Greetings and Basic Expressions"},
	},
	"ja": {
		{ID: "CqwE1F0XEL4", Title: "Basic Japanese Greetings for Beginners"},
		{ID: "qtJea9Bnc4g", Title: "Learn Basic Japanese Greetings"},
		{ID: "4qa6SnRP-zc", Title: "Learn 10 Basic Japanese Greetings"},
		{ID: "y53Y1QFAWX4", Title: "Master MORE Basic Greetings in Japanese"},
	},
	"ta": {
		{ID: "GJtg74yxhcg", Title: "Basic Tamil Greetings"},
		{ID: "BH0D7TI45gM", Title: "Learn Common Tamil Greetings"},
		{ID: "3embo9gU1po", Title: "Greetings and Introduction in Tamil"},
	},
}

var courses = buildCourses()

func buildCourses() map[string]domain.Course {
	out := make(map[string]domain.Course, len(greetingVideos))
	for code, videos := range greetingVideos {
		name := byCode[code].Name
		course := domain.Course{
			Language: name,
			Code:     code,
			Levels:   domain.Levels(),
		}
		for _, ct := range syllabus {
			ch := domain.Chapter{
				ID:          ct.id,
				Title:       ct.title,
				Description: strings.ReplaceAll(ct.description, "%s", name),
			}
			for _, lt := range ct.lessons {
				l := domain.CourseLesson{
					ID:          lt.id,
					Title:       lt.title,
					Level:       lt.level,
					Description: strings.ReplaceAll(lt.description, "%s", name),
				}
				if lt.id == "1.1" {
					l.VideoID = videos[0].ID
					l.VideoOptions = videos
				}
				ch.Lessons = append(ch.Lessons, l)
			}
			course.Chapters = append(course.Chapters, ch)
		}
		out[code] = course
	}
	return out
}

// Courses returns the course catalog for a language given by code or name.
// Unlike ResolveLanguage, an unknown language is reported rather than
// defaulted.
func Courses(language string) (domain.Course, bool) {
	l, ok := Lookup(language)
	if !ok {
		return domain.Course{}, false
	}
	c, ok := courses[l.Code]
	return c, ok
}

// CourseLanguages lists the codes that have a course, sorted.
func CourseLanguages() []string {
	codes := make([]string, 0, len(courses))
	for code := range courses {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
