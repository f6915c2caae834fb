package domain

// VideoOption is an alternative video a learner can pick for a lesson.
type VideoOption struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// CourseLesson is a catalog entry for one lesson inside a chapter.
type CourseLesson struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Level        Level         `json:"level"`
	Description  string        `json:"description"`
	VideoID      string        `json:"video_id,omitempty"`
	VideoOptions []VideoOption `json:"video_options,omitempty"`
}

// Chapter groups related lessons.
type Chapter struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Lessons     []CourseLesson `json:"lessons"`
}

// Course is the full lesson catalog for one language.
type Course struct {
	Language string    `json:"language"`
	Code     string    `json:"code"`
	Levels   []Level   `json:"levels"`
	Chapters []Chapter `json:"chapters"`
}

// Lesson returns the catalog entry with the given id.
func (c Course) Lesson(id string) (CourseLesson, bool) {
	for _, ch := range c.Chapters {
		for _, l := range ch.Lessons {
			if l.ID == id {
				return l, true
			}
		}
	}
	return CourseLesson{}, false
}
