// Package content holds the static lesson and exercise catalog. The
// catalog is immutable reference data compiled into the binary; lesson
// bodies, questions and explanations are mixed content (prose with
// $-delimited LaTeX spans) rendered by the mathtext package.
package content

// Category classifies a lesson by mathematical domain.
type Category string

const (
	Algebre      Category = "Algèbre"
	Geometrie    Category = "Géométrie"
	Analyse      Category = "Analyse"
	Probabilites Category = "Probabilités"
	Statistiques Category = "Statistiques"
)

// Lesson is a static chapter: summary plus a mixed-content body.
type Lesson struct {
	ID       string
	Title    string
	Level    Level
	Category Category
	Summary  string
	Content  string
}

// Tier is the exercise difficulty, ordered Bronze < Argent < Or.
type Tier int

const (
	Bronze Tier = iota
	Argent
	Or
)

// String returns the French tier name.
func (t Tier) String() string {
	switch t {
	case Bronze:
		return "Bronze"
	case Argent:
		return "Argent"
	case Or:
		return "Or"
	}
	return "?"
}

// Exercise is a static drill attached to a lesson. Question and
// explanation are mixed content; the solution is the canonical answer
// string matched after normalization.
type Exercise struct {
	ID          string
	LessonID    string
	Difficulty  Tier
	Question    string
	Hints       []string
	Solution    string
	Explanation string
}

// LessonsForLevel returns the lessons of the catalog matching the given
// grade level, in catalog order.
func LessonsForLevel(level Level) []Lesson {
	var out []Lesson
	for _, l := range lessons {
		if l.Level == level {
			out = append(out, l)
		}
	}
	return out
}

// FindLesson returns the lesson with the given id, or false.
func FindLesson(id string) (Lesson, bool) {
	for _, l := range lessons {
		if l.ID == id {
			return l, true
		}
	}
	return Lesson{}, false
}

// ExercisesForLesson returns the exercises attached to a lesson, in
// catalog order. The slice is empty for lessons without exercises yet.
func ExercisesForLesson(lessonID string) []Exercise {
	return exercises[lessonID]
}

// AllLessons returns the full catalog in order.
func AllLessons() []Lesson {
	return lessons
}
