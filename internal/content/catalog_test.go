package content

import "testing"

func TestCatalogIsConsistent(t *testing.T) {
	all := AllLessons()
	if len(all) == 0 {
		t.Fatal("catalog is empty")
	}

	seen := map[string]bool{}
	for _, l := range all {
		if l.ID == "" || l.Title == "" || l.Summary == "" || l.Content == "" {
			t.Errorf("lesson %q has empty fields", l.ID)
		}
		if seen[l.ID] {
			t.Errorf("duplicate lesson id %q", l.ID)
		}
		seen[l.ID] = true
		if !l.Level.Valid() {
			t.Errorf("lesson %q has invalid level %q", l.ID, l.Level)
		}
	}
}

func TestEveryLevelHasLessons(t *testing.T) {
	for _, info := range Levels {
		if len(LessonsForLevel(info.Value)) == 0 {
			t.Errorf("no lessons for %s", info.Label)
		}
	}
}

func TestLessonsForLevelFiltersStrictly(t *testing.T) {
	for _, l := range LessonsForLevel(Troisieme) {
		if l.Level != Troisieme {
			t.Errorf("lesson %q has level %q, want %q", l.ID, l.Level, Troisieme)
		}
	}
}

func TestFindLesson(t *testing.T) {
	l, ok := FindLesson("l1")
	if !ok {
		t.Fatal("lesson l1 not found")
	}
	if l.Level != Troisieme {
		t.Errorf("lesson l1 level = %q, want %q", l.Level, Troisieme)
	}

	if _, ok := FindLesson("nope"); ok {
		t.Error("FindLesson(nope) reported a hit")
	}
}

func TestExercisesBelongToTheirLesson(t *testing.T) {
	total := 0
	for _, l := range AllLessons() {
		for _, ex := range ExercisesForLesson(l.ID) {
			total++
			if ex.LessonID != l.ID {
				t.Errorf("exercise %q claims lesson %q, filed under %q", ex.ID, ex.LessonID, l.ID)
			}
			if ex.Question == "" || ex.Solution == "" {
				t.Errorf("exercise %q has empty question or solution", ex.ID)
			}
		}
	}
	if total == 0 {
		t.Fatal("catalog carries no exercises")
	}
}

func TestExercisesForUnknownLessonIsEmpty(t *testing.T) {
	if got := ExercisesForLesson("nope"); len(got) != 0 {
		t.Errorf("got %d exercises for unknown lesson", len(got))
	}
}
