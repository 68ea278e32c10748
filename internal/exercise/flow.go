// Package exercise drives a practice session over a fixed list of
// exercises: answer checking, scoring and the feedback phase with AI
// remediation.
package exercise

import (
	"strings"
	"unicode"

	"github.com/mathpech/mathpech/internal/content"
)

// XPPerCorrect is the experience granted for each correct answer.
const XPPerCorrect = 50

// Phase is the session state.
type Phase int

const (
	// PhaseAnswering waits for the student's answer to the current
	// exercise.
	PhaseAnswering Phase = iota

	// PhaseFeedback shows the verdict for the last answer.
	PhaseFeedback

	// PhaseFinished means every exercise has been answered.
	PhaseFinished

	// PhaseEmpty is the terminal state of a session with no
	// exercises. Nothing is scored and no completion fires.
	PhaseEmpty
)

// Flow is a single pass through a lesson's exercises.
type Flow struct {
	exercises []content.Exercise
	index     int
	phase     Phase

	score       int
	correct     int
	lastCorrect bool

	analysis        string
	analysisPending bool
}

// NewFlow starts a session over the given exercises.
func NewFlow(exercises []content.Exercise) *Flow {
	f := &Flow{exercises: exercises}
	if len(exercises) == 0 {
		f.phase = PhaseEmpty
	}
	return f
}

// Normalize prepares an answer for comparison: all whitespace is
// stripped and letters are lowercased, so "1 / 2" matches "1/2".
func Normalize(s string) string {
	return strings.ToLower(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s))
}

// Phase returns the current session state.
func (f *Flow) Phase() Phase {
	return f.phase
}

// Current returns the exercise awaiting an answer or being reviewed.
func (f *Flow) Current() (content.Exercise, bool) {
	if f.index >= len(f.exercises) {
		return content.Exercise{}, false
	}
	return f.exercises[f.index], true
}

// Progress returns the 1-based position and total count.
func (f *Flow) Progress() (pos, total int) {
	pos = f.index + 1
	if pos > len(f.exercises) {
		pos = len(f.exercises)
	}
	return pos, len(f.exercises)
}

// Submit checks the answer against the current exercise's solution and
// moves to the feedback phase. ok is false when the session is not
// waiting for an answer.
func (f *Flow) Submit(answer string) (correct, ok bool) {
	if f.phase != PhaseAnswering {
		return false, false
	}

	ex := f.exercises[f.index]
	correct = Normalize(answer) == Normalize(ex.Solution)
	if correct {
		f.score += XPPerCorrect
		f.correct++
	}

	f.phase = PhaseFeedback
	f.lastCorrect = correct
	f.analysis = ""
	f.analysisPending = false
	return correct, true
}

// LastCorrect reports the verdict of the last submitted answer.
func (f *Flow) LastCorrect() bool {
	return f.lastCorrect
}

// BeginAnalysis marks an AI explanation as requested for the last
// mistake. It returns false when there is no mistake to explain or a
// request is already in flight.
func (f *Flow) BeginAnalysis() bool {
	if f.phase != PhaseFeedback || f.lastCorrect || f.analysisPending || f.analysis != "" {
		return false
	}
	f.analysisPending = true
	return true
}

// AttachAnalysis stores the explanation once it arrives. Late arrivals
// after the student moved on are dropped.
func (f *Flow) AttachAnalysis(text string) {
	if !f.analysisPending {
		return
	}
	f.analysis = text
	f.analysisPending = false
}

// Analysis returns the AI explanation for the last mistake and
// whether one is still being fetched.
func (f *Flow) Analysis() (text string, pending bool) {
	return f.analysis, f.analysisPending
}

// Next leaves the feedback phase: either the next exercise or, after
// the last one, the finished state.
func (f *Flow) Next() {
	if f.phase != PhaseFeedback {
		return
	}
	f.index++
	f.analysis = ""
	f.analysisPending = false
	if f.index >= len(f.exercises) {
		f.phase = PhaseFinished
		return
	}
	f.phase = PhaseAnswering
}

// Score returns the XP earned so far.
func (f *Flow) Score() int {
	return f.score
}

// CorrectCount returns how many answers were right.
func (f *Flow) CorrectCount() int {
	return f.correct
}
