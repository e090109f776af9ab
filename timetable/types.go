package timetable

import "errors"

// Sentinel errors.
var (
	// ErrUnknownDifficulty indicates a difficulty label other than easy, medium or hard.
	ErrUnknownDifficulty = errors.New("timetable: unknown difficulty")

	// ErrMalformedEntry indicates an exam or pack entry of the wrong JSON shape.
	ErrMalformedEntry = errors.New("timetable: malformed entry")

	// ErrNoExams indicates exam data without any exam.
	ErrNoExams = errors.New("timetable: no exams")

	// ErrUnknownExam indicates a student enrolled in an exam that is not declared.
	ErrUnknownExam = errors.New("timetable: unknown exam")

	// ErrDuplicateExam indicates an exam declared twice with different difficulties.
	ErrDuplicateExam = errors.New("timetable: exam declared twice")

	// ErrInvalidSlots indicates a slot budget below 1.
	ErrInvalidSlots = errors.New("timetable: slot count must be positive")

	// ErrColoringSize indicates a coloring whose length differs from the exam count.
	ErrColoringSize = errors.New("timetable: coloring does not match exams")
)

// Difficulty grades an exam.
type Difficulty string

// Known difficulties.
const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Cost returns the number of slots an exam of difficulty d needs to be kept
// away from a conflicting exam.
func (d Difficulty) Cost() (int, error) {
	switch d {
	case Easy:
		return 1, nil
	case Medium:
		return 2, nil
	case Hard:
		return 3, nil
	}
	return 0, ErrUnknownDifficulty
}
