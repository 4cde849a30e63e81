package domain

type Difficulty string

const (
	DifficultyEasy   Difficulty = "E"
	DifficultyMedium Difficulty = "M"
	DifficultyHard   Difficulty = "H"
)

// Valid reports whether d is one of the single-letter catalog codes.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Label returns the lowercase export label ("easy", "medium", "hard").
func (d Difficulty) Label() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return ""
	}
}

// Name returns the display name ("Easy", "Medium", "Hard").
func (d Difficulty) Name() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return ""
	}
}

// DifficultyFromName maps "Easy"/"Medium"/"Hard" (any case) to a code.
// Anything else is treated as hard, matching the catalog build.
func DifficultyFromName(name string) Difficulty {
	switch name {
	case "Easy", "easy", "E":
		return DifficultyEasy
	case "Medium", "medium", "M":
		return DifficultyMedium
	default:
		return DifficultyHard
	}
}

type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseReady    Phase = "ready"
	PhaseDesign   Phase = "design"
	PhaseCoding   Phase = "coding"
	PhaseGrading  Phase = "grading"
	PhaseComplete Phase = "complete"
)

// Timed reports whether the phase runs an accumulator.
func (p Phase) Timed() bool {
	return p == PhaseDesign || p == PhaseCoding
}

const (
	MinGrade = 1
	MaxGrade = 4
)

// ValidGrade reports whether g is on the 1..4 self-grading scale.
func ValidGrade(g int) bool {
	return g >= MinGrade && g <= MaxGrade
}
