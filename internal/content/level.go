package content

// Level is a French school grade, ordered from collège entry to the
// final lycée year.
type Level string

const (
	Sixieme   Level = "6eme"
	Cinquieme Level = "5eme"
	Quatrieme Level = "4eme"
	Troisieme Level = "3eme"
	Seconde   Level = "2nde"
	Premiere  Level = "1ere"
	Terminale Level = "Terminale"
)

// LevelInfo carries the display label and school cycle for a level.
type LevelInfo struct {
	Value Level
	Label string
	Cycle string
}

// Levels lists all grade levels in ascending order.
var Levels = []LevelInfo{
	{Sixieme, "6ème", "Cycle 3"},
	{Cinquieme, "5ème", "Cycle 4"},
	{Quatrieme, "4ème", "Cycle 4"},
	{Troisieme, "3ème", "Cycle 4"},
	{Seconde, "Seconde", "Lycée"},
	{Premiere, "Première", "Lycée"},
	{Terminale, "Terminale", "Lycée"},
}

// Valid reports whether l is one of the seven known grade levels.
func (l Level) Valid() bool {
	for _, info := range Levels {
		if info.Value == l {
			return true
		}
	}
	return false
}

// Label returns the display label for the level, or the raw value when
// the level is unknown.
func (l Level) Label() string {
	for _, info := range Levels {
		if info.Value == l {
			return info.Label
		}
	}
	return string(l)
}
