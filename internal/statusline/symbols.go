package statusline

type Category int

const (
	Branch Category = iota
	Ahead
	Behind
	Staged
	Modified
	Deleted
	Renamed
	Untracked
	Stashed
	Clean
	Detached
	Conflict

	numCategories
)

type Color int

const (
	Default Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
)

type style struct {
	symbol string
	color  Color
}

// styles is indexed by Category. Read it only through Symbol and ColorOf.
var styles = [numCategories]style{
	Branch:    {"⎇", Blue},
	Ahead:     {"↑", Green},
	Behind:    {"↓", Red},
	Staged:    {"●", Green},
	Modified:  {"✚", Yellow},
	Deleted:   {"✖", Red},
	Renamed:   {"➜", Magenta},
	Untracked: {"…", Cyan},
	Stashed:   {"⚑", Yellow},
	Clean:     {"✓", Green},
	Detached:  {"➦", Red},
	Conflict:  {"✗", Red},
}

// Symbol returns "" for a Category outside the table.
func Symbol(c Category) string {
	if c < 0 || c >= numCategories {
		return ""
	}
	return styles[c].symbol
}

// ColorOf returns Default for a Category outside the table.
func ColorOf(c Category) Color {
	if c < 0 || c >= numCategories {
		return Default
	}
	return styles[c].color
}

//------------------------------------------------------------------------------

// ColorScheme renders a Color as a terminal escape.
type ColorScheme interface {
	Start(Color) string
	Reset() string
}

var (
	Tmux  ColorScheme = tmuxScheme{}
	ANSI  ColorScheme = ansiScheme{}
	Plain ColorScheme = plainScheme{}
)

var colorNames = [...]string{
	Default: "default",
	Red:     "red",
	Green:   "green",
	Yellow:  "yellow",
	Blue:    "blue",
	Magenta: "magenta",
	Cyan:    "cyan",
}

type tmuxScheme struct{}

func (tmuxScheme) Start(c Color) string {
	if c < 0 || int(c) >= len(colorNames) {
		c = Default
	}
	return "#[fg=" + colorNames[c] + "]"
}

func (tmuxScheme) Reset() string { return "#[fg=default]" }

var sgrCodes = [...]string{
	Default: "39",
	Red:     "31",
	Green:   "32",
	Yellow:  "33",
	Blue:    "34",
	Magenta: "35",
	Cyan:    "36",
}

type ansiScheme struct{}

func (ansiScheme) Start(c Color) string {
	if c < 0 || int(c) >= len(sgrCodes) {
		c = Default
	}
	return "\x1b[" + sgrCodes[c] + "m"
}

func (ansiScheme) Reset() string { return "\x1b[0m" }

type plainScheme struct{}

func (plainScheme) Start(Color) string { return "" }
func (plainScheme) Reset() string      { return "" }
