package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme defines the colors a dialog and its host chrome render with.
// All values are hex strings so themes can live in config files unchanged.
type Theme struct {
	Name string

	// Surface colors
	Surface    string // dialog body background
	SurfaceAlt string // inset regions (inputs, list rows)

	// Border colors
	Border      string // default dialog border
	BorderFocus string // border while an element inside holds focus

	// Text colors
	Text  string
	Muted string
	Faint string

	// Accent colors, also used as variant border colors
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	// Selection colors for list rows
	SelectionBg   string
	SelectionText string

	// Backdrop holds the foreground color applied to dimmed background
	// content while a dialog is up.
	Backdrop string

	// Level colors for event/severity badges
	LevelColors map[string]string
}

// Styles returns pre-built Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	hoverBg := Lighten(t.Accent, 0.18)
	dangerHoverBg := Lighten(t.Danger, 0.18)

	return Styles{
		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		InfoText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		// Footer action styles
		Button: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SurfaceAlt)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 2),

		ButtonFocused: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Accent)).
			Foreground(lipgloss.Color(t.Surface)).
			Bold(true).
			Padding(0, 2),

		ButtonHover: lipgloss.NewStyle().
			Background(lipgloss.Color(hoverBg)).
			Foreground(lipgloss.Color(t.Surface)).
			Padding(0, 2),

		ButtonDisabled: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SurfaceAlt)).
			Foreground(lipgloss.Color(t.Faint)).
			Padding(0, 2),

		ButtonDanger: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SurfaceAlt)).
			Foreground(lipgloss.Color(t.Danger)).
			Padding(0, 2),

		ButtonDangerFocused: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Danger)).
			Foreground(lipgloss.Color(t.Surface)).
			Bold(true).
			Padding(0, 2),

		ButtonDangerHover: lipgloss.NewStyle().
			Background(lipgloss.Color(dangerHoverBg)).
			Foreground(lipgloss.Color(t.Surface)).
			Padding(0, 2),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		Hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		Backdrop: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Backdrop)),

		levelColors: t.LevelColors,
		surface:     t.Surface,
		muted:       t.Muted,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Surface lipgloss.Style
	Title   lipgloss.Style

	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	// Footer actions
	Button              lipgloss.Style
	ButtonFocused       lipgloss.Style
	ButtonHover         lipgloss.Style
	ButtonDisabled      lipgloss.Style
	ButtonDanger        lipgloss.Style
	ButtonDangerFocused lipgloss.Style
	ButtonDangerHover   lipgloss.Style

	Selected lipgloss.Style
	Hint     lipgloss.Style
	Backdrop lipgloss.Style

	// For dynamic level badges
	levelColors map[string]string
	surface     string
	muted       string
}

// LevelStyle returns a badge style for the given event level.
func (s Styles) LevelStyle(level string) lipgloss.Style {
	color := s.levelColors[level]
	if color == "" {
		color = s.muted
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.surface)).
		Background(lipgloss.Color(color)).
		Padding(0, 1)
}

// Lighten blends a hex color toward white by amount in [0, 1]. Invalid
// input is returned unchanged.
func Lighten(hex string, amount float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	white := colorful.Color{R: 1, G: 1, B: 1}
	return c.BlendLuv(white, clamp01(amount)).Hex()
}

// Darken blends a hex color toward black by amount in [0, 1]. Invalid
// input is returned unchanged.
func Darken(hex string, amount float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	black := colorful.Color{}
	return c.BlendLuv(black, clamp01(amount)).Hex()
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Theme definitions

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Slate"}

// Get returns a theme by name, falling back to Nightfox.
func Get(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfoxTheme()
}

// Next returns the next theme name in the cycle.
func Next(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// Names returns available theme names.
func Names() []string {
	return themeOrder
}

// Default returns the default theme.
func Default() Theme {
	return nightfoxTheme()
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Surface:    "#192330", // bg1
		SurfaceAlt: "#29394f", // bg3

		Border:      "#39506d", // bg4
		BorderFocus: "#719cd6", // blue

		Text:  "#cdcecf", // fg1
		Muted: "#738091", // comment
		Faint: "#71839b", // fg3

		Accent:  "#719cd6", // blue
		Success: "#81b29a", // green
		Warning: "#dbc074", // yellow
		Danger:  "#c94f6d", // red
		Info:    "#63cdcf", // cyan

		SelectionBg:   "#2b3b51", // sel0
		SelectionText: "#cdcecf", // fg1

		Backdrop: "#575860", // fg3 desaturated

		LevelColors: map[string]string{
			"debug":   "#738091", // comment
			"info":    "#719cd6", // blue
			"success": "#81b29a", // green
			"warn":    "#dbc074", // yellow
			"error":   "#c94f6d", // red
		},
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name: "Kanagawa",

		Surface:    "#1F1F28", // sumiInk3
		SurfaceAlt: "#2A2A37", // sumiInk4

		Border:      "#54546D", // sumiInk6
		BorderFocus: "#7E9CD8", // crystalBlue

		Text:  "#DCD7BA", // fujiWhite
		Muted: "#C8C093", // oldWhite
		Faint: "#727169", // fujiGray

		Accent:  "#7E9CD8", // crystalBlue
		Success: "#98BB6C", // springGreen
		Warning: "#E6C384", // carpYellow
		Danger:  "#E46876", // waveRed
		Info:    "#7FB4CA", // springBlue

		SelectionBg:   "#2D4F67", // waveBlue1
		SelectionText: "#DCD7BA", // fujiWhite

		Backdrop: "#625e5a", // fujiGray warmed

		LevelColors: map[string]string{
			"debug":   "#727169", // fujiGray
			"info":    "#7E9CD8", // crystalBlue
			"success": "#98BB6C", // springGreen
			"warn":    "#E6C384", // carpYellow
			"error":   "#E46876", // waveRed
		},
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Surface:    "#0f172a", // slate-900
		SurfaceAlt: "#1e293b", // slate-800

		Border:      "#334155", // slate-700
		BorderFocus: "#38bdf8", // sky-400

		Text:  "#f1f5f9", // slate-100
		Muted: "#94a3b8", // slate-400
		Faint: "#64748b", // slate-500

		Accent:  "#38bdf8", // sky-400
		Success: "#22c55e", // green-500
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500
		Info:    "#06b6d4", // cyan-500

		SelectionBg:   "#0284c7", // sky-600
		SelectionText: "#f8fafc", // slate-50

		Backdrop: "#475569", // slate-600

		LevelColors: map[string]string{
			"debug":   "#64748b", // slate-500
			"info":    "#38bdf8", // sky-400
			"success": "#22c55e", // green-500
			"warn":    "#f59e0b", // amber-500
			"error":   "#dc2626", // red-600
		},
	}
}
