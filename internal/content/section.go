package content

// Entrance describes how a block fades in from transparent when it scrolls
// into view. Offsets are in pixels, times in seconds.
type Entrance struct {
	OffsetX      float64 `json:"offset_x,omitempty"`
	OffsetY      float64 `json:"offset_y,omitempty"`
	Duration     float64 `json:"duration"`
	StaggerDelay float64 `json:"stagger_delay,omitempty"`
	Once         bool    `json:"once"`
	ViewMargin   string  `json:"view_margin,omitempty"`
}

// Parallax maps section scroll progress 0..1 onto a vertical offset.
type Parallax struct {
	From float64 `json:"from"`
	To   float64 `json:"to"`
}

// FadeStop pins section opacity at a point of scroll progress.
type FadeStop struct {
	Progress float64 `json:"progress"`
	Opacity  float64 `json:"opacity"`
}

type Animation struct {
	Entrance  Entrance   `json:"entrance"`
	Parallax  *Parallax  `json:"parallax,omitempty"`
	FadeStops []FadeStop `json:"fade_stops,omitempty"`
}

type Entry struct {
	Title        string   `json:"title"`
	Organization string   `json:"organization,omitempty"`
	Period       string   `json:"period,omitempty"`
	Summary      string   `json:"summary,omitempty"`
	Status       string   `json:"status,omitempty"`
	Highlights   []string `json:"highlights,omitempty"`
}

type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Section is one self-contained block of the page.
type Section struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Intro      string    `json:"intro,omitempty"`
	Paragraphs []string  `json:"paragraphs,omitempty"`
	Entries    []Entry   `json:"entries,omitempty"`
	Links      []Link    `json:"links,omitempty"`
	Animation  Animation `json:"animation"`
}
