package widgets

import "time"

// SlideInterval is the auto-rotation period.
const SlideInterval = 4 * time.Second

// Slide is one panel of the hero slider.
type Slide struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// DefaultSlides are shown when no slides are configured.
var DefaultSlides = []Slide{
	{Title: "Automate the busywork", Body: "Pick a ready-made workflow and plug in your tools."},
	{Title: "Built around your stack", Body: "Filter by the integrations you already use."},
	{Title: "Ship in minutes", Body: "Download a template, import it and go."},
}

// Slider rotates through a fixed number of slides.
type Slider struct {
	count   int
	current int
}

// NewSlider creates a slider over count slides, showing the first.
func NewSlider(count int) *Slider {
	if count < 0 {
		count = 0
	}
	return &Slider{count: count}
}

// Show moves to index, wrapping negatives to the last slide and overflow to
// the first. It returns the slide now shown. A slider without slides stays
// at 0.
func (s *Slider) Show(index int) int {
	if s.count == 0 {
		return 0
	}
	if index < 0 {
		index = s.count - 1
	}
	if index >= s.count {
		index = 0
	}
	s.current = index
	return s.current
}

// Next advances one slide.
func (s *Slider) Next() int {
	return s.Show(s.current + 1)
}

// Prev goes back one slide.
func (s *Slider) Prev() int {
	return s.Show(s.current - 1)
}

// Current returns the shown slide index.
func (s *Slider) Current() int {
	return s.current
}

// Count returns the number of slides.
func (s *Slider) Count() int {
	return s.count
}

// Offset returns the horizontal translation, in percent, of the slide track.
func (s *Slider) Offset() int {
	return -s.current * 100
}

// Dots returns which pagination dot is active.
func (s *Slider) Dots() []bool {
	dots := make([]bool, s.count)
	if s.count > 0 {
		dots[s.current] = true
	}
	return dots
}
