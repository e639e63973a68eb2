package state

import (
	"regexp"
	"strconv"
	"strings"

	"Sketchpad/internal/element"
)

const pixelUnit = "px"

// Positive integers only, no leading zero, optionally suffixed with px.
var widthPattern = regexp.MustCompile(`^[1-9][0-9]*(px)?$`)

// WidthView shows the width text, e.g. "3px".
type WidthView interface {
	ShowWidth(text string)
}

// LineWidth is the stroke width control.
type LineWidth struct {
	view    WidthView
	current int
}

func NewLineWidth(views []WidthView) (*LineWidth, error) {
	view, err := element.Single("line width", views)
	if err != nil {
		return nil, err
	}
	l := &LineWidth{view: view, current: 1}
	l.view.ShowWidth(formatWidth(l.current))
	return l, nil
}

// SetWidth parses input such as "12" or "12px". It returns the new width, or 0
// when input is rejected; the stored width is then left alone and the view is
// reset to it.
func (l *LineWidth) SetWidth(input string) int {
	input = strings.TrimSpace(input)
	if !widthPattern.MatchString(input) {
		l.view.ShowWidth(formatWidth(l.current))
		return 0
	}

	w, err := strconv.Atoi(strings.TrimSuffix(input, pixelUnit))
	if err != nil {
		// out of int range
		l.view.ShowWidth(formatWidth(l.current))
		return 0
	}
	l.current = w
	l.view.ShowWidth(formatWidth(w))
	return w
}

func (l *LineWidth) SetWidthValue(w int) int {
	return l.SetWidth(strconv.Itoa(w))
}

func (l *LineWidth) CurrentWidth() int {
	return l.current
}

func (l *LineWidth) Increase() int {
	return l.SetWidthValue(l.current + 1)
}

func (l *LineWidth) Decrease() int {
	return l.SetWidthValue(l.current - 1)
}

func formatWidth(w int) string {
	return strconv.Itoa(w) + pixelUnit
}
