package renderer

import (
	"io"
	"strings"

	"github.com/gookit/color"
)

type styledWriter struct {
	w     io.Writer
	style color.Style
}

// NewStyledWriter returns a writer that prints each write in style, one
// line per write. It suits log.Logger output.
func NewStyledWriter(w io.Writer, style color.Style) io.Writer {
	return &styledWriter{w: w, style: style}
}

func (s *styledWriter) Write(p []byte) (int, error) {
	text := strings.TrimSuffix(string(p), "\n")
	if _, err := io.WriteString(s.w, s.style.Sprint(text)+"\n"); err != nil {
		return 0, err
	}
	return len(p), nil
}
