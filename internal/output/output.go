package output

import (
	"fmt"
	"io"

	"prcoach/internal/coach"
)

// Writer renders findings and explanations in a specific format.
type Writer interface {
	WriteFindings(w io.Writer, prKey string, findings []coach.Finding) error
	WriteAnswer(w io.Writer, f coach.Finding, ans coach.Answer) error
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "text":
		return &TextWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	case "markdown":
		return &MarkdownWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
