package output

import (
	"encoding/json"
	"fmt"
	"io"

	"prcoach/internal/coach"
)

// JSONWriter outputs findings and answers as indented JSON.
type JSONWriter struct{}

type findingsEnvelope struct {
	PR       string          `json:"pr"`
	Findings []coach.Finding `json:"findings"`
}

type answerEnvelope struct {
	Finding coach.Finding `json:"finding"`
	Answer  coach.Answer  `json:"answer"`
}

func (j *JSONWriter) WriteFindings(w io.Writer, prKey string, findings []coach.Finding) error {
	return writeJSON(w, findingsEnvelope{PR: prKey, Findings: findings})
}

func (j *JSONWriter) WriteAnswer(w io.Writer, f coach.Finding, ans coach.Answer) error {
	return writeJSON(w, answerEnvelope{Finding: f, Answer: ans})
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}
