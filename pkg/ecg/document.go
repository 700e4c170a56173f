package ecg

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ShapeError reports a document that does not have the expected
// {"data": [{"ecg": {"Timestamp": n, "Samples": [...]}}]} shape.
type ShapeError struct {
	Path   string
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("malformed ecg document at %s: %s", e.Path, e.Reason)
}

type wireDocument struct {
	Data *[]json.RawMessage `json:"data"`
}

type wireEntry struct {
	ECG *wireRecording `json:"ecg"`
}

type wireRecording struct {
	Timestamp *float64    `json:"Timestamp"`
	Samples   *[]*float64 `json:"Samples"`
}

// Decode reads a whole document from r. Any missing or mistyped field rejects
// the document; there is no best-effort recovery of the remaining entries.
func Decode(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)

	var wire wireDocument
	if err := dec.Decode(&wire); err != nil {
		if isShapeCause(err) {
			return nil, &ShapeError{Path: "$", Reason: err.Error()}
		}
		return nil, fmt.Errorf("reading ecg document: %w", err)
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil || isShapeCause(err) {
			return nil, &ShapeError{Path: "$", Reason: "trailing data after document"}
		}
		return nil, fmt.Errorf("reading ecg document: %w", err)
	}
	if wire.Data == nil {
		return nil, &ShapeError{Path: "$.data", Reason: "missing"}
	}

	doc := &Document{Recordings: make([]RawRecording, 0, len(*wire.Data))}
	for i, raw := range *wire.Data {
		path := fmt.Sprintf("$.data[%d]", i)

		var entry wireEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			return nil, &ShapeError{Path: path, Reason: err.Error()}
		}
		if entry.ECG == nil {
			return nil, &ShapeError{Path: path + ".ecg", Reason: "missing"}
		}
		if entry.ECG.Timestamp == nil {
			return nil, &ShapeError{Path: path + ".ecg.Timestamp", Reason: "missing"}
		}
		if entry.ECG.Samples == nil {
			return nil, &ShapeError{Path: path + ".ecg.Samples", Reason: "missing"}
		}

		samples := make([]float64, len(*entry.ECG.Samples))
		for j, v := range *entry.ECG.Samples {
			if v == nil {
				return nil, &ShapeError{Path: fmt.Sprintf("%s.ecg.Samples[%d]", path, j), Reason: "null"}
			}
			samples[j] = *v
		}

		doc.Recordings = append(doc.Recordings, RawRecording{
			Timestamp: *entry.ECG.Timestamp,
			Samples:   samples,
		})
	}

	return doc, nil
}

// isShapeCause separates bad document content from failures of the
// underlying reader.
func isShapeCause(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) ||
		errors.As(err, &typeErr) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF)
}
