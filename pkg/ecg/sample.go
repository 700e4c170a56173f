package ecg

// DefaultSampleRate is the rate, in Hz, the source recordings were captured at.
// It is not present in the document itself.
const DefaultSampleRate = 250.0

// RawRecording is one block of consecutive samples starting at Timestamp (ms).
type RawRecording struct {
	Timestamp float64
	Samples   []float64
}

type Document struct {
	Recordings []RawRecording
}

// FlatSeries holds every sample of a document in dataset order. Timestamps and
// Amplitudes always have the same length. A FlatSeries is never modified after
// Flatten returns it.
type FlatSeries struct {
	Timestamps []float64
	Amplitudes []float64
}

func (s *FlatSeries) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Timestamps)
}
