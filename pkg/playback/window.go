package playback

// Window is the visible slice of a series, [Start, Start+len(Timestamps)).
// The slices alias the series and must not be modified.
type Window struct {
	Start      int
	Timestamps []float64
	Amplitudes []float64
}

func (w Window) Len() int {
	return len(w.Timestamps)
}
