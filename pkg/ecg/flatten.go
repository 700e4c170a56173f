package ecg

// Flatten emits one (timestamp, amplitude) pair per sample, recordings in
// document order. Within a recording the timestamp of sample i is
// Timestamp + i*1000/sampleRate; each recording restarts from its own base.
func Flatten(doc *Document, sampleRate float64) *FlatSeries {
	total := 0
	for _, rec := range doc.Recordings {
		total += len(rec.Samples)
	}

	series := &FlatSeries{
		Timestamps: make([]float64, 0, total),
		Amplitudes: make([]float64, 0, total),
	}

	for _, rec := range doc.Recordings {
		for i, sample := range rec.Samples {
			series.Timestamps = append(series.Timestamps, rec.Timestamp+float64(i)*1000/sampleRate)
			series.Amplitudes = append(series.Amplitudes, sample)
		}
	}

	return series
}
