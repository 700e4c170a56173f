package render

import "github.com/sarkarshuvojit/ecg-playback/pkg/playback"

const (
	SeriesLabel = "ECG Signal"
	XAxisTitle  = "Time (ms)"
	YAxisTitle  = "Amplitude"
)

// Frame is what a chart view redraws from on every tick: labels are the
// window's timestamps, the single dataset holds its amplitudes.
type Frame struct {
	Cursor   int          `json:"cursor"`
	Labels   []float64    `json:"labels"`
	Datasets []Dataset    `json:"datasets"`
	Options  ChartOptions `json:"options"`
}

type Dataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BorderColor     string    `json:"borderColor"`
	BackgroundColor string    `json:"backgroundColor"`
	Fill            bool      `json:"fill"`
	PointRadius     int       `json:"pointRadius"`
}

type ChartOptions struct {
	Scales      Scales      `json:"scales"`
	Animation   Animation   `json:"animation"`
	Tooltip     Tooltip     `json:"tooltip"`
	Interaction Interaction `json:"interaction"`
}

type Scales struct {
	X Axis `json:"x"`
	Y Axis `json:"y"`
}

type Axis struct {
	Type  string `json:"type,omitempty"`
	Title string `json:"title"`
}

type Animation struct {
	Duration int `json:"duration"`
}

// Tooltip carries printf layouts matching FormatTooltipTitle and FormatTooltipLabel.
type Tooltip struct {
	Enabled     bool   `json:"enabled"`
	Mode        string `json:"mode"`
	Intersect   bool   `json:"intersect"`
	TitleFormat string `json:"titleFormat"`
	LabelFormat string `json:"labelFormat"`
}

type Interaction struct {
	Mode      string `json:"mode"`
	Intersect bool   `json:"intersect"`
}

// DefaultOptions is the static display configuration sent with every frame.
func DefaultOptions() ChartOptions {
	return ChartOptions{
		Scales: Scales{
			X: Axis{Type: "linear", Title: XAxisTitle},
			Y: Axis{Title: YAxisTitle},
		},
		Animation: Animation{Duration: 0},
		Tooltip: Tooltip{
			Enabled:     true,
			Mode:        "nearest",
			Intersect:   false,
			TitleFormat: "Time: %.2f ms",
			LabelFormat: "%s: %.2f",
		},
		Interaction: Interaction{Mode: "nearest", Intersect: false},
	}
}

func FromWindow(w playback.Window) Frame {
	return Frame{
		Cursor: w.Start,
		Labels: w.Timestamps,
		Datasets: []Dataset{{
			Label:           SeriesLabel,
			Data:            w.Amplitudes,
			BorderColor:     "blue",
			BackgroundColor: "rgba(0, 0, 255, 0.1)",
			Fill:            true,
			PointRadius:     0,
		}},
		Options: DefaultOptions(),
	}
}

// Values returns the amplitudes of the frame's only dataset.
func (f Frame) Values() []float64 {
	if len(f.Datasets) == 0 {
		return nil
	}
	return f.Datasets[0].Data
}

func (f Frame) Len() int {
	return len(f.Labels)
}
