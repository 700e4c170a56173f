package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sarkarshuvojit/ecg-playback/pkg/ecg"
	"github.com/sarkarshuvojit/ecg-playback/pkg/kafka"
)

// Opener retrieves the raw dataset document.
type Opener interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	String() string
}

// FetchError means the dataset could not be retrieved at all. StatusCode is
// set for HTTP responses outside the 2xx range.
type FetchError struct {
	Source     string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching %s: HTTP error! status: %d", e.Source, e.StatusCode)
	}
	return fmt.Sprintf("fetching %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// New picks an Opener from the form of dataSource: http(s) URLs, gs://bucket/object,
// kafka://brokers/topic, file:// URLs or plain paths.
func New(dataSource string) (Opener, error) {
	if dataSource == "" {
		return nil, fmt.Errorf("data source is required")
	}

	scheme, rest, found := strings.Cut(dataSource, "://")
	if !found {
		return &FileOpener{Path: dataSource}, nil
	}

	switch scheme {
	case "http", "https":
		if _, err := url.Parse(dataSource); err != nil {
			return nil, fmt.Errorf("invalid data source url: %w", err)
		}
		return &HTTPOpener{URL: dataSource, Client: http.DefaultClient}, nil
	case "file":
		return &FileOpener{Path: rest}, nil
	case "gs":
		bucket, object, ok := strings.Cut(rest, "/")
		if !ok || bucket == "" || object == "" {
			return nil, fmt.Errorf("invalid gcs data source %q, want gs://bucket/object", dataSource)
		}
		return &GCSOpener{Bucket: bucket, Object: object}, nil
	case "kafka":
		brokers, topic, ok := strings.Cut(rest, "/")
		if !ok || brokers == "" || topic == "" {
			return nil, fmt.Errorf("invalid kafka data source %q, want kafka://brokers/topic", dataSource)
		}
		return kafka.NewTopicReader(brokers, topic), nil
	default:
		return nil, fmt.Errorf("unsupported data source scheme %q", scheme)
	}
}

// Load retrieves, decodes and flattens the dataset in one pass. Either the
// whole series is returned or an error; there are no retries.
func Load(ctx context.Context, opener Opener, sampleRate float64) (*ecg.FlatSeries, error) {
	rc, err := opener.Open(ctx)
	if err != nil {
		var fetchErr *FetchError
		if errors.As(err, &fetchErr) {
			return nil, err
		}
		return nil, &FetchError{Source: opener.String(), Err: err}
	}
	defer rc.Close()

	doc, err := ecg.Decode(rc)
	if err != nil {
		var shapeErr *ecg.ShapeError
		if errors.As(err, &shapeErr) {
			return nil, err
		}
		return nil, &FetchError{Source: opener.String(), Err: err}
	}

	return ecg.Flatten(doc, sampleRate), nil
}
