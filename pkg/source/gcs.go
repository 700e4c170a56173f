package source

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
)

// GCSOpener reads the document from a Cloud Storage object using
// application default credentials.
type GCSOpener struct {
	Bucket string
	Object string
}

func (o *GCSOpener) String() string {
	return fmt.Sprintf("gs://%s/%s", o.Bucket, o.Object)
}

func (o *GCSOpener) Open(ctx context.Context) (io.ReadCloser, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating storage client: %w", err)
	}

	r, err := client.Bucket(o.Bucket).Object(o.Object).NewReader(ctx)
	if err != nil {
		client.Close()
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, &FetchError{Source: o.String(), StatusCode: 404, Err: err}
		}
		return nil, &FetchError{Source: o.String(), Err: err}
	}

	return &gcsReadCloser{Reader: r, client: client}, nil
}

type gcsReadCloser struct {
	*storage.Reader
	client *storage.Client
}

func (r *gcsReadCloser) Close() error {
	return errors.Join(r.Reader.Close(), r.client.Close())
}
