package source

import (
	"context"
	"io"
	"os"
)

type FileOpener struct {
	Path string
}

func (o *FileOpener) String() string {
	return o.Path
}

func (o *FileOpener) Open(ctx context.Context) (io.ReadCloser, error) {
	f, err := os.Open(o.Path)
	if err != nil {
		return nil, &FetchError{Source: o.Path, Err: err}
	}
	return f, nil
}
