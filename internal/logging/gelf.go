package logging

import (
	"io"

	"github.com/Graylog2/go-gelf/gelf"
)

// NewGraylogWriter dials a Graylog GELF endpoint and returns it as a
// writer suitable for fanning log output into via io.MultiWriter.
func NewGraylogWriter(addr string) (io.Writer, error) {
	w, err := gelf.NewWriter(addr)
	if err != nil {
		return nil, err
	}
	return w, nil
}
