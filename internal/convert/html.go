package convert

import (
	"fmt"
	"io"
)

// HTMLConverter passes HTML files through untouched; the normalizer does the
// structural work.
type HTMLConverter struct{}

func (c *HTMLConverter) Convert(r io.Reader, filename string) (string, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read html: %w", err)
	}
	return string(src), nil
}
