// Package ingest runs the file-to-document pipeline for upload batches.
package ingest

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docmark/docmark/internal/convert"
	"github.com/docmark/docmark/internal/element"
	"github.com/docmark/docmark/internal/normalize"
)

// File is one member of an upload batch.
type File struct {
	Name string
	Data []byte
}

// Ingestor converts and normalizes uploaded files.
type Ingestor struct {
	log  *slog.Logger
	opts convert.Options
}

func New(log *slog.Logger, opts convert.Options) *Ingestor {
	return &Ingestor{log: log, opts: opts}
}

// Batch processes files sequentially, in input order. Each file either joins
// the result with its complete element list or is skipped entirely; a failure
// in one file never aborts the rest of the batch.
func (in *Ingestor) Batch(files []File) []*element.Document {
	var docs []*element.Document
	for _, f := range files {
		doc, err := in.one(f)
		if err != nil {
			in.log.Warn("skipping file", "filename", f.Name, "error", err)
			continue
		}
		docs = append(docs, doc)
	}
	return docs
}

func (in *Ingestor) one(f File) (*element.Document, error) {
	if !convert.IsSupportedExtension(f.Name) {
		return nil, fmt.Errorf("unsupported file type: %s", f.Name)
	}
	conv, err := convert.ForFile(f.Name, in.opts)
	if err != nil {
		return nil, err
	}
	src, err := conv.Convert(bytes.NewReader(f.Data), f.Name)
	if err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}
	els, err := normalize.Elements(src)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}
	return &element.Document{
		ID:       uuid.New().String(),
		Name:     f.Name,
		Elements: els,
	}, nil
}
