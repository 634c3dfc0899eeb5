package overlap

import (
	"context"

	"fjacquet/find-overlap/internal/models"
	"fjacquet/find-overlap/internal/normalizer"
)

// TableReader loads a file into a raw table.
type TableReader interface {
	Read(ctx context.Context, path string) (models.RecordTable, error)
}

// CustomizationLoader returns the column metadata of a data file.
type CustomizationLoader interface {
	Load(dataPath string) (models.Customizations, error)
}

// MetaFileFinder locates the metadata file that belongs to a data file.
type MetaFileFinder interface {
	FindMetaFile(dataPath string) string
}

// Preparer turns a file into its comparable transaction set.
type Preparer interface {
	PrepareFile(ctx context.Context, path string) (models.TransactionSet, error)
}

// FilePreparer reads, customizes, validates and normalizes files.
type FilePreparer struct {
	reader   TableReader
	meta     CustomizationLoader
	pipeline *normalizer.Pipeline
}

// NewFilePreparer creates a FilePreparer. meta may be nil when files carry
// no metadata.
func NewFilePreparer(reader TableReader, meta CustomizationLoader, pipeline *normalizer.Pipeline) *FilePreparer {
	return &FilePreparer{
		reader:   reader,
		meta:     meta,
		pipeline: pipeline,
	}
}

// PrepareTable returns the normalized table of path.
func (p *FilePreparer) PrepareTable(ctx context.Context, path string) (models.RecordTable, error) {
	raw, err := p.reader.Read(ctx, path)
	if err != nil {
		return nil, err
	}

	var custom models.Customizations
	if p.meta != nil {
		if custom, err = p.meta.Load(path); err != nil {
			return nil, err
		}
	}

	return p.pipeline.Prepare(raw, custom, path)
}

// PrepareFile returns the transaction set of path.
func (p *FilePreparer) PrepareFile(ctx context.Context, path string) (models.TransactionSet, error) {
	table, err := p.PrepareTable(ctx, path)
	if err != nil {
		return nil, err
	}
	return BuildTransactionSet(table)
}

// FindMetaFile returns the metadata file of path, or "" when the loader
// cannot locate one.
func (p *FilePreparer) FindMetaFile(path string) string {
	if finder, ok := p.meta.(MetaFileFinder); ok {
		return finder.FindMetaFile(path)
	}
	return ""
}
