// Package container provides dependency injection for the find-overlap
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/find-overlap/internal/config"
	"fjacquet/find-overlap/internal/logging"
	"fjacquet/find-overlap/internal/normalizer"
	"fjacquet/find-overlap/internal/overlap"
	"fjacquet/find-overlap/internal/report"
	"fjacquet/find-overlap/internal/store"
	"fjacquet/find-overlap/internal/tablereader"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation - all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	readers   *tablereader.Registry
	metaStore *store.MetaStore
	pipeline  *normalizer.Pipeline
	preparer  *overlap.FilePreparer
	reporter  *report.ReportGenerator
}

// NewContainer creates and wires all application dependencies, logging
// through a logger built from cfg.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, config.ConfigureLoggingFromConfig(cfg))
}

// NewContainerWithLogger is NewContainer with an explicit logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	descriptionOpts := []normalizer.DescriptionOption{
		normalizer.WithAccentFolding(cfg.Normalize.FoldAccents),
	}
	if cfg.Normalize.StopWordsFile != "" {
		stopWords, err := normalizer.LoadStopWordsFile(cfg.Normalize.StopWordsFile)
		if err != nil {
			return nil, err
		}
		descriptionOpts = append(descriptionOpts, normalizer.WithStopWords(stopWords))
	}

	pipeline := normalizer.NewPipeline(logger)
	pipeline.Descriptions = normalizer.NewDescriptionNormalizer(descriptionOpts...)
	pipeline.Amounts.Lenient = cfg.Amounts.Lenient
	pipeline.CanonicalDates = cfg.Normalize.CanonicalDates

	readers := tablereader.NewRegistry(logger, tablereader.Options{
		CSVDelimiter:    cfg.DelimiterRune(),
		JSONRecordsPath: cfg.Readers.JSON.RecordsPath,
		SQLiteTable:     cfg.Readers.SQLite.Table,
	})
	metaStore := store.NewMetaStore(logger, cfg.Meta.Extensions)

	logger.Debug("Container initialized",
		logging.Field{Key: "readers", Value: len(readers.Extensions())},
		logging.Field{Key: "skip_invalid", Value: cfg.Compare.SkipInvalid})

	return &Container{
		logger:    logger,
		config:    cfg,
		readers:   readers,
		metaStore: metaStore,
		pipeline:  pipeline,
		preparer:  overlap.NewFilePreparer(readers, metaStore, pipeline),
		reporter:  report.NewReportGenerator(logger, cfg.Report.Style),
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetReaders returns the table reader registry.
func (c *Container) GetReaders() *tablereader.Registry {
	return c.readers
}

// GetMetaStore returns the column metadata store.
func (c *Container) GetMetaStore() *store.MetaStore {
	return c.metaStore
}

// GetPipeline returns the normalization pipeline.
func (c *Container) GetPipeline() *normalizer.Pipeline {
	return c.pipeline
}

// GetPreparer returns the file preparer shared by the commands.
func (c *Container) GetPreparer() *overlap.FilePreparer {
	return c.preparer
}

// GetReportGenerator returns the report generator.
func (c *Container) GetReportGenerator() *report.ReportGenerator {
	return c.reporter
}

// NewSelector returns a selector configured from the container. A nil logger
// falls back to the container's logger; observer may be nil.
func (c *Container) NewSelector(logger logging.Logger, observer overlap.Observer) *overlap.Selector {
	if logger == nil {
		logger = c.logger
	}
	opts := []overlap.Option{overlap.WithSkipInvalid(c.config.Compare.SkipInvalid)}
	if observer != nil {
		opts = append(opts, overlap.WithObserver(observer))
	}
	return overlap.NewSelector(c.preparer, logger, opts...)
}
