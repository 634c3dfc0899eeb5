// Package store loads the per-file metadata (column renames, date format)
// kept next to transaction files.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/find-overlap/internal/fileutils"
	"fjacquet/find-overlap/internal/logging"
	"fjacquet/find-overlap/internal/models"

	"gopkg.in/yaml.v3"
)

// DefaultMetaExtensions are tried in order next to a data file.
var DefaultMetaExtensions = []string{".json", ".yaml", ".yml"}

// MetaStore finds and decodes metadata files. For bank.csv it looks at
// bank.json, bank.yaml and bank.yml; the data file itself is never read as
// its own metadata.
type MetaStore struct {
	extensions []string
	logger     logging.Logger
}

// NewMetaStore creates a store. A nil or empty extensions list uses
// DefaultMetaExtensions.
func NewMetaStore(logger logging.Logger, extensions []string) *MetaStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if len(extensions) == 0 {
		extensions = DefaultMetaExtensions
	}
	return &MetaStore{
		extensions: extensions,
		logger:     logger,
	}
}

// FindMetaFile returns the metadata file for dataPath, or "" when none exists.
func (s *MetaStore) FindMetaFile(dataPath string) string {
	for _, ext := range s.extensions {
		candidate := fileutils.SiblingPath(dataPath, ext)
		if filepath.Clean(candidate) == filepath.Clean(dataPath) {
			continue
		}
		if fileutils.FileExists(candidate) {
			return candidate
		}
	}
	return ""
}

// Load returns the customizations for dataPath. A missing metadata file
// yields empty customizations.
func (s *MetaStore) Load(dataPath string) (models.Customizations, error) {
	var custom models.Customizations

	metaPath := s.FindMetaFile(dataPath)
	if metaPath == "" {
		return custom, nil
	}

	data, err := os.ReadFile(metaPath) // #nosec G304 -- sibling of a user-selected file
	if err != nil {
		return custom, fmt.Errorf("error reading metadata file %s: %w", metaPath, err)
	}

	switch fileutils.Extension(metaPath) {
	case ".json":
		err = json.Unmarshal(data, &custom)
	default:
		err = yaml.Unmarshal(data, &custom)
	}
	if err != nil {
		return models.Customizations{}, fmt.Errorf("error parsing metadata file %s: %w", metaPath, err)
	}

	s.logger.Debug("Loaded column metadata",
		logging.Field{Key: logging.FieldFile, Value: metaPath},
		logging.Field{Key: logging.FieldCount, Value: len(custom.Renames())})
	return custom, nil
}

// Save writes custom as JSON next to dataPath and returns the path written.
func (s *MetaStore) Save(dataPath string, custom models.Customizations) (string, error) {
	metaPath := fileutils.SiblingPath(dataPath, ".json")
	if filepath.Clean(metaPath) == filepath.Clean(dataPath) {
		return "", fmt.Errorf("cannot write metadata over data file %s", dataPath)
	}

	data, err := json.MarshalIndent(custom, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error encoding metadata: %w", err)
	}
	if err := os.WriteFile(metaPath, data, models.PermissionReportFile); err != nil {
		return "", fmt.Errorf("error writing metadata file %s: %w", metaPath, err)
	}

	s.logger.Info("Wrote column metadata", logging.Field{Key: logging.FieldOutputFile, Value: metaPath})
	return metaPath, nil
}
