package store

import (
	"fjacquet/find-overlap/internal/models"
)

// MockMetaStore returns canned customizations keyed by data file path.
type MockMetaStore struct {
	Customizations map[string]models.Customizations
	LoadError      error
}

// Load returns the customizations registered for dataPath.
func (m *MockMetaStore) Load(dataPath string) (models.Customizations, error) {
	if m.LoadError != nil {
		return models.Customizations{}, m.LoadError
	}
	return m.Customizations[dataPath], nil
}
