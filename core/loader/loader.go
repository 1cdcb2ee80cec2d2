package loader

import (
	"github.com/gofiber/fiber/v2"
)

// Feature is the lifecycle contract every dashboard module implements.
type Feature interface {
	// Name returns the unique feature name (e.g., "listing", "commission").
	Name() string

	// IsEnabled reports whether the feature should be loaded.
	IsEnabled() bool

	// Load initializes the feature and registers its routes.
	Load(app fiber.Router) error
}

// Manager holds the registry of available features.
type Manager struct {
	features []Feature
}

// NewManager creates an empty feature manager.
func NewManager() *Manager {
	return &Manager{}
}

// Register adds a feature to the registry. Registration order is load order.
func (m *Manager) Register(f Feature) {
	m.features = append(m.features, f)
}

// LoadAll loads every enabled feature, stopping at the first failure.
func (m *Manager) LoadAll(app fiber.Router) error {
	for _, f := range m.features {
		if !f.IsEnabled() {
			continue
		}
		if err := f.Load(app); err != nil {
			return err
		}
	}
	return nil
}
