// Package attributes manages object templates: named parameter sets
// describing how an asset is rendered and collided.
package attributes

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/stagehand/internal/importer"
	"github.com/Faultbox/stagehand/pkg/math"
)

// ErrUnknownTemplate is returned when a handle has no registration.
var ErrUnknownTemplate = errors.New("unknown object template")

// ObjectTemplate describes one placeable object: which assets back it
// and the physical coefficients its collision objects get.
type ObjectTemplate struct {
	Handle           string     `yaml:"handle"`
	RenderAsset      string     `yaml:"render_asset"`
	CollisionAsset   string     `yaml:"collision_asset"`
	Friction         float32    `yaml:"friction"`
	Restitution      float32    `yaml:"restitution"`
	Margin           float32    `yaml:"margin"`
	LightSetup       string     `yaml:"light_setup"`
	RequiresLighting bool       `yaml:"requires_lighting"`
	Scale            [3]float32 `yaml:"scale"`
}

// Default returns a template with standard physical coefficients and
// unit scale. Loading a file merges over these values.
func Default() *ObjectTemplate {
	return &ObjectTemplate{
		Friction:         0.5,
		Restitution:      0.1,
		Margin:           0.04,
		RequiresLighting: true,
		Scale:            [3]float32{1, 1, 1},
	}
}

// ScaleVec returns the template scale as a vector.
func (t *ObjectTemplate) ScaleVec() math.Vec3 {
	return math.Vec3{X: t.Scale[0], Y: t.Scale[1], Z: t.Scale[2]}
}

// Manager is the registry of object templates, keyed by handle.
// Registration order is preserved.
type Manager struct {
	templates map[string]*ObjectTemplate
	order     []string
}

// NewManager returns an empty template registry.
func NewManager() *Manager {
	return &Manager{templates: make(map[string]*ObjectTemplate)}
}

// Register adds a template under its handle. Re-registering a handle
// replaces the previous template and keeps its position in the order.
func (m *Manager) Register(tmpl *ObjectTemplate) error {
	if tmpl.Handle == "" {
		return fmt.Errorf("registering template: empty handle")
	}
	if _, exists := m.templates[tmpl.Handle]; !exists {
		m.order = append(m.order, tmpl.Handle)
	}
	m.templates[tmpl.Handle] = tmpl
	return nil
}

// Template returns the template registered under handle.
func (m *Manager) Template(handle string) (*ObjectTemplate, error) {
	tmpl, ok := m.templates[handle]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, handle)
	}
	return tmpl, nil
}

// Handles returns every registered handle in registration order.
func (m *Manager) Handles() []string {
	return m.order
}

// Len returns the number of registered templates.
func (m *Manager) Len() int { return len(m.order) }

// LoadFile reads a template from a YAML file, merges it over the
// defaults and registers it. The file must set a handle.
func (m *Manager) LoadFile(path string) (*ObjectTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading template from %s: %w", path, err)
	}

	tmpl := Default()
	if err := yaml.Unmarshal(data, tmpl); err != nil {
		return nil, fmt.Errorf("loading template from %s: %w", path, err)
	}
	if tmpl.Handle == "" {
		return nil, fmt.Errorf("loading template from %s: missing handle", path)
	}
	if err := m.Register(tmpl); err != nil {
		return nil, err
	}
	return tmpl, nil
}

// RegisterPrimitive registers a template for a built-in primitive.
// The handle doubles as the render and collision asset key, so
// primitives need no asset files on disk.
func (m *Manager) RegisterPrimitive(t importer.PrimitiveType) (*ObjectTemplate, error) {
	tmpl := Default()
	tmpl.Handle = t.String()
	tmpl.RenderAsset = t.String()
	tmpl.CollisionAsset = t.String()
	if err := m.Register(tmpl); err != nil {
		return nil, err
	}
	return tmpl, nil
}
