package scene

// Lighting setup keys understood by the renderer. The default key
// selects the scene's configured lights, NoLightKey disables lighting
// for the drawable entirely.
const (
	DefaultLightingKey = ""
	NoLightKey         = "no_lights"
)

// Drawable binds a scene node to a mesh and material in the resource
// cache's global sequences.
type Drawable struct {
	Node *Node

	// Indices into the cache's global mesh/material sequences.
	MeshID     int
	MaterialID int

	LightSetupKey string
}

// DrawableGroup collects the drawables of one scene in creation order.
type DrawableGroup struct {
	drawables []Drawable
}

// Add appends a drawable to the group.
func (g *DrawableGroup) Add(d Drawable) {
	g.drawables = append(g.drawables, d)
}

// Drawables returns the drawables in creation order.
func (g *DrawableGroup) Drawables() []Drawable {
	return g.drawables
}

// Len returns the number of drawables in the group.
func (g *DrawableGroup) Len() int {
	return len(g.drawables)
}
