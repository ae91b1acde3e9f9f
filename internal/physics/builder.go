package physics

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/stagehand/internal/assets"
	"github.com/Faultbox/stagehand/pkg/math"
)

// ErrRegistration wraps a dynamics-world rejection during static
// scene construction.
var ErrRegistration = errors.New("collision object registration failed")

// Params configures a static scene build. Placement anchors the
// asset root in world space, Scale applies a global scale under it.
type Params struct {
	Friction    float32
	Restitution float32
	Margin      float32
	Scale       math.Vec3
	Placement   math.Mat4
}

// DefaultParams returns the standard static scene parameters.
func DefaultParams() Params {
	return Params{
		Friction:    0.5,
		Restitution: 0.1,
		Margin:      DefaultMargin,
		Scale:       math.Vec3{X: 1, Y: 1, Z: 1},
		Placement:   math.Identity(),
	}
}

// StaticScene is the immovable collision geometry of one loaded
// asset: one concave triangle mesh shape per mesh-bearing component,
// registered in a dynamics world. Scale accumulated down the
// hierarchy is folded into each shape, world placement stays rotation
// and translation only.
type StaticScene struct {
	world   DynamicsWorld
	objects []*CollisionObject
	aabb    math.AABB
	log     *zap.Logger
}

// NewStaticScene builds the collision scene for the asset under key
// and registers every shape with the world. The asset must already be
// loaded. If any registration fails, every object added so far is
// removed and the error wraps ErrRegistration: a scene is either
// fully in the world or not at all.
func NewStaticScene(cache *assets.ResourceCache, key string, world DynamicsWorld, params Params, log *zap.Logger) (*StaticScene, error) {
	if log == nil {
		log = zap.NewNop()
	}
	asset, err := cache.Asset(key)
	if err != nil {
		return nil, fmt.Errorf("building static scene: %w", err)
	}
	group, err := cache.CollisionMeshGroup(key)
	if err != nil {
		return nil, fmt.Errorf("building static scene: %w", err)
	}

	s := &StaticScene{world: world, log: log}
	rootTransform := params.Placement.Mul(math.Scale(params.Scale.X, params.Scale.Y, params.Scale.Z))

	err = assets.WalkHierarchy(&asset.Meta.Root, rootTransform,
		func(n *assets.MeshTransformNode, parentTransform math.Mat4) (math.Mat4, error) {
			transform := parentTransform.Mul(n.Transform)
			if n.MeshIDLocal == assets.IDUndefined {
				return transform, nil
			}

			view := group[n.MeshIDLocal]
			shape := NewTriangleMeshShape(view.Positions, view.Indices)
			shape.SetLocalScaling(transform.Scaling())
			shape.SetMargin(params.Margin)

			obj := &CollisionObject{
				Shape:          shape,
				WorldTransform: transform.RotationTranslation(),
				Friction:       params.Friction,
				Restitution:    params.Restitution,
			}
			if err := world.AddCollisionObject(obj); err != nil {
				return transform, fmt.Errorf("%w: %v", ErrRegistration, err)
			}
			s.objects = append(s.objects, obj)
			s.aabb = s.aabb.Join(obj.Aabb())
			return transform, nil
		})
	if err != nil {
		s.rollback()
		return nil, fmt.Errorf("building static scene for %q: %w", key, err)
	}

	log.Info("static scene registered",
		zap.String("key", key),
		zap.Int("shapes", len(s.objects)))
	return s, nil
}

func (s *StaticScene) rollback() {
	for _, obj := range s.objects {
		s.world.RemoveCollisionObject(obj)
	}
	s.objects = nil
	s.aabb = math.AABB{}
}

// Objects returns the scene's collision objects in registration
// order.
func (s *StaticScene) Objects() []*CollisionObject { return s.objects }

// CollisionAabb returns the union of every shape's world-space
// bounds.
func (s *StaticScene) CollisionAabb() math.AABB { return s.aabb }

// SetFriction applies one friction coefficient to every collision
// object in the scene.
func (s *StaticScene) SetFriction(friction float32) {
	for _, obj := range s.objects {
		obj.Friction = friction
	}
}

// Friction returns the friction of the last registered object, or 0
// for an empty scene. Scene friction is uniform, so any object's
// value stands for all of them.
func (s *StaticScene) Friction() float32 {
	if len(s.objects) == 0 {
		return 0
	}
	return s.objects[len(s.objects)-1].Friction
}

// SetRestitution applies one restitution coefficient to every
// collision object in the scene.
func (s *StaticScene) SetRestitution(restitution float32) {
	for _, obj := range s.objects {
		obj.Restitution = restitution
	}
}

// Restitution returns the restitution of the last registered object,
// or 0 for an empty scene.
func (s *StaticScene) Restitution() float32 {
	if len(s.objects) == 0 {
		return 0
	}
	return s.objects[len(s.objects)-1].Restitution
}

// SetMargin changes the collision margin of every shape, rebuilding
// each shape's acceleration structure.
func (s *StaticScene) SetMargin(margin float32) {
	var aabb math.AABB
	for _, obj := range s.objects {
		obj.Shape.SetMargin(margin)
		aabb = aabb.Join(obj.Aabb())
	}
	s.aabb = aabb
}

// Destroy unregisters every collision object from the world and
// releases the scene's references. Safe to call more than once.
func (s *StaticScene) Destroy() {
	for _, obj := range s.objects {
		s.world.RemoveCollisionObject(obj)
	}
	s.objects = nil
	s.aabb = math.AABB{}
}
