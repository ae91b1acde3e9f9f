package physics

import (
	"fmt"

	"github.com/Faultbox/stagehand/pkg/math"
)

// CollisionObject places one shape in the world. The transform
// carries rotation and translation only.
type CollisionObject struct {
	Shape          *TriangleMeshShape
	WorldTransform math.Mat4

	Friction    float32
	Restitution float32
}

// Aabb returns the object's world-space bounds.
func (o *CollisionObject) Aabb() math.AABB {
	return o.Shape.Aabb(o.WorldTransform)
}

// Orientation returns the object's world rotation as a unit
// quaternion.
func (o *CollisionObject) Orientation() math.Quat {
	return math.QuatFromMat4(o.WorldTransform)
}

// DynamicsWorld is where collision objects get registered. Adding can
// fail, removal of an unregistered object is a no-op.
type DynamicsWorld interface {
	AddCollisionObject(obj *CollisionObject) error
	RemoveCollisionObject(obj *CollisionObject)
}

// World is a static dynamics world: a registry of collision objects
// with a gravity vector. It rejects double registration.
type World struct {
	Gravity math.Vec3

	objects    []*CollisionObject
	registered map[*CollisionObject]bool
}

// NewWorld returns an empty world with default gravity (0, -9.8, 0).
func NewWorld() *World {
	return &World{
		Gravity:    math.Vec3{Y: -9.8},
		registered: make(map[*CollisionObject]bool),
	}
}

// AddCollisionObject registers an object. An object may be registered
// at most once.
func (w *World) AddCollisionObject(obj *CollisionObject) error {
	if w.registered[obj] {
		return fmt.Errorf("collision object already registered")
	}
	w.registered[obj] = true
	w.objects = append(w.objects, obj)
	return nil
}

// RemoveCollisionObject unregisters an object, preserving the order
// of the rest. Unknown objects are ignored.
func (w *World) RemoveCollisionObject(obj *CollisionObject) {
	if !w.registered[obj] {
		return
	}
	delete(w.registered, obj)
	for i, o := range w.objects {
		if o == obj {
			w.objects = append(w.objects[:i], w.objects[i+1:]...)
			break
		}
	}
}

// Contains reports whether the object is currently registered.
func (w *World) Contains(obj *CollisionObject) bool {
	return w.registered[obj]
}

// Len returns the number of registered objects.
func (w *World) Len() int { return len(w.objects) }

// Objects returns the registered objects in registration order.
func (w *World) Objects() []*CollisionObject { return w.objects }
