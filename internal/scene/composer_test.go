package scene

import (
	"errors"
	"testing"

	"github.com/Faultbox/stagehand/internal/assets"
	"github.com/Faultbox/stagehand/internal/importer"
	"github.com/Faultbox/stagehand/pkg/math"
)

func loadNestedAsset(t *testing.T, cache *assets.ResourceCache, key string) {
	t.Helper()

	// root -> outer(translate 2,0,0) -> inner(translate 0,3,0) with a
	// cube on both outer and inner
	s := importer.NewSynthetic()
	meshID := s.AddMesh(importer.CubeMesh())
	outer := s.AddComponent(s.RootComponentID(), math.Translate(2, 0, 0), meshID, importer.IDUndefined)
	s.AddComponent(outer, math.Translate(0, 3, 0), meshID, importer.IDUndefined)

	if _, err := cache.Load(assets.AssetInfo{Key: key, RequiresLighting: true}, s); err != nil {
		t.Fatalf("load %q: %v", key, err)
	}
}

func TestComposeTransformChain(t *testing.T) {
	cache := assets.NewResourceCache(nil)
	loadNestedAsset(t, cache, "objects/nested")
	composer := NewComposer(cache, nil)

	parent := NewRootNode()
	parent.SetTransform(math.Translate(100, 0, 0))
	var drawables DrawableGroup

	if _, err := composer.Compose("objects/nested", parent, &drawables, DefaultLightingKey, nil); err != nil {
		t.Fatalf("compose: %v", err)
	}
	if drawables.Len() != 2 {
		t.Fatalf("drawables = %d, want 2", drawables.Len())
	}

	// The inner drawable accumulates parent, root, outer and inner
	// transforms in hierarchy order
	inner := drawables.Drawables()[1]
	got := inner.Node.WorldTransform().Translation()
	want := math.Vec3{X: 102, Y: 3, Z: 0}
	if got != want {
		t.Errorf("inner world translation = %v, want %v", got, want)
	}
}

func TestComposeOrderingAndNodeCache(t *testing.T) {
	cache := assets.NewResourceCache(nil)
	loadNestedAsset(t, cache, "objects/nested")
	composer := NewComposer(cache, nil)

	parent := NewRootNode()
	var drawables DrawableGroup
	var visNodes []*Node

	root, err := composer.Compose("objects/nested", parent, &drawables, DefaultLightingKey, &visNodes)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}

	// One node per component: asset root, outer, inner
	if len(visNodes) != 3 {
		t.Fatalf("visited nodes = %d, want 3", len(visNodes))
	}
	if visNodes[0] != root {
		t.Error("first visited node should be the instantiated root")
	}
	// Drawables appear in traversal order, parents before children
	ds := drawables.Drawables()
	if ds[0].Node != visNodes[1] || ds[1].Node != visNodes[2] {
		t.Error("drawables out of traversal order")
	}
	if root.Parent() != parent {
		t.Error("instantiated root should attach under the given parent")
	}
}

func TestComposeNoOpWithoutTargets(t *testing.T) {
	cache := assets.NewResourceCache(nil)
	loadNestedAsset(t, cache, "objects/nested")
	composer := NewComposer(cache, nil)

	parent := NewRootNode()
	var drawables DrawableGroup

	node, err := composer.Compose("objects/nested", nil, &drawables, DefaultLightingKey, nil)
	if err != nil || node != nil {
		t.Errorf("nil parent: node=%v err=%v, want nil/nil", node, err)
	}
	node, err = composer.Compose("objects/nested", parent, nil, DefaultLightingKey, nil)
	if err != nil || node != nil {
		t.Errorf("nil drawables: node=%v err=%v, want nil/nil", node, err)
	}
	if drawables.Len() != 0 {
		t.Errorf("no-op compose produced %d drawables", drawables.Len())
	}
	if len(parent.Children()) != 0 {
		t.Errorf("no-op compose attached %d children", len(parent.Children()))
	}
}

func TestComposeMissingAsset(t *testing.T) {
	cache := assets.NewResourceCache(nil)
	composer := NewComposer(cache, nil)

	_, err := composer.Compose("never/loaded", NewRootNode(), &DrawableGroup{}, DefaultLightingKey, nil)
	if !errors.Is(err, assets.ErrMissingAsset) {
		t.Fatalf("expected ErrMissingAsset, got %v", err)
	}
}

func TestComposeUnlitAssetForcesNoLight(t *testing.T) {
	cache := assets.NewResourceCache(nil)

	s := importer.NewSynthetic()
	meshID := s.AddMesh(importer.CubeMesh())
	s.AddComponent(s.RootComponentID(), math.Identity(), meshID, importer.IDUndefined)
	if _, err := cache.Load(assets.AssetInfo{Key: "objects/unlit"}, s); err != nil {
		t.Fatalf("load: %v", err)
	}

	composer := NewComposer(cache, nil)
	var drawables DrawableGroup
	if _, err := composer.Compose("objects/unlit", NewRootNode(), &drawables, "warehouse_lights", nil); err != nil {
		t.Fatalf("compose: %v", err)
	}

	if got := drawables.Drawables()[0].LightSetupKey; got != NoLightKey {
		t.Errorf("light setup = %q, want %q", got, NoLightKey)
	}
}

func TestComposeSharesCachedData(t *testing.T) {
	cache := assets.NewResourceCache(nil)
	loadNestedAsset(t, cache, "objects/nested")
	composer := NewComposer(cache, nil)

	parent := NewRootNode()
	var a, b DrawableGroup
	if _, err := composer.Compose("objects/nested", parent, &a, DefaultLightingKey, nil); err != nil {
		t.Fatalf("first compose: %v", err)
	}
	if _, err := composer.Compose("objects/nested", parent, &b, DefaultLightingKey, nil); err != nil {
		t.Fatalf("second compose: %v", err)
	}

	// Two instances, distinct nodes, identical global mesh indices
	if a.Drawables()[0].Node == b.Drawables()[0].Node {
		t.Error("instances should not share scene nodes")
	}
	if a.Drawables()[0].MeshID != b.Drawables()[0].MeshID {
		t.Error("instances should reference the same cached mesh")
	}
	if cache.MeshCount() != 1 {
		t.Errorf("composing grew the mesh sequence to %d", cache.MeshCount())
	}
}

func TestComputeAbsoluteAABBs(t *testing.T) {
	cache := assets.NewResourceCache(nil)
	loadNestedAsset(t, cache, "objects/nested")
	composer := NewComposer(cache, nil)

	parent := NewRootNode()
	var drawables DrawableGroup
	if _, err := composer.Compose("objects/nested", parent, &drawables, DefaultLightingKey, nil); err != nil {
		t.Fatalf("compose: %v", err)
	}

	boxes := composer.ComputeAbsoluteAABBs(&drawables)
	if len(boxes) != drawables.Len() {
		t.Fatalf("boxes = %d, want %d", len(boxes), drawables.Len())
	}

	// Outer cube sits at (2,0,0), inner at (2,3,0)
	if got, want := boxes[0].Center(), (math.Vec3{X: 2, Y: 0, Z: 0}); !nearVec3(got, want) {
		t.Errorf("outer center = %v, want %v", got, want)
	}
	if got, want := boxes[1].Center(), (math.Vec3{X: 2, Y: 3, Z: 0}); !nearVec3(got, want) {
		t.Errorf("inner center = %v, want %v", got, want)
	}
}

func nearVec3(a, b math.Vec3) bool {
	const eps = 1e-4
	d := a.Sub(b)
	return d.X < eps && d.X > -eps && d.Y < eps && d.Y > -eps && d.Z < eps && d.Z > -eps
}
