// Package assets implements the resource cache and hierarchy loader: it
// parses an imported asset's component tree into a transform hierarchy,
// owns the shared mesh/texture/material storage behind stable integer
// handles, and serves both the scene composer and the collision builder
// from the same cached data.
package assets

import "errors"

var (
	// ErrMissingAsset is returned when metadata or collision meshes are
	// requested for a key that was never loaded. Callers are expected to
	// validate existence before lookup.
	ErrMissingAsset = errors.New("asset not loaded")

	// ErrEmptyAsset is returned when every component of an asset failed
	// to load; no cache entry is committed in that case.
	ErrEmptyAsset = errors.New("asset has no loadable components")
)

// AssetType identifies the source category of an asset.
type AssetType int

const (
	AssetTypeUnknown AssetType = iota
	// AssetTypeMesh is a file-derived general mesh asset.
	AssetTypeMesh
	// AssetTypePrimitive is a synthesized procedural primitive.
	AssetTypePrimitive
)

// AssetInfo identifies one asset and its load-time options. Key is the
// resolved file path, or a synthesized handle for procedural assets.
type AssetInfo struct {
	Key              string
	Type             AssetType
	RequiresLighting bool
}

// indexRange identifies a contiguous run [Start, End) of an asset's
// entries within one of the cache's global resource sequences.
type indexRange struct {
	Start int
	End   int
}

// Count returns the number of entries in the range.
func (r indexRange) Count() int { return r.End - r.Start }

// MeshMetaData links an asset to its component hierarchy and to the
// slices of the global mesh/texture/material sequences it owns.
type MeshMetaData struct {
	Root MeshTransformNode

	MeshIndex     indexRange
	TextureIndex  indexRange
	MaterialIndex indexRange
}

// GlobalMeshID converts a local mesh index into the cache's global mesh
// sequence, or returns IDUndefined.
func (m *MeshMetaData) GlobalMeshID(local int) int {
	if local == IDUndefined {
		return IDUndefined
	}
	return m.MeshIndex.Start + local
}

// GlobalMaterialID converts a local material index into the cache's
// global material sequence, or returns IDUndefined.
func (m *MeshMetaData) GlobalMaterialID(local int) int {
	if local == IDUndefined {
		return IDUndefined
	}
	return m.MaterialIndex.Start + local
}

// LoadedAssetData is the cache entry for one unique asset key. It is
// immutable once Load commits it and stays valid for the cache's
// lifetime.
type LoadedAssetData struct {
	Info AssetInfo
	Meta MeshMetaData
}
