package assets

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/stagehand/internal/importer"
	"github.com/Faultbox/stagehand/pkg/math"
)

// errDegenerateMesh marks a sub-mesh with an empty or invalid triangle
// list. It is recovered locally: the component is skipped and the rest
// of the asset keeps loading.
var errDegenerateMesh = errors.New("degenerate triangle list")

// loadState stages everything for one asset load. Nothing touches the
// cache's global sequences until commit, so a failed load never leaves
// a partial entry behind.
type loadState struct {
	cache *ResourceCache
	imp   importer.Importer
	info  AssetInfo

	meshes   []*MeshResource
	textures []*importer.TextureData
	mats     []*stagedMaterial

	// localByImporter dedupes meshes within one importer: requesting the
	// same referenced sub-mesh twice yields the same local index. Failed
	// meshes map to IDUndefined so they are not retried.
	localByImporter map[int]int
}

type stagedMaterial struct {
	data *importer.MaterialData
	// localTexture is the importer-local texture index, resolved to a
	// global index at commit time.
	localTexture int
}

// Load parses an asset's component tree, deduplicates and stages its
// meshes, textures, and materials, and commits one LoadedAssetData to
// the cache. Loading is idempotent: a key already present returns the
// existing entry untouched. A sub-mesh that fails to load is skipped
// with a diagnostic; an asset where every component fails returns
// ErrEmptyAsset and commits nothing.
func (c *ResourceCache) Load(info AssetInfo, imp importer.Importer) (*LoadedAssetData, error) {
	if a, ok := c.resources[info.Key]; ok {
		c.log.Debug("asset cache hit", zap.String("key", info.Key))
		return a, nil
	}

	ld := &loadState{
		cache:           c,
		imp:             imp,
		info:            info,
		localByImporter: make(map[int]int),
	}

	ld.loadTextures()
	ld.loadMaterials()
	root := ld.loadMeshHierarchy(imp.RootComponentID())

	if len(ld.meshes) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyAsset, info.Key)
	}

	asset := ld.commit(root)
	c.log.Info("asset loaded",
		zap.String("key", info.Key),
		zap.Int("meshes", asset.Meta.MeshIndex.Count()),
		zap.Int("textures", asset.Meta.TextureIndex.Count()),
		zap.Int("materials", asset.Meta.MaterialIndex.Count()))
	return asset, nil
}

// loadTextures fetches every texture blob the importer reports. A blob
// that fails to load stages a nil slot; materials referencing it fall
// back to flat shading at commit.
func (ld *loadState) loadTextures() {
	for i := 0; i < ld.imp.TextureCount(); i++ {
		data, err := ld.imp.Texture(i)
		if err != nil {
			ld.cache.log.Warn("texture load failed, using flat material",
				zap.String("key", ld.info.Key),
				zap.Int("texture", i),
				zap.Error(err))
			data = nil
		}
		ld.textures = append(ld.textures, data)
	}
}

// loadMaterials stages every material the importer reports, keeping
// local indices aligned even when a material fails to parse.
func (ld *loadState) loadMaterials() {
	for i := 0; i < ld.imp.MaterialCount(); i++ {
		data, err := ld.imp.Material(i)
		if err != nil || data == nil {
			if err != nil {
				ld.cache.log.Warn("material load failed, using default",
					zap.String("key", ld.info.Key),
					zap.Int("material", i),
					zap.Error(err))
			}
			data = &importer.MaterialData{
				Diffuse:   [3]float32{1, 1, 1},
				TextureID: importer.IDUndefined,
			}
		}
		ld.mats = append(ld.mats, &stagedMaterial{
			data:         data,
			localTexture: data.TextureID,
		})
	}
}

// loadMeshHierarchy recursively mirrors the importer's component tree
// into MeshTransformNodes, staging each referenced mesh once.
func (ld *loadState) loadMeshHierarchy(componentID int) MeshTransformNode {
	node := MeshTransformNode{
		Transform:       ld.imp.ComponentTransform(componentID),
		MeshIDLocal:     ld.stageMesh(ld.imp.ComponentMesh(componentID)),
		MaterialIDLocal: IDUndefined,
	}
	if node.MeshIDLocal != IDUndefined {
		if mat := ld.imp.ComponentMaterial(componentID); mat >= 0 && mat < len(ld.mats) {
			node.MaterialIDLocal = mat
		}
	}
	for _, childID := range ld.imp.ComponentChildren(componentID) {
		node.Children = append(node.Children, ld.loadMeshHierarchy(childID))
	}
	return node
}

// stageMesh fetches and validates a referenced mesh, deduplicated by
// importer-local mesh ID. Degenerate or unreadable meshes are skipped;
// repeated references to a failed mesh stay skipped.
func (ld *loadState) stageMesh(importerMeshID int) int {
	if importerMeshID == importer.IDUndefined {
		return IDUndefined
	}
	if local, ok := ld.localByImporter[importerMeshID]; ok {
		return local
	}

	data, err := ld.imp.Mesh(importerMeshID)
	if err == nil && data.IsDegenerate() {
		err = errDegenerateMesh
	}
	if err != nil {
		ld.cache.log.Warn("skipping sub-mesh",
			zap.String("key", ld.info.Key),
			zap.Int("mesh", importerMeshID),
			zap.Error(err))
		ld.localByImporter[importerMeshID] = IDUndefined
		return IDUndefined
	}

	local := len(ld.meshes)
	ld.meshes = append(ld.meshes, &MeshResource{
		Data:      data,
		Bounds:    meshBounds(data),
		Transform: math.Identity(),
	})
	ld.localByImporter[importerMeshID] = local
	return local
}

// commit appends the staged resources to the cache's global sequences,
// assigns globally unique texture/material IDs, and inserts the asset
// entry and its collision views.
func (ld *loadState) commit(root MeshTransformNode) *LoadedAssetData {
	c := ld.cache

	meta := MeshMetaData{Root: root}

	meta.MeshIndex = indexRange{Start: len(c.meshes), End: len(c.meshes) + len(ld.meshes)}
	c.meshes = append(c.meshes, ld.meshes...)

	meta.TextureIndex = indexRange{Start: len(c.textures), End: len(c.textures) + len(ld.textures)}
	for _, data := range ld.textures {
		c.textures = append(c.textures, &TextureResource{ID: c.nextTextureID, Data: data})
		c.nextTextureID++
	}

	meta.MaterialIndex = indexRange{Start: len(c.materials), End: len(c.materials) + len(ld.mats)}
	for _, staged := range ld.mats {
		mat := &Material{
			ID:           c.nextMaterialID,
			Shading:      ShadingPhong,
			Ambient:      staged.data.Ambient,
			Diffuse:      staged.data.Diffuse,
			Specular:     staged.data.Specular,
			Shininess:    staged.data.Shininess,
			TextureIndex: IDUndefined,
		}
		c.nextMaterialID++
		if !ld.info.RequiresLighting {
			mat.Shading = ShadingFlat
		}
		if t := staged.localTexture; t >= 0 && t < len(ld.textures) {
			if ld.textures[t] != nil {
				mat.TextureIndex = meta.TextureIndex.Start + t
			} else {
				// Texture failed to load: degrade to a flat untextured
				// material, the asset stays renderable.
				mat.Shading = ShadingFlat
			}
		}
		c.materials = append(c.materials, mat)
	}

	asset := &LoadedAssetData{Info: ld.info, Meta: meta}
	c.resources[ld.info.Key] = asset

	group := make([]CollisionMeshData, len(ld.meshes))
	for i, mesh := range ld.meshes {
		group[i] = CollisionMeshData{
			Positions: mesh.Data.Positions,
			Indices:   mesh.Data.Indices,
		}
	}
	c.collisionGroups[ld.info.Key] = group

	return asset
}
