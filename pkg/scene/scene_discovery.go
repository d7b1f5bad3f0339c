package scene

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier used on the command line
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

type preset struct {
	info  SceneInfo
	build func() *Scene
}

// DefaultSceneID is the scene rendered when none is requested
const DefaultSceneID = "simple_sphere"

var presets = map[string]preset{}

func register(id, group, description string, build func() *Scene) {
	presets[id] = preset{
		info: SceneInfo{
			ID:          id,
			DisplayName: titleCase(id),
			Description: description,
			Group:       group,
		},
		build: build,
	}
}

func init() {
	register("simple_sphere", "Basic", "Diffuse sphere under a quad light", NewSimpleSphereScene)
	register("two_spheres_check", "Basic", "Two checkered spheres under a sky", NewCheckeredSpheresScene)
	register("material_showcase", "Basic", "Diffuse, metal and glass spheres side by side", NewMaterialShowcaseScene)
	register("cornell_box", "Cornell", "Cornell box with two rotated boxes", NewCornellScene)
	register("cornell_smoke", "Cornell", "Cornell box with two boxes of smoke", NewCornellSmokeScene)
	register("simple_light", "Basic", "Marble spheres lit by a single quad light", NewSimpleLightScene)
	register("two_perlin_spheres", "Textures", "Marble sphere on a marble ground", NewTwoPerlinSpheresScene)
	register("earth", "Textures", "Globe wrapped in a procedural planet map", NewEarthScene)
	register("texture_gallery", "Textures", "UV debug, checkerboard, gradient and marble spheres", NewTextureGalleryScene)
	register("random_spheres", "Showcase", "Field of random spheres with motion blur and defocus", NewRandomSpheresScene)
	register("final_scene", "Showcase", "Boxes, fog, glass, motion blur, textures and a rotated sphere cluster", NewFinalScene)
}

// SceneIDs returns every registered scene id in sorted order
func SceneIDs() []string {
	ids := lo.Keys(presets)
	sort.Strings(ids)
	return ids
}

// ListScenes returns every registered scene sorted by id
func ListScenes() []SceneInfo {
	return lo.Map(SceneIDs(), func(id string, _ int) SceneInfo {
		return presets[id].info
	})
}

// ListGroups returns the scenes grouped by category, groups in alphabetical order
func ListGroups() []SceneGroup {
	byGroup := lo.GroupBy(ListScenes(), func(info SceneInfo) string { return info.Group })

	names := lo.Keys(byGroup)
	sort.Strings(names)

	return lo.Map(names, func(name string, _ int) SceneGroup {
		return SceneGroup{Name: name, Scenes: byGroup[name]}
	})
}

// Load builds a fresh copy of the scene registered under id
func Load(id string) (*Scene, error) {
	p, ok := presets[id]
	if !ok {
		return nil, errors.Errorf("unknown scene %q (available: %s)", id, strings.Join(SceneIDs(), ", "))
	}
	return p.build(), nil
}

// titleCase converts an identifier-style string to title case
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
