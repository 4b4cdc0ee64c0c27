package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/hopper/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// Defaults for object properties that are absent in the TMX.
const (
	defaultHazardDamage = 1
	defaultHazardTeam   = 1
	defaultPickupAmount = 1
	defaultScoreAmount  = 100
)

// LoadLevel parses a TMX file's object groups into a Level. It takes an fs.FS
// so callers can pass embed.FS or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
		Paths:  map[string]Path{},
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				level.PlayerSpawn = gamemath.V2(o.X, o.Y)
				level.HasPlayerSpawn = true
			}
		case "Solids":
			for _, o := range og.Objects {
				level.Solids = append(level.Solids, rectOf(o))
			}
		case "Platforms":
			for _, o := range og.Objects {
				level.Platforms = append(level.Platforms, rectOf(o))
			}
		case "Paths":
			for _, o := range og.Objects {
				if p, ok := pathOf(o); ok {
					level.Paths[p.Name] = p
				}
			}
		case "MovingPlatforms":
			for _, o := range og.Objects {
				level.MovingPlatforms = append(level.MovingPlatforms, MovingPlatformSpawn{
					Rect:   rectOf(o),
					Path:   o.Properties.GetString("pathName"),
					Speed:  floatProp(o.Properties, "speed", 0),
					Wait:   floatProp(o.Properties, "wait", -1),
					OneWay: boolProp(o.Properties, "oneWay", false),
				})
			}
		case "Enemies":
			for _, o := range og.Objects {
				level.Enemies = append(level.Enemies, EnemySpawn{
					X:          o.X,
					Y:          o.Y,
					Kind:       classOf(o),
					Direction:  o.Properties.GetString("direction"),
					TurnAtEdge: boolProp(o.Properties, "turnAtEdge", false),
					Path:       o.Properties.GetString("pathName"),
					Speed:      floatProp(o.Properties, "speed", 0),
					Wait:       floatProp(o.Properties, "wait", -1),
				})
			}
		case "Pickups":
			for _, o := range og.Objects {
				kind := classOf(o)
				amount := defaultPickupAmount
				if kind == "score" {
					amount = defaultScoreAmount
				}
				level.Pickups = append(level.Pickups, PickupSpawn{
					Rect:   rectOf(o),
					Kind:   kind,
					Amount: intProp(o.Properties, "amount", amount),
					KeyID:  o.Properties.GetInt("keyID"),
				})
			}
		case "Doors":
			for _, o := range og.Objects {
				level.Doors = append(level.Doors, DoorSpawn{
					Rect: rectOf(o),
					ID:   o.Properties.GetInt("doorID"),
				})
			}
		case "Checkpoints":
			for _, o := range og.Objects {
				level.Checkpoints = append(level.Checkpoints, CheckpointSpawn{
					Rect: rectOf(o),
					ID:   o.Properties.GetInt("checkpointID"),
				})
			}
		case "Hazards":
			for _, o := range og.Objects {
				level.Hazards = append(level.Hazards, HazardSpawn{
					Rect:               rectOf(o),
					Damage:             intProp(o.Properties, "damage", defaultHazardDamage),
					TeamID:             intProp(o.Properties, "teamID", defaultHazardTeam),
					Stay:               boolProp(o.Properties, "stay", true),
					DestroyAfterDamage: boolProp(o.Properties, "destroyAfterDamage", false),
				})
			}
		case "DeadZones":
			for _, o := range og.Objects {
				level.DeadZones = append(level.DeadZones, rectOf(o))
			}
		}
	}

	// Sort left-to-right so spawn order does not depend on editor order
	sort.SliceStable(level.Checkpoints, func(i, j int) bool {
		return level.Checkpoints[i].X < level.Checkpoints[j].X
	})

	return level, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads each,
// and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := "*.tmx"
	if levelsDir != "" && levelsDir != "." {
		pattern = levelsDir + "/*.tmx"
	}
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		level, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

func rectOf(o *tiled.Object) Rect {
	return Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
}

func classOf(o *tiled.Object) string {
	class := o.Class
	if class == "" {
		class = o.Type //nolint:staticcheck // older TMX files use type=
	}
	return class
}

func pathOf(o *tiled.Object) (Path, bool) {
	if len(o.PolyLines) == 0 {
		return Path{}, false
	}
	// Use the first polyline if multiple polylines exist
	polyline := o.PolyLines[0]
	if polyline.Points == nil || len(*polyline.Points) == 0 {
		return Path{}, false
	}
	points := make([]gamemath.Vec3, len(*polyline.Points))
	for i, point := range *polyline.Points {
		points[i] = gamemath.V2(o.X+point.X, o.Y+point.Y)
	}
	return Path{Name: o.Name, Points: points}, true
}

func hasProp(props tiled.Properties, name string) bool {
	for _, p := range props {
		if p.Name == name {
			return true
		}
	}
	return false
}

func intProp(props tiled.Properties, name string, def int) int {
	if !hasProp(props, name) {
		return def
	}
	return props.GetInt(name)
}

func floatProp(props tiled.Properties, name string, def float64) float64 {
	if !hasProp(props, name) {
		return def
	}
	return props.GetFloat(name)
}

func boolProp(props tiled.Properties, name string, def bool) bool {
	if !hasProp(props, name) {
		return def
	}
	return props.GetBool(name)
}
