// internal/defs/loader.go
package defs

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"go-tower-siege/pkg/logger"
)

const (
	EnemiesFile = "enemies.json"
	TowersFile  = "towers.json"
	LevelsFile  = "levels.json"
)

//go:embed data/*.json
var embedded embed.FS

// Library holds every definition, keyed by ID.
type Library struct {
	Enemies map[string]EnemyDefinition
	Towers  map[string]TowerDefinition
	Levels  map[string]LevelDefinition
}

// LoadDefault loads the definitions compiled into the binary.
func LoadDefault() (*Library, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded definitions: %w", err)
	}
	return Load(sub)
}

// LoadDir loads definitions from a directory on disk.
func LoadDir(dir string) (*Library, error) {
	return Load(os.DirFS(dir))
}

// Load reads the three definition files from fsys and validates them.
func Load(fsys fs.FS) (*Library, error) {
	var enemies []EnemyDefinition
	if err := readJSON(fsys, EnemiesFile, &enemies); err != nil {
		return nil, err
	}
	var towers []TowerDefinition
	if err := readJSON(fsys, TowersFile, &towers); err != nil {
		return nil, err
	}
	var levels []LevelDefinition
	if err := readJSON(fsys, LevelsFile, &levels); err != nil {
		return nil, err
	}

	lib := &Library{
		Enemies: make(map[string]EnemyDefinition, len(enemies)),
		Towers:  make(map[string]TowerDefinition, len(towers)),
		Levels:  make(map[string]LevelDefinition, len(levels)),
	}
	for _, def := range enemies {
		lib.Enemies[def.ID] = def
	}
	for _, def := range towers {
		lib.Towers[def.ID] = def
	}
	for _, def := range levels {
		lib.Levels[def.ID] = def
	}
	if err := lib.Validate(); err != nil {
		return nil, err
	}

	logger.Log.WithFields(map[string]interface{}{
		"enemies": len(lib.Enemies),
		"towers":  len(lib.Towers),
		"levels":  len(lib.Levels),
	}).Info("Loaded definitions")
	return lib, nil
}

func readJSON(fsys fs.FS, name string, out interface{}) error {
	file, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(file, out); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", name, err)
	}
	return nil
}

// Validate checks every definition in a stable order.
func (l *Library) Validate() error {
	for _, id := range sortedKeys(l.Enemies) {
		if err := l.Enemies[id].Validate(); err != nil {
			return err
		}
	}
	for _, id := range sortedKeys(l.Towers) {
		if err := l.Towers[id].Validate(); err != nil {
			return err
		}
	}
	for _, id := range sortedKeys(l.Levels) {
		if err := l.Levels[id].Validate(l.Enemies); err != nil {
			return err
		}
	}
	return nil
}

// TowerIDs returns tower IDs sorted by cost, then ID. Used for the build panel.
func (l *Library) TowerIDs() []string {
	ids := sortedKeys(l.Towers)
	sort.SliceStable(ids, func(i, j int) bool {
		return l.Towers[ids[i]].Cost < l.Towers[ids[j]].Cost
	})
	return ids
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
