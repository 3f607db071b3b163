package gui

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cronusdmd/easy-gui-template/geom"
)

// Cross-session persistence of retained placements. Optional: hosts that
// want windows to reopen where the user left them call SavePlacements on
// shutdown and LoadPlacements on startup. State is flattened to numeric
// fields; velocity is transient frame-to-frame and deliberately excluded.

type areaPlacement struct {
	X            float32 `yaml:"x"`
	Y            float32 `yaml:"y"`
	W            float32 `yaml:"w"`
	H            float32 `yaml:"h"`
	Interactable bool    `yaml:"interactable"`
}

type resizePlacement struct {
	DesiredW float32 `yaml:"desired_w"`
	DesiredH float32 `yaml:"desired_h"`
	ContentW float32 `yaml:"content_w"`
	ContentH float32 `yaml:"content_h"`
}

type placementFile struct {
	Areas   map[uint64]areaPlacement   `yaml:"areas"`
	Resizes map[uint64]resizePlacement `yaml:"resizes"`
}

// SavePlacements writes retained area and resize placements to a YAML
// file, creating parent directories as needed.
func (c *Context) SavePlacements(path string) error {
	c.mu.Lock()
	file := placementFile{
		Areas:   make(map[uint64]areaPlacement, len(c.memory.Areas.areas)),
		Resizes: make(map[uint64]resizePlacement, len(c.memory.resize)),
	}
	for id, s := range c.memory.Areas.areas {
		file.Areas[uint64(id)] = areaPlacement{
			X: s.Pos.X, Y: s.Pos.Y,
			W: s.Size.X, H: s.Size.Y,
			Interactable: s.Interactable,
		}
	}
	for id, s := range c.memory.resize {
		file.Resizes[uint64(id)] = resizePlacement{
			DesiredW: s.DesiredSize.X, DesiredH: s.DesiredSize.Y,
			ContentW: s.LastContentSize.X, ContentH: s.LastContentSize.Y,
		}
	}
	c.mu.Unlock()

	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("marshal placements: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadPlacements restores placements saved by SavePlacements. A missing
// or unreadable file is not an error: the UI simply starts from defaults.
// Restored regions re-enter the z-order when first shown.
func (c *Context) LoadPlacements(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var file placementFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse placements %s: %w", path, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for id, p := range file.Areas {
		c.memory.Areas.restore(ID(id), AreaState{
			Pos:          geom.P2(p.X, p.Y),
			Size:         geom.V2(p.W, p.H),
			Interactable: p.Interactable,
		})
	}
	for id, p := range file.Resizes {
		c.memory.resize[ID(id)] = ResizeState{
			DesiredSize:     geom.V2(p.DesiredW, p.DesiredH),
			LastContentSize: geom.V2(p.ContentW, p.ContentH),
		}
	}
	return nil
}
