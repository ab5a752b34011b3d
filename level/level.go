// Package level provides target layouts: a built-in default and
// JavaScript layout scripts.
package level

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cannonfire/game"
	"cannonfire/vmath"
)

// Default is the built-in layout: a row of crates and a small stack on
// the ground to the right of the cannon.
func Default(env Env) []game.TargetSpec {
	s := env.TargetSize
	if s <= 0 {
		s = 1
	}
	y := env.GroundTop + s/2

	specs := []game.TargetSpec{
		{Name: "crate-1", Position: vmath.V(env.Width*0.45, y)},
		{Name: "crate-2", Position: vmath.V(env.Width*0.60, y)},
		{Name: "crate-3", Position: vmath.V(env.Width*0.75, y)},
		{Name: "stack-low", Position: vmath.V(env.Width*0.85, y)},
		{Name: "stack-high", Position: vmath.V(env.Width*0.85, y+s), Points: 150},
	}
	return specs
}

// Load reads a layout file. ".js" files are evaluated as layout scripts,
// ".json" files hold a target spec array. An empty path returns Default.
func Load(path string, env Env) ([]game.TargetSpec, error) {
	if path == "" {
		return Default(env), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".js":
		specs, err := NewScriptRunner().Eval(string(data), env)
		if err != nil {
			return nil, fmt.Errorf("level %s: %w", path, err)
		}
		return specs, nil
	case ".json":
		var specs []game.TargetSpec
		if err := json.Unmarshal(data, &specs); err != nil {
			return nil, fmt.Errorf("level %s: %w", path, err)
		}
		return specs, nil
	default:
		return nil, fmt.Errorf("level %s: unsupported extension %q", path, filepath.Ext(path))
	}
}

// Populate loads the layout at path, sized for g's world, and places it
func Populate(g *game.Game, path string) error {
	specs, err := Load(path, EnvFromConfig(g.Config()))
	if err != nil {
		return err
	}
	return g.LoadLayout(specs)
}
