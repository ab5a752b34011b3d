package level

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/dop251/goja"

	"cannonfire/game"
)

// ErrNoLayout is returned when a script does not define a layout function
var ErrNoLayout = errors.New("script must define a 'layout' function")

// Env is the world description handed to a layout script
type Env struct {
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	GroundTop  float64 `json:"groundTop"`
	CannonX    float64 `json:"cannonX"`
	CannonY    float64 `json:"cannonY"`
	TargetSize float64 `json:"targetSize"`
}

// EnvFromConfig describes the world a game with cfg will build
func EnvFromConfig(cfg game.Config) Env {
	return Env{
		Width:      cfg.Physics.Width,
		Height:     cfg.Physics.Height,
		GroundTop:  cfg.Physics.Min.Y + cfg.GroundHeight,
		CannonX:    cfg.CannonPosition.X,
		CannonY:    cfg.CannonPosition.Y,
		TargetSize: cfg.TargetSize,
	}
}

// ScriptRunner evaluates JavaScript layout scripts with goja. Each call gets
// a fresh runtime.
type ScriptRunner struct {
	mu sync.Mutex
}

// NewScriptRunner creates a runner
func NewScriptRunner() *ScriptRunner {
	return &ScriptRunner{}
}

// Eval runs code, calls its layout(env) function and decodes the returned
// array of target specs
func (r *ScriptRunner) Eval(code string, env Env) ([]game.TargetSpec, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	vm := goja.New()

	envJSON, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("serialize env: %w", err)
	}
	envObj, err := vm.RunString(fmt.Sprintf("(%s)", envJSON))
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if _, err := vm.RunString(code); err != nil {
		return nil, fmt.Errorf("script execution failed: %w", err)
	}

	layout, ok := goja.AssertFunction(vm.Get("layout"))
	if !ok {
		return nil, ErrNoLayout
	}

	result, err := layout(goja.Undefined(), envObj)
	if err != nil {
		return nil, fmt.Errorf("layout function failed: %w", err)
	}

	resultJSON, err := json.Marshal(result.Export())
	if err != nil {
		return nil, fmt.Errorf("serialize result: %w", err)
	}

	var specs []game.TargetSpec
	if err := json.Unmarshal(resultJSON, &specs); err != nil {
		return nil, fmt.Errorf("parse layout result: %w (result: %s)", err, resultJSON)
	}
	return specs, nil
}

// Validate checks that code parses and defines a layout function
func (r *ScriptRunner) Validate(code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	vm := goja.New()
	if _, err := vm.RunString(code); err != nil {
		return fmt.Errorf("script parse error: %w", err)
	}
	if _, ok := goja.AssertFunction(vm.Get("layout")); !ok {
		return ErrNoLayout
	}
	return nil
}
