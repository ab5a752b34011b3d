package level

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"cannonfire/game"
	"cannonfire/vmath"
)

func TestDefaultLayoutFitsWorld(t *testing.T) {
	cfg := game.DefaultConfig()
	g, err := game.NewGame(cfg)
	if err != nil {
		t.Fatal(err)
	}
	specs := Default(EnvFromConfig(cfg))
	if len(specs) == 0 {
		t.Fatal("default layout is empty")
	}
	if err := g.LoadLayout(specs); err != nil {
		t.Fatalf("LoadLayout: %v", err)
	}
	if len(g.Targets()) != len(specs) {
		t.Errorf("placed %d targets, want %d", len(g.Targets()), len(specs))
	}
	for _, s := range specs {
		if s.Position.X <= cfg.CannonPosition.X+cfg.ClickRadius {
			t.Errorf("%s at %v sits on the cannon", s.Name, s.Position)
		}
	}
}

func TestScriptRunnerEval(t *testing.T) {
	code := `
function layout(env) {
  var out = [];
  for (var i = 0; i < 3; i++) {
    out.push({
      name: "t" + i,
      position: { x: env.cannonX + 8 + i * 2, y: env.groundTop + env.targetSize / 2 },
      maxHealth: 20,
      points: 50
    });
  }
  out.push({ name: "pillar", position: { x: env.width - 2, y: 3 }, width: 1, height: 4, static: true });
  return out;
}`
	env := Env{Width: 32, Height: 18, GroundTop: 1, CannonX: 3, CannonY: 1.5, TargetSize: 1}
	specs, err := NewScriptRunner().Eval(code, env)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if len(specs) != 4 {
		t.Fatalf("len = %d, want 4", len(specs))
	}
	if got, want := specs[1].Position, vmath.V(13, 1.5); got != want {
		t.Errorf("t1 position = %v, want %v", got, want)
	}
	if specs[0].MaxHealth != 20 || specs[0].Points != 50 {
		t.Errorf("t0 = %+v", specs[0])
	}
	if p := specs[3]; !p.Static || p.Height != 4 || p.Name != "pillar" {
		t.Errorf("pillar = %+v", p)
	}
}

func TestScriptRunnerErrors(t *testing.T) {
	r := NewScriptRunner()
	tests := []struct {
		name string
		code string
	}{
		{"syntax", "function layout( {"},
		{"no layout", "var x = 1;"},
		{"throws", "function layout() { throw new Error('boom'); }"},
		{"wrong shape", "function layout() { return 42; }"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := r.Eval(tt.code, Env{}); err == nil {
				t.Fatal("Eval succeeded")
			}
		})
	}

	if err := r.Validate("var layout = 3;"); !errors.Is(err, ErrNoLayout) {
		t.Errorf("Validate non-function: err = %v, want ErrNoLayout", err)
	}
	if err := r.Validate("function layout(env) { return []; }"); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	env := Env{Width: 32, Height: 18, GroundTop: 1, TargetSize: 1}

	js := filepath.Join(dir, "one.js")
	os.WriteFile(js, []byte(`function layout(env) { return [{ position: { x: 20, y: 1.5 } }]; }`), 0o644)
	jsonPath := filepath.Join(dir, "two.json")
	os.WriteFile(jsonPath, []byte(`[{"name":"a","position":{"x":10,"y":1.5}},{"name":"b","position":{"x":12,"y":1.5}}]`), 0o644)
	txt := filepath.Join(dir, "three.txt")
	os.WriteFile(txt, []byte("nope"), 0o644)

	tests := []struct {
		path    string
		want    int
		wantErr bool
	}{
		{"", len(Default(env)), false},
		{js, 1, false},
		{jsonPath, 2, false},
		{txt, 0, true},
		{filepath.Join(dir, "missing.js"), 0, true},
	}
	for _, tt := range tests {
		specs, err := Load(tt.path, env)
		if (err != nil) != tt.wantErr {
			t.Errorf("Load(%q) err = %v, wantErr %v", tt.path, err, tt.wantErr)
			continue
		}
		if len(specs) != tt.want {
			t.Errorf("Load(%q) = %d specs, want %d", tt.path, len(specs), tt.want)
		}
	}
}

func TestPopulate(t *testing.T) {
	g, err := game.NewGame(game.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if err := Populate(g, ""); err != nil {
		t.Fatal(err)
	}
	if got, want := len(g.Targets()), len(Default(EnvFromConfig(g.Config()))); got != want {
		t.Errorf("targets = %d, want %d", got, want)
	}
}
