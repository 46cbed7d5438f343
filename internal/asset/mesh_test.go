package asset

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleConfig = `<?xml version="1.0"?>
<meshes baseModelPath="./data/models">
  <mesh handle="car" model="car.obj" texture1="car.png">
    <color r="0.9" g="0.1" b="0.1"/>
  </mesh>
  <mesh handle="tree" model="tree.obj" texture1="tree.png" texture2="leaves.png">
    <scale x="2" y="2" z="3"/>
  </mesh>
  <mesh handle="marker"/>
</meshes>
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "meshes.conf")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMeshConfig(t *testing.T) {
	l := NewMeshConfigLoader()
	if err := l.Load(writeConfig(t, sampleConfig)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := l.MeshCount(); got != 3 {
		t.Fatalf("MeshCount = %d, want 3", got)
	}

	car, err := l.Mesh(0)
	if err != nil {
		t.Fatal(err)
	}
	if car.Handle != "car" {
		t.Errorf("handle = %q, want car", car.Handle)
	}
	if want := filepath.Join("data/models", "car.obj"); car.ModelPath != want {
		t.Errorf("model path = %q, want %q", car.ModelPath, want)
	}
	if car.Color.R != 0.9 || car.Color.A != 1 {
		t.Errorf("color = %+v, want r=0.9 with default alpha", car.Color)
	}
	if car.Scale != (Scale{X: 1, Y: 1, Z: 1}) {
		t.Errorf("scale = %+v, want unit default", car.Scale)
	}

	tree, err := l.Mesh(1)
	if err != nil {
		t.Fatal(err)
	}
	if tree.Scale != (Scale{X: 2, Y: 2, Z: 3}) {
		t.Errorf("scale = %+v", tree.Scale)
	}
	if tree.Texture2 != "leaves.png" {
		t.Errorf("texture2 = %q", tree.Texture2)
	}

	marker, err := l.Mesh(2)
	if err != nil {
		t.Fatal(err)
	}
	if marker.ModelPath != "" {
		t.Errorf("model path = %q, want empty for attribute-less mesh", marker.ModelPath)
	}
}

func TestLoadReplacesPreviousSet(t *testing.T) {
	l := NewMeshConfigLoader()
	if err := l.Load(writeConfig(t, sampleConfig)); err != nil {
		t.Fatal(err)
	}
	if err := l.Load(writeConfig(t, `<meshes><mesh handle="only"/></meshes>`)); err != nil {
		t.Fatal(err)
	}
	if got := l.MeshCount(); got != 1 {
		t.Errorf("MeshCount = %d, want 1 after reload", got)
	}
}

func TestLoadErrors(t *testing.T) {
	l := NewMeshConfigLoader()

	if err := l.Load(filepath.Join(t.TempDir(), "missing.conf")); err == nil {
		t.Error("expected error for missing file")
	}
	if err := l.Load(writeConfig(t, `<meshes><mesh`)); err == nil {
		t.Error("expected error for malformed XML")
	}
	if err := l.Load(writeConfig(t, `<meshes><mesh model="a.obj"/></meshes>`)); err == nil {
		t.Error("expected error for mesh without handle")
	}

	if _, err := l.Mesh(0); err == nil {
		t.Error("expected out-of-range error on empty loader")
	}
}
