// Package asset loads game asset metadata from XML configuration
// files. Loaders only collect metadata; rendering and file IO for the
// assets themselves live elsewhere.
package asset

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
)

// Color is an RGBA tuple with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Scale multiplies a model's dimensions per axis.
type Scale struct {
	X, Y, Z float64
}

// MeshMetaData describes one mesh entry of a mesh config file.
type MeshMetaData struct {
	Handle    string
	ModelPath string
	Texture1  string
	Texture2  string
	Scale     Scale
	Color     Color
}

type xmlScale struct {
	X float64 `xml:"x,attr"`
	Y float64 `xml:"y,attr"`
	Z float64 `xml:"z,attr"`
}

type xmlColor struct {
	R float64 `xml:"r,attr"`
	G float64 `xml:"g,attr"`
	B float64 `xml:"b,attr"`
	A float64 `xml:"a,attr"`
}

type xmlMesh struct {
	Handle   string    `xml:"handle,attr"`
	Model    string    `xml:"model,attr"`
	Texture1 string    `xml:"texture1,attr"`
	Texture2 string    `xml:"texture2,attr"`
	Scale    *xmlScale `xml:"scale"`
	Color    *xmlColor `xml:"color"`
}

type xmlMeshes struct {
	BaseModelPath string    `xml:"baseModelPath,attr"`
	Meshes        []xmlMesh `xml:"mesh"`
}

// MeshConfigLoader parses mesh configuration files.
type MeshConfigLoader struct {
	meshes []MeshMetaData
}

// NewMeshConfigLoader returns an empty loader.
func NewMeshConfigLoader() *MeshConfigLoader {
	return &MeshConfigLoader{}
}

// Load reads all mesh entries from the file, replacing any previously
// loaded set. Model paths are resolved against the file's
// baseModelPath attribute.
func (l *MeshConfigLoader) Load(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("asset: read mesh config: %w", err)
	}

	var doc xmlMeshes
	if err := xml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("asset: parse mesh config %s: %w", filePath, err)
	}

	meshes := make([]MeshMetaData, 0, len(doc.Meshes))
	for _, m := range doc.Meshes {
		if m.Handle == "" {
			return fmt.Errorf("asset: mesh config %s: mesh without handle", filePath)
		}

		meta := MeshMetaData{
			Handle:   m.Handle,
			Texture1: m.Texture1,
			Texture2: m.Texture2,
			Scale:    Scale{X: 1, Y: 1, Z: 1},
			Color:    Color{R: 1, G: 1, B: 1, A: 1},
		}
		if m.Model != "" {
			meta.ModelPath = filepath.Join(doc.BaseModelPath, m.Model)
		}
		if m.Scale != nil {
			meta.Scale = Scale{X: m.Scale.X, Y: m.Scale.Y, Z: m.Scale.Z}
		}
		if m.Color != nil {
			a := m.Color.A
			if a == 0 {
				a = 1
			}
			meta.Color = Color{R: m.Color.R, G: m.Color.G, B: m.Color.B, A: a}
		}
		meshes = append(meshes, meta)
	}

	l.meshes = meshes
	return nil
}

// MeshCount returns the number of loaded meshes.
func (l *MeshConfigLoader) MeshCount() int { return len(l.meshes) }

// Mesh returns the metadata at the given index.
func (l *MeshConfigLoader) Mesh(index int) (MeshMetaData, error) {
	if index < 0 || index >= len(l.meshes) {
		return MeshMetaData{}, fmt.Errorf("asset: mesh index %d out of range [0, %d)", index, len(l.meshes))
	}
	return l.meshes[index], nil
}
