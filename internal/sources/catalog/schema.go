package catalog

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is the top-level structure of the catalog file. The field names
// are the storefront's wire names and are identical in the JSON and YAML
// renditions of the file.
type Document struct {
	Destinos []DestinoEntry `json:"destinos" yaml:"destinos"`
}

// FlexID is a catalog identifier that may be written as a JSON/YAML string
// or as a bare integer. Both parse to the same string form.
type FlexID string

func (f *FlexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		if len(data) < 2 || data[len(data)-1] != '"' {
			return fmt.Errorf("invalid id literal: %s", data)
		}
		*f = FlexID(data[1 : len(data)-1])
		return nil
	}
	*f = FlexID(data)
	return nil
}

func (f *FlexID) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("invalid id node kind: %v", node.Kind)
	}
	*f = FlexID(node.Value)
	return nil
}

// DestinoEntry contains the raw properties of one catalog destination.
type DestinoEntry struct {
	ID          FlexID   `json:"id" yaml:"id"`
	Nombre      string   `json:"nombre" yaml:"nombre"`
	PrecioDia   float64  `json:"precioDia" yaml:"precioDia"`
	Categorias  []string `json:"categorias,omitempty" yaml:"categorias,omitempty"`
	Imagen      string   `json:"imagen,omitempty" yaml:"imagen,omitempty"`
	Galeria     []string `json:"galeria,omitempty" yaml:"galeria,omitempty"`
	Historia    string   `json:"historia,omitempty" yaml:"historia,omitempty"`
	Atracciones string   `json:"atracciones,omitempty" yaml:"atracciones,omitempty"`
	Duracion    string   `json:"duracion,omitempty" yaml:"duracion,omitempty"`
	Temporada   string   `json:"temporada,omitempty" yaml:"temporada,omitempty"`
}
