// Package sceneio reads layout scenes from YAML documents.
//
// A document describes the root viewport and a tree of nodes:
//
//	root: {width: 800, height: 600, em: 16}
//	nodes:
//	  - name: toolbar
//	    anchor: TopCenter
//	    size: 100% 40px
//	    container:
//	      layout: {kind: span, direction: LeftToRight}
//	      margin: 4px
//	      padding: 8px
//	    children:
//	      - {name: back, anchor: CenterLeft, text: Back}
//	      - {name: title, text: Untitled, text_size: 20}
//
// Lengths use the forms accepted by layout.ParseLength. A size or offset
// holds one length for both axes or two separated by a space. Anchors are
// preset names or [x, y] pairs. Rotation is in degrees.
//
// A node with text and no size is sized by its measured label.
package sceneio

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is the root of a scene file.
type Document struct {
	Root  RootSpec   `yaml:"root"`
	Nodes []NodeSpec `yaml:"nodes"`
}

// RootSpec describes the surface the scene is laid out on.
type RootSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// Em is the font size of top-level nodes; zero means 16.
	Em float64 `yaml:"em"`
	// Rem is the root em; zero means Em.
	Rem float64 `yaml:"rem"`
}

// NodeSpec describes one node and its subtree.
type NodeSpec struct {
	Name         string         `yaml:"name"`
	Anchor       *Anchor        `yaml:"anchor"`
	ParentAnchor *Anchor        `yaml:"parent_anchor"`
	Center       *Anchor        `yaml:"center"`
	Offset       string         `yaml:"offset"`
	Size         string         `yaml:"size"`
	FontSize     string         `yaml:"font_size"`
	Rotation     float64        `yaml:"rotation"`
	Scale        *Pair          `yaml:"scale"`
	Z            float64        `yaml:"z"`
	Opacity      *float64       `yaml:"opacity"`
	Control      string         `yaml:"control"`
	Coordinate   *Pair          `yaml:"coordinate"`
	Text         string         `yaml:"text"`
	TextSize     float64        `yaml:"text_size"`
	Container    *ContainerSpec `yaml:"container"`
	Children     []NodeSpec     `yaml:"children"`
}

// ContainerSpec describes a node's container.
type ContainerSpec struct {
	// Layout holds "kind" and the parameters of that layout kind.
	Layout  map[string]any `yaml:"layout"`
	Margin  string         `yaml:"margin"`
	Padding string         `yaml:"padding"`
	Range   *RangeSpec     `yaml:"range"`
}

// RangeSpec describes the window of children a container shows.
type RangeSpec struct {
	Kind string `yaml:"kind"`
	Min  int    `yaml:"min"`
	Len  int    `yaml:"len"`
}

// Decode reads a document from r. Unknown fields are rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return &doc, nil
		}
		return nil, fmt.Errorf("sceneio: failed to parse document: %w", err)
	}
	return &doc, nil
}

// Parse reads a document from memory.
func Parse(data []byte) (*Document, error) {
	return Decode(bytes.NewReader(data))
}

// LoadFile reads a document from a file.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sceneio: failed to read scene: %w", err)
	}
	return Parse(data)
}
