package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario describes an initial position as loaded from a YAML document:
//
//	name: demo
//	vertices: [A, B, C, D]
//	edges:
//	  - [A, B]
//	  - [C, D]
//	faces:
//	  - [A, C, D]
type Scenario struct {
	Name     string     `yaml:"name"`
	Vertices []Vertex   `yaml:"vertices"`
	Edges    [][]Vertex `yaml:"edges"`
	Faces    [][]Vertex `yaml:"faces"`
}

// LoadScenario reads and parses a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses a YAML scenario document.
func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if len(s.Vertices) == 0 {
		return nil, fmt.Errorf("parse scenario: no vertices")
	}
	return &s, nil
}

// Build constructs the scenario's hypergraph through the normal insertion
// API, so malformed edges and faces are rejected the same way as manual
// construction.
func (s *Scenario) Build() (*Hypergraph, error) {
	h := NewHypergraph()
	for _, v := range s.Vertices {
		h.AddVertex(v)
	}
	for _, members := range s.Edges {
		if err := h.AddEdge(members...); err != nil {
			return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
		}
	}
	for _, members := range s.Faces {
		if err := h.AddFace(members...); err != nil {
			return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
		}
	}
	return h, nil
}

// DemoScenario returns the built-in four-vertex position used when no
// scenario file is given.
func DemoScenario() *Scenario {
	return &Scenario{
		Name:     "demo",
		Vertices: []Vertex{"A", "B", "C", "D"},
		Edges:    [][]Vertex{{"A", "B"}, {"C", "D"}},
		Faces:    [][]Vertex{{"A", "C", "D"}},
	}
}
