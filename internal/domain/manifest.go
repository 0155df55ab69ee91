package domain

import "sort"

// ManifestDir holds tool state inside a project.
const ManifestDir = ".make-ca"

// Manifest records the entities generated in a project and the layers
// generated for each. It carries no timestamps so repeated runs leave it
// byte-identical.
type Manifest struct {
	Entities map[string][]Layer `json:"entities"`
}

// NewManifest returns an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{Entities: make(map[string][]Layer)}
}

// Record merges layers into the entry for entity, keeping generation order.
func (m *Manifest) Record(entity string, layers []Layer) {
	if m.Entities == nil {
		m.Entities = make(map[string][]Layer)
	}
	have := make(map[Layer]bool)
	for _, l := range m.Entities[entity] {
		have[l] = true
	}
	for _, l := range layers {
		have[l] = true
	}

	merged := make([]Layer, 0, len(have))
	for _, l := range Layers {
		if have[l] {
			merged = append(merged, l)
		}
	}
	m.Entities[entity] = merged
}

// Names returns the recorded entity names, sorted.
func (m *Manifest) Names() []string {
	names := make([]string, 0, len(m.Entities))
	for n := range m.Entities {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
