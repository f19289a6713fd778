package systems

import (
	"github.com/lixenwraith/glyph-rain/components"
)

// ClusterSystem owns the active cluster set
type ClusterSystem struct {
	clusters []*components.Cluster
	lifespan int
}

// NewClusterSystem creates an empty cluster system whose clusters live lifespan ticks
func NewClusterSystem(lifespan int) *ClusterSystem {
	return &ClusterSystem{lifespan: lifespan}
}

// Spawn creates a cluster for word centered at (x, y)
func (s *ClusterSystem) Spawn(word string, x, y int, gradient []uint8) *components.Cluster {
	c := components.NewCluster(word, x, y, s.lifespan, gradient)
	s.clusters = append(s.clusters, c)
	return c
}

// Update advances every cluster and removes those whose age reached lifespan
func (s *ClusterSystem) Update() {
	alive := s.clusters[:0]
	for _, c := range s.clusters {
		if c.Update() {
			alive = append(alive, c)
		}
	}
	for i := len(alive); i < len(s.clusters); i++ {
		s.clusters[i] = nil
	}
	s.clusters = alive
}

// Clusters returns the active set
func (s *ClusterSystem) Clusters() []*components.Cluster {
	return s.clusters
}

// Count returns the number of active clusters
func (s *ClusterSystem) Count() int {
	return len(s.clusters)
}
