package systems

import (
	"testing"

	"github.com/lixenwraith/glyph-rain/constants"
)

func TestClusterSystemExpiry(t *testing.T) {
	s := NewClusterSystem(constants.ClusterLifespan)
	c := s.Spawn("שלום", 40, 12, constants.LayerGradient(0))

	if c.CenterX != 40 || c.CenterY != 12 {
		t.Errorf("Expected center (40,12), got (%d,%d)", c.CenterX, c.CenterY)
	}

	for tick := 1; tick < constants.ClusterLifespan; tick++ {
		s.Update()
		if s.Count() != 1 {
			t.Fatalf("Cluster removed early at tick %d", tick)
		}
	}
	s.Update()
	if s.Count() != 0 {
		t.Errorf("Expected cluster removed at age %d", constants.ClusterLifespan)
	}
}
