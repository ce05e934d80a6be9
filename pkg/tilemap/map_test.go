package tilemap

import (
	"errors"
	"testing"
)

func newTestMap(t *testing.T) *LevelMap {
	t.Helper()
	waypoints := []Waypoint{
		{Name: "2", Col: 3, Row: 0},
		{Name: "1", Col: 0, Row: 0},
		{Name: "3", Col: 3, Row: 2},
	}
	slots := []TileCoord{{Col: 1, Row: 1}, {Col: 2, Row: 0}}
	lm, err := NewLevelMap(5, 4, 10, waypoints, nil, slots)
	if err != nil {
		t.Fatalf("NewLevelMap: %v", err)
	}
	return lm
}

func TestWaypointLookupByName(t *testing.T) {
	lm := newTestMap(t)

	x, y, ok := lm.Waypoint(2)
	if !ok {
		t.Fatal("expected waypoint 2 to exist")
	}
	if x != 35 || y != 5 {
		t.Errorf("expected center (35, 5), got (%v, %v)", x, y)
	}

	if _, _, ok := lm.Waypoint(4); ok {
		t.Error("expected waypoint 4 to be missing")
	}
	if _, _, ok := lm.Waypoint(0); ok {
		t.Error("expected waypoint 0 to be missing")
	}
	if lm.WaypointCount() != 3 {
		t.Errorf("expected 3 waypoints, got %d", lm.WaypointCount())
	}
}

func TestRoadIsTracedBetweenWaypoints(t *testing.T) {
	lm := newTestMap(t)

	for _, c := range []TileCoord{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {3, 1}, {3, 2}} {
		if !lm.IsRoad(c) {
			t.Errorf("expected %v to be road", c)
		}
	}
	if lm.IsRoad(TileCoord{Col: 1, Row: 1}) {
		t.Error("expected (1,1) to stay off-road")
	}
}

func TestTowerSlotsExcludeRoad(t *testing.T) {
	lm := newTestMap(t)

	if !lm.IsTowerSlot(TileCoord{Col: 1, Row: 1}) {
		t.Error("expected (1,1) to be a tower slot")
	}
	if lm.IsTowerSlot(TileCoord{Col: 2, Row: 0}) {
		t.Error("road tile (2,0) must not become a tower slot")
	}
	if got := len(lm.TowerSlots()); got != 1 {
		t.Errorf("expected 1 slot, got %d", got)
	}
}

func TestWorldToTileCoord(t *testing.T) {
	lm := newTestMap(t)

	c, ok := lm.WorldToTileCoord(19.9, 31)
	if !ok || c != (TileCoord{Col: 1, Row: 3}) {
		t.Errorf("expected (1,3) inside, got %v %v", c, ok)
	}
	if _, ok := lm.WorldToTileCoord(-1, 5); ok {
		t.Error("expected negative x to be outside the map")
	}
	if _, ok := lm.WorldToTileCoord(50, 5); ok {
		t.Error("expected x=50 to be outside a 5-column map")
	}
}

func TestInvalidWaypoints(t *testing.T) {
	cases := map[string][]Waypoint{
		"not a number": {{Name: "start", Col: 0, Row: 0}},
		"zero":         {{Name: "0", Col: 0, Row: 0}},
		"duplicate":    {{Name: "1", Col: 0, Row: 0}, {Name: "1", Col: 1, Row: 0}},
		"outside":      {{Name: "1", Col: 9, Row: 0}},
	}
	for name, wps := range cases {
		if _, err := NewLevelMap(3, 3, 10, wps, nil, nil); !errors.Is(err, ErrInvalidWaypoint) {
			t.Errorf("%s: expected ErrInvalidWaypoint, got %v", name, err)
		}
	}

	if _, err := NewLevelMap(0, 3, 10, nil, nil, nil); !errors.Is(err, ErrInvalidMap) {
		t.Errorf("expected ErrInvalidMap, got %v", err)
	}
}
