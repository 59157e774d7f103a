package world

import (
	"strings"
	"testing"
)

func TestCoord(t *testing.T) {
	a, b := Coord{X: 1, Y: 1}, Coord{X: 4, Y: 5}
	if d := a.Distance(b); d != 5 {
		t.Errorf("expected distance 5, got %v", d)
	}
	if d := a.Chebyshev(b); d != 4 {
		t.Errorf("expected chebyshev 4, got %d", d)
	}
	if (Coord{X: 0, Y: 3}).InBounds() || (Coord{X: 8, Y: 9}).InBounds() || !b.InBounds() {
		t.Error("bounds check wrong")
	}
	if got := (Coord{X: 9, Y: -2}).Clamp(); got != (Coord{X: 8, Y: 1}) {
		t.Errorf("clamp: got %v", got)
	}
}

func TestSectorGrid(t *testing.T) {
	var g SectorGrid
	c := Coord{X: 3, Y: 7}

	if !g.IsEmpty(c) {
		t.Error("new grid should be empty")
	}
	g.Set(c, Cell{Kind: CellHostile, Hostile: 2})
	if got := g.Get(c); got.Kind != CellHostile || got.Hostile != 2 {
		t.Errorf("got %+v", got)
	}
	if rows := g.Rows(); rows[6][2].Kind != CellHostile {
		t.Error("rows are indexed [y-1][x-1]")
	}
	g.Set(Coord{X: 9, Y: 1}, Cell{Kind: CellStar})
	if g.Count(CellStar) != 0 {
		t.Error("out-of-bounds writes must be ignored")
	}
	if g.IsEmpty(Coord{X: 0, Y: 0}) {
		t.Error("off-grid sectors are never empty")
	}
	g.Clear(c)
	if !g.IsEmpty(c) {
		t.Error("clear should empty the sector")
	}
	g.Set(c, Cell{Kind: CellBase})
	if g.Count(CellBase) != 1 {
		t.Error("expected one base on the grid")
	}
}

func TestDamageVector(t *testing.T) {
	var v DamageVector
	v[LibraryComputer] = 0.4
	v.Damage(PhotonTubes, 1.3)
	v.Damage(WarpEngines, 0.2)
	v.Damage(DeviceNone, 5)

	if v.Operational(PhotonTubes) || !v.Operational(ShieldControl) {
		t.Error("operability wrong")
	}
	if v.Status(PhotonTubes) != "DMG:-1.3" || v.Status(ShieldControl) != "OK" {
		t.Errorf("status: %q / %q", v.Status(PhotonTubes), v.Status(ShieldControl))
	}
	if n := v.RepairAll(); n != 2 {
		t.Errorf("expected 2 repairs, got %d", n)
	}
	for _, d := range Devices() {
		if !v.Operational(d) {
			t.Errorf("%s still damaged", d)
		}
	}
	if v[LibraryComputer] != 0.4 {
		t.Error("repair must not touch healthy devices")
	}
}

func TestDeviceNames(t *testing.T) {
	if len(Devices()) != 8 {
		t.Fatalf("expected 8 devices, got %d", len(Devices()))
	}
	if ShieldControl.Name() != "Shield Control" || DeviceNone.Name() != "Unknown" {
		t.Error("device names wrong")
	}
}

func TestLoadRules(t *testing.T) {
	rules, err := LoadRules([]byte("avg_hostile_energy: 350\ntime_limit_max: 40\n"))
	if err != nil {
		t.Fatalf("LoadRules: %v", err)
	}
	if rules.AvgHostileEnergy != 350 || rules.TimeLimitMax != 40 {
		t.Errorf("overrides not applied: %+v", rules)
	}
	if rules.InitialEnergy != 3000 || rules.DamagedWarpCeiling != 0.2 {
		t.Errorf("defaults lost: %+v", rules)
	}
}

func TestLoadRules_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"syntax", "initial_energy: [", "parse rules"},
		{"energy", "initial_energy: 0", "initial_energy"},
		{"stardates", "stardate_min: 5000", "stardate range"},
		{"time", "time_limit_min: 40", "time limit range"},
		{"ceiling", "damaged_warp_ceiling: 9", "damaged_warp_ceiling"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadRules([]byte(tt.doc))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}
