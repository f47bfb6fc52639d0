package planner

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meltpath/layerplan/geom"
	"github.com/meltpath/layerplan/pathcfg"
	"github.com/meltpath/layerplan/pathrecord"
)

func mustTravelConfig(t *testing.T, speed float64) *pathcfg.Config {
	t.Helper()
	cfg, err := pathcfg.NewTravel(speed)
	if err != nil {
		t.Fatalf("NewTravel: %v", err)
	}
	return cfg
}

func mustConfig(t *testing.T, speed float64, width int64, tag string, closedLoop, spiralize bool) *pathcfg.Config {
	t.Helper()
	cfg, err := pathcfg.New(speed, width, tag, closedLoop, spiralize)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return cfg
}

func newTestQueue(t *testing.T, start geom.Point) *Queue {
	t.Helper()
	settings, err := NewSettings(Settings{
		MinLayerTimeS:         0,
		MinPrintSpeed:         5,
		MinFanSpeedLayerTime:  0,
		MaxFanSpeedLayerTime:  0,
		FanMinPercent:         0,
		FanMaxPercent:         100,
		FirstLayerAllowFan:    0,
		RetractMinUM:          2000,
		PerimeterOverlapRatio: 1,
		TravelSpeedMMPerS:     120,
	})
	if err != nil {
		t.Fatalf("NewSettings: %v", err)
	}
	q, err := New(0, 0, 0, start, mustTravelConfig(t, settings.TravelSpeedMMPerS), settings, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return q
}

// S1 — simple rectangle, closed loop, no overlap trim.
func TestQueuePolygonRectangleClosedLoop(t *testing.T) {
	q := newTestQueue(t, geom.Pt(-5000, 0))
	cfg := mustConfig(t, 30, 400, pathcfg.TagWallInner, true, false)
	poly := geom.Polygon{geom.Pt(0, 0), geom.Pt(10000, 0), geom.Pt(10000, 10000), geom.Pt(0, 10000)}

	if err := q.QueuePolygon(poly, 0, cfg); err != nil {
		t.Fatalf("QueuePolygon: %v", err)
	}

	recs := q.Records()
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2 (travel + extrusion)", len(recs))
	}

	travel := recs[0]
	if !travel.Config.IsTravel() {
		t.Error("first record should be the travel to the start vertex")
	}
	if len(travel.Points) != 1 || !travel.Points[0].EqualXY(geom.Pt(0, 0)) {
		t.Errorf("travel record points = %v, want final point (0,0)", travel.Points)
	}

	ext := recs[1]
	want := []geom.Point{geom.Pt(10000, 0), geom.Pt(10000, 10000), geom.Pt(0, 10000), geom.Pt(0, 0)}
	if len(ext.Points) != len(want) {
		t.Fatalf("extrusion has %d points, want %d", len(ext.Points), len(want))
	}
	for i, p := range want {
		if !ext.Points[i].EqualXY(p) {
			t.Errorf("point %d = %v, want %v", i, ext.Points[i], p)
		}
	}
}

// S2 — retraction on long travel.
func TestQueueTravelRequestsRetractOnLongMove(t *testing.T) {
	q := newTestQueue(t, geom.Pt(0, 0))
	if err := q.QueueTravel(geom.Pt(10000, 0), false); err != nil {
		t.Fatalf("QueueTravel: %v", err)
	}

	recs := q.Records()
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	if recs[0].Retract != pathrecord.RetractRequested {
		t.Errorf("Retract = %v, want Requested", recs[0].Retract)
	}
	if len(recs[0].Points) != 1 || !recs[0].Points[0].EqualXY(geom.Pt(10000, 0)) {
		t.Errorf("Points = %v, want single point (10000,0)", recs[0].Points)
	}
}

// S3 — force retract affects only the next travel, not an intervening
// extrusion.
func TestForceRetractAffectsOnlyNextTravel(t *testing.T) {
	q := newTestQueue(t, geom.Pt(0, 0))
	extCfg := mustConfig(t, 40, 400, "WALL-OUTER", false, false)

	q.ForceRetract()
	if err := q.QueueExtrusion(geom.Pt(1, 0), extCfg); err != nil {
		t.Fatalf("QueueExtrusion: %v", err)
	}
	if err := q.QueueTravel(geom.Pt(1000, 1000), false); err != nil {
		t.Fatalf("QueueTravel: %v", err)
	}

	recs := q.Records()
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].Retract != pathrecord.RetractNone {
		t.Errorf("extrusion record Retract = %v, want None", recs[0].Retract)
	}
	if recs[1].Retract != pathrecord.RetractForce {
		t.Errorf("travel record Retract = %v, want Force", recs[1].Retract)
	}
}

func TestQueueExtrusionRejectsTravelConfig(t *testing.T) {
	q := newTestQueue(t, geom.Pt(0, 0))
	err := q.QueueExtrusion(geom.Pt(1, 1), q.travelConfig)
	require.ErrorIs(t, err, ErrConfigConflict)
}

func TestQueuePolygonEmptyIsInvalid(t *testing.T) {
	q := newTestQueue(t, geom.Pt(0, 0))
	cfg := mustConfig(t, 30, 400, "WALL-OUTER", true, false)
	err := q.QueuePolygon(nil, 0, cfg)
	require.ErrorIs(t, err, ErrEmptyPolygon)
}

func TestQueueOpenPathReversalFromNonZeroStart(t *testing.T) {
	q := newTestQueue(t, geom.Pt(0, 0))
	cfg := mustConfig(t, 30, 400, "SKIN", false, false)
	poly := geom.Polygon{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(20, 0), geom.Pt(30, 0)}

	// start_index = 2: spec.md §9 says walk k = n-1..1 via (start+k) mod n,
	// i.e. indices (2+3)%4=1, (2+2)%4=0, (2+1)%4=3.
	if err := q.QueuePolygon(poly, 2, cfg); err != nil {
		t.Fatalf("QueuePolygon: %v", err)
	}

	recs := q.Records()
	ext := recs[len(recs)-1]
	want := []geom.Point{geom.Pt(10, 0), geom.Pt(0, 0), geom.Pt(30, 0)}
	if len(ext.Points) != len(want) {
		t.Fatalf("got %d points, want %d: %v", len(ext.Points), len(want), ext.Points)
	}
	for i, p := range want {
		if !ext.Points[i].EqualXY(p) {
			t.Errorf("point %d = %v, want %v", i, ext.Points[i], p)
		}
	}
}

func TestLastPositionTracksLastWrite(t *testing.T) {
	q := newTestQueue(t, geom.Pt(0, 0))
	cfg := mustConfig(t, 30, 400, "SKIN", false, false)
	poly := geom.Polygon{geom.Pt(0, 0), geom.Pt(100, 0), geom.Pt(200, 0)}

	if err := q.QueuePolygon(poly, 0, cfg); err != nil {
		t.Fatalf("QueuePolygon: %v", err)
	}
	if got := q.LastPosition(); !got.EqualXY(geom.Pt(200, 0)) {
		t.Errorf("LastPosition = %v, want (200,0)", got)
	}
}
