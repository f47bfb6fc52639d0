package planner

import (
	"math"

	"github.com/meltpath/layerplan/geom"
	"github.com/meltpath/layerplan/orderopt"
	"github.com/meltpath/layerplan/pathcfg"
	"github.com/meltpath/layerplan/pathrecord"
	"github.com/meltpath/layerplan/plog"
	"github.com/meltpath/layerplan/router"
)

// Queue owns one layer's path records: an append-only list built by the
// Queue* operations, finalized by FinalizeLayer, then handed off (via
// Records) to package emit. A Queue is single-use: build it for one layer,
// queue operations, finalize, emit, discard.
type Queue struct {
	paths []*pathrecord.Record

	layerZ     int64
	layerIndex int

	currentExtruder int
	lastPosition    geom.Point
	initialPosition geom.Point

	travelConfig *pathcfg.Config

	router          router.Router
	routerBoundary  geom.PolygonSet
	lastValidRouter router.Router

	forceRetraction bool
	canAppendTravel bool

	queuedFanRecords []*pathrecord.Record

	retractMinUM          int64
	perimeterOverlapRatio float64
	layerTimeSeconds      float64

	log *plog.Logger
}

// New builds a Queue for one layer at layerZ (micrometres), starting from
// startPosition (the last position the previous layer, or the machine,
// left off at). travelConfig must be a travel config (LineWidthUM == 0);
// it is used internally by QueueTravel and by QueuePolygon's implicit
// travel-to-start-vertex step.
func New(layerZ int64, layerIndex int, currentExtruder int, startPosition geom.Point, travelConfig *pathcfg.Config, settings Settings, log *plog.Logger) (*Queue, error) {
	if travelConfig == nil || !travelConfig.IsTravel() {
		return nil, ErrConfigConflict
	}
	return &Queue{
		layerZ:                layerZ,
		layerIndex:            layerIndex,
		currentExtruder:       currentExtruder,
		lastPosition:          startPosition,
		initialPosition:       startPosition,
		travelConfig:          travelConfig,
		retractMinUM:          settings.RetractMinUM,
		perimeterOverlapRatio: settings.PerimeterOverlapRatio,
		canAppendTravel:       true,
		log:                   plog.OrNop(log),
	}, nil
}

// Records returns the queue's path records in emission order. Valid after
// FinalizeLayer; package emit treats this as read-only input.
func (q *Queue) Records() []*pathrecord.Record {
	return q.paths
}

// LastPosition returns the XY position the last queue operation left off
// at (invariant §3.5).
func (q *Queue) LastPosition() geom.Point {
	return q.lastPosition
}

// InitialPosition returns the position the queue was built with: the
// implicit position before its first record. Package emit uses this as
// the starting "current machine position" for its own walk over Records.
func (q *Queue) InitialPosition() geom.Point {
	return q.initialPosition
}

// LayerTimeSeconds returns the layer's total estimated time, valid after
// FinalizeLayer.
func (q *Queue) LayerTimeSeconds() float64 {
	return q.layerTimeSeconds
}

// LayerZ returns the micrometre Z this queue's layer sits at, the base Z
// package emit's spiralize ramp starts from.
func (q *Queue) LayerZ() int64 {
	return q.layerZ
}

// PerimeterOverlapRatio returns the ratio package emit uses to decide how
// much of a closed WALL-OUTER/WALL-INNER perimeter's tail to trim.
func (q *Queue) PerimeterOverlapRatio() float64 {
	return q.perimeterOverlapRatio
}

// SetRouter installs the router and the polygon set it should route
// within for subsequent QueueTravel calls. Passing a nil router disables
// routing; boundary is ignored in that case. The most recent non-nil
// router is retained as a diagnostic handle (LastValidRouter) even after
// being cleared or replaced.
func (q *Queue) SetRouter(r router.Router, boundary geom.PolygonSet) {
	q.router = r
	q.routerBoundary = boundary
	if r != nil {
		q.lastValidRouter = r
	}
}

// LastValidRouter returns the most recent non-nil router this queue has
// used, purely for diagnostics. It is never dereferenced for routing after
// its owning boundary has changed — see spec.md §4.4/§9.
func (q *Queue) LastValidRouter() router.Router {
	return q.lastValidRouter
}

// Seal freezes the current tail record early, if one is open. Emit calls
// this before walking records so that every record observed is sealed.
func (q *Queue) Seal() {
	if tail := q.tail(); tail != nil {
		tail.Seal()
	}
}

// SetExtruder updates the extruder new records are stamped with.
func (q *Queue) SetExtruder(i int) {
	q.currentExtruder = i
}

// ToolChangeRequired reports whether i differs from the currently active
// extruder.
func (q *Queue) ToolChangeRequired(i int) bool {
	return i != q.currentExtruder
}

// ForceRetract arranges for the next queued travel record to carry a
// mandatory (Force) retraction. Extrusion moves never consume this flag.
func (q *Queue) ForceRetract() {
	q.forceRetraction = true
}

// QueueExtrusion appends dest (stamped with the layer's Z) as an
// extrusion move under cfg. Consecutive calls with an identical, unsealed
// tail config fold into the same record; any other call opens a new one.
func (q *Queue) QueueExtrusion(dest geom.Point, cfg *pathcfg.Config) error {
	if cfg.IsTravel() {
		return ErrConfigConflict
	}
	dest.Z = q.layerZ

	rec := q.tail()
	if rec == nil || rec.Sealed() || !pathcfg.Same(rec.Config, cfg) {
		rec = q.openRecord(cfg)
	}
	_ = rec.Append(dest)
	q.lastPosition = dest
	return nil
}

// QueuePolygon walks poly starting at vertex startIndex under cfg,
// prefixing an implicit travel to the start vertex unless cfg is
// spiralize (which ramps Z through the first point instead of landing on
// it cold) or the planner is already there in XY.
//
// Closed-loop configs walk every other vertex as an extrusion move, then
// (for polygons of more than two vertices) one extra move back to the
// start vertex to physically close the loop; this repeated point is what
// lets emit's perimeter-overlap trim find a seam to cut. Open-path
// configs walk forward from vertex 0, or backward from any other start
// index — see queueOpenPath.
func (q *Queue) QueuePolygon(poly geom.Polygon, startIndex int, cfg *pathcfg.Config) error {
	n := len(poly)
	if n == 0 {
		return ErrEmptyPolygon
	}
	if startIndex < 0 || startIndex >= n {
		return ErrStartIndexOutOfRange
	}
	if cfg.IsTravel() {
		return ErrConfigConflict
	}

	if !cfg.Spiralize && !poly[startIndex].EqualXY(q.lastPosition) {
		if err := q.QueueTravel(poly[startIndex], false); err != nil {
			return err
		}
	}

	if cfg.ClosedLoop {
		q.queueClosedLoop(poly, startIndex, cfg)
	} else {
		q.queueOpenPath(poly, startIndex, cfg)
	}
	return nil
}

func (q *Queue) queueClosedLoop(poly geom.Polygon, startIndex int, cfg *pathcfg.Config) {
	n := len(poly)
	for k := 1; k <= n-1; k++ {
		_ = q.QueueExtrusion(poly[(startIndex+k)%n], cfg)
	}
	if n > 2 {
		_ = q.QueueExtrusion(poly[startIndex], cfg)
	}
}

// queueOpenPath implements spec.md §9's literal open-path reversal: a
// start index of 0 walks forward 1..n-1; any other start index walks
// backward n-1..1, wrapping via (startIndex+k) mod n — not "from
// startIndex down to 0".
func (q *Queue) queueOpenPath(poly geom.Polygon, startIndex int, cfg *pathcfg.Config) {
	n := len(poly)
	if startIndex == 0 {
		for k := 1; k <= n-1; k++ {
			_ = q.QueueExtrusion(poly[k], cfg)
		}
		return
	}
	for k := n - 1; k >= 1; k-- {
		_ = q.QueueExtrusion(poly[(startIndex+k)%n], cfg)
	}
}

// QueuePolygons queues every polygon in polys, each starting at vertex 0.
func (q *Queue) QueuePolygons(polys geom.PolygonSet, cfg *pathcfg.Config) error {
	for _, p := range polys {
		if err := q.QueuePolygon(p, 0, cfg); err != nil {
			return err
		}
	}
	return nil
}

// QueuePolygonsByOptimizer installs rtr as the queue's router (keeping
// the queue's current boundary, set via SetRouter), runs the order
// optimizer over polys, and queues each polygon at its chosen start
// index. It returns false without queuing anything if polys is empty.
func (q *Queue) QueuePolygonsByOptimizer(polys geom.PolygonSet, rtr router.Router, cfg *pathcfg.Config, layerIndex int) (bool, error) {
	if len(polys) == 0 {
		return false, nil
	}
	q.SetRouter(rtr, q.routerBoundary)
	res := orderopt.Optimize(polys, q.lastPosition, q.router, q.routerBoundary, layerIndex)
	for _, p := range res.Order {
		if err := q.QueuePolygon(polys[p], res.StartIndex[p], cfg); err != nil {
			return false, err
		}
	}
	return true, nil
}

// QueueTravel appends dest as a travel move, folding into the current
// tail travel record unless forceUnique is set or the previous travel
// call already closed the fold (see openOrFoldTravel). A pending
// ForceRetract is consumed here. If a router is installed, its verdict
// promotes the record's retraction request per spec.md §4.6 step 3; the
// plain distance check of step 4 always applies on top of that.
func (q *Queue) QueueTravel(dest geom.Point, forceUnique bool) error {
	rec := q.openOrFoldTravel(forceUnique)

	if q.forceRetraction {
		rec.ForceRetract()
		q.forceRetraction = false
	}

	if q.router != nil {
		res, err := q.router.Route(q.routerBoundary, q.lastPosition, dest, q.layerIndex)
		if err != nil {
			return err
		}
		switch res.Kind {
		case router.Interior:
			var interiorLen int64
			prev := q.lastPosition
			for _, wp := range res.Waypoints {
				wp.Z = q.layerZ
				wp.Width = 0
				_ = rec.Append(wp)
				interiorLen += geom.Dist(prev, wp)
				prev = wp
			}
			interiorLen += geom.Dist(prev, dest)
			if interiorLen > q.retractMinUM {
				rec.RequestRetract()
			}
		case router.NoPath:
			if geom.Dist(q.lastPosition, dest) > q.retractMinUM/10 {
				rec.RequestRetract()
			}
		case router.Direct:
			// No change beyond the unconditional distance check below.
		}
	}

	if geom.Dist(q.lastPosition, dest) > q.retractMinUM {
		rec.RequestRetract()
	}

	dest.Z = q.layerZ
	dest.Width = 0
	_ = rec.Append(dest)
	q.lastPosition = dest
	return nil
}

// openOrFoldTravel implements spec.md §4.6 step 1: a forced-unique call,
// or one made right after a previous forced-unique call, always opens a
// new record; otherwise it folds into the tail if the tail is itself an
// unsealed travel record.
func (q *Queue) openOrFoldTravel(forceUnique bool) *pathrecord.Record {
	defer func() { q.canAppendTravel = !forceUnique }()

	if !forceUnique && q.canAppendTravel {
		if tail := q.tail(); tail != nil && !tail.Sealed() && pathcfg.Same(tail.Config, q.travelConfig) {
			return tail
		}
	}
	return q.openRecord(q.travelConfig)
}

// QueueFan opens a new, pointless record carrying fan_percent and records
// a reference to it; FinalizeLayer's fan-floor pass later raises it to at
// least the layer's computed floor.
func (q *Queue) QueueFan(percent int, cfg *pathcfg.Config) error {
	rec := q.openRecord(cfg)
	rec.FanPercent = percent
	q.queuedFanRecords = append(q.queuedFanRecords, rec)
	return nil
}

// openRecord seals the current tail (if any) and opens a new record under
// cfg on the current extruder.
func (q *Queue) openRecord(cfg *pathcfg.Config) *pathrecord.Record {
	if tail := q.tail(); tail != nil {
		tail.Seal()
	}
	rec := pathrecord.New(cfg, q.currentExtruder)
	q.paths = append(q.paths, rec)
	return rec
}

func (q *Queue) tail() *pathrecord.Record {
	if len(q.paths) == 0 {
		return nil
	}
	return q.paths[len(q.paths)-1]
}

// FinalizeLayer runs the layer's two global adjustment passes: a
// minimum-layer-time speed slowdown, then a fan floor over every record
// queued via QueueFan. It preserves record count and order (invariant 4);
// it only ever mutates SpeedMMPerS and FanPercent on existing records.
func (q *Queue) FinalizeLayer(settings Settings, layerIndex int) error {
	travelTime, extrudeTime := q.timeBreakdown()
	total := travelTime + extrudeTime

	if total < settings.MinLayerTimeS && extrudeTime > 0 {
		ratio := 1.0
		if denom := settings.MinLayerTimeS - travelTime; denom > 0 {
			ratio = math.Min(1, extrudeTime/denom)
		}
		for _, rec := range q.paths {
			if rec.Config.IsTravel() || rec.Config.CommentTag == pathcfg.TagBridge {
				continue
			}
			rec.SpeedMMPerS = math.Max(settings.MinPrintSpeed, rec.Config.SpeedMMPerS*ratio)
		}
		q.log.Debugw("minimum layer time slowdown applied",
			"layer_index", layerIndex, "ratio", ratio, "total_before", total)
	}

	newTravel, newExtrude := q.timeBreakdown()
	q.layerTimeSeconds = newTravel + newExtrude

	q.applyFanFloor(settings, layerIndex)
	return nil
}

// timeBreakdown sums segment_length_mm / record.SpeedMMPerS over every
// point in the queue, threading the implicit position forward from the
// layer's start position through every record in order.
func (q *Queue) timeBreakdown() (travelTime, extrudeTime float64) {
	pos := q.startPosition()
	for _, rec := range q.paths {
		for _, p := range rec.Points {
			segMM := float64(geom.Dist(pos, p)) / 1000.0
			t := segMM / rec.SpeedMMPerS
			if rec.Config.IsTravel() {
				travelTime += t
			} else {
				extrudeTime += t
			}
			pos = p
		}
	}
	return travelTime, extrudeTime
}

// startPosition is the position implicitly before the first record: the
// queue's lastPosition before any points were appended. Since New pins
// lastPosition to the caller-supplied start and every subsequent write
// advances it monotonically alongside paths, threading timeBreakdown's
// fold from the first record's own recorded points reproduces the same
// walk; the only position timeBreakdown can't derive from q.paths is the
// very first one, held here.
func (q *Queue) startPosition() geom.Point {
	return q.initialPosition
}

func (q *Queue) applyFanFloor(settings Settings, layerIndex int) {
	floor := fanFloor(settings, layerIndex, q.layerTimeSeconds)
	for _, rec := range q.queuedFanRecords {
		rec.FanPercent = max(rec.FanPercent, floor)
	}
}

// fanFloor implements spec.md §4.6.a.
func fanFloor(settings Settings, layerIndex int, layerTimeSeconds float64) int {
	if layerIndex < settings.FirstLayerAllowFan {
		return 0
	}

	minFanTime := math.Max(settings.MinFanSpeedLayerTime, settings.MaxFanSpeedLayerTime)
	if layerTimeSeconds >= minFanTime {
		return 0
	}
	if settings.MaxFanSpeedLayerTime >= minFanTime {
		return settings.FanMaxPercent
	}

	deficit := math.Max(0, minFanTime-layerTimeSeconds)
	span := math.Max(0, minFanTime-settings.MaxFanSpeedLayerTime)
	ratio := 0.0
	if span > 0 {
		ratio = math.Min(1, deficit/span)
	}
	return settings.FanMinPercent + int(ratio*float64(settings.FanMaxPercent-settings.FanMinPercent))
}
