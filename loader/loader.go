package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/flightpath/core"
	"github.com/katalvlaran/flightpath/metrics"
	"github.com/sirupsen/logrus"
)

// endpoint is one side of a parsed row.
type endpoint struct {
	code    string
	vopts   []core.VertexOption
	lat     float64
	lon     float64
	located bool
}

// record is a parsed, validated row.
type record struct {
	from, to endpoint
	miles    float64
}

// side maps the column indexes of one endpoint; -1 means absent.
type side struct {
	code, name, id, city, country, lat, lon int
}

// columns maps header names to indexes.
type columns struct {
	origin, dest side
	distance     int
}

// LoadFile opens path and loads it with LoadCSV.
func LoadFile(path string, opts ...Option) (*core.Graph, *Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	return LoadCSV(f, opts...)
}

// LoadCSV reads a route dataset from r and returns the frozen graph together
// with a Report of skipped rows. Only an unreadable header or an I/O failure
// is returned as an error.
//
// Steps:
//  1. Read the header and resolve column indexes.
//  2. For each row: parse it, reject it as a RowError if malformed.
//  3. Create unseen airports, then add the route (and its reverse when
//     bidirectional).
//  4. Freeze the graph, publish metrics and log the summary.
func LoadCSV(r io.Reader, opts ...Option) (*core.Graph, *Report, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	// 1. Header
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("%w: empty dataset", ErrHeader)
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrHeader, err)
	}
	cols, err := resolveColumns(header)
	if err != nil {
		return nil, nil, err
	}

	var gopts []core.GraphOption
	if o.multiEdges {
		gopts = append(gopts, core.WithMultiEdges())
	}
	g := core.NewGraph(gopts...)
	rep := &Report{}

	// 2-3. Rows
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			rep.Rows++
			skip(o.log, rep, pe.StartLine, pe.Err)
			continue
		}
		if err != nil {
			return nil, nil, fmt.Errorf("loader: read: %w", err)
		}
		rep.Rows++
		line, _ := cr.FieldPos(0)

		rec, err := parseRow(row, cols)
		if err == nil {
			err = insert(g, rec, o)
		}
		if err != nil {
			skip(o.log, rep, line, err)
			continue
		}
		rep.Loaded++
		metrics.RowsLoaded.Inc()
	}

	// 4. Freeze and report
	g.Freeze()
	metrics.SetNetworkSize(g.VertexCount(), g.EdgeCount())
	o.log.WithFields(logrus.Fields{
		"airports": g.VertexCount(),
		"routes":   g.EdgeCount(),
		"rows":     rep.Rows,
		"skipped":  len(rep.Skipped),
	}).Info("route dataset loaded")

	return g, rep, nil
}

func skip(log logrus.FieldLogger, rep *Report, line int, err error) {
	rep.Skipped = append(rep.Skipped, RowError{Line: line, Err: err})
	metrics.RowsSkipped.Inc()
	msg := "skipping malformed route row"
	if errors.Is(err, core.ErrDuplicateEdge) {
		msg = "skipping duplicate route row"
	}
	log.WithField("line", line).WithError(err).Warn(msg)
}

func resolveColumns(header []string) (columns, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimPrefix(h, "\ufeff")
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	find := func(names ...string) int {
		for _, n := range names {
			if i, ok := idx[n]; ok {
				return i
			}
		}
		return -1
	}
	sideOf := func(prefix string) side {
		return side{
			code:    find(prefix+"_airport_code", prefix),
			name:    find(prefix + "_airport"),
			id:      find(prefix + "_airport_id"),
			city:    find(prefix + "_city"),
			country: find(prefix + "_country"),
			lat:     find(prefix + "_airport_latitude"),
			lon:     find(prefix + "_airport_longitude"),
		}
	}

	cols := columns{
		origin:   sideOf("origin"),
		dest:     sideOf("destination"),
		distance: find("distance"),
	}
	if cols.origin.code < 0 || cols.dest.code < 0 {
		return cols, fmt.Errorf("%w: origin and destination code columns are required", ErrHeader)
	}
	if cols.distance < 0 {
		for _, c := range []int{cols.origin.lat, cols.origin.lon, cols.dest.lat, cols.dest.lon} {
			if c < 0 {
				return cols, fmt.Errorf("%w: need a distance column or latitude/longitude for both airports", ErrHeader)
			}
		}
	}

	return cols, nil
}

// field returns the trimmed value at i, or "" when the column is absent or
// the row is short.
func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[i])
}

func parseFloat(row []string, i int, name string) (float64, bool, error) {
	s := field(row, i)
	if s == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %s %q", ErrBadNumber, name, s)
	}

	return v, true, nil
}

func parseEndpoint(row []string, s side, prefix string) (endpoint, error) {
	ep := endpoint{code: core.NormalizeCode(field(row, s.code))}
	if ep.code == "" {
		return ep, fmt.Errorf("%w: %s code", ErrMissingField, prefix)
	}

	if v := field(row, s.id); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return ep, fmt.Errorf("%w: %s id %q", ErrBadNumber, prefix, v)
		}
		ep.vopts = append(ep.vopts, core.WithID(id))
	}
	if v := field(row, s.name); v != "" {
		ep.vopts = append(ep.vopts, core.WithName(v))
	}
	if v := field(row, s.city); v != "" {
		ep.vopts = append(ep.vopts, core.WithCity(v))
	}
	if v := field(row, s.country); v != "" {
		ep.vopts = append(ep.vopts, core.WithCountry(v))
	}

	lat, okLat, err := parseFloat(row, s.lat, prefix+" latitude")
	if err != nil {
		return ep, err
	}
	lon, okLon, err := parseFloat(row, s.lon, prefix+" longitude")
	if err != nil {
		return ep, err
	}
	if okLat && okLon {
		ep.lat, ep.lon, ep.located = lat, lon, true
		ep.vopts = append(ep.vopts, core.WithLocation(lat, lon))
	}

	return ep, nil
}

func parseRow(row []string, cols columns) (record, error) {
	var rec record
	var err error
	if rec.from, err = parseEndpoint(row, cols.origin, "origin"); err != nil {
		return rec, err
	}
	if rec.to, err = parseEndpoint(row, cols.dest, "destination"); err != nil {
		return rec, err
	}

	if cols.distance >= 0 {
		miles, ok, err := parseFloat(row, cols.distance, "distance")
		if err != nil {
			return rec, err
		}
		if ok {
			rec.miles = miles
			return rec, nil
		}
	}
	if !rec.from.located || !rec.to.located {
		return rec, fmt.Errorf("%w: distance or coordinates", ErrMissingField)
	}
	rec.miles = Haversine(rec.from.lat, rec.from.lon, rec.to.lat, rec.to.lon)

	return rec, nil
}

// insert validates the route against g before touching it, so a rejected
// row leaves the graph unchanged.
func insert(g *core.Graph, rec record, o options) error {
	from, to := rec.from.code, rec.to.code
	switch {
	case from == to:
		return fmt.Errorf("%w: %s", core.ErrLoopNotAllowed, from)
	case !o.multiEdges && g.HasEdge(from, to):
		return fmt.Errorf("%w: %s→%s", core.ErrDuplicateEdge, from, to)
	}
	if err := core.ValidateWeight(rec.miles); err != nil {
		return err
	}

	for _, ep := range []endpoint{rec.from, rec.to} {
		if g.HasVertex(ep.code) {
			continue
		}
		if err := g.AddVertex(ep.code, ep.vopts...); err != nil {
			return err
		}
	}
	if err := g.AddEdge(from, to, rec.miles); err != nil {
		return err
	}
	// Parallel rows each get their own reverse; otherwise a listed reverse wins.
	if o.bidirectional && (o.multiEdges || !g.HasEdge(to, from)) {
		if err := g.AddEdge(to, from, rec.miles); err != nil {
			return err
		}
	}

	return nil
}
