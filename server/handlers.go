package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/katalvlaran/flightpath/bfs"
	"github.com/katalvlaran/flightpath/core"
	"github.com/katalvlaran/flightpath/metrics"
	"github.com/katalvlaran/flightpath/route"
	"github.com/sirupsen/logrus"
)

type errorResponse struct {
	Error string `json:"error"`
}

type routeResponse struct {
	Mode          string      `json:"mode"`
	Airports      []string    `json:"airports"`
	Legs          []route.Leg `json:"legs"`
	TotalDistance float64     `json:"total_distance"`
}

type routeInfo struct {
	To       string  `json:"to"`
	Distance float64 `json:"distance"`
}

type airportResponse struct {
	Code      string      `json:"code"`
	ID        int         `json:"id,omitempty"`
	Name      string      `json:"name,omitempty"`
	City      string      `json:"city,omitempty"`
	Country   string      `json:"country,omitempty"`
	Latitude  *float64    `json:"latitude,omitempty"`
	Longitude *float64    `json:"longitude,omitempty"`
	Routes    []routeInfo `json:"routes"`
}

type reachableResponse struct {
	Origin   string   `json:"origin"`
	Airports []string `json:"airports"`
	Count    int      `json:"count"`
}

type healthResponse struct {
	Status   string `json:"status"`
	Airports int    `json:"airports"`
	Routes   int    `json:"routes"`
}

// FindRoute handles GET /api/route.
func (s *Server) FindRoute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := strings.TrimSpace(q.Get("from")), strings.TrimSpace(q.Get("to"))
	if from == "" || to == "" {
		writeError(w, http.StatusBadRequest, "query parameters 'from' and 'to' are required")
		return
	}
	mode := strings.ToLower(strings.TrimSpace(q.Get("mode")))
	if mode == "" {
		mode = ModeShortest
	}
	if mode != ModeShortest && mode != ModeFewest {
		writeError(w, http.StatusBadRequest, "mode must be 'shortest' or 'fewest'")
		return
	}

	started := time.Now()
	s.mu.Lock()
	p, err := s.query(mode, from, to)
	s.mu.Unlock()
	metrics.ObserveQuery(route.Outcome(err), started)

	log := s.log.WithFields(logrus.Fields{"origin": from, "destination": to, "mode": mode})
	switch {
	case err == nil:
	case route.IsUnknownAirport(err):
		writeError(w, http.StatusNotFound, err.Error())
		return
	case route.IsNoRoute(err):
		writeError(w, http.StatusUnprocessableEntity, "no route available")
		return
	default:
		log.WithError(err).Error("route query failed")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	legs := p.Legs()
	if legs == nil {
		legs = []route.Leg{}
	}
	log.WithField("legs", len(legs)).Debug("route found")
	writeJSON(w, http.StatusOK, routeResponse{
		Mode:          mode,
		Airports:      p.Airports,
		Legs:          legs,
		TotalDistance: p.TotalDistance,
	})
}

// query runs one route query; fewest-stop paths are priced in miles.
func (s *Server) query(mode, from, to string) (*route.Path, error) {
	if mode == ModeShortest {
		return route.FindRoute(s.graph, from, to, s.routeOpts...)
	}
	p, err := route.FindFewestStops(s.graph, from, to)
	if err != nil {
		return nil, err
	}
	miles, err := route.Miles(s.graph, p)
	if err != nil {
		return nil, err
	}
	p.TotalDistance = miles

	return p, nil
}

// GetAirport handles GET /api/airports/{code}.
func (s *Server) GetAirport(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	a, err := s.graph.Vertex(code)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	routes, err := s.graph.RoutesFrom(a.Code)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	resp := airportResponse{
		Code:    a.Code,
		ID:      a.ID,
		Name:    a.Name,
		City:    a.City,
		Country: a.Country,
		Routes:  make([]routeInfo, 0, len(routes)),
	}
	if a.HasLocation() {
		lat, lon := a.Latitude, a.Longitude
		resp.Latitude, resp.Longitude = &lat, &lon
	}
	for _, rt := range routes {
		resp.Routes = append(resp.Routes, routeInfo{To: rt.To, Distance: rt.Weight})
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetReachable handles GET /api/airports/{code}/reachable.
func (s *Server) GetReachable(w http.ResponseWriter, r *http.Request) {
	code := core.NormalizeCode(mux.Vars(r)["code"])
	s.mu.Lock()
	airports, err := bfs.Reachable(s.graph, code, bfs.WithContext(r.Context()))
	s.mu.Unlock()
	if err != nil {
		if route.IsUnknownAirport(err) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		s.log.WithError(err).WithField("origin", code).Error("reachability query failed")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, reachableResponse{Origin: code, Airports: airports, Count: len(airports)})
}

// Health handles GET /healthz.
func (s *Server) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:   "up",
		Airports: s.graph.VertexCount(),
		Routes:   s.graph.EdgeCount(),
	})
}
