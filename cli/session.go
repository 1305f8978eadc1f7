// Package cli runs the interactive route prompt: ask for an origin and a
// destination, print the shortest itinerary, offer another query.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/katalvlaran/flightpath/core"
	"github.com/katalvlaran/flightpath/dijkstra"
	"github.com/katalvlaran/flightpath/metrics"
	"github.com/katalvlaran/flightpath/route"
	"github.com/sirupsen/logrus"
)

// DefaultPrecision is used when Precision is zero or negative.
const DefaultPrecision = 2

// Prompts printed by Session.
const (
	OriginPrompt      = "Please enter the code of the airport you would like to depart from: "
	DestinationPrompt = "Enter the code of the airport you are going to arrive at. "
	AgainPrompt       = "Do you want to find another route? (yes or no) "
)

// Session is one interactive conversation over In and Out.
type Session struct {
	In        io.Reader
	Out       io.Writer
	Graph     *core.Graph
	Precision int               // digits after the decimal point in Total Miles; 0 means DefaultPrecision
	Options   []dijkstra.Option // passed to every query
	Log       logrus.FieldLogger

	scanner *bufio.Scanner
}

// Run loops until the user declines another route or input ends.
// Only an internal failure such as route.ErrCorruptPath is returned.
func (s *Session) Run() error {
	if s.Log == nil {
		s.Log = logrus.StandardLogger()
	}
	s.scanner = bufio.NewScanner(s.In)

	for {
		origin, ok := s.askAirport(OriginPrompt)
		if !ok {
			return nil
		}
		dest, ok := s.askAirport(DestinationPrompt)
		if !ok {
			return nil
		}

		if err := s.query(origin, dest); err != nil {
			return err
		}

		answer, ok := s.ask(AgainPrompt)
		if !ok || !strings.EqualFold(answer, "yes") {
			return nil
		}
	}
}

func (s *Session) query(origin, dest string) error {
	started := time.Now()
	p, err := route.FindRoute(s.Graph, origin, dest, s.Options...)
	metrics.ObserveQuery(route.Outcome(err), started)

	switch {
	case err == nil:
		PrintRoute(s.Out, p, s.Precision)
	case route.IsNoRoute(err):
		fmt.Fprintf(s.Out, "There is no complete route from %s to %s.\n", origin, dest)
	default:
		s.Log.WithFields(logrus.Fields{"origin": origin, "destination": dest}).
			WithError(err).Error("route query failed")
		return err
	}

	return nil
}

// askAirport repeats prompt until the answer names a known airport.
func (s *Session) askAirport(prompt string) (string, bool) {
	for {
		answer, ok := s.ask(prompt)
		if !ok {
			return "", false
		}
		code := core.NormalizeCode(answer)
		if s.Graph.HasVertex(code) {
			return code, true
		}
		fmt.Fprintf(s.Out, "%s is not available in the chosen route system.\n", code)
	}
}

// ask prints prompt and reads one trimmed line; ok is false at end of input.
func (s *Session) ask(prompt string) (string, bool) {
	fmt.Fprint(s.Out, prompt)
	if !s.scanner.Scan() {
		fmt.Fprintln(s.Out)
		return "", false
	}

	return strings.TrimSpace(s.scanner.Text()), true
}

// PrintRoute writes p as "X to Y" legs followed by the total in miles.
// A precision of zero or less prints DefaultPrecision digits.
func PrintRoute(w io.Writer, p *route.Path, precision int) {
	if precision <= 0 {
		precision = DefaultPrecision
	}
	fmt.Fprintf(w, "The shortest route from %s to %s is:\n", p.Origin(), p.Destination())
	for _, leg := range p.Legs() {
		fmt.Fprintln(w, leg)
	}
	fmt.Fprintf(w, "Total Miles: %.*f miles.\n", precision, p.TotalDistance)
}
