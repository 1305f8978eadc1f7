package loader

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Sentinel errors reported by the loader.
var (
	// ErrHeader aborts a load whose header lacks a required column.
	ErrHeader = errors.New("loader: invalid header")

	// ErrMissingField marks a row without a value in a required column.
	ErrMissingField = errors.New("loader: missing field")

	// ErrBadNumber marks a row whose numeric column does not parse.
	ErrBadNumber = errors.New("loader: malformed number")
)

// RowError describes one skipped row.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string { return fmt.Sprintf("loader: line %d: %v", e.Line, e.Err) }

func (e *RowError) Unwrap() error { return e.Err }

// Report summarizes a load.
type Report struct {
	Rows    int        // data rows read, header excluded
	Loaded  int        // rows that became a route
	Skipped []RowError // rows rejected, in file order
}

// Option configures a load.
type Option func(*options)

type options struct {
	bidirectional bool
	multiEdges    bool
	log           logrus.FieldLogger
}

func defaultOptions() options {
	return options{log: logrus.StandardLogger()}
}

// WithBidirectional also inserts the reverse of every route.
// The default is one-way: a row adds origin→destination only.
func WithBidirectional(on bool) Option {
	return func(o *options) { o.bidirectional = on }
}

// WithMultiEdges keeps repeated origin→destination rows as parallel routes
// instead of skipping them as duplicates.
func WithMultiEdges(on bool) Option {
	return func(o *options) { o.multiEdges = on }
}

// WithLogger sets the logger used for row warnings and the load summary.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}
