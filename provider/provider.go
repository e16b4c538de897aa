package provider

import (
	"context"
	"errors"
	"time"

	"github.com/u0927156/MBTAProject/network"
)

// ErrUnexpectedStatus wraps non-200 responses from a remote source.
var ErrUnexpectedStatus = errors.New("unexpected HTTP status")

// Provider produces a complete snapshot of lines and their stops.
type Provider interface {
	Fetch(ctx context.Context) (*Snapshot, error)
	// Name identifies the source; cached snapshots are only reused for the
	// same name.
	Name() string
}

// Snapshot is the frozen provider output for one run.
type Snapshot struct {
	Source    string
	FetchedAt time.Time
	Lines     []network.Line
}

// Index builds the lookup structures for this snapshot.
func (s *Snapshot) Index() *network.Index {
	return network.NewIndex(s.Lines)
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
