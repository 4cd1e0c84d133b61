package downloadtest

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/avasse/grabby/internal/logging"
	"github.com/avasse/grabby/pkg/download"
)

// Request describes one simulated download.
type Request struct {
	URL               string
	Method            string // defaults to GET
	SuggestedFilename string
	TotalBytes        int64 // <= 0 means the size is unknown
	Updates           int   // progress notifications before the terminal one
	Cancel            bool  // end the download cancelled instead of complete
	// ValidateDestination makes Run reject a decide policy that continued
	// with an empty destination while also suppressing the engine dialog.
	ValidateDestination bool
}

// Result records what the handler did with one Request.
type Result struct {
	// Allowed is the can-download verdict. When false no other field is set.
	Allowed bool
	// Handled is the destination-decision verdict.
	Handled bool
	// Destination and ShowDialog are the continuation signals, if any.
	Destination string
	ShowDialog  bool
	// Updates counts OnDownloadUpdated invocations, terminal one included.
	Updates int
	// Final is the item snapshot delivered with the terminal notification.
	Final download.Item
}

// Engine drives a download.Handler the way an embedded browser engine
// would. It is safe for concurrent use.
type Engine struct {
	handler download.Handler
	nextID  atomic.Uint32
}

// NewEngine returns an Engine that invokes h for every simulated download.
func NewEngine(h download.Handler) *Engine {
	return &Engine{handler: h}
}

// Run drives one download through the full lifecycle. It returns an error
// when the handler violates the continuation contract: a continuation that
// was signalled must be released exactly once.
func (e *Engine) Run(ctx context.Context, req Request) (Result, error) {
	method := req.Method
	if method == "" {
		method = "GET"
	}

	log := logging.FromContext(ctx)

	if !e.handler.CanDownload(ctx, req.URL, method) {
		log.Debug().Str("url", req.URL).Msg("download blocked by handler")
		return Result{}, nil
	}

	item := download.Item{
		ID:                e.nextID.Add(1),
		URL:               req.URL,
		OriginalURL:       req.URL,
		SuggestedFilename: req.SuggestedFilename,
		TotalBytes:        req.TotalBytes,
		StartTime:         time.Now(),
		IsInProgress:      true,
	}
	if req.TotalBytes <= 0 {
		item.PercentComplete = -1
	}

	cont := &Continuation{}
	handled := e.handler.OnBeforeDownload(ctx, item, cont)

	switch n := cont.ReleaseCount(); {
	case cont.Continued() && n != 1:
		return Result{}, fmt.Errorf("continuation for %q released %d times, want exactly 1", req.URL, n)
	case !cont.Continued() && n != 0:
		return Result{}, fmt.Errorf("continuation for %q released %d times without being continued", req.URL, n)
	}
	if req.ValidateDestination && cont.Continued() && !cont.ShowDialog() && cont.Path() == "" {
		return Result{}, fmt.Errorf("download %q continued with no destination and no dialog", req.URL)
	}

	res := Result{Allowed: true, Handled: handled}
	if cont.Continued() {
		res.Destination = cont.Path()
		res.ShowDialog = cont.ShowDialog()
		item.FullPath = cont.Path()
	} else {
		// No decision taken: the engine falls back to its own default
		// destination, the suggested name as-is.
		item.FullPath = req.SuggestedFilename
	}

	for i := 1; i <= req.Updates; i++ {
		if req.TotalBytes > 0 {
			item.ReceivedBytes = req.TotalBytes * int64(i) / int64(req.Updates+1)
			item.PercentComplete = int(item.ReceivedBytes * 100 / req.TotalBytes)
		}
		e.handler.OnDownloadUpdated(ctx, item)
		res.Updates++
	}

	item.IsInProgress = false
	item.EndTime = time.Now()
	if req.Cancel {
		item.IsCancelled = true
	} else {
		item.IsComplete = true
		if req.TotalBytes > 0 {
			item.ReceivedBytes = req.TotalBytes
			item.PercentComplete = 100
		}
	}
	e.handler.OnDownloadUpdated(ctx, item)
	res.Updates++
	res.Final = item

	return res, nil
}

// RunMany drives all requests concurrently with at most workers in flight
// (unbounded when workers <= 0). Results are positionally aligned with
// reqs. The first contract violation cancels the remaining runs.
func (e *Engine) RunMany(ctx context.Context, reqs []Request, workers int) ([]Result, error) {
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	results := make([]Result, len(reqs))
	for i, req := range reqs {
		g.Go(func() error {
			res, err := e.Run(ctx, req)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
