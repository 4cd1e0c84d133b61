package download_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avasse/grabby/pkg/download"
)

// fakeCallback records continuation use for assertions.
type fakeCallback struct {
	continued  bool
	path       string
	showDialog bool
	releases   int
}

func (f *fakeCallback) Continue(path string, showDialog bool) {
	f.continued = true
	f.path = path
	f.showDialog = showDialog
}

func (f *fakeCallback) Release() {
	f.releases++
}

func TestBuildDefaults(t *testing.T) {
	ctx := context.Background()
	handler := download.NewBuilder().Build()

	t.Run("can-download defaults to allow", func(t *testing.T) {
		assert.True(t, handler.CanDownload(ctx, "https://example.org/a.zip", "GET"))
	})

	t.Run("before-download defaults to decline and leaves continuation alone", func(t *testing.T) {
		cb := &fakeCallback{}
		handled := handler.OnBeforeDownload(ctx, download.Item{SuggestedFilename: "a.zip"}, cb)

		assert.False(t, handled)
		assert.False(t, cb.continued)
		assert.Zero(t, cb.releases)
	})

	t.Run("updated defaults to no-op", func(t *testing.T) {
		assert.NotPanics(t, func() {
			handler.OnDownloadUpdated(ctx, download.Item{ID: 1})
		})
	})
}

func TestBuildDispatchesRegisteredCallbacks(t *testing.T) {
	ctx := context.Background()

	t.Run("can-download receives exact arguments and returns result unchanged", func(t *testing.T) {
		var gotURL, gotMethod string
		handler := download.NewBuilder().
			OnCanDownload(func(_ context.Context, url, method string) bool {
				gotURL, gotMethod = url, method
				return false
			}).
			Build()

		allowed := handler.CanDownload(ctx, "https://example.org/big.iso", "POST")

		assert.False(t, allowed)
		assert.Equal(t, "https://example.org/big.iso", gotURL)
		assert.Equal(t, "POST", gotMethod)
	})

	t.Run("before-download receives the item and continuation", func(t *testing.T) {
		item := download.Item{ID: 7, SuggestedFilename: "report.pdf", TotalBytes: 42}
		cb := &fakeCallback{}

		var gotItem download.Item
		var gotCallback download.BeforeDownloadCallback
		handler := download.NewBuilder().
			OnBeforeDownload(func(_ context.Context, it download.Item, c download.BeforeDownloadCallback) bool {
				gotItem, gotCallback = it, c
				return true
			}).
			Build()

		handled := handler.OnBeforeDownload(ctx, item, cb)

		require.True(t, handled)
		assert.Equal(t, item, gotItem)
		assert.Same(t, cb, gotCallback)
	})

	t.Run("updated receives the item", func(t *testing.T) {
		item := download.Item{ID: 9, ReceivedBytes: 512, PercentComplete: 50}

		var gotItem download.Item
		handler := download.NewBuilder().
			OnDownloadUpdated(func(_ context.Context, it download.Item) {
				gotItem = it
			}).
			Build()

		handler.OnDownloadUpdated(ctx, item)

		assert.Equal(t, item, gotItem)
	})
}

func TestRegisterNilRestoresDefault(t *testing.T) {
	ctx := context.Background()

	handler := download.NewBuilder().
		OnCanDownload(func(context.Context, string, string) bool { return false }).
		OnCanDownload(nil).
		Build()

	assert.True(t, handler.CanDownload(ctx, "https://example.org", "GET"))
}

func TestRegistrationReturnsSameBuilder(t *testing.T) {
	b := download.NewBuilder()

	assert.Same(t, b, b.OnCanDownload(nil))
	assert.Same(t, b, b.OnBeforeDownload(nil))
	assert.Same(t, b, b.OnDownloadUpdated(nil))
}

func TestBuildSnapshotsRegistrations(t *testing.T) {
	ctx := context.Background()
	b := download.NewBuilder().
		OnCanDownload(func(context.Context, string, string) bool { return false })

	built := b.Build()

	// Mutating the builder afterwards must not reach the built handler.
	b.OnCanDownload(nil)

	assert.False(t, built.CanDownload(ctx, "https://example.org", "GET"))
	assert.True(t, b.Build().CanDownload(ctx, "https://example.org", "GET"))
}
