// Package downloadtest provides a fake engine for exercising download
// handlers without an embedded browser. It drives a handler through the
// same lifecycle a real engine would (can-download, destination decision,
// progress updates, terminal notification) and verifies the continuation
// contract along the way.
package downloadtest

import "sync"

// Continuation is a recording download.BeforeDownloadCallback. It is safe
// for concurrent use.
type Continuation struct {
	mu         sync.Mutex
	continued  bool
	path       string
	showDialog bool
	releases   int
}

// Continue records the destination decision. The last call wins.
func (c *Continuation) Continue(path string, showDialog bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.continued = true
	c.path = path
	c.showDialog = showDialog
}

// Release records a release of the engine-side resources.
func (c *Continuation) Release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.releases++
}

// Continued reports whether Continue was called.
func (c *Continuation) Continued() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.continued
}

// Path returns the destination path passed to Continue.
func (c *Continuation) Path() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.path
}

// ShowDialog returns the dialog flag passed to Continue.
func (c *Continuation) ShowDialog() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.showDialog
}

// ReleaseCount returns how many times Release was called.
func (c *Continuation) ReleaseCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.releases
}
