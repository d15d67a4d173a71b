// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"go.uber.org/zap/zaptest"

	"webquote/collections"
	"webquote/logging"
	"webquote/pricing"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	UseTestLogger(t)

	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: t.TempDir(),
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}
	t.Cleanup(func() { _ = app.ResetBootstrapState() })

	if err := collections.Setup(app); err != nil {
		t.Fatalf("failed to set up collections: %v", err)
	}

	return app
}

// NewSeededTestApp is NewTestApp with the built-in catalog seeded.
func NewSeededTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	app := NewTestApp(t)
	if err := collections.Seed(app, pricing.DefaultCatalog()); err != nil {
		t.Fatalf("failed to seed catalog: %v", err)
	}
	return app
}

// UseTestLogger routes the global logger to t for the duration of the test.
func UseTestLogger(t *testing.T) {
	t.Helper()

	prev := logging.Logger
	logging.SetLogger(zaptest.NewLogger(t))
	t.Cleanup(func() { logging.SetLogger(prev) })
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHTMLNotContains checks that body contains none of the fragments.
func AssertHTMLNotContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if strings.Contains(body, frag) {
			t.Errorf("expected HTML not to contain %q\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
