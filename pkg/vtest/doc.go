// Package vtest provides testing helpers for dashboard components.
//
// The render assertions check markup of a single node:
//
//	vtest.ExpectContains(t, ui.ErrorHint("Please enter a valid email"), "valid email")
//
// A Harness drives a whole page the way a session would, on a manual
// scheduler so timers and frames run only when the test says so:
//
//	h := vtest.NewHarness(t)
//	h.Mount(pages.Login(env))
//	h.Type(h.ByID("login-email"), "a@b.co")
//	h.Advance(4 * time.Second)
//
// Every step re-renders the root, and lookups return nodes of the latest
// tree, so a node found before a step must be looked up again after it.
package vtest
