package presentation

import "github.com/go-drift/present/pkg/graphics"

// Content is the opaque thing a presentation shows. Presentations are
// matched to items by Content identity, so implementations should be
// pointer types: two Content values are the same content only when they
// compare equal.
//
// The lifecycle methods are called as the presentation's effective
// visibility changes. A panic inside one is recovered and reported; it
// does not stop the presentation.
type Content interface {
	// PreferredSize returns the size the content would like when laid out
	// within fitting. ok is false when the content has no preference, in
	// which case the style falls back to a layout-derived default.
	PreferredSize(fitting graphics.Size) (size graphics.Size, ok bool)

	WillAppear()
	DidAppear()
	WillDisappear()
	DidDisappear()
}

// PreferredSizeNotifier is implemented by content whose preferred size can
// change after it is presented. The engine re-measures and re-lays out the
// presentation when the listener fires.
type PreferredSizeNotifier interface {
	// AddPreferredSizeListener registers fn and returns a function that
	// removes it.
	AddPreferredSizeListener(fn func()) (remove func())
}
