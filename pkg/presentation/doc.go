// Package presentation presents a stack of content over a container and
// animates it in, out and under the user's finger.
//
// The host describes what should be on screen as an ordered list of
// [Item] values, each pairing a [Content] with a [Style]. An [Engine]
// reconciles that list into [Presentation] records, one per content,
// and drives each through its [TransitionState]:
//
//	engine := presentation.NewEngine(presentation.WithKeyboard(observer))
//	engine.SetContainer(presentation.Container{Size: size})
//	engine.SetContainerVisibility(presentation.Appeared)
//	engine.SetItems([]presentation.Item{presentation.NewItem(sheet, styles.NewSheet())})
//
// Removing an item animates its presentation out while it keeps its place
// in the stack. Drags routed through [Engine.HandlePan] or
// [Engine.HandleScroll] scrub the presentation toward its exit and either
// dismiss or settle back on release, decided by where the released motion
// would come to rest.
//
// Content learns about its on-screen life through the WillAppear,
// DidAppear, WillDisappear and DidDisappear callbacks, derived from the
// transition state and the container's own [Visibility].
//
// The engine is single-threaded: every call, and every animation tick,
// happens on the goroutine that calls animation.StepTickers.
package presentation
