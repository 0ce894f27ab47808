// Package tui provides retained-mode character-cell widgets on top of the
// terminal package.
//
// Widgets live in a tree of Containers. A Container owns its children in
// insertion order, which is both paint order and focus order, and routes
// keys to them in three passes:
//
//   - hot keys (Alt chords, F9) go to the focused child first, then to the
//     other children, so accelerators work from anywhere in the subtree
//   - ordinary keys go to the decoration, then to the focused child only
//   - cold keys are offered last, when nothing else took the key, so a
//     default button can react to Enter
//
// An Application keeps a stack of top-level containers. Run pushes one,
// pumps the mainloop until its running flag is cleared and pops it again;
// nested Runs give modal dialogs and menus. Begin, RunLoop and End expose
// the same cycle in steps so callers can interleave it with their own timers.
//
// Usage pattern:
//
//	drv, err := terminal.NewScreenDriver()
//	if err != nil {
//		return err
//	}
//	app := tui.New(drv, tui.DefaultConfig())
//	frame := tui.NewFrame(0, 0, 40, 10, "Hello")
//	ok := tui.NewButton(1, 1, "Quit", true)
//	ok.OnClicked(app.Stop)
//	frame.Add(ok)
//	app.Root().Add(frame)
//	return app.Run(app.Root())
package tui
