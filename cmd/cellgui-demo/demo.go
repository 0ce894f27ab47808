package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/cellgui/mainloop"
	"github.com/lixenwraith/cellgui/terminal/tui"
)

// demo is the main window: a menu bar, a marked list of endpoints on the
// left, a connection form on the right and a status line at the bottom
type demo struct {
	app *tui.Application

	menu   *tui.MenuBar
	left   *tui.Container
	right  *tui.Container
	items  *tui.StringList
	list   *tui.ListView
	port   *tui.Entry
	status *tui.TrimLabel
	clock  *mainloop.Timer

	started time.Time
}

func newDemo(app *tui.Application) *demo {
	d := &demo{app: app, started: time.Now()}
	root := app.Root()

	d.menu = tui.NewMenuBar([]*tui.MenuBarItem{
		{Title: "_File", Children: []*tui.MenuItem{
			{Title: "_Add endpoint", Help: "Append a placeholder endpoint", Action: d.addEndpoint},
			{Title: "_Remove marked", Help: "Drop every marked endpoint", Action: d.removeMarked},
			nil,
			{Title: "_Quit", Help: "Leave the demo", Action: app.Stop},
		}},
		{Title: "_Help", Children: []*tui.MenuItem{
			{Title: "_Keys", Action: d.showKeys},
			{Title: "_About", Action: d.showAbout},
		}},
	})

	d.left = tui.NewFrame(0, 1, 40, 22, "Endpoints")
	d.items = tui.NewStringList([]string{"localhost:6881", "tracker.example:80", "peer.example:51413"}, true)
	d.items.OnActivated(func(item int) {
		if err := app.Infof("Endpoint", "%s\nitem %d of %d", d.items.Items()[item], item+1, len(d.items.Items())); err != nil {
			log.Printf("demo: info dialog: %v", err)
		}
	})
	d.items.OnSelectionChanged(func(item int) {
		d.status.SetText(fmt.Sprintf("selected %d", item))
	})
	d.list = tui.NewListView(0, 0, 38, 20, d.items)
	d.list.Fill = tui.FillHorizontal | tui.FillVertical
	d.left.Add(d.list)

	d.right = tui.NewFrame(40, 1, 40, 22, "Connection")
	d.right.Add(tui.NewLabel(1, 1, "Port:"))
	d.port = tui.NewEntry(7, 1, 8, "6881")
	d.right.Add(d.port)
	connect := tui.NewButton(1, 3, "Connect", true)
	connect.OnClicked(d.connect)
	d.right.Add(connect)

	d.status = tui.NewTrimLabel(0, 23, 80, "")
	d.status.Fill = tui.FillHorizontal
	d.menu.OnHelp(func(text string) {
		if text == "" {
			d.tick()
			return
		}
		d.status.SetText(text)
	})

	root.Add(d.menu)
	root.Add(d.left)
	root.Add(d.right)
	root.Add(d.status)
	root.OnSizeChanged(d.relayout)

	d.clock = app.MainLoop().AddTimeout(time.Second, func() bool {
		d.tick()
		return true
	})
	d.tick()
	return d
}

// relayout splits the screen between the two frames and pins the status line
func (d *demo) relayout() {
	root := d.app.Root()
	half := root.W / 2
	body := max(root.H-2, 0)

	d.left.W, d.left.H = half, body
	d.right.X, d.right.W, d.right.H = half, root.W-half, body
	d.status.Y = max(root.H-1, 0)
}

func (d *demo) tick() {
	up := time.Since(d.started).Truncate(time.Second)
	d.status.SetText(fmt.Sprintf("up %s, %d endpoints, F9 menu, Tab focus, Ctrl-C quit", up, len(d.items.Items())))
}

func (d *demo) close() {
	d.app.MainLoop().RemoveTimeout(d.clock)
}

func (d *demo) addEndpoint() {
	items := append(d.items.Items(), fmt.Sprintf("peer-%d.example:6881", len(d.items.Items())+1))
	d.items.SetItems(items)
	d.list.SetSelected(len(items) - 1)
	d.tick()
	d.app.Refresh()
}

func (d *demo) removeMarked() {
	marked := make(map[int]bool)
	for _, i := range d.items.Marked() {
		marked[i] = true
	}
	if len(marked) == 0 {
		if err := d.app.Error("Remove", "No endpoint is marked.\nUse Space to mark one."); err != nil {
			log.Printf("demo: remove dialog: %v", err)
		}
		return
	}
	kept := make([]string, 0, len(d.items.Items()))
	for i, s := range d.items.Items() {
		if !marked[i] {
			kept = append(kept, s)
		}
	}
	// marks are index based, clear them before reusing the indexes
	d.items.SetItems(nil)
	d.items.SetItems(kept)
	d.tick()
	d.app.Refresh()
}

// connect validates the port entry and reports the outcome in a dialog
func (d *demo) connect() {
	port, err := parsePort(d.port.Text())
	if err != nil {
		err = d.app.Errorf("Connect", "%v", err)
	} else {
		err = d.app.Infof("Connect", "Listening on port %d", port)
	}
	if err != nil {
		log.Printf("demo: connect dialog: %v", err)
	}
}

func (d *demo) showKeys() {
	err := d.app.Info("Keys", strings.Join([]string{
		"Tab / Shift-Tab  move focus",
		"Alt+letter       hot keys",
		"F9               open the menu",
		"Space            mark endpoint",
		"Enter            open endpoint",
		"Ctrl-Z           suspend",
	}, "\n"))
	if err != nil {
		log.Printf("demo: keys dialog: %v", err)
	}
}

func (d *demo) showAbout() {
	if err := d.app.Info("About", "cellgui demo\ncharacter-cell widgets over tcell"); err != nil {
		log.Printf("demo: about dialog: %v", err)
	}
}

// parsePort accepts a decimal TCP port in 1..65535
func parsePort(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if n < 1 || n > 65535 {
		return 0, fmt.Errorf("port %d is out of range 1-65535", n)
	}
	return n, nil
}
