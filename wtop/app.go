package wtop

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell"

	"github.com/wooki-hpc/wsge/sge"
	"github.com/wooki-hpc/wsge/view"
)

const (
	xMargin = 2
	yMargin = 1
)

// Config holds the viewer settings.
type Config struct {
	Interval time.Duration
}

// App ties a Top to a tcell screen and redraws it on every tick,
// resize or manual refresh.
type App struct {
	top    *Top
	scr    tcell.Screen
	pal    *view.Palette
	quit   chan bool
	update chan bool
	config Config
}

// NewApp returns an App drawing top onto scr.
func NewApp(top *Top, scr tcell.Screen, config Config) *App {
	return &App{
		top:    top,
		scr:    scr,
		pal:    view.NewPalette(true),
		quit:   make(chan bool),
		update: make(chan bool),
		config: config,
	}
}

// Start runs the event loop until the user quits or a poll fails.
func (app *App) Start() error {
	go app.dispatch()

	if err := app.top.Update(); err != nil {
		return err
	}
	app.scr.Clear()
	app.draw()

	tick := time.Tick(app.config.Interval)

loop:
	for {
		select {
		case <-app.quit:
			break loop

		case <-app.update:
			app.scr.Clear()
			app.draw()

		case <-tick:
			if err := app.top.Update(); err != nil {
				return err
			}
			app.scr.Clear()
			app.draw()
		}
	}

	return nil
}

// Quit stops the event loop.
func (app *App) Quit() {
	app.quit <- true
}

func (app *App) dispatch() {
	for {
		ev := app.scr.PollEvent()
		if ev == nil {
			break
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyCtrlC:
				app.quit <- true

			case tcell.KeyCtrlL:
				app.scr.Sync()

			case tcell.KeyRune:
				switch ev.Rune() {
				case 'q', 'Q':
					app.quit <- true
				}
			}

		case *tcell.EventResize:
			app.update <- true
		}
	}
}

func (app *App) draw() {
	snap := app.top.Current()

	y := 0
	y = app.drawCluster(y) + yMargin
	y = app.drawNodes(y, snap) + yMargin
	app.drawUsers(y)

	app.scr.Show()
}

func (app *App) drawCluster(y int) int {
	scr := app.scr
	w, _ := scr.Size()
	sum := app.top.cluster

	now := time.Now().Format(time.Stamp)
	printStr(scr, w-len(now)-xMargin, y, now, tcell.StyleDefault)

	stat := fmt.Sprintf(
		"%d running, %d waiting / %d free",
		sum.RunningJobs,
		sum.WaitingJobs,
		sum.FreeSlots,
	)
	printStr(scr, xMargin, y, stat, tcell.StyleDefault)

	return y + 1
}

func (app *App) drawNodes(y int, snap *sge.Snapshot) int {
	scr := app.scr

	nodes := view.SortNodes(snap.Nodes)

	nameCols := 0
	for _, node := range nodes {
		if len(node.Name) > nameCols {
			nameCols = len(node.Name)
		}
	}

	for _, node := range nodes {
		name := fmt.Sprintf("%*s", -nameCols, node.Name)

		used := 0
		for _, job := range node.Jobs {
			used += job.Slots
		}
		if used > node.SlotsTotal {
			used = node.SlotsTotal
		}

		util := fmt.Sprintf("[%2d/%2d]", used, node.SlotsTotal)
		nameColor := tcell.ColorTeal
		if node.Down() {
			util = "[--/--]"
			nameColor = tcell.ColorGray
		}

		x := xMargin
		x += printStr(scr, x, y, name, tcell.StyleDefault.Foreground(nameColor))
		x += 1
		x += printStr(scr, x, y, util, tcell.StyleDefault.Foreground(tcell.ColorGray))
		x += 1

		for _, job := range node.Jobs {
			marks := strings.Repeat("|", job.Slots)
			style := tcell.StyleDefault.Foreground(app.pal.Color(job.Owner))
			x += printStr(scr, x, y, marks, style)
		}
		free := node.SlotsTotal - used
		if free > 0 {
			printStr(scr, x, y, strings.Repeat(".", free),
				tcell.StyleDefault.Foreground(tcell.ColorGray))
		}

		y++
	}

	return y
}

func (app *App) drawUsers(y int) int {
	scr := app.scr
	w, _ := scr.Size()

	style := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen)

	x := 0
	x += printStr(scr, x, y, "  ", style)
	x += printStr(scr, x, y, fmt.Sprintf("%-12s", "USER"), style)
	x += printStr(scr, x, y, fmt.Sprintf("%5s %5s %5s %6s", "RUN", "QUEUE", "HOLD", "SLOTS"), style)
	if x < w {
		printStr(scr, x, y, strings.Repeat(" ", w-x), style)
	}
	y++

	for _, sum := range app.top.users {
		style := tcell.StyleDefault.Foreground(app.pal.Color(sum.Name))

		x := xMargin
		x += printStr(scr, x, y, fmt.Sprintf("%-12s", sum.Name), style)
		printStr(scr, x, y, fmt.Sprintf("%5d %5d %5d %6d",
			sum.Running, sum.Queued, sum.Held, sum.Slots), tcell.StyleDefault)
		y++
	}

	return y
}

func printStr(scr tcell.Screen, x, y int, s string, style tcell.Style) int {
	for i, c := range s {
		scr.SetContent(x+i, y, c, nil, style)
	}
	return len(s)
}
