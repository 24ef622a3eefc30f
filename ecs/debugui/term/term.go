// Package term renders live universe statistics on a terminal screen.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/naxaras/gaemstone/ecs"
)

var (
	styleText   = tcell.StyleDefault
	styleTitle  = tcell.StyleDefault.Bold(true).Foreground(tcell.ColorYellow)
	styleHeader = tcell.StyleDefault.Underline(true)
	styleBar    = tcell.StyleDefault.Foreground(tcell.ColorTeal)
)

const barWidth = 20

// Inspector draws UniverseStats and ProcessorStats on a tcell screen.
type Inspector struct {
	screen tcell.Screen
	title  string
}

func NewInspector(screen tcell.Screen, title string) *Inspector {
	return &Inspector{screen: screen, title: title}
}

// Draw replaces the screen contents with the given statistics.
func (in *Inspector) Draw(stats ecs.UniverseStats, procs *ecs.ProcessorStats) {
	in.screen.Clear()
	width, height := in.screen.Size()

	y := 0
	putText(in.screen, 0, y, width, in.title, styleTitle)
	y += 2

	summary := fmt.Sprintf("entities %d  stores %d  components %d  processors %d",
		stats.EntityCount, stats.StoreCount, stats.ComponentCount, stats.ProcessorCount)
	putText(in.screen, 0, y, width, summary, styleText)
	y += 2

	nameCol := max(min(width/2, 32), 10)
	putText(in.screen, 0, y, nameCol, "component", styleHeader)
	putText(in.screen, nameCol, y, width-nameCol, "kind / count", styleHeader)
	y++

	maxLen := 0
	for _, s := range stats.StoreBreakdown {
		maxLen = max(maxLen, s.Len)
	}
	for _, s := range stats.StoreBreakdown {
		if y >= height {
			break
		}
		putText(in.screen, 0, y, nameCol-1, s.ComponentType, styleText)
		x := putText(in.screen, nameCol, y, width-nameCol, fmt.Sprintf("%-16s %8d ", s.Kind, s.Len), styleText)
		if maxLen > 0 {
			bar := s.Len * barWidth / maxLen
			for i := 0; i < bar && x+i < width; i++ {
				in.screen.SetContent(x+i, y, '█', nil, styleBar)
			}
		}
		y++
	}
	y++

	if procs != nil && y < height {
		putText(in.screen, 0, y, nameCol, "processor", styleHeader)
		putText(in.screen, nameCol, y, width-nameCol, "runs / last / avg", styleHeader)
		y++
		for _, p := range procs.Processors {
			if y >= height {
				break
			}
			putText(in.screen, 0, y, nameCol-1, p.Name, styleText)
			putText(in.screen, nameCol, y, width-nameCol, fmt.Sprintf("%8d %10s %10s",
				p.ExecutionCount,
				p.LastDuration.Round(time.Microsecond),
				p.AvgDuration.Round(time.Microsecond)), styleText)
			y++
		}
	}

	in.screen.Show()
}

// WatchQuit blocks reading terminal events and calls cancel on Esc, Ctrl-C
// or 'q'. It returns once cancel was called, ctx is done, or the screen
// was finalized.
func (in *Inspector) WatchQuit(ctx context.Context, cancel context.CancelFunc) {
	for ctx.Err() == nil {
		ev := in.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				cancel()
				return
			}
		case *tcell.EventResize:
			in.screen.Sync()
		}
	}
}

// putText writes s at (x, y), truncated to fit within width columns, and
// returns the column after the last cell written. Wide runes take two cells.
func putText(scr tcell.Screen, x, y, width int, s string, st tcell.Style) int {
	if width <= 0 {
		return x
	}
	s = runewidth.Truncate(s, width, "…")
	for _, r := range s {
		scr.SetContent(x, y, r, nil, st)
		x += max(runewidth.RuneWidth(r), 1)
	}
	return x
}
