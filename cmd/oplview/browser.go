package main

import (
	"fmt"
	"log"

	runewidth "github.com/mattn/go-runewidth"

	"github.com/gdamore/tcell/v2"

	"github.com/oplcore/oplcore/cache"
	"github.com/oplcore/oplcore/config"
	"github.com/oplcore/oplcore/query"
	"github.com/oplcore/oplcore/search"
	"github.com/oplcore/oplcore/store"
)

// columnSpec is one rendered table column: a header, a fixed cell
// width, and how to derive the cell text for a row.
type columnSpec struct {
	header string
	width  int
	value  func(s *store.Store, e *store.Entry) string
}

var browserColumns = []columnSpec{
	{"Rank", 6, nil},
	{"Name", 24, func(s *store.Store, e *store.Entry) string { return s.Lifter(e.LifterID).Name }},
	{"Fed", 8, func(s *store.Store, e *store.Entry) string { return s.Meet(e.MeetID).Federation.String() }},
	{"Date", 12, func(s *store.Store, e *store.Entry) string { return s.Meet(e.MeetID).Date.String() }},
	{"Eq", 6, func(s *store.Store, e *store.Entry) string { return e.Equipment.String() }},
	{"BW", 8, func(s *store.Store, e *store.Entry) string { return e.BodyweightKg.String() }},
	{"Total", 9, func(s *store.Store, e *store.Entry) string { return e.TotalKg.String() }},
	{"Points", 9, nil},
}

// browser holds the live state of the terminal rankings table: the
// query currently in effect, the materialized window of entries it
// produced, and the filter bar's edit buffer.
type browser struct {
	screen tcell.Screen
	s      *store.Store
	c      *cache.Cache
	cfg    config.Config

	q           query.RankingsQuery
	windowStart int
	ranking     query.Ranking
	cursor      int

	editingFilter bool
	filterBuf     []rune
	statusMsg     string

	lifters              *lifterIndex
	lookingUpLifter      bool
	searchingView        bool
	viewingLifterHistory bool
	lifterHistory        []store.EntryID
}

func runBrowser(s *store.Store, c *cache.Cache, q query.RankingsQuery, cfg config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	b := &browser{screen: screen, s: s, c: c, cfg: cfg, q: q}
	b.runQuery()
	b.eventLoop()
	return nil
}

func (b *browser) runQuery() {
	b.ranking = query.Query(b.s, b.c, b.q, b.windowStart, b.windowStart+b.cfg.PageSize-1)
	if b.cursor >= len(b.ranking.EntryIDs) {
		b.cursor = 0
	}
}

func (b *browser) eventLoop() {
	b.redraw()
	for {
		ev := b.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			b.screen.Sync()
		case *tcell.EventKey:
			if b.editingFilter {
				if b.handleFilterKey(ev) {
					return
				}
			} else if b.handleNavKey(ev) {
				return
			}
		}
		b.redraw()
	}
}

// handleFilterKey edits the filter bar buffer; Enter applies it as
// either a query.Filter or a lifter-lookup query depending on mode,
// Escape cancels. Returns true if the program should exit (never,
// kept symmetric with handleNavKey).
func (b *browser) handleFilterKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEnter:
		line := string(b.filterBuf)
		switch {
		case b.lookingUpLifter:
			b.applyLookup(line)
			b.lookingUpLifter = false
		case b.searchingView:
			b.findNext(line)
			b.searchingView = false
		default:
			f, err := parseFilterLine(line)
			if err != nil {
				b.statusMsg = err.Error()
			} else {
				b.q.Filter = f
				b.windowStart = 0
				b.runQuery()
				b.statusMsg = fmt.Sprintf("applied filter: %s", line)
			}
		}
		b.editingFilter = false
	case tcell.KeyEscape:
		b.editingFilter = false
		b.lookingUpLifter = false
		b.searchingView = false
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(b.filterBuf) > 0 {
			b.filterBuf = b.filterBuf[:len(b.filterBuf)-1]
		}
	case tcell.KeyRune:
		b.filterBuf = append(b.filterBuf, ev.Rune())
	}
	return false
}

func (b *browser) handleNavKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		if b.viewingLifterHistory {
			b.exitLookup()
			return false
		}
		return true
	case tcell.KeyDown:
		b.moveCursor(1)
	case tcell.KeyUp:
		b.moveCursor(-1)
	case tcell.KeyPgDn:
		b.pageDown()
	case tcell.KeyPgUp:
		b.pageUp()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'j':
			b.moveCursor(1)
		case 'k':
			b.moveCursor(-1)
		case 'f', '/':
			if !b.viewingLifterHistory {
				b.editingFilter = true
				b.filterBuf = b.filterBuf[:0]
			}
		case 'l':
			b.editingFilter = true
			b.enterLookup()
		case 's':
			b.editingFilter = true
			b.searchingView = true
			b.filterBuf = b.filterBuf[:0]
		case 'o':
			if !b.viewingLifterHistory {
				b.cycleOrderBy()
			}
		}
	}
	return false
}

// currentWindow returns the entries visible in the table right now
// and the total row count behind them, whichever source is active:
// the filtered ranking, or a single lifter's full entry history.
func (b *browser) currentWindow() ([]store.EntryID, int) {
	if b.viewingLifterHistory {
		end := b.windowStart + b.cfg.PageSize
		if end > len(b.lifterHistory) {
			end = len(b.lifterHistory)
		}
		if b.windowStart > end {
			return nil, len(b.lifterHistory)
		}
		return b.lifterHistory[b.windowStart:end], len(b.lifterHistory)
	}
	return b.ranking.EntryIDs, b.ranking.TotalLength
}

func (b *browser) moveCursor(delta int) {
	window, total := b.currentWindow()
	b.cursor += delta
	if b.cursor < 0 {
		b.pageUp()
		b.cursor = 0
		return
	}
	if b.cursor >= len(window) {
		if b.windowStart+len(window) < total {
			b.pageDown()
			b.cursor = 0
		} else {
			b.cursor = len(window) - 1
		}
	}
}

func (b *browser) pageDown() {
	_, total := b.currentWindow()
	if b.windowStart+b.cfg.PageSize < total {
		b.windowStart += b.cfg.PageSize
		if !b.viewingLifterHistory {
			b.runQuery()
		}
	}
}

func (b *browser) pageUp() {
	if b.windowStart > 0 {
		b.windowStart -= b.cfg.PageSize
		if b.windowStart < 0 {
			b.windowStart = 0
		}
		if !b.viewingLifterHistory {
			b.runQuery()
		}
	}
}

func (b *browser) cycleOrderBy() {
	for i, o := range cache.AllOrderBy {
		if o == b.q.OrderBy {
			b.q.OrderBy = cache.AllOrderBy[(i+1)%len(cache.AllOrderBy)]
			break
		}
	}
	b.runQuery()
	b.statusMsg = fmt.Sprintf("ordering by %s", b.q.OrderBy)
}

func (b *browser) redraw() {
	b.screen.Clear()
	width, height := b.screen.Size()
	window, total := b.currentWindow()

	b.drawHeader(width)
	tableHeight := height - 3
	for row := 0; row < tableHeight && row < len(window); row++ {
		id := window[row]
		e := b.s.Entry(id)
		style := tcell.StyleDefault
		if row == b.cursor {
			style = style.Reverse(true)
		}
		b.drawRow(1+row, b.windowStart+row+1, e, style)
	}

	b.drawStatusLine(height-2, window, total)
	b.drawFilterBar(height-1, width)

	log.Printf("redraw: window=%d total=%d cursor=%d order=%s lifterHistory=%t\n",
		b.windowStart, total, b.cursor, b.q.OrderBy, b.viewingLifterHistory)

	b.screen.Show()
}

func (b *browser) drawHeader(width int) {
	col := 0
	style := tcell.StyleDefault.Bold(true)
	for _, cs := range browserColumns {
		col = drawCell(b.screen, col, 0, cs.width, cs.header, style)
	}
	_ = width
}

func (b *browser) drawRow(row int, rank int, e *store.Entry, style tcell.Style) {
	col := 0
	for _, cs := range browserColumns {
		var text string
		switch {
		case cs.header == "Rank":
			text = fmt.Sprintf("%d", rank)
		case cs.header == "Points":
			text = pointsForOrder(b.q.OrderBy, e).String()
		default:
			text = cs.value(b.s, e)
		}
		col = drawCell(b.screen, col, row, cs.width, text, style)
	}
}

func pointsForOrder(o cache.OrderBy, e *store.Entry) interface {
	String() string
} {
	switch o {
	case cache.OrderBySquat:
		return e.HighestSquatKg()
	case cache.OrderByBench:
		return e.HighestBenchKg()
	case cache.OrderByDeadlift:
		return e.HighestDeadliftKg()
	case cache.OrderByWilks:
		return e.Points.Wilks
	case cache.OrderByWilks2020:
		return e.Points.Wilks2020
	case cache.OrderByDots:
		return e.Points.Dots
	case cache.OrderByGlossbrenner:
		return e.Points.Glossbrenner
	case cache.OrderByIPF:
		return e.Points.IPF
	case cache.OrderByGoodlift:
		return e.Points.Goodlift
	case cache.OrderByMcCulloch:
		return e.Points.McCulloch
	default:
		return e.TotalKg
	}
}

func (b *browser) drawStatusLine(row int, window []store.EntryID, total int) {
	var text string
	if b.viewingLifterHistory {
		text = fmt.Sprintf("lifter history — %d entries in view (%d total) — Esc back, j/k move, q quit",
			len(window), total)
	} else {
		text = fmt.Sprintf("%d lifters, %d entries in view (%d total) — order:%s — j/k move, o cycle order, f filter, s search, l lookup, q quit",
			b.c.NumLifters(), len(window), total, b.q.OrderBy)
	}
	if b.statusMsg != "" {
		text = b.statusMsg
	}
	drawCell(b.screen, 0, row, 0, text, tcell.StyleDefault.Dim(true))
}

func (b *browser) drawFilterBar(row int, width int) {
	prompt := "filter> "
	switch {
	case b.lookingUpLifter:
		prompt = "lifter> "
	case b.searchingView:
		prompt = "search> "
	}
	style := tcell.StyleDefault
	if b.editingFilter {
		style = style.Bold(true)
	}
	text := prompt + string(b.filterBuf)
	drawCell(b.screen, 0, row, width, text, style)
}

// drawCell writes text at (col, row), truncating (not wrapping) to
// width cells via go-runewidth, and returns the column immediately
// after the cell. width of 0 means "unbounded" (used for status lines).
func drawCell(screen tcell.Screen, col, row, width int, text string, style tcell.Style) int {
	start := col
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			w = 1
		}
		if width > 0 && col+w > start+width {
			break
		}
		screen.SetContent(col, row, r, nil, style)
		col += w
	}
	if width > 0 {
		for col < start+width {
			screen.SetContent(col, row, ' ', nil, style)
			col++
		}
	}
	return col
}

// findNext searches the rows currently on screen, starting just after
// the cursor, for a lifter matching query. Unlike lifter-lookup ('l'),
// this only scans the materialized window, not the full corpus; it
// moves the cursor to the match instead of changing what's loaded.
func (b *browser) findNext(q string) {
	window, _ := b.currentWindow()
	idx := search.Find(b.s, window, b.cursor+1, q)
	if idx < 0 {
		b.statusMsg = fmt.Sprintf("no match for %q in current view", q)
		return
	}
	b.cursor = idx
}
