package tui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	list "github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"xkcdterm/internal/comic"
	"xkcdterm/internal/log"
	"xkcdterm/internal/nav"
	"xkcdterm/internal/raster"
	"xkcdterm/internal/viewport"
	"xkcdterm/internal/wrap"
)

const edgeMessage = "Edge of image"

type comicLoadedMsg struct {
	seq   int
	comic *comic.Comic
	grid  raster.Grid
}

type comicErrorMsg struct {
	seq int
	err error
}

type prefetchDoneMsg struct {
	ids []int
	err error
}

// prefetcher is implemented by sources that can warm neighbouring comics.
type prefetcher interface {
	Prefetch(ctx context.Context, ids ...int) error
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.height-2)
		}
		m.relayout()
		log.Debug("resize %dx%d", msg.Width, msg.Height)
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case comicLoadedMsg:
		if msg.seq != m.loadSeq {
			log.Debug("dropping stale load %d", msg.seq)
			return m, nil
		}
		m.finishLoad()
		m.comic = msg.comic
		m.grid = msg.grid
		m.engine.SetContent(m.grid.Rows(), m.grid.Cols())
		m.relayout()
		m.refreshInfo()
		return m, m.prefetchNeighbours()
	case comicErrorMsg:
		if msg.seq != m.loadSeq {
			return m, nil
		}
		m.finishLoad()
		log.Warn("load failed: %v", msg.err)
		m.setMessages("Error: " + msg.err.Error())
		return m, nil
	case prefetchDoneMsg:
		if msg.err != nil {
			log.Warn("prefetch %v: %v", msg.ids, msg.err)
		}
		return m, nil
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.jumpMode {
			return m.updateJump(msg)
		}
		log.Debug("key %s", msg.String())
		m.setMessages()
		switch {
		case key.Matches(msg, m.keys.Sidebar):
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(sidebarWidth-2, m.height-2)
			}
			m.relayout()
			return m, nil
		case key.Matches(msg, m.keys.Open):
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					cmd := m.openFile(it.path)
					return m, cmd
				}
			}
			return m, nil
		case key.Matches(msg, m.keys.Info):
			m.showInfo = !m.showInfo
			m.refreshInfo()
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.helpVisible = !m.helpVisible
			return m, nil
		}
		if req, ok := m.keys.request(msg); ok {
			if m.showSidebar && (req.Kind == nav.Up || req.Kind == nav.Down) {
				break // the file list owns up/down while it is open
			}
			return m.handle(req)
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handle applies one navigation request.
func (m Model) handle(req nav.Request) (tea.Model, tea.Cmd) {
	if req.Kind == nav.Quit {
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit
	}
	if dir, ok := req.Direction(); ok {
		s, edge := m.engine.Apply(dir)
		if edge {
			log.Debug("prevented scrolling %s at %+v", dir, s)
			m.setMessages(edgeMessage)
		}
		if m.showInfo {
			m.refreshInfo()
		}
		return m, nil
	}
	if req.Kind == nav.Jump && req.ID == 0 {
		m.jumpMode = true
		m.ti.SetValue("")
		cmd := m.ti.Focus()
		return m, cmd
	}
	if !req.Fetches() {
		return m, nil
	}
	cmd := m.fetch(req)
	return m, cmd
}

func (m Model) updateJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.jumpMode = false
		m.ti.Blur()
		return m, nil
	case tea.KeyEnter:
		m.jumpMode = false
		m.ti.Blur()
		id, err := strconv.Atoi(m.ti.Value())
		if err != nil || id <= 0 {
			m.setMessages(fmt.Sprintf("Not a comic number: %q", m.ti.Value()))
			return m, nil
		}
		return m.handle(nav.Request{Kind: nav.Jump, ID: id})
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if r < '0' || r > '9' {
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

// fetch starts loading the comic a request points at. Next and Prev need a
// current comic with that neighbour; otherwise a message is shown instead.
func (m *Model) fetch(req nav.Request) tea.Cmd {
	if m.src == nil {
		m.setMessages("No comic source")
		return nil
	}
	src := m.src
	var id int
	switch req.Kind {
	case nav.Random:
		return m.startLoad(req.String(), func(ctx context.Context) (*comic.Comic, error) {
			return src.Random(ctx)
		})
	case nav.Next:
		if m.comic == nil || m.comic.NextID == 0 {
			m.setMessages("No next comic")
			return nil
		}
		id = m.comic.NextID
	case nav.Prev:
		if m.comic == nil || m.comic.PrevID == 0 {
			m.setMessages("No previous comic")
			return nil
		}
		id = m.comic.PrevID
	case nav.Jump:
		id = req.ID
	}
	return m.startLoad(req.String(), func(ctx context.Context) (*comic.Comic, error) {
		return src.Fetch(ctx, id)
	})
}

func (m *Model) openFile(path string) tea.Cmd {
	maxW := m.cfg.MaxImageWidth
	return m.startLoad(path, func(context.Context) (*comic.Comic, error) {
		return comic.LoadFile(path, maxW)
	})
}

// startLoad runs load in the background. Only the newest load may replace
// the current comic; an older one still in flight is cancelled.
func (m *Model) startLoad(what string, load func(context.Context) (*comic.Comic, error)) tea.Cmd {
	if m.cancel != nil {
		m.cancel()
	}
	m.loadSeq++
	seq := m.loadSeq
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.loading = true
	threshold := m.cfg.ThresholdByte()
	log.Info("loading %s", what)

	fetch := func() tea.Msg {
		c, err := load(ctx)
		if err != nil {
			return comicErrorMsg{seq: seq, err: err}
		}
		g, err := c.Render(threshold)
		if err != nil {
			return comicErrorMsg{seq: seq, err: err}
		}
		return comicLoadedMsg{seq: seq, comic: c, grid: g}
	}
	return tea.Batch(m.spin.Tick, fetch)
}

func (m *Model) finishLoad() {
	m.loading = false
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

func (m Model) prefetchNeighbours() tea.Cmd {
	p, ok := m.src.(prefetcher)
	if !ok || !m.cfg.Prefetch || m.comic == nil {
		return nil
	}
	ids := []int{m.comic.PrevID, m.comic.NextID}
	timeout := m.cfg.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return prefetchDoneMsg{ids: ids, err: p.Prefetch(ctx, ids...)}
	}
}

func (m *Model) setMessages(msgs ...string) {
	m.messages = msgs
	m.relayout()
}

// imageArea is the part of the terminal the layout engine splits up.
func (m Model) imageArea() viewport.Size {
	cols := m.width
	if m.showSidebar {
		cols -= sidebarWidth + 1
	}
	return viewport.Size{Rows: m.height, Cols: max(0, cols)}
}

// relayout rewraps the caption for the current width and recomputes the
// layout. Must run after every resize, comic change or message change.
func (m *Model) relayout() {
	term := m.imageArea()
	cfg := m.engine.Config()
	text := ""
	if m.comic != nil {
		text = m.comic.Caption
	}
	lines, err := wrap.Wrap(text, max(1, term.Cols-cfg.MarginLeft-cfg.MarginRight))
	if err != nil {
		lines = []string{""}
	}
	m.caption = lines
	m.engine.Relayout(term, len(m.messages), len(m.caption))
}
