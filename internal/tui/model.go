package tui

import (
	"context"
	"os"

	"github.com/charmbracelet/bubbles/help"
	list "github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	table "github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"xkcdterm/internal/comic"
	"xkcdterm/internal/config"
	"xkcdterm/internal/nav"
	"xkcdterm/internal/raster"
	"xkcdterm/internal/viewport"
)

const sidebarWidth = 28

// Options configure a new Model.
type Options struct {
	Config *config.Config
	Source comic.Source
	// Start is the first comic to show: Jump with an id, Random, or the
	// zero request for the latest comic.
	Start nav.Request
	// File, when set, is opened instead of Start.
	File string
}

type Model struct {
	width  int
	height int

	cfg  *config.Config
	src  comic.Source
	keys keyMap

	showSidebar bool
	helpVisible bool
	showInfo    bool

	// Current comic. Replaced as a whole when a load succeeds.
	comic   *comic.Comic
	grid    raster.Grid
	caption []string
	engine  *viewport.Engine

	// one-shot status lines, cleared by the next key press
	messages []string

	// loading state
	loading bool
	loadSeq int
	cancel  context.CancelFunc
	spin    spinner.Model
	pending tea.Cmd

	// jump-to-id prompt
	jumpMode bool
	ti       textinput.Model

	// File explorer
	cwd string
	l   list.Model

	help help.Model
	tbl  table.Model
}

func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	m := Model{
		cfg:         cfg,
		src:         opts.Source,
		keys:        defaultKeyMap(),
		helpVisible: true,
		engine:      viewport.NewEngine(cfg.Viewport()),
		caption:     []string{""},
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// id prompt setup
	m.ti = textinput.New()
	m.ti.Prompt = "ID: "
	m.ti.Placeholder = "comic number"
	m.ti.CharLimit = 6
	m.spin = spinner.New(spinner.WithSpinner(spinner.Dot))
	m.help = help.New()
	m.tbl = table.New(table.WithColumns([]table.Column{{Title: "Field", Width: 10}, {Title: "Value", Width: 48}}))

	switch {
	case opts.File != "":
		path, maxW := opts.File, cfg.MaxImageWidth
		m.pending = m.startLoad(opts.File, func(context.Context) (*comic.Comic, error) {
			return comic.LoadFile(path, maxW)
		})
	case m.src != nil:
		m.pending = m.fetch(opts.Start)
	}
	return m
}

func (m Model) Init() tea.Cmd { return m.pending }
