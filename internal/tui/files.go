package tui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"xkcdterm/internal/comic"
)

// gridExts are saved glyph grids, as written by -dump.
var gridExts = map[string]bool{".txt": true, ".grid": true, "": true}

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

// openable reports whether name looks like something LoadFile can show.
func openable(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	ext := strings.ToLower(filepath.Ext(name))
	return comic.ImageExts[ext] || gridExts[ext]
}

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.setMessages("read dir error: " + err.Error())
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !openable(name) {
			continue
		}
		desc := strings.ToLower(filepath.Ext(name))
		if !comic.ImageExts[desc] {
			desc = "grid"
		}
		items = append(items, fileItem{title: name, desc: desc, path: filepath.Join(m.cwd, name)})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.l.SetItems(items)
	if len(items) == 0 {
		m.setMessages("no images in current directory")
	}
}
