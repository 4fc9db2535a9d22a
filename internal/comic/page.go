package comic

import (
	"io"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// page is what a comic page says about itself.
type page struct {
	id       int
	title    string
	caption  string
	imageURL string
	prevID   int
	nextID   int
}

// parsePage extracts the comic image, its alt and title text and the
// prev/next links. Relative links are resolved against base.
func parsePage(r io.Reader, base *url.URL) (page, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return page{}, err
	}
	var p page
	var canonical string
	var walk func(*html.Node, bool)
	walk = func(n *html.Node, inComic bool) {
		if n.Type == html.ElementNode {
			switch {
			case getAttr(n, "id") == "comic":
				inComic = true
			case n.Data == "img" && inComic && p.imageURL == "":
				p.imageURL = resolve(base, getAttr(n, "src"))
				p.title = getAttr(n, "alt")
				p.caption = getAttr(n, "title")
			case n.Data == "a" && getAttr(n, "rel") == "prev" && p.prevID == 0:
				p.prevID = idFromPath(getAttr(n, "href"))
			case n.Data == "a" && getAttr(n, "rel") == "next" && p.nextID == 0:
				p.nextID = idFromPath(getAttr(n, "href"))
			case n.Data == "meta" && getAttr(n, "property") == "og:url" && canonical == "":
				canonical = getAttr(n, "content")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, inComic)
		}
	}
	walk(doc, false)

	if p.imageURL == "" {
		return page{}, ErrNoImage
	}
	if u, err := url.Parse(canonical); err == nil {
		p.id = idFromPath(u.Path)
	}
	if p.id == 0 {
		p.id = idFromPath(base.Path)
	}
	if p.id == 0 && p.prevID > 0 {
		p.id = p.prevID + 1
	}
	return p, nil
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func resolve(base *url.URL, ref string) string {
	u, err := url.Parse(ref)
	if err != nil || ref == "" {
		return ""
	}
	return base.ResolveReference(u).String()
}

// idFromPath reads a comic number from a path like "/1626/". Anything else,
// including the "#" used for a missing neighbour, yields 0.
func idFromPath(p string) int {
	id, err := strconv.Atoi(strings.Trim(p, "/"))
	if err != nil || id < 0 {
		return 0
	}
	return id
}
