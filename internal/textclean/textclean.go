// Package textclean turns the HTML fragments in requirement and remark
// fields into plain text.
package textclean

import (
	"regexp"
	"strings"
	"sync/atomic"

	"github.com/PuerkitoBio/goquery"
	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultCacheSize = 256

var lineBreak = regexp.MustCompile(`(?i)<br\s*/?>`)

// Cleaner converts HTML to text and remembers recent results.
type Cleaner struct {
	cache *lru.Cache[string, string]
	hits  atomic.Int64
}

func New(size int) *Cleaner {
	if size <= 0 {
		size = defaultCacheSize
	}
	cache, err := lru.New[string, string](size)
	if err != nil {
		return &Cleaner{}
	}
	return &Cleaner{cache: cache}
}

// Clean turns <br> into newlines, drops all other tags and decodes entities.
// Blank lines at the edges are trimmed.
func (c *Cleaner) Clean(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}
	if c.cache != nil {
		if text, ok := c.cache.Get(fragment); ok {
			c.hits.Add(1)
			return text
		}
	}

	text := toText(fragment)
	if c.cache != nil {
		c.cache.Add(fragment, text)
	}
	return text
}

// Hits reports how many Clean calls were answered from the cache.
func (c *Cleaner) Hits() int64 {
	return c.hits.Load()
}

func toText(fragment string) string {
	fragment = lineBreak.ReplaceAllString(fragment, "\n")
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}

	lines := strings.Split(doc.Text(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return strings.Trim(strings.Join(lines, "\n"), "\n ")
}
