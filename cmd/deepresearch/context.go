package main

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// CurrentDateProvider injects today's date into the system prompt so agents
// can judge how fresh the scraped context is.
type CurrentDateProvider struct {
	title string
}

func NewCurrentDateProvider(title string) *CurrentDateProvider {
	return &CurrentDateProvider{title: title}
}

func (p *CurrentDateProvider) Title() string { return p.title }

func (p *CurrentDateProvider) Info() string {
	return fmt.Sprintf("The current date, in the format YYYY-MM-DD, is %s.", time.Now().Format("2006-01-02"))
}

// ContentItem is one scraped webpage held by the ScrapedContentProvider.
type ContentItem struct {
	Content string
	URL     string
}

// ScrapedContentProvider exposes the most recent search-and-scrape results
// to the agents. SetItems replaces the whole set after each search.
type ScrapedContentProvider struct {
	mu    sync.RWMutex
	title string
	items []ContentItem
}

func NewScrapedContentProvider(title string) *ScrapedContentProvider {
	return &ScrapedContentProvider{title: title}
}

func (p *ScrapedContentProvider) Title() string { return p.title }

// SetItems replaces the provider's content with fresh scrape results.
func (p *ScrapedContentProvider) SetItems(items []ContentItem) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.items = items
}

func (p *ScrapedContentProvider) Info() string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if len(p.items) == 0 {
		return ""
	}

	var b strings.Builder
	for i, item := range p.items {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "Source %d:\nURL: %s\nContent:\n%s", i+1, item.URL, item.Content)
	}
	return b.String()
}
