package scraper

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/tradewatch/alibaba-scraper/internal/browser"
	"github.com/tradewatch/alibaba-scraper/internal/config"
	"github.com/tradewatch/alibaba-scraper/internal/selectors"
)

var errElementNotFound = errors.New("element not found")

type fakeElement struct {
	missing  bool
	text     string
	textErr  error
	attrs    map[string]string
	visible  bool
	clickErr error
	fillErr  error
	items    []*fakeElement
	children map[string]*fakeElement

	clicks int
	filled []string
}

func (e *fakeElement) Locator(selector string) browser.Element {
	if child, ok := e.children[selector]; ok {
		return child
	}
	return &fakeElement{missing: true}
}

func (e *fakeElement) First() browser.Element { return e }

func (e *fakeElement) Count() (int, error) {
	if e.missing {
		return 0, nil
	}
	if e.items != nil {
		return len(e.items), nil
	}
	return 1, nil
}

func (e *fakeElement) All() ([]browser.Element, error) {
	elements := make([]browser.Element, 0, len(e.items))
	for _, item := range e.items {
		elements = append(elements, item)
	}
	return elements, nil
}

func (e *fakeElement) IsVisible() (bool, error) {
	if e.missing {
		return false, nil
	}
	return e.visible, nil
}

func (e *fakeElement) TextContent(time.Duration) (string, error) {
	if e.missing {
		return "", errElementNotFound
	}
	if e.textErr != nil {
		return "", e.textErr
	}
	return e.text, nil
}

func (e *fakeElement) GetAttribute(name string, _ time.Duration) (string, error) {
	return e.attrs[name], nil
}

func (e *fakeElement) Fill(value string, _ time.Duration) error {
	if e.missing {
		return errElementNotFound
	}
	if e.fillErr != nil {
		return e.fillErr
	}
	e.filled = append(e.filled, value)
	return nil
}

func (e *fakeElement) Click(time.Duration) error {
	if e.missing {
		return errElementNotFound
	}
	if e.clickErr != nil {
		return e.clickErr
	}
	e.clicks++
	return nil
}

type fakeChooser struct {
	files []string
	err   error
}

func (c *fakeChooser) SetFiles(path string) error {
	if c.err != nil {
		return c.err
	}
	c.files = append(c.files, path)
	return nil
}

type fakePage struct {
	locators   map[string]*fakeElement
	gotoErr    error
	gotoURLs   []string
	content    string
	contentErr error
	chooser    *fakeChooser
	chooserErr error
	url        string
	shots      []string
	closed     bool
}

func newFakePage() *fakePage {
	return &fakePage{
		locators: make(map[string]*fakeElement),
		content:  "<html><body></body></html>",
	}
}

func (p *fakePage) Goto(url string, _ time.Duration) error {
	p.gotoURLs = append(p.gotoURLs, url)
	if p.gotoErr != nil {
		return p.gotoErr
	}
	p.url = url
	return nil
}

func (p *fakePage) Locator(selector string) browser.Element {
	if el, ok := p.locators[selector]; ok {
		return el
	}
	return &fakeElement{missing: true}
}

func (p *fakePage) Content() (string, error) {
	if p.contentErr != nil {
		return "", p.contentErr
	}
	return p.content, nil
}

func (p *fakePage) Screenshot(path string) error {
	p.shots = append(p.shots, path)
	return nil
}

func (p *fakePage) ExpectFileChooser(trigger func() error, _ time.Duration) (browser.FileChooser, error) {
	if err := trigger(); err != nil {
		return nil, err
	}
	if p.chooserErr != nil {
		return nil, p.chooserErr
	}
	if p.chooser == nil {
		return nil, errors.New("no file chooser opened")
	}
	return p.chooser, nil
}

func (p *fakePage) URL() string { return p.url }

func (p *fakePage) Close() error {
	p.closed = true
	return nil
}

type fakeOpener struct {
	pages []*fakePage
	err   error
	idx   int
}

func (o *fakeOpener) NewPage() (browser.Page, error) {
	if o.err != nil {
		return nil, o.err
	}
	if o.idx >= len(o.pages) {
		// Detail extraction may ask for more pages than the scenario
		// scripted; serve a blank one.
		page := newFakePage()
		o.pages = append(o.pages, page)
	}
	page := o.pages[o.idx]
	o.idx++
	return page, nil
}

func testConfig() *config.Config {
	cfg, _ := config.Load()
	cfg.Scraper.NavigationTimeout = 20 * time.Millisecond
	cfg.Scraper.ResultWaitTimeout = 40 * time.Millisecond
	cfg.Scraper.ActionTimeout = 10 * time.Millisecond
	cfg.Scraper.FieldTimeout = 10 * time.Millisecond
	cfg.Scraper.PopupProbeTimeout = 10 * time.Millisecond
	cfg.Scraper.FileChooserTimeout = 20 * time.Millisecond
	cfg.Scraper.TextSettleTimeout = 20 * time.Millisecond
	cfg.Scraper.ImageSettleTimeout = 20 * time.Millisecond
	cfg.Scraper.PollInterval = 2 * time.Millisecond
	cfg.Scraper.RateLimitMin = 0
	cfg.Scraper.RateLimitMax = 0
	return cfg
}

func testScraper(opener PageOpener, cfg *config.Config) *Scraper {
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(opener, selectors.Default(), cfg, discard)
}

func titleSelector() string {
	return selectors.Default()[selectors.ProductTitle]
}

// resultItem builds a fake result-card element with the default selector
// table's title, company and link children.
func resultItem(title, company, href string) *fakeElement {
	tbl := selectors.Default()
	item := &fakeElement{children: map[string]*fakeElement{
		tbl[selectors.ProductTitle]:          {text: title},
		tbl[selectors.ProductCompanySummary]: {text: company},
	}}
	if href != "" {
		item.children[tbl[selectors.ProductLink]] = &fakeElement{attrs: map[string]string{"href": href}}
	}
	return item
}

// resultsPage builds a fake results page carrying the given result items.
func resultsPage(items ...*fakeElement) *fakePage {
	tbl := selectors.Default()
	page := newFakePage()
	page.locators[tbl[selectors.ProductItem]] = &fakeElement{items: items}
	return page
}

// searchRootPage builds a fake site-root page with working search controls
// and the given result items appearing after submit.
func searchRootPage(items ...*fakeElement) *fakePage {
	tbl := selectors.Default()
	page := resultsPage(items...)
	page.locators[tbl[selectors.TextSearchBar]] = &fakeElement{}
	page.locators[tbl[selectors.TextSearchButton]] = &fakeElement{}
	return page
}
