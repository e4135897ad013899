package browser

import "time"

// Page is the slice of browser-driver capability the scraping workflow
// needs. Production code gets the Playwright-backed implementation from
// Session.NewPage; tests substitute fakes.
type Page interface {
	// Goto navigates and waits for domcontentloaded, bounded by timeout.
	Goto(url string, timeout time.Duration) error
	Locator(selector string) Element
	// Content returns the full rendered markup of the page.
	Content() (string, error)
	// Screenshot writes a PNG of the current viewport to path.
	Screenshot(path string) error
	// ExpectFileChooser runs trigger and intercepts the file-selection
	// dialog it is expected to open.
	ExpectFileChooser(trigger func() error, timeout time.Duration) (FileChooser, error)
	URL() string
	Close() error
}

// Element is a lazy locator scoped to a page or to another element.
type Element interface {
	Locator(selector string) Element
	First() Element
	Count() (int, error)
	All() ([]Element, error)
	IsVisible() (bool, error)
	TextContent(timeout time.Duration) (string, error)
	GetAttribute(name string, timeout time.Duration) (string, error)
	Fill(value string, timeout time.Duration) error
	Click(timeout time.Duration) error
}

// FileChooser is an intercepted file-selection dialog.
type FileChooser interface {
	SetFiles(path string) error
}
