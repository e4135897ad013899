package browser

import (
	"time"

	"github.com/playwright-community/playwright-go"
)

// Playwright-backed implementations of Page, Element and FileChooser.

type pwPage struct {
	page playwright.Page
}

func (p *pwPage) Goto(url string, timeout time.Duration) error {
	_, err := p.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(float64(timeout.Milliseconds())),
	})
	return err
}

func (p *pwPage) Locator(selector string) Element {
	return &pwElement{locator: p.page.Locator(selector)}
}

func (p *pwPage) Content() (string, error) {
	return p.page.Content()
}

func (p *pwPage) Screenshot(path string) error {
	_, err := p.page.Screenshot(playwright.PageScreenshotOptions{
		Path: playwright.String(path),
	})
	return err
}

func (p *pwPage) ExpectFileChooser(trigger func() error, timeout time.Duration) (FileChooser, error) {
	fc, err := p.page.ExpectFileChooser(trigger, playwright.PageExpectFileChooserOptions{
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	if err != nil {
		return nil, err
	}
	return &pwFileChooser{chooser: fc}, nil
}

func (p *pwPage) URL() string {
	return p.page.URL()
}

func (p *pwPage) Close() error {
	return p.page.Close()
}

type pwElement struct {
	locator playwright.Locator
}

func (e *pwElement) Locator(selector string) Element {
	return &pwElement{locator: e.locator.Locator(selector)}
}

func (e *pwElement) First() Element {
	return &pwElement{locator: e.locator.First()}
}

func (e *pwElement) Count() (int, error) {
	return e.locator.Count()
}

func (e *pwElement) All() ([]Element, error) {
	locators, err := e.locator.All()
	if err != nil {
		return nil, err
	}
	elements := make([]Element, 0, len(locators))
	for _, l := range locators {
		elements = append(elements, &pwElement{locator: l})
	}
	return elements, nil
}

func (e *pwElement) IsVisible() (bool, error) {
	return e.locator.IsVisible()
}

func (e *pwElement) TextContent(timeout time.Duration) (string, error) {
	return e.locator.TextContent(playwright.LocatorTextContentOptions{
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
}

func (e *pwElement) GetAttribute(name string, timeout time.Duration) (string, error) {
	return e.locator.GetAttribute(name, playwright.LocatorGetAttributeOptions{
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
}

func (e *pwElement) Fill(value string, timeout time.Duration) error {
	return e.locator.Fill(value, playwright.LocatorFillOptions{
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
}

func (e *pwElement) Click(timeout time.Duration) error {
	return e.locator.Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
}

type pwFileChooser struct {
	chooser playwright.FileChooser
}

func (f *pwFileChooser) SetFiles(path string) error {
	return f.chooser.SetFiles(path)
}
