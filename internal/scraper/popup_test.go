package scraper

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tradewatch/alibaba-scraper/internal/selectors"
)

func TestDismissPopupsNoopWithoutControls(t *testing.T) {
	page := newFakePage()
	s := testScraper(&fakeOpener{}, testConfig())

	// Must not panic, click anything or screenshot anything.
	s.dismissPopups(context.Background(), page)
	s.dismissPopups(context.Background(), page)

	assert.Empty(t, page.shots)
}

func TestDismissPopupsClicksConsentFirst(t *testing.T) {
	tbl := selectors.Default()
	consent := &fakeElement{visible: true}
	closeBtn := &fakeElement{visible: true}

	page := newFakePage()
	page.locators[tbl[selectors.PopupConsentButton]] = consent
	page.locators[tbl[selectors.PopupCloseButton]] = closeBtn

	s := testScraper(&fakeOpener{}, testConfig())
	s.dismissPopups(context.Background(), page)

	assert.Equal(t, 1, consent.clicks)
	assert.Equal(t, 0, closeBtn.clicks, "stops at first successful dismissal")
}

func TestDismissPopupsFallsThroughOnClickError(t *testing.T) {
	tbl := selectors.Default()
	consent := &fakeElement{visible: true, clickErr: errElementNotFound}
	closeBtn := &fakeElement{visible: true}

	page := newFakePage()
	page.locators[tbl[selectors.PopupConsentButton]] = consent
	page.locators[tbl[selectors.PopupCloseButton]] = closeBtn

	s := testScraper(&fakeOpener{}, testConfig())
	s.dismissPopups(context.Background(), page)

	assert.Equal(t, 1, closeBtn.clicks)
}

func TestDismissPopupsSkipsInvisibleControls(t *testing.T) {
	tbl := selectors.Default()
	consent := &fakeElement{visible: false}

	page := newFakePage()
	page.locators[tbl[selectors.PopupConsentButton]] = consent

	s := testScraper(&fakeOpener{}, testConfig())
	s.dismissPopups(context.Background(), page)

	assert.Equal(t, 0, consent.clicks)
}
