package scraper

import (
	"context"

	"github.com/tradewatch/alibaba-scraper/internal/browser"
	"github.com/tradewatch/alibaba-scraper/internal/selectors"
)

// dismissPopups probes a small ordered set of known dismissal controls and
// clicks the first one that becomes visible. The page's markup is not ours,
// so every step here is best-effort: absence and probe errors are normal
// outcomes, logged at debug and never escalated.
func (s *Scraper) dismissPopups(ctx context.Context, page browser.Page) {
	candidates := []string{
		s.sel[selectors.PopupConsentButton],
		s.sel[selectors.PopupCloseButton],
	}

	for _, sel := range candidates {
		if sel == "" {
			continue
		}

		control := page.Locator(sel).First()
		probe := s.waitFor(ctx, func() bool {
			visible, err := control.IsVisible()
			return err == nil && visible
		}, s.cfg.PopupProbeTimeout)

		if probe.kind != outcomeOK {
			continue
		}

		if err := control.Click(s.cfg.ActionTimeout); err != nil {
			s.logger.Debug("popup control vanished before click", "selector", sel, "error", err)
			continue
		}

		s.logger.Debug("dismissed popup", "selector", sel)
		return
	}
}
