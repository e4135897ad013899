package scraper

import (
	"context"
	"time"
)

// Internal steps report a tagged outcome so the workflow can tell "nothing
// there" from "gave up waiting" without parsing log text. Public operations
// still degrade to an empty or partial result set.
type outcomeKind int

const (
	outcomeOK outcomeKind = iota
	outcomeNotFound
	outcomeTimeout
	outcomeRejected
)

type outcome struct {
	kind   outcomeKind
	reason string
}

func (o outcome) String() string {
	switch o.kind {
	case outcomeOK:
		return "ok"
	case outcomeNotFound:
		return "not_found"
	case outcomeTimeout:
		return "timeout"
	default:
		if o.reason != "" {
			return "rejected: " + o.reason
		}
		return "rejected"
	}
}

// waitFor polls cond until it holds or timeout elapses. The timeout is an
// upper bound, not the signal: the first true poll wins.
func (s *Scraper) waitFor(ctx context.Context, cond func() bool, timeout time.Duration) outcome {
	deadline := time.Now().Add(timeout)
	for {
		if cond() {
			return outcome{kind: outcomeOK}
		}
		if !time.Now().Before(deadline) {
			return outcome{kind: outcomeTimeout}
		}
		select {
		case <-ctx.Done():
			return outcome{kind: outcomeRejected, reason: ctx.Err().Error()}
		case <-time.After(s.cfg.PollInterval):
		}
	}
}
