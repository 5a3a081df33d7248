// Package risk guards the act of recording a trade: when a session's
// cumulative P&L crosses a configured daily loss limit or profit target the
// gate halts the rest of that trading day and raises a risk advisory.
package risk

import (
	"fmt"
	"time"

	"github.com/rustyeddy/tradebook/analytics"
	"github.com/rustyeddy/tradebook/journal"
)

// Status of an account's current trading session.
type Status string

const (
	Normal     Status = "NORMAL"
	LossHalt   Status = "LOSS_HALT"
	ProfitHalt Status = "PROFIT_HALT"
)

// Halted reports whether s is one of the two terminal session states.
func (s Status) Halted() bool {
	return s == LossHalt || s == ProfitHalt
}

// Advisory is the message the caller surfaces to the user. Category is
// "risk" for halts and "trade" for the routine confirmation; halts expect
// the caller to suppress the routine notification for that insertion.
type Advisory struct {
	Category string
	Message  string
}

// Result of evaluating one trade insertion.
type Result struct {
	Status     Status
	SessionPnL float64
	Advisory   Advisory
}

// Gate evaluates daily limits against the session's trade history. Halt
// state is recovered from the trades themselves on every call: the
// session's P&L is replayed in time order and the first prefix that
// crossed a limit halts the rest of that session, so terminality holds
// even when each insertion runs in a fresh process. The
// (accountID|sessionKey) map is only a per-process cache on top, which
// also keeps a halt visible after the offending trade is deleted.
type Gate struct {
	halts map[string]Status
}

func NewGate() *Gate {
	return &Gate{halts: make(map[string]Status)}
}

// Evaluate inspects the account's cumulative P&L for the current session at
// the moment newTrade is recorded. The session is derived from now, the
// caller's injected clock, so a backdated trade never trips today's gate.
// allTrades is the post-insert snapshot; if newTrade is not yet part of it,
// its profit is counted in on top. The loss-limit check runs before the
// profit-target check, so contradictory configuration resolves in favor of
// the loss halt.
func (g *Gate) Evaluate(allTrades []journal.Trade, acct journal.Account, newTrade journal.Trade, now time.Time) Result {
	session := analytics.SessionKey(now)
	key := acct.ID + "|" + session

	sessionTrades := collectSession(allTrades, acct.ID, session)
	if !containsID(sessionTrades, newTrade.ID) && analytics.SessionKey(newTrade.Date) == session {
		sessionTrades = append(sessionTrades, newTrade)
	}
	journal.SortByDate(sessionTrades)

	// Replay the session: the first prefix P&L that crosses a limit halts
	// everything after it, whatever later trades bring the total back to.
	st := Normal
	var pnl, haltPnL float64
	for _, t := range sessionTrades {
		pnl += t.Profit
		if st == Normal {
			if crossed := limitStatus(acct, pnl); crossed.Halted() {
				st = crossed
				haltPnL = pnl
			}
		}
	}

	if cached, ok := g.halts[key]; ok && st == Normal {
		st = cached
		haltPnL = pnl
	}

	if st.Halted() {
		g.halts[key] = st
		return Result{Status: st, SessionPnL: pnl, Advisory: haltAdvisory(st, acct, haltPnL)}
	}

	return Result{
		Status:     Normal,
		SessionPnL: pnl,
		Advisory: Advisory{
			Category: "trade",
			Message:  fmt.Sprintf("trade recorded, session P&L %.2f", pnl),
		},
	}
}

// limitStatus classifies a session P&L against the account's limits. A
// zero limit means unconfigured.
func limitStatus(acct journal.Account, pnl float64) Status {
	switch {
	case acct.DailyLossLimit > 0 && pnl <= -acct.DailyLossLimit:
		return LossHalt
	case acct.DailyProfitTarget > 0 && pnl >= acct.DailyProfitTarget:
		return ProfitHalt
	}
	return Normal
}

func collectSession(trades []journal.Trade, accountID, session string) []journal.Trade {
	out := make([]journal.Trade, 0, len(trades))
	for _, t := range trades {
		if t.AccountID != accountID {
			continue
		}
		if analytics.SessionKey(t.Date) == session {
			out = append(out, t)
		}
	}
	return out
}

func containsID(trades []journal.Trade, id string) bool {
	for _, t := range trades {
		if t.ID == id {
			return true
		}
	}
	return false
}

func haltAdvisory(st Status, acct journal.Account, pnl float64) Advisory {
	switch st {
	case LossHalt:
		return Advisory{
			Category: "risk",
			Message: fmt.Sprintf("daily loss limit hit: session P&L %.2f breaches limit %.2f, stop trading for today",
				pnl, acct.DailyLossLimit),
		}
	case ProfitHalt:
		return Advisory{
			Category: "risk",
			Message: fmt.Sprintf("daily profit target reached: session P&L %.2f meets target %.2f, consider stopping",
				pnl, acct.DailyProfitTarget),
		}
	}
	return Advisory{}
}
