// Package alert pushes arbitrage opportunities found in a finished run
// to a Telegram chat.
package alert

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/oddsweep/oddsweep/internal/pkg/config"
	"github.com/oddsweep/oddsweep/internal/pkg/models"
	"github.com/oddsweep/oddsweep/internal/pkg/odds"
)

// Min interval between messages to the same chat, Telegram throttles
// around 30/min.
const sendInterval = 2 * time.Second

type Notifier struct {
	bot        *tgbotapi.BotAPI
	chatID     int64
	minROI     float64
	investment float64
}

// NewNotifier connects the bot. A missing token disables alerting and
// returns nil, which every method tolerates.
func NewNotifier(cfg *config.TelegramConfig) *Notifier {
	if cfg.BotToken == "" {
		return nil
	}
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		slog.Error("failed to create telegram bot", "error", err)
		return nil
	}
	bot.Debug = false
	if _, err := bot.GetMe(); err != nil {
		slog.Error("failed to reach telegram", "error", err)
		return nil
	}

	investment := cfg.Investment
	if investment <= 0 {
		investment = 100
	}
	return &Notifier{bot: bot, chatID: cfg.ChatID, minROI: cfg.MinROI, investment: investment}
}

// NotifyOpportunities sends one message per opportunity at or above the
// configured ROI floor. Send failures are logged and skipped; alerting
// never fails a run.
func (n *Notifier) NotifyOpportunities(runID string, opps []odds.Opportunity) {
	if n == nil || len(opps) == 0 {
		return
	}

	sent := 0
	for _, opp := range opps {
		if opp.Percent < n.minROI {
			continue
		}
		msg := tgbotapi.NewMessage(n.chatID, n.formatOpportunity(runID, opp))
		msg.ParseMode = tgbotapi.ModeHTML
		if _, err := n.bot.Send(msg); err != nil {
			slog.Error("failed to send telegram alert", "run", runID, "error", err)
			continue
		}
		sent++
		time.Sleep(sendInterval)
	}
	slog.Info("arbitrage alerts sent", "run", runID, "found", len(opps), "sent", sent)
}

func (n *Notifier) formatOpportunity(runID string, opp odds.Opportunity) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🎯 <b>Arbitrage: %s @ %s</b>\n", opp.Event.AwayTeam, opp.Event.HomeTeam)
	fmt.Fprintf(&b, "League: %s\n", strings.ToUpper(opp.Event.League))
	fmt.Fprintf(&b, "Market: %s", opp.Market)
	if opp.Line != nil {
		fmt.Fprintf(&b, " %.1f", *opp.Line)
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%s: %s %+d\n", opp.Book1, pickSide(opp.Pick1), opp.Pick1.Odds)
	fmt.Fprintf(&b, "%s: %s %+d\n", opp.Book2, pickSide(opp.Pick2), opp.Pick2.Odds)

	if stakes, err := odds.Arbitrage(opp.Pick1.Odds, opp.Pick2.Odds, n.investment); err == nil {
		fmt.Fprintf(&b, "\nStakes on $%.0f: $%.2f / $%.2f\n", n.investment, stakes.Stake1, stakes.Stake2)
		fmt.Fprintf(&b, "Profit: $%.2f (%.2f%%)\n", stakes.Profit, stakes.ROI)
	}
	fmt.Fprintf(&b, "\n<i>run %s</i>", runID)
	return b.String()
}

func pickSide(p models.Pick) string {
	if p.Outcome != "" {
		return p.Outcome
	}
	return p.Team
}
