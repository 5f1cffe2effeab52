package notify

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/atharva-ketkar1/MMA-analysis/internal/pkg/models"
)

// Min interval between messages to the same chat to stay under the
// Telegram rate limit (~30 messages/min).
const telegramSendInterval = 2 * time.Second

// maxSummaryRows caps how many fighters a summary message lists.
const maxSummaryRows = 10

// TelegramNotifier sends a summary of merged props after a run.
// All methods are nil-safe so callers can hold a nil notifier when
// Telegram is not configured.
type TelegramNotifier struct {
	bot      *tgbotapi.BotAPI
	chatID   int64
	mu       sync.Mutex
	lastSend time.Time
}

// NewTelegramNotifier creates a notifier, or nil when the bot cannot be
// reached (the run proceeds without notifications).
func NewTelegramNotifier(token string, chatID int64) *TelegramNotifier {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		slog.Error("Failed to create telegram bot", "error", err)
		return nil
	}
	bot.Debug = false

	if _, err := bot.GetMe(); err != nil {
		slog.Error("Failed to get bot info", "error", err)
		return nil
	}

	slog.Info("Telegram notifier initialized", "chat_id", chatID)
	return &TelegramNotifier{bot: bot, chatID: chatID}
}

// NotifyMergeResult sends one message summarizing the run: row count and
// the largest line differences first.
func (n *TelegramNotifier) NotifyMergeResult(rows []models.PropRow) {
	if n == nil {
		return
	}
	n.send(formatMergeSummary(rows))
}

func (n *TelegramNotifier) send(text string) {
	n.mu.Lock()
	if wait := telegramSendInterval - time.Since(n.lastSend); wait > 0 {
		time.Sleep(wait)
	}
	n.lastSend = time.Now()
	n.mu.Unlock()

	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		slog.Error("Failed to send telegram message", "error", err)
	}
}

func formatMergeSummary(rows []models.PropRow) string {
	if len(rows) == 0 {
		return "UFC props merge: no comparable fighters this run"
	}

	sorted := make([]models.PropRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return absDiff(sorted[i]) > absDiff(sorted[j])
	})

	var b strings.Builder
	fmt.Fprintf(&b, "UFC props merge: %d fighters\n", len(rows))
	limit := len(sorted)
	if limit > maxSummaryRows {
		limit = maxSummaryRows
	}
	for _, row := range sorted[:limit] {
		fmt.Fprintf(&b, "%s: PP %s / DK %s, diff %s -> %s\n",
			row.Fighter,
			formatLine(row.PPLine), formatLine(row.DKLine),
			formatLine(row.Difference), row.Recommendation)
	}
	return strings.TrimRight(b.String(), "\n")
}

func absDiff(row models.PropRow) float64 {
	if row.Difference == nil {
		return 0
	}
	return math.Abs(*row.Difference)
}

func formatLine(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *v)
}
