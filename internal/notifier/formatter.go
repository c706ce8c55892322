package notifier

import (
	"fmt"
	"strings"
	"time"

	"InvestAdvisor/internal/model"
)

// FormatRunSummary formats a completed batch run for the webhook channel.
func FormatRunSummary(messageID string, processed, failed int, elapsed time.Duration, market model.MarketRecord) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("InvestAdvisor batch run | %s\n", time.Now().Format("2006-01-02 15:04")))
	b.WriteString(fmt.Sprintf("message: %s\n", messageID))
	b.WriteString(fmt.Sprintf("clients processed: %d | failed: %d\n", processed, failed))
	b.WriteString(fmt.Sprintf("elapsed: %s\n", elapsed.Round(time.Millisecond)))
	if market.IndexName != "" {
		b.WriteString(fmt.Sprintf("market: %s %.0f | Selic %.2f%%\n", market.IndexName, market.IndexValue, market.SelicRate))
	}
	return b.String()
}
