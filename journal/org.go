package journal

import (
	"fmt"
	"strings"
)

// FormatTradeOrg renders a Trade as an Org-mode block suitable for pasting into a journal.
// Structured facts go in a PROPERTIES drawer for easy search; the trade notes become
// the Review section.
func FormatTradeOrg(t Trade) string {
	heading := fmt.Sprintf("** Trade: %s %s (%s)", t.Symbol, strings.ToUpper(string(t.Direction)), shortID(t.ID))

	var b strings.Builder
	b.WriteString(heading)
	if tags := orgTags(t.Tags); len(tags) > 0 {
		b.WriteString(" :" + strings.Join(tags, ":") + ":")
	}
	b.WriteString("\n")
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":TRADE_ID: %s\n", t.ID))
	b.WriteString(fmt.Sprintf(":DATE: %s\n", t.Date))
	if t.ExitDate != "" {
		b.WriteString(fmt.Sprintf(":EXIT_DATE: %s\n", t.ExitDate))
	}
	b.WriteString(fmt.Sprintf(":SYMBOL: %s\n", t.Symbol))
	b.WriteString(fmt.Sprintf(":DIRECTION: %s\n", t.Direction))
	b.WriteString(fmt.Sprintf(":ENTRY_PRICE: %.5f\n", t.EntryPrice))
	if t.ExitPrice != nil {
		b.WriteString(fmt.Sprintf(":EXIT_PRICE: %.5f\n", *t.ExitPrice))
	}
	b.WriteString(fmt.Sprintf(":PNL: %.2f\n", t.PnL))
	if t.RR != nil {
		b.WriteString(fmt.Sprintf(":RR: %.2f\n", *t.RR))
	}
	status := StatusOpen
	if t.IsClosed() {
		status = StatusClosed
	}
	b.WriteString(fmt.Sprintf(":STATUS: %s\n", status))
	if t.Setup != "" {
		b.WriteString(fmt.Sprintf(":SETUP: %s\n", t.Setup))
	}
	b.WriteString(":END:\n")
	b.WriteString("\n")
	b.WriteString("*** Review\n")
	if t.Notes != "" {
		b.WriteString(t.Notes)
		b.WriteString("\n")
	} else {
		b.WriteString("- \n")
	}

	return b.String()
}

// FormatTradesOrg renders multiple trades separated by blank lines.
func FormatTradesOrg(trades []Trade) string {
	var b strings.Builder
	for i, t := range trades {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatTradeOrg(t))
	}
	return b.String()
}

// FormatEntryOrg renders a daily journal entry.
func FormatEntryOrg(e Entry) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("* Journal: %s\n", e.Date))
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":MOOD: %s\n", e.Mood))
	b.WriteString(fmt.Sprintf(":FOLLOWED_SYSTEM: %t\n", e.FollowedSystem))
	b.WriteString(fmt.Sprintf(":NEWS_DAY: %t\n", e.IsNewsDay))
	b.WriteString(":END:\n")

	for _, s := range []struct{ title, body string }{
		{"Pre-market", e.PreMarket},
		{"Review", e.Review},
		{"Lessons", e.Lessons},
	} {
		if s.body == "" {
			continue
		}
		b.WriteString(fmt.Sprintf("\n** %s\n%s\n", s.title, s.body))
	}
	return b.String()
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}

// Org tags may not contain spaces or colons.
func orgTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.NewReplacer(" ", "_", ":", "_").Replace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
