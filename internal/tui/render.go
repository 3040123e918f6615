package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alesr/pricewatch/internal/view"
)

const (
	title    = "9kg IWF Washing Machine Finder"
	subtitle = "Discover the best prices across Indian e-commerce platforms"
)

func (m browseModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("  ")
	b.WriteString(subtitleStyle.Render(subtitle))
	b.WriteString("\n\n")

	state := m.ctrl.State()
	switch s := state.(type) {
	case view.Loading:
		b.WriteString(chipStyle.Render(fmt.Sprintf("%s %s", m.spinner.View(), view.LoadingMessage)))
		b.WriteString("\n")
		b.WriteString(subtleStyle.Render(fmt.Sprintf("elapsed: %s", time.Since(m.started).Truncate(time.Second))))
		b.WriteString("\n")
		b.WriteString(subtleStyle.Render("press q to quit"))
		b.WriteString("\n")

	case view.Failed:
		b.WriteString(errorStyle.Render("Error: " + s.Message))
		b.WriteString("\n")
		b.WriteString(subtleStyle.Render("Keys: r retry  q quit"))
		b.WriteString("\n")

	case view.Loaded:
		if view.IsEmpty(state) {
			b.WriteString(subtleStyle.Render(view.EmptyMessage))
			b.WriteString("\n")
			b.WriteString(subtleStyle.Render("press q to quit"))
			b.WriteString("\n")
			break
		}
		m.renderLoaded(&b, len(s.Listings))
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(subtleStyle.Render(m.notice))
		b.WriteString("\n")
	}
	return b.String()
}

func (m browseModel) renderLoaded(b *strings.Builder, count int) {
	if cheapest, ok := view.Cheapest(m.ctrl.State()); ok {
		card := view.NewCard(cheapest, m.formatter)
		callout := fmt.Sprintf("Best price: %s\n%s\non %s", card.Price, card.Name, card.Site)
		b.WriteString(bestStyle.Render(callout))
		b.WriteString("\n")
	}

	b.WriteString(subtleStyle.Render(view.CountLine(count)))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("Keys: ↑/↓ (j/k) move  enter open  q quit"))
	b.WriteString("\n\n")

	nameWidth := 60
	if m.width > 0 && m.width < 120 {
		nameWidth = 36
	}
	head := fmt.Sprintf("  %-18s %-*s %10s", "Site", nameWidth, "Name", "Price")
	b.WriteString(headerStyle.Render(head))
	b.WriteString("\n")

	end := m.offset + m.height
	if end > len(m.cards) {
		end = len(m.cards)
	}
	for i := m.offset; i < end; i++ {
		card := m.cards[i]
		prefix := " "
		if i == m.cursor {
			prefix = ">"
		}
		line := fmt.Sprintf("%s %-18s %-*s %10s", prefix, truncate(card.Site, 18), nameWidth, truncate(card.Name, nameWidth), card.Price)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	if card, ok := m.selected(); ok {
		var detail strings.Builder
		detail.WriteString(fmt.Sprintf("%s\n", card.Name))
		detail.WriteString(fmt.Sprintf("%s  %s\n", card.Price, card.Site))
		if card.Image != "" {
			detail.WriteString(fmt.Sprintf("Image: %s\n", card.Image))
		}
		detail.WriteString(fmt.Sprintf("%s: %s", card.Action, card.URL))
		b.WriteString("\n")
		b.WriteString(detailStyle.Render(detail.String()))
	}
}

func truncate(v string, max int) string {
	r := []rune(v)
	if max <= 3 || len(r) <= max {
		return v
	}
	return string(r[:max-3]) + "..."
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	chipStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")).Padding(0, 1)
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	detailStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1)
	bestStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("28")).Padding(0, 1)
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("160")).Padding(0, 1)
	subtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)
