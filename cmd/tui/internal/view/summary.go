package view

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/budgie/internal/summary"
	"github.com/MrJamesThe3rd/budgie/internal/transaction"
)

const breakdownBarWidth = 30

type SummaryModel struct {
	CommonModel
	txService *transaction.Service
	username  string
	currency  string

	loading bool
	err     error
	rows    int
	sum     summary.Summary
}

func NewSummaryModel(txSvc *transaction.Service, username, currency string) SummaryModel {
	return SummaryModel{
		txService: txSvc,
		username:  username,
		currency:  currency,
		loading:   true,
	}
}

func (m SummaryModel) Title() string     { return "Summary & Charts" }
func (m SummaryModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m SummaryModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m SummaryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case summaryLoadMsg:
		m.loading = false
		m.err = msg.err
		m.rows = msg.rows
		m.sum = msg.sum

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
	}

	return m, nil
}

func (m SummaryModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading summary...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	if m.rows == 0 {
		return lipgloss.NewStyle().Padding(2).Render("No transactions recorded yet.")
	}

	sections := []string{
		m.totalsView(),
		m.breakdownView(),
		m.trendView(),
	}

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...),
	)
}

func (m SummaryModel) totalsView() string {
	lines := fmt.Sprintf(
		"Total Income:    %s\nTotal Expenses:  %s\nCurrent Balance: %s",
		FormatMoney(m.currency, m.sum.Totals.Income),
		FormatMoney(m.currency, m.sum.Totals.Expense),
		FormatMoney(m.currency, m.sum.Totals.Balance),
	)

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render("Financial Summary\n\n" + lines)
}

// breakdownView renders expense totals per category as horizontal bars,
// largest first.
func (m SummaryModel) breakdownView() string {
	header := lipgloss.NewStyle().Bold(true).Render("Category-wise Expense Breakdown")

	if len(m.sum.Breakdown) == 0 {
		return header + "\n" + lipgloss.NewStyle().Faint(true).Render("No expense data available.")
	}

	type categoryAmount struct {
		name  string
		cents int64
	}

	entries := make([]categoryAmount, 0, len(m.sum.Breakdown))
	maxName := 0

	for name, cents := range m.sum.Breakdown {
		entries = append(entries, categoryAmount{name: name, cents: cents})
		if len(name) > maxName {
			maxName = len(name)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].cents != entries[j].cents {
			return entries[i].cents > entries[j].cents
		}

		return entries[i].name < entries[j].name
	})

	maxCents := entries[0].cents
	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	var sb strings.Builder

	sb.WriteString(header + "\n")

	for _, e := range entries {
		width := int(int64(breakdownBarWidth) * e.cents / maxCents)
		if width < 1 {
			width = 1
		}

		sb.WriteString(fmt.Sprintf("%-*s %s %s\n",
			maxName, e.name,
			barStyle.Render(strings.Repeat("█", width)),
			FormatMoney(m.currency, e.cents),
		))
	}

	return sb.String()
}

// trendView lists income and expense sums per date; dates missing one kind
// show an explicit zero.
func (m SummaryModel) trendView() string {
	header := lipgloss.NewStyle().Bold(true).Render("Financial Trends Over Time")

	var sb strings.Builder

	sb.WriteString(header + "\n")
	sb.WriteString(fmt.Sprintf("%-12s %16s %16s\n", "Date", "Income", "Expense"))

	for _, p := range m.sum.Trend {
		sb.WriteString(fmt.Sprintf("%-12s %16s %16s\n",
			FormatDate(p.Date),
			FormatMoney(m.currency, p.Income),
			FormatMoney(m.currency, p.Expense),
		))
	}

	return sb.String()
}

type summaryLoadMsg struct {
	sum  summary.Summary
	rows int
	err  error
}

func (m SummaryModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		txs, err := m.txService.List(ctx, m.username)
		if err != nil {
			return summaryLoadMsg{err: err}
		}

		return summaryLoadMsg{sum: summary.Compute(txs), rows: len(txs)}
	}
}
