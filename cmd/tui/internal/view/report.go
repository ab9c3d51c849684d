package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/budgie/internal/report"
	"github.com/MrJamesThe3rd/budgie/internal/transaction"
)

type reportState int

const (
	reportStateGenerating reportState = iota
	reportStateResult
)

type ReportModel struct {
	CommonModel
	reportService *report.Service
	txService     *transaction.Service
	username      string

	state   reportState
	spinner spinner.Model
	path    string
	rows    int
	err     error
}

func NewReportModel(reportSvc *report.Service, txSvc *transaction.Service, username string) ReportModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return ReportModel{
		reportService: reportSvc,
		txService:     txSvc,
		username:      username,
		spinner:       s,
	}
}

func (m ReportModel) Title() string { return "Generate Report" }

func (m ReportModel) ShortHelp() string {
	if m.state == reportStateGenerating {
		return "Generating..."
	}

	return "Esc: back to menu"
}

func (m ReportModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.generateCmd())
}

func (m ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportResultMsg:
		m.state = reportStateResult
		m.path = msg.path
		m.rows = msg.rows
		m.err = msg.err

		return m, nil

	case tea.KeyMsg:
		if m.state == reportStateResult && msg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)

	return m, cmd
}

func (m ReportModel) View() string {
	if m.state == reportStateGenerating {
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("%s Generating PDF report...", m.spinner.View()),
		)
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(1).Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("Error: %v", m.err)),
		)
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("46")).
		Render("Report Ready!")

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header,
			"",
			fmt.Sprintf("%d transactions written to:", m.rows),
			m.path,
		),
	)
}

type reportResultMsg struct {
	path string
	rows int
	err  error
}

func (m ReportModel) generateCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		txs, err := m.txService.List(ctx, m.username)
		if err != nil {
			return reportResultMsg{err: err}
		}

		path, err := m.reportService.Generate(ctx, m.username, txs)
		if err != nil {
			return reportResultMsg{err: err}
		}

		return reportResultMsg{path: path, rows: len(txs)}
	}
}
