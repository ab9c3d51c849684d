package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/budgie/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/budgie/internal/config"
	"github.com/MrJamesThe3rd/budgie/internal/importer"
	"github.com/MrJamesThe3rd/budgie/internal/report"
	"github.com/MrJamesThe3rd/budgie/internal/transaction"
	"github.com/MrJamesThe3rd/budgie/internal/transaction/store"
)

type model struct {
	txService     *transaction.Service
	importService *importer.Service
	reportService *report.Service
	currency      string

	username string

	currentView View

	loginView        view.LoginModel
	addView          view.AddModel
	transactionsView view.TransactionsModel
	summaryView      view.SummaryModel
	reportView       view.ReportModel
	importView       view.ImportModel
}

type View int

const (
	ViewLogin        View = 0
	ViewMenu         View = 1
	ViewAdd          View = 2
	ViewTransactions View = 3
	ViewSummary      View = 4
	ViewReport       View = 5
	ViewImport       View = 6
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	txSvc := transaction.NewService(store.New(cfg.Storage.DataDir, cfg.Storage.UsersFile))
	impSvc := importer.NewService()
	reportSvc := report.NewService(cfg.Storage.DataDir, cfg.Report.CurrencySymbol)

	return model{
		txService:     txSvc,
		importService: impSvc,
		reportService: reportSvc,
		currency:      cfg.Report.CurrencySymbol,
		currentView:   ViewLogin,
		loginView:     view.NewLoginModel(txSvc),
	}
}

func (m model) Init() tea.Cmd {
	return m.loginView.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ViewMenu {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewAdd
				m.addView = view.NewAddModel(m.txService, m.username, m.currency)

				return m, m.addView.Init()
			case "2":
				m.currentView = ViewTransactions
				m.transactionsView = view.NewTransactionsModel(m.txService, m.username, m.currency)

				return m, m.transactionsView.Init()
			case "3":
				m.currentView = ViewSummary
				m.summaryView = view.NewSummaryModel(m.txService, m.username, m.currency)

				return m, m.summaryView.Init()
			case "4":
				m.currentView = ViewReport
				m.reportView = view.NewReportModel(m.reportService, m.txService, m.username)

				return m, m.reportView.Init()
			case "5":
				m.currentView = ViewImport
				m.importView = view.NewImportModel(m.importService, m.txService, m.username)

				return m, m.importView.Init()
			}
		}

	case view.LoggedInMsg:
		if msg.Err != nil {
			slog.Error("failed to register username", "error", msg.Err)
			return m, tea.Quit
		}

		m.username = msg.Username
		m.currentView = ViewMenu

		return m, nil

	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewLogin:
		var newModel tea.Model
		newModel, cmd = m.loginView.Update(msg)
		m.loginView = newModel.(view.LoginModel)
	case ViewAdd:
		var newModel tea.Model
		newModel, cmd = m.addView.Update(msg)
		m.addView = newModel.(view.AddModel)
	case ViewTransactions:
		var newModel tea.Model
		newModel, cmd = m.transactionsView.Update(msg)
		m.transactionsView = newModel.(view.TransactionsModel)
	case ViewSummary:
		var newModel tea.Model
		newModel, cmd = m.summaryView.Update(msg)
		m.summaryView = newModel.(view.SummaryModel)
	case ViewReport:
		var newModel tea.Model
		newModel, cmd = m.reportView.Update(msg)
		m.reportView = newModel.(view.ReportModel)
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewLogin:
		return m.loginView.View()
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf(
			"Budgie (%s)\n\n"+
				"1. Add Transaction\n"+
				"2. Manage Transactions\n"+
				"3. Summary & Charts\n"+
				"4. Generate Report\n"+
				"5. Import Statement\n\n"+
				"q. Quit",
			m.username,
		))
	case ViewAdd:
		return m.addView.View()
	case ViewTransactions:
		return m.transactionsView.View()
	case ViewSummary:
		return m.summaryView.View()
	case ViewReport:
		return m.reportView.View()
	case ViewImport:
		return m.importView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
