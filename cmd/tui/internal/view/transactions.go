package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/budgie/internal/transaction"
)

type txState int

const (
	txStateBrowse txState = iota
	txStateEdit
)

type TransactionsModel struct {
	CommonModel
	txService *transaction.Service
	username  string
	currency  string

	state   txState
	table   table.Model
	txs     []transaction.Transaction
	form    *huh.Form
	loading bool
	err     error
	status  string

	formType     string
	formCategory string
	formAmount   string
	formDate     string
}

func NewTransactionsModel(txSvc *transaction.Service, username, currency string) TransactionsModel {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Date", Width: 12},
		{Title: "Type", Width: 9},
		{Title: "Category", Width: 24},
		{Title: "Amount", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return TransactionsModel{
		txService: txSvc,
		username:  username,
		currency:  currency,
		table:     t,
		loading:   true,
	}
}

func (m TransactionsModel) Title() string { return "Manage Transactions" }

func (m TransactionsModel) ShortHelp() string {
	if m.state == txStateEdit {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | e: edit | d: delete | r: refresh"
}

func (m TransactionsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m TransactionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case txLoadMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.txs = msg.txs
		m.refreshTable()

		return m, nil

	case txMutateMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = msg.status
		}

		m.state = txStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case txStateBrowse:
		return m.updateBrowse(msg)
	case txStateEdit:
		return m.updateEdit(msg)
	}

	return m, nil
}

func (m TransactionsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "e":
			return m.enterEditMode()
		case "d":
			return m.deleteSelected()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m TransactionsModel) enterEditMode() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.txs) {
		return m, nil
	}

	tx := m.txs[idx]
	m.formType = string(tx.Type)
	m.formCategory = tx.Category
	m.formAmount = transaction.FormatAmount(tx.Amount)
	m.formDate = FormatDate(tx.Date)

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("type").
				Title("Type").
				Options(
					huh.NewOption("Income", string(transaction.TypeIncome)),
					huh.NewOption("Expense", string(transaction.TypeExpense)),
				).
				Value(&m.formType),

			huh.NewInput().
				Key("category").
				Title("Category").
				Value(&m.formCategory).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("category cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("amount").
				Title("Amount").
				Value(&m.formAmount).
				Validate(func(s string) error {
					if _, err := transaction.ParseAmount(s); err != nil {
						return fmt.Errorf("enter an amount greater than zero")
					}
					return nil
				}),

			huh.NewInput().
				Key("date").
				Title("Date (YYYY-MM-DD)").
				Value(&m.formDate).
				Validate(func(s string) error {
					if _, err := time.Parse(time.DateOnly, strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("enter a date like 2024-01-31")
					}
					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = txStateEdit
	m.table.Blur()

	return m, m.form.Init()
}

func (m TransactionsModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = txStateBrowse
			m.form = nil
			m.table.Focus()

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.editCmd(m.table.Cursor())
}

func (m TransactionsModel) deleteSelected() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.txs) {
		return m, nil
	}

	return m, m.deleteCmd(idx)
}

func (m TransactionsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading transactions...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	if len(m.txs) == 0 {
		return lipgloss.NewStyle().Padding(2).Render("No transactions recorded yet.")
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := tableView

	if m.state == txStateEdit && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render("Edit Transaction\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *TransactionsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.txs))
	for i, tx := range m.txs {
		rows = append(rows, table.Row{
			strconv.Itoa(i),
			FormatDate(tx.Date),
			string(tx.Type),
			tx.Category,
			FormatMoney(m.currency, tx.Amount),
		})
	}

	m.table.SetRows(rows)
}

// Messages

type txLoadMsg struct {
	txs []transaction.Transaction
	err error
}

func (m TransactionsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		txs, err := m.txService.List(ctx, m.username)

		return txLoadMsg{txs: txs, err: err}
	}
}

type txMutateMsg struct {
	status string
	err    error
}

func (m TransactionsModel) editCmd(index int) tea.Cmd {
	kind := transaction.Type(m.form.GetString("type"))
	category := m.form.GetString("category")
	amountStr := m.form.GetString("amount")
	dateStr := strings.TrimSpace(m.form.GetString("date"))

	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		amount, err := transaction.ParseAmount(amountStr)
		if err != nil {
			return txMutateMsg{err: err}
		}

		date, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return txMutateMsg{err: err}
		}

		if _, err := m.txService.Edit(ctx, m.username, index, transaction.CreateParams{
			Date:     date,
			Type:     kind,
			Category: category,
			Amount:   amount,
		}); err != nil {
			return txMutateMsg{err: err}
		}

		return txMutateMsg{status: "Transaction updated."}
	}
}

func (m TransactionsModel) deleteCmd(index int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		if err := m.txService.Delete(ctx, m.username, index); err != nil {
			return txMutateMsg{err: err}
		}

		return txMutateMsg{status: "Transaction deleted."}
	}
}
