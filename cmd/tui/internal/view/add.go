package view

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/budgie/internal/transaction"
)

type AddModel struct {
	CommonModel
	txService *transaction.Service
	username  string
	currency  string

	form   *huh.Form
	status string

	formType     string
	formCategory string
	formAmount   string
	formDate     string
}

func NewAddModel(txSvc *transaction.Service, username, currency string) AddModel {
	m := AddModel{
		txService: txSvc,
		username:  username,
		currency:  currency,
	}
	m.form = m.buildForm()

	return m
}

func (m AddModel) Title() string     { return "Add Transaction" }
func (m AddModel) ShortHelp() string { return "Esc: back | Enter/Tab: navigate form" }

func (m *AddModel) buildForm() *huh.Form {
	m.formType = string(transaction.TypeIncome)
	m.formCategory = ""
	m.formAmount = ""
	m.formDate = FormatDate(time.Now())

	return huh.NewForm(
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
				Placeholder("Rent, Food, Salary...").
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
				Placeholder("0.00").
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
}

func (m AddModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m AddModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}

	case addResultMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("%s of %s added under '%s'",
				msg.tx.Type, FormatMoney(m.currency, msg.tx.Amount), msg.tx.Category)
		}

		m.form = m.buildForm()

		return m, m.form.Init()
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.addCmd()
}

func (m AddModel) View() string {
	statusLine := ""
	if m.status != "" {
		statusLine = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n\n"
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(statusLine + m.form.View())
}

type addResultMsg struct {
	tx  transaction.Transaction
	err error
}

func (m AddModel) addCmd() tea.Cmd {
	kind := transaction.Type(m.form.GetString("type"))
	category := m.form.GetString("category")
	amountStr := m.form.GetString("amount")
	dateStr := strings.TrimSpace(m.form.GetString("date"))

	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		amount, err := transaction.ParseAmount(amountStr)
		if err != nil {
			return addResultMsg{err: err}
		}

		date, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return addResultMsg{err: err}
		}

		_, tx, err := m.txService.Add(ctx, m.username, transaction.CreateParams{
			Date:     date,
			Type:     kind,
			Category: category,
			Amount:   amount,
		})
		if err != nil {
			return addResultMsg{err: err}
		}

		return addResultMsg{tx: tx}
	}
}
