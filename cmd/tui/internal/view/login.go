package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/budgie/internal/transaction"
	"github.com/MrJamesThe3rd/budgie/internal/user"
)

// LoggedInMsg is emitted once the username is captured and registered.
type LoggedInMsg struct {
	Username string
	Err      error
}

type LoginModel struct {
	CommonModel
	txService *transaction.Service

	form *huh.Form
	name string
}

func NewLoginModel(txSvc *transaction.Service) LoginModel {
	m := LoginModel{txService: txSvc}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("username").
				Title("Your name").
				Description("Used to find your saved transactions").
				Value(&m.name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("please enter your name to continue")
					}
					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)

	return m
}

func (m LoginModel) Title() string     { return "Login" }
func (m LoginModel) ShortHelp() string { return "Enter: continue | Ctrl+C: quit" }

func (m LoginModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.registerCmd()
}

func (m LoginModel) View() string {
	return lipgloss.NewStyle().Padding(1, 2).Render(
		"Personal Budget Tracker\n\n" + m.form.View(),
	)
}

func (m LoginModel) registerCmd() tea.Cmd {
	name := user.Normalize(m.form.GetString("username"))

	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		err := m.txService.Register(ctx, name)

		return LoggedInMsg{Username: name, Err: err}
	}
}
