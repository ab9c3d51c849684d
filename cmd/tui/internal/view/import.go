package view

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/budgie/internal/importer"
	"github.com/MrJamesThe3rd/budgie/internal/transaction"
)

type importState int

const (
	importStateForm importState = iota
	importStateRunning
	importStateResult
)

type ImportModel struct {
	CommonModel
	importService *importer.Service
	txService     *transaction.Service
	username      string

	state   importState
	form    *huh.Form
	spinner spinner.Model

	formPath string

	created int
	skipped int
	err     error
}

func NewImportModel(importSvc *importer.Service, txSvc *transaction.Service, username string) ImportModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := ImportModel{
		importService: importSvc,
		txService:     txSvc,
		username:      username,
		spinner:       s,
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("path").
				Title("Statement CSV Path").
				Placeholder("./statement.csv").
				Value(&m.formPath).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("path cannot be empty")
					}
					return nil
				}),
		),
	).WithWidth(50).WithShowHelp(false)

	return m
}

func (m ImportModel) Title() string { return "Import Statement" }

func (m ImportModel) ShortHelp() string {
	switch m.state {
	case importStateRunning:
		return "Importing..."
	case importStateResult:
		return "Esc: back to menu"
	}

	return "Esc: back | Enter: import"
}

func (m ImportModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case importResultMsg:
		m.state = importStateResult
		m.created = msg.created
		m.skipped = msg.skipped
		m.err = msg.err

		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc && m.state != importStateRunning {
			return m, Back
		}
	}

	switch m.state {
	case importStateForm:
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}

		if m.form.State != huh.StateCompleted {
			return m, cmd
		}

		m.state = importStateRunning

		return m, tea.Batch(m.spinner.Tick, m.importCmd())

	case importStateRunning:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m ImportModel) View() string {
	switch m.state {
	case importStateForm:
		return lipgloss.NewStyle().Padding(1, 2).Render(m.form.View())

	case importStateRunning:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("%s Importing statement...", m.spinner.View()),
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
		Render("Import Complete!")

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header,
			"",
			fmt.Sprintf("%d transactions imported, %d rows skipped.", m.created, m.skipped),
		),
	)
}

type importResultMsg struct {
	created int
	skipped int
	err     error
}

func (m ImportModel) importCmd() tea.Cmd {
	path := strings.TrimSpace(m.form.GetString("path"))

	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		f, err := os.Open(path)
		if err != nil {
			return importResultMsg{err: err}
		}
		defer f.Close()

		params, err := m.importService.Import(importer.FormatStatement, f)
		if err != nil {
			return importResultMsg{err: err}
		}

		var created, skipped int

		for _, p := range params {
			if _, _, err := m.txService.Add(ctx, m.username, p); err != nil {
				skipped++
				continue
			}

			created++
		}

		return importResultMsg{created: created, skipped: skipped}
	}
}
