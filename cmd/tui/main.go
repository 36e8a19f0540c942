package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/lepetitpoucetlyon-sketch/restobooks/cmd/tui/internal/view"
	"github.com/lepetitpoucetlyon-sketch/restobooks/internal/config"
	"github.com/lepetitpoucetlyon-sketch/restobooks/internal/database"
	"github.com/lepetitpoucetlyon-sketch/restobooks/internal/export"
	"github.com/lepetitpoucetlyon-sketch/restobooks/internal/fec"
	"github.com/lepetitpoucetlyon-sketch/restobooks/internal/importer"
	"github.com/lepetitpoucetlyon-sketch/restobooks/internal/transaction"
	txStore "github.com/lepetitpoucetlyon-sketch/restobooks/internal/transaction/store"
)

type model struct {
	txService     *transaction.Service
	importService *importer.Service
	exportService *export.Service

	currentView View

	importView view.ImportModel
	listView   view.ListModel
	exportView view.ExportModel
}

type View int

const (
	ViewMenu   View = 0
	ViewImport View = 1
	ViewList   View = 2
	ViewExport View = 3
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	txSvc := transaction.NewService(txStore.New(db))
	impSvc := importer.NewService()
	expSvc := export.NewService(txSvc, fec.Company{Name: cfg.Company.Name, SIRET: cfg.Company.SIRET})

	return model{
		txService:     txSvc,
		importService: impSvc,
		exportService: expSvc,
		currentView:   ViewMenu,
		importView:    view.NewImportModel(txSvc, impSvc),
		listView:      view.NewListModel(txSvc),
		exportView:    view.NewExportModel(expSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewImport
				m.importView = view.NewImportModel(m.txService, m.importService)

				return m, m.importView.Init()
			case "2":
				m.currentView = ViewList
				m.listView = view.NewListModel(m.txService)

				return m, m.listView.Init()
			case "3":
				m.currentView = ViewExport
				m.exportView = view.NewExportModel(m.exportService)

				return m, m.exportView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	case ViewList:
		var newModel tea.Model
		newModel, cmd = m.listView.Update(msg)
		m.listView = newModel.(view.ListModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Restobooks TUI\n\n" +
				"1. Import Transactions\n" +
				"2. Review Transactions\n" +
				"3. Export FEC\n\n" +
				"q. Quit",
		)
	case ViewImport:
		return m.importView.View()
	case ViewList:
		return m.listView.View()
	case ViewExport:
		return m.exportView.View()
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
