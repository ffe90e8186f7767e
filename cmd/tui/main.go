package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/Santiagox01/VeterinariaFinal/cmd/tui/internal/view"
	"github.com/Santiagox01/VeterinariaFinal/internal/accessory"
	accStore "github.com/Santiagox01/VeterinariaFinal/internal/accessory/store"
	"github.com/Santiagox01/VeterinariaFinal/internal/config"
	"github.com/Santiagox01/VeterinariaFinal/internal/database"
	"github.com/Santiagox01/VeterinariaFinal/internal/importer"
	"github.com/Santiagox01/VeterinariaFinal/internal/invoice"
	"github.com/Santiagox01/VeterinariaFinal/internal/sale"
	saleStore "github.com/Santiagox01/VeterinariaFinal/internal/sale/store"
)

type model struct {
	accessoryService *accessory.Service
	saleService      *sale.Service
	importService    *importer.Service
	invoiceService   *invoice.Service

	currentView View

	catalogView view.CatalogModel
	sellView    view.SellModel
	historyView view.HistoryModel
	statsView   view.StatsModel
	importView  view.ImportModel
}

type View int

const (
	ViewMenu    View = 0
	ViewCatalog View = 1
	ViewSell    View = 2
	ViewHistory View = 3
	ViewStats   View = 4
	ViewImport  View = 5
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), database.Pool{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	accSvc := accessory.NewService(accStore.New(db))
	saleSvc := sale.NewService(saleStore.New(db))
	impSvc := importer.NewService()
	invSvc := invoice.NewService(saleSvc, accSvc, cfg.App.Name)

	return model{
		accessoryService: accSvc,
		saleService:      saleSvc,
		importService:    impSvc,
		invoiceService:   invSvc,
		currentView:      ViewMenu,
		catalogView:      view.NewCatalogModel(accSvc),
		sellView:         view.NewSellModel(accSvc, saleSvc),
		historyView:      view.NewHistoryModel(saleSvc, invSvc),
		statsView:        view.NewStatsModel(accSvc),
		importView:       view.NewImportModel(accSvc, impSvc),
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
				m.currentView = ViewCatalog
				m.catalogView = view.NewCatalogModel(m.accessoryService)

				return m, m.catalogView.Init()
			case "2":
				m.currentView = ViewSell
				m.sellView = view.NewSellModel(m.accessoryService, m.saleService)

				return m, m.sellView.Init()
			case "3":
				m.currentView = ViewHistory
				m.historyView = view.NewHistoryModel(m.saleService, m.invoiceService)

				return m, m.historyView.Init()
			case "4":
				m.currentView = ViewStats
				m.statsView = view.NewStatsModel(m.accessoryService)

				return m, m.statsView.Init()
			case "5":
				m.currentView = ViewImport
				m.importView = view.NewImportModel(m.accessoryService, m.importService)

				return m, m.importView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewCatalog:
		var newModel tea.Model
		newModel, cmd = m.catalogView.Update(msg)
		m.catalogView = newModel.(view.CatalogModel)
	case ViewSell:
		var newModel tea.Model
		newModel, cmd = m.sellView.Update(msg)
		m.sellView = newModel.(view.SellModel)
	case ViewHistory:
		var newModel tea.Model
		newModel, cmd = m.historyView.Update(msg)
		m.historyView = newModel.(view.HistoryModel)
	case ViewStats:
		var newModel tea.Model
		newModel, cmd = m.statsView.Update(msg)
		m.statsView = newModel.(view.StatsModel)
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Accesorios Veterinaria\n\n" +
				"1. Catálogo\n" +
				"2. Nueva Venta\n" +
				"3. Ventas\n" +
				"4. Estadísticas\n" +
				"5. Importar Catálogo\n\n" +
				"q. Salir",
		)
	case ViewCatalog:
		return m.catalogView.View()
	case ViewSell:
		return m.sellView.View()
	case ViewHistory:
		return m.historyView.View()
	case ViewStats:
		return m.statsView.View()
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
