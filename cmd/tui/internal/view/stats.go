package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Santiagox01/VeterinariaFinal/internal/accessory"
)

type StatsModel struct {
	CommonModel
	accessorySvc *accessory.Service

	stats    *accessory.Statistics
	lowStock []*accessory.Accessory
	loading  bool
	err      error
}

func NewStatsModel(accessorySvc *accessory.Service) StatsModel {
	return StatsModel{accessorySvc: accessorySvc}
}

func (m StatsModel) Title() string     { return "Estadísticas" }
func (m StatsModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m StatsModel) Init() tea.Cmd {
	return m.loadStatsCmd()
}

func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadStatsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.stats = msg.stats
		m.lowStock = msg.lowStock
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadStatsCmd()
		}
	}

	return m, nil
}

func (m StatsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Cargando estadísticas...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	if m.stats == nil {
		return ""
	}

	summary := fmt.Sprintf(
		"Productos activos:   %d\n"+
			"Valor de inventario: %s\n"+
			"Tipos distintos:     %d\n"+
			"Precio promedio:     %s\n"+
			"Con stock bajo:      %d",
		m.stats.TotalProducts,
		FormatAmount(m.stats.TotalValue),
		m.stats.Types,
		FormatAmount(int64(m.stats.AveragePrice)),
		m.stats.LowStockCount,
	)

	summaryPanel := lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Render("Inventario\n\n" + summary)

	var b strings.Builder
	b.WriteString("Stock bajo\n\n")

	if len(m.lowStock) == 0 {
		b.WriteString("(ninguno)")
	}

	for _, acc := range m.lowStock {
		fmt.Fprintf(&b, "%-8s %-25s %d\n", acc.ID, acc.Name, acc.Stock)
	}

	lowStockPanel := lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(b.String())

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinHorizontal(lipgloss.Top, summaryPanel, lowStockPanel),
	)
}

// Messages

type loadStatsMsg struct {
	stats    *accessory.Statistics
	lowStock []*accessory.Accessory
	err      error
}

func (m StatsModel) loadStatsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		stats, err := m.accessorySvc.Statistics(ctx)
		if err != nil {
			return loadStatsMsg{err: err}
		}

		state := accessory.StateActive
		accs, err := m.accessorySvc.List(ctx, accessory.ListFilter{State: &state})
		if err != nil {
			return loadStatsMsg{err: err}
		}

		var lowStock []*accessory.Accessory
		for _, acc := range accs {
			if acc.Stock < accessory.LowStockThreshold {
				lowStock = append(lowStock, acc)
			}
		}

		return loadStatsMsg{stats: stats, lowStock: lowStock}
	}
}
