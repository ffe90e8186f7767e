package view

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Santiagox01/VeterinariaFinal/internal/invoice"
	"github.com/Santiagox01/VeterinariaFinal/internal/sale"
)

type historyState int

const (
	historyStateBrowse historyState = iota
	historyStateInvoice
)

type HistoryModel struct {
	CommonModel
	saleSvc    *sale.Service
	invoiceSvc *invoice.Service

	state historyState
	table table.Model
	sales []*sale.Sale

	stateFilterIdx int
	filter         sale.ListFilter

	invoiceText string
	loading     bool
	err         error
	status      string
}

func NewHistoryModel(saleSvc *sale.Service, invoiceSvc *invoice.Service) HistoryModel {
	columns := []table.Column{
		{Title: "Factura", Width: 10},
		{Title: "Fecha", Width: 12},
		{Title: "Cliente", Width: 24},
		{Title: "Artículos", Width: 9},
		{Title: "Total", Width: 12},
		{Title: "Estado", Width: 9},
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

	return HistoryModel{
		saleSvc:    saleSvc,
		invoiceSvc: invoiceSvc,
		table:      t,
		filter:     sale.ListFilter{},
	}
}

func (m HistoryModel) Title() string { return "Ventas" }

func (m HistoryModel) ShortHelp() string {
	if m.state == historyStateInvoice {
		return "Esc: back | p: save PDF"
	}

	return "Esc: back | Enter: invoice | p: save PDF | t: state filter | x: deactivate | r: refresh"
}

func (m HistoryModel) Init() tea.Cmd {
	return m.loadSalesCmd()
}

func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadHistoryMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.sales = msg.sales
		m.refreshTable()
		return m, nil

	case invoiceTextMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}
		m.invoiceText = msg.text
		m.state = historyStateInvoice
		m.table.Blur()
		return m, nil

	case historyActionMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}
		m.status = msg.status
		if msg.reload {
			return m, m.loadSalesCmd()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case historyStateBrowse:
		return m.updateBrowse(msg)
	case historyStateInvoice:
		return m.updateInvoice(msg)
	}

	return m, nil
}

func (m HistoryModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadSalesCmd()
		case "enter":
			return m, m.buildInvoiceCmd()
		case "p":
			return m, m.savePDFCmd()
		case "t":
			m.stateFilterIdx = (m.stateFilterIdx + 1) % 3
			m.applyFilter()
			return m, m.loadSalesCmd()
		case "x":
			return m, m.deactivateCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m HistoryModel) updateInvoice(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.state = historyStateBrowse
			m.invoiceText = ""
			m.table.Focus()
			return m, nil
		case "p":
			return m, m.savePDFCmd()
		}
	}

	return m, nil
}

func (m HistoryModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Cargando ventas...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	if m.state == historyStateInvoice {
		content := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Render(m.invoiceText)

		if m.status != "" {
			content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
		}

		return lipgloss.NewStyle().Padding(1).Render(content)
	}

	stateLabels := []string{"Todas", "Activas", "Anuladas"}

	header := fmt.Sprintf("Filtro: [t] Estado: %s", activeStyle(stateLabels[m.stateFilterIdx]))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m HistoryModel) selectedSale() *sale.Sale {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.sales) {
		return nil
	}

	return m.sales[idx]
}

func (m *HistoryModel) applyFilter() {
	switch m.stateFilterIdx {
	case 1:
		state := sale.StateActive
		m.filter.State = &state
	case 2:
		state := sale.StateInactive
		m.filter.State = &state
	default:
		m.filter.State = nil
	}
}

func (m *HistoryModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.sales))
	for _, s := range m.sales {
		rows = append(rows, table.Row{
			s.ID,
			FormatDate(s.SoldAt),
			s.Customer,
			strconv.Itoa(len(s.Items)),
			FormatAmount(s.Total),
			string(s.State),
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadHistoryMsg struct {
	sales []*sale.Sale
	err   error
}

func (m HistoryModel) loadSalesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		sales, err := m.saleSvc.List(ctx, m.filter)
		return loadHistoryMsg{sales: sales, err: err}
	}
}

type invoiceTextMsg struct {
	text string
	err  error
}

func (m HistoryModel) buildInvoiceCmd() tea.Cmd {
	s := m.selectedSale()
	if s == nil {
		return nil
	}

	id := s.ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		inv, err := m.invoiceSvc.Build(ctx, id)
		if err != nil {
			return invoiceTextMsg{err: err}
		}

		return invoiceTextMsg{text: m.invoiceSvc.Render(inv)}
	}
}

type historyActionMsg struct {
	status string
	reload bool
	err    error
}

func (m HistoryModel) savePDFCmd() tea.Cmd {
	s := m.selectedSale()
	if s == nil {
		return nil
	}

	id := s.ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		data, err := m.invoiceSvc.Generate(ctx, id)
		if err != nil {
			return historyActionMsg{err: err}
		}

		path := fmt.Sprintf("factura-%s.pdf", id)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return historyActionMsg{err: err}
		}

		return historyActionMsg{status: fmt.Sprintf("Guardado %s.", path)}
	}
}

func (m HistoryModel) deactivateCmd() tea.Cmd {
	s := m.selectedSale()
	if s == nil {
		return nil
	}

	id := s.ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.saleSvc.Deactivate(ctx, id); err != nil {
			return historyActionMsg{err: err}
		}

		return historyActionMsg{status: fmt.Sprintf("Venta %s anulada.", id), reload: true}
	}
}
