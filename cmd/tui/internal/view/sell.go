package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/Santiagox01/VeterinariaFinal/internal/accessory"
	"github.com/Santiagox01/VeterinariaFinal/internal/sale"
)

type sellState int

const (
	sellStatePick sellState = iota
	sellStateQuantity
	sellStateCustomer
	sellStateDone
)

// cartLine holds a pending line plus the display data the cart panel
// needs.
type cartLine struct {
	accessory *accessory.Accessory
	quantity  int
}

func (l cartLine) subtotal() int64 {
	return l.accessory.Price * int64(l.quantity)
}

type SellModel struct {
	CommonModel
	accessorySvc *accessory.Service
	saleSvc      *sale.Service

	state sellState
	table table.Model
	accs  []*accessory.Accessory
	cart  []cartLine
	form  *huh.Form

	loading bool
	err     error
	status  string

	formQty      string
	formCustomer string
}

func NewSellModel(accessorySvc *accessory.Service, saleSvc *sale.Service) SellModel {
	columns := []table.Column{
		{Title: "Código", Width: 8},
		{Title: "Nombre", Width: 30},
		{Title: "Precio", Width: 12},
		{Title: "Stock", Width: 6},
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

	return SellModel{
		accessorySvc: accessorySvc,
		saleSvc:      saleSvc,
		table:        t,
	}
}

func (m SellModel) Title() string { return "Nueva Venta" }

func (m SellModel) ShortHelp() string {
	switch m.state {
	case sellStatePick:
		return "Esc: back | Enter: add to cart | d: drop last line | c: checkout | r: refresh"
	case sellStateDone:
		return "Enter: new sale | Esc: back"
	}

	return "Navigate form | Esc: cancel"
}

func (m SellModel) Init() tea.Cmd {
	return m.loadAccsCmd()
}

func (m SellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadSellMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.accs = msg.accs
		m.refreshTable()
		return m, nil

	case checkoutMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			m.state = sellStatePick
			m.table.Focus()
			return m, nil
		}

		m.cart = nil
		m.status = fmt.Sprintf("Venta %s registrada. Total: %s",
			msg.sale.ID, FormatAmount(msg.sale.Total))
		m.state = sellStateDone
		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case sellStatePick:
		return m.updatePick(msg)
	case sellStateDone:
		return m.updateDone(msg)
	default:
		return m.updateForm(msg)
	}
}

func (m SellModel) updatePick(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadAccsCmd()
		case "enter":
			return m.enterQuantityMode()
		case "d":
			if len(m.cart) > 0 {
				m.cart = m.cart[:len(m.cart)-1]
			}
			return m, nil
		case "c":
			if len(m.cart) == 0 {
				m.status = "El carrito está vacío."
				return m, nil
			}
			return m.enterCustomerMode()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m SellModel) updateDone(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			return m, Back
		case tea.KeyEnter:
			m.state = sellStatePick
			m.status = ""
			m.table.Focus()
			return m, m.loadAccsCmd()
		}
	}

	return m, nil
}

func (m SellModel) enterQuantityMode() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.accs) {
		return m, nil
	}

	acc := m.accs[idx]
	if acc.Stock == 0 {
		m.status = fmt.Sprintf("%s no tiene stock.", acc.ID)
		return m, nil
	}

	m.formQty = "1"

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("quantity").
				Title(fmt.Sprintf("Cantidad de %s (stock %d)", acc.Name, acc.Stock)).
				Value(&m.formQty).
				Validate(func(s string) error {
					v, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || v <= 0 {
						return fmt.Errorf("debe ser mayor que cero")
					}
					if v > acc.Stock {
						return fmt.Errorf("solo hay %d en stock", acc.Stock)
					}
					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = sellStateQuantity
	m.table.Blur()
	return m, m.form.Init()
}

func (m SellModel) enterCustomerMode() (tea.Model, tea.Cmd) {
	m.formCustomer = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("customer").
				Title("Cliente").
				Value(&m.formCustomer).
				Validate(notBlank),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = sellStateCustomer
	m.table.Blur()
	return m, m.form.Init()
}

func (m SellModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = sellStatePick
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

	switch m.state {
	case sellStateQuantity:
		m.addToCart()
		m.state = sellStatePick
		m.form = nil
		m.table.Focus()
		return m, nil
	case sellStateCustomer:
		return m, m.checkoutCmd()
	}

	return m, nil
}

func (m *SellModel) addToCart() {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.accs) {
		return
	}

	acc := m.accs[idx]
	qty, _ := strconv.Atoi(strings.TrimSpace(m.formQty))

	// Merge with an existing line for the same accessory.
	for i, line := range m.cart {
		if line.accessory.ID == acc.ID {
			m.cart[i].quantity += qty
			return
		}
	}

	m.cart = append(m.cart, cartLine{accessory: acc, quantity: qty})
}

func (m SellModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Cargando catálogo...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	if m.state == sellStateDone {
		return lipgloss.NewStyle().Padding(2).Render(
			m.status + "\n\nEnter: nueva venta | Esc: volver",
		)
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinHorizontal(lipgloss.Top, tableView, m.cartView())

	if m.state == sellStateQuantity || m.state == sellStateCustomer {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m SellModel) cartView() string {
	var b strings.Builder

	b.WriteString("Carrito\n\n")

	if len(m.cart) == 0 {
		b.WriteString("(vacío)\n")
	}

	var total int64
	for _, line := range m.cart {
		total += line.subtotal()
		fmt.Fprintf(&b, "%dx %s  %s\n", line.quantity, line.accessory.Name, FormatAmount(line.subtotal()))
	}

	if len(m.cart) > 0 {
		fmt.Fprintf(&b, "\nTotal: %s\n", FormatAmount(total))
	}

	return lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(36).
		Render(b.String())
}

// Messages

type loadSellMsg struct {
	accs []*accessory.Accessory
	err  error
}

func (m SellModel) loadAccsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		state := accessory.StateActive
		accs, err := m.accessorySvc.List(ctx, accessory.ListFilter{State: &state})
		return loadSellMsg{accs: accs, err: err}
	}
}

type checkoutMsg struct {
	sale *sale.Sale
	err  error
}

func (m SellModel) checkoutCmd() tea.Cmd {
	customer := strings.TrimSpace(m.formCustomer)

	lines := make([]sale.LineParams, 0, len(m.cart))
	for _, line := range m.cart {
		lines = append(lines, sale.LineParams{
			AccessoryID: line.accessory.ID,
			Quantity:    line.quantity,
			UnitPrice:   line.accessory.Price,
		})
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		s, err := m.saleSvc.Create(ctx, customer, lines)
		return checkoutMsg{sale: s, err: err}
	}
}

func (m *SellModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.accs))
	for _, acc := range m.accs {
		rows = append(rows, table.Row{
			acc.ID,
			acc.Name,
			FormatAmount(acc.Price),
			strconv.Itoa(acc.Stock),
		})
	}
	m.table.SetRows(rows)
}
