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
)

type catalogState int

const (
	catalogStateBrowse catalogState = iota
	catalogStateCreate
	catalogStateEdit
	catalogStateStock
	catalogStateSearch
)

type CatalogModel struct {
	CommonModel
	accessorySvc *accessory.Service

	state catalogState
	table table.Model
	accs  []*accessory.Accessory
	form  *huh.Form

	// Filter cycling
	stateFilterIdx int
	query          string

	filter  accessory.ListFilter
	loading bool
	err     error
	status  string

	// Form bindings
	formID    string
	formName  string
	formType  string
	formPrice string
	formStock string
	formOp    string
	formQty   string
	formQuery string
}

func NewCatalogModel(accessorySvc *accessory.Service) CatalogModel {
	columns := []table.Column{
		{Title: "Código", Width: 8},
		{Title: "Nombre", Width: 30},
		{Title: "Tipo", Width: 14},
		{Title: "Precio", Width: 12},
		{Title: "Stock", Width: 6},
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

	return CatalogModel{
		accessorySvc: accessorySvc,
		table:        t,
		filter:       accessory.ListFilter{},
	}
}

func (m CatalogModel) Title() string { return "Catálogo" }

func (m CatalogModel) ShortHelp() string {
	if m.state != catalogStateBrowse {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | n: new | e: edit | s: stock | b: search | t: state filter | x: deactivate | r: refresh"
}

func (m CatalogModel) Init() tea.Cmd {
	return m.loadAccsCmd()
}

func (m CatalogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadCatalogMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.accs = msg.accs
		m.refreshTable()
		return m, nil

	case catalogSaveMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = msg.status
		}
		m.state = catalogStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadAccsCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case catalogStateBrowse:
		return m.updateBrowse(msg)
	default:
		return m.updateForm(msg)
	}
}

func (m CatalogModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadAccsCmd()
		case "n":
			return m.enterCreateMode()
		case "e":
			return m.enterEditMode()
		case "s":
			return m.enterStockMode()
		case "b":
			return m.enterSearchMode()
		case "t":
			m.stateFilterIdx = (m.stateFilterIdx + 1) % 3
			m.applyFilter()
			return m, m.loadAccsCmd()
		case "x":
			return m, m.deactivateCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m CatalogModel) enterCreateMode() (tea.Model, tea.Cmd) {
	ctx, cancel := DbCtx()
	defer cancel()

	nextID, err := m.accessorySvc.NextID(ctx)
	if err != nil {
		m.status = fmt.Sprintf("Error: %v", err)
		return m, nil
	}

	m.formID = nextID
	m.formName = ""
	m.formType = ""
	m.formPrice = ""
	m.formStock = "0"

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("id").
				Title("Código").
				Value(&m.formID).
				Validate(notBlank),

			huh.NewInput().
				Key("name").
				Title("Nombre").
				Value(&m.formName).
				Validate(notBlank),

			huh.NewInput().
				Key("type").
				Title("Tipo").
				Placeholder("Collar, Correa, Juguete...").
				Value(&m.formType).
				Validate(notBlank),

			huh.NewInput().
				Key("price").
				Title("Precio (pesos)").
				Value(&m.formPrice).
				Validate(validPrice),

			huh.NewInput().
				Key("stock").
				Title("Stock").
				Value(&m.formStock).
				Validate(validStock),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = catalogStateCreate
	m.table.Blur()
	return m, m.form.Init()
}

func (m CatalogModel) enterEditMode() (tea.Model, tea.Cmd) {
	acc := m.selectedAccessory()
	if acc == nil {
		return m, nil
	}

	m.formName = acc.Name
	m.formType = acc.Type
	m.formPrice = strconv.FormatInt(acc.Price/100, 10)

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Nombre").
				Value(&m.formName).
				Validate(notBlank),

			huh.NewInput().
				Key("type").
				Title("Tipo").
				Value(&m.formType).
				Validate(notBlank),

			huh.NewInput().
				Key("price").
				Title("Precio (pesos)").
				Value(&m.formPrice).
				Validate(validPrice),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = catalogStateEdit
	m.table.Blur()
	return m, m.form.Init()
}

func (m CatalogModel) enterStockMode() (tea.Model, tea.Cmd) {
	acc := m.selectedAccessory()
	if acc == nil {
		return m, nil
	}

	m.formOp = "increase"
	m.formQty = "1"

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("operation").
				Title("Operación").
				Options(
					huh.NewOption("Aumentar stock", "increase"),
					huh.NewOption("Reducir stock", "reduce"),
				).
				Value(&m.formOp),

			huh.NewInput().
				Key("quantity").
				Title("Cantidad").
				Value(&m.formQty).
				Validate(validQuantity),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = catalogStateStock
	m.table.Blur()
	return m, m.form.Init()
}

func (m CatalogModel) enterSearchMode() (tea.Model, tea.Cmd) {
	m.formQuery = m.query

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("query").
				Title("Buscar por nombre o tipo").
				Placeholder("collar").
				Value(&m.formQuery),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = catalogStateSearch
	m.table.Blur()
	return m, m.form.Init()
}

func (m CatalogModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = catalogStateBrowse
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
	case catalogStateCreate:
		return m, m.createCmd()
	case catalogStateEdit:
		return m, m.editCmd()
	case catalogStateStock:
		return m, m.stockCmd()
	case catalogStateSearch:
		m.query = strings.TrimSpace(m.formQuery)
		m.applyFilter()
		m.state = catalogStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadAccsCmd()
	}

	return m, nil
}

func (m CatalogModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Cargando catálogo...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	stateLabels := []string{"Todos", "Activos", "Inactivos"}

	queryLabel := m.query
	if queryLabel == "" {
		queryLabel = "-"
	}

	header := fmt.Sprintf(
		"Filtro: [t] Estado: %s | [b] Búsqueda: %s",
		activeStyle(stateLabels[m.stateFilterIdx]),
		activeStyle(queryLabel),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state != catalogStateBrowse && m.form != nil {
		titles := map[catalogState]string{
			catalogStateCreate: "Nuevo Accesorio",
			catalogStateEdit:   "Editar Accesorio",
			catalogStateStock:  "Ajustar Stock",
			catalogStateSearch: "Buscar",
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(fmt.Sprintf("%s\n\n%s", titles[m.state], m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func (m CatalogModel) selectedAccessory() *accessory.Accessory {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.accs) {
		return nil
	}

	return m.accs[idx]
}

func (m *CatalogModel) applyFilter() {
	switch m.stateFilterIdx {
	case 1:
		state := accessory.StateActive
		m.filter.State = &state
	case 2:
		state := accessory.StateInactive
		m.filter.State = &state
	default:
		m.filter.State = nil
	}

	if m.query != "" {
		query := m.query
		m.filter.Query = &query
	} else {
		m.filter.Query = nil
	}
}

func (m *CatalogModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.accs))
	for _, acc := range m.accs {
		rows = append(rows, table.Row{
			acc.ID,
			acc.Name,
			acc.Type,
			FormatAmount(acc.Price),
			strconv.Itoa(acc.Stock),
			string(acc.State),
		})
	}
	m.table.SetRows(rows)
}

// Validators

func notBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("no puede estar vacío")
	}
	return nil
}

func validPrice(s string) error {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || v < 0 {
		return fmt.Errorf("debe ser un número positivo")
	}
	return nil
}

func validQuantity(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return fmt.Errorf("debe ser un número positivo")
	}
	return nil
}

func validStock(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return fmt.Errorf("no puede ser negativo")
	}
	return nil
}

// Messages

type loadCatalogMsg struct {
	accs []*accessory.Accessory
	err  error
}

func (m CatalogModel) loadAccsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		accs, err := m.accessorySvc.List(ctx, m.filter)
		return loadCatalogMsg{accs: accs, err: err}
	}
}

type catalogSaveMsg struct {
	status string
	err    error
}

func (m CatalogModel) createCmd() tea.Cmd {
	params := accessory.CreateParams{
		ID:   strings.TrimSpace(m.formID),
		Name: strings.TrimSpace(m.formName),
		Type: strings.TrimSpace(m.formType),
	}
	params.Price, _ = strconv.ParseInt(strings.TrimSpace(m.formPrice), 10, 64)
	params.Price *= 100
	params.Stock, _ = strconv.Atoi(strings.TrimSpace(m.formStock))

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		acc, err := m.accessorySvc.Create(ctx, params)
		if err != nil {
			return catalogSaveMsg{err: err}
		}

		return catalogSaveMsg{status: fmt.Sprintf("Creado %s.", acc.ID)}
	}
}

func (m CatalogModel) editCmd() tea.Cmd {
	acc := m.selectedAccessory()
	if acc == nil {
		return nil
	}

	id := acc.ID
	name := strings.TrimSpace(m.formName)
	typ := strings.TrimSpace(m.formType)
	price, _ := strconv.ParseInt(strings.TrimSpace(m.formPrice), 10, 64)
	price *= 100

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.accessorySvc.Update(ctx, id, accessory.UpdateParams{
			Name:  &name,
			Type:  &typ,
			Price: &price,
		})
		if err != nil {
			return catalogSaveMsg{err: err}
		}

		return catalogSaveMsg{status: fmt.Sprintf("Actualizado %s.", id)}
	}
}

func (m CatalogModel) stockCmd() tea.Cmd {
	acc := m.selectedAccessory()
	if acc == nil {
		return nil
	}

	id := acc.ID
	op := m.formOp
	qty, _ := strconv.Atoi(strings.TrimSpace(m.formQty))

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		var err error
		if op == "increase" {
			_, err = m.accessorySvc.IncreaseStock(ctx, id, qty)
		} else {
			_, err = m.accessorySvc.ReduceStock(ctx, id, qty)
		}

		if err != nil {
			return catalogSaveMsg{err: err}
		}

		return catalogSaveMsg{status: fmt.Sprintf("Stock de %s ajustado.", id)}
	}
}

func (m CatalogModel) deactivateCmd() tea.Cmd {
	acc := m.selectedAccessory()
	if acc == nil {
		return nil
	}

	id := acc.ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.accessorySvc.Deactivate(ctx, id); err != nil {
			return catalogSaveMsg{err: err}
		}

		return catalogSaveMsg{status: fmt.Sprintf("Desactivado %s.", id)}
	}
}
