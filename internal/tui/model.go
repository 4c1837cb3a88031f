package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/trackinhq/trackin/internal/model"
	"github.com/trackinhq/trackin/internal/store"
	"github.com/trackinhq/trackin/internal/tui/components"
	"github.com/trackinhq/trackin/internal/tui/themes"
)

// State represents the current state of the TUI.
type State int

const (
	StateBrowse State = iota
	StateSearch
	StateAddOrder
	StateConfirmDelete
	StateConfirmRemove
	StateHelp
)

// Tab selects which record list is active.
type Tab int

const (
	TabOrders Tab = iota
	TabReturns
)

// Model holds the main TUI state.
type Model struct {
	theme         themes.Theme
	store         *store.Store
	lastError     error
	config        Config
	keymap        KeyMap
	businesses    []model.Business
	calendar      components.CalendarModel
	orderList     components.RecordListModel
	returnList    components.RecordListModel
	orderForm     components.OrderFormModel
	confirm       components.ConfirmModel
	kpi           components.KPIModel
	orderSearch   textinput.Model
	returnSearch  textinput.Model
	pendingReturn int64
	height        int
	width         int
	state         State
	tab           Tab
	quitting      bool
	ready         bool
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	orderSearch := textinput.New()
	orderSearch.Placeholder = "Search orders..."
	orderSearch.CharLimit = 50

	returnSearch := textinput.New()
	returnSearch.Placeholder = "Search returns..."
	returnSearch.CharLimit = 50

	return Model{
		state:        StateBrowse,
		tab:          TabOrders,
		config:       cfg,
		keymap:       DefaultKeyMap(),
		theme:        cfg.Theme,
		store:        cfg.Store,
		calendar:     components.NewCalendar(cfg.Store.Calendar(), cfg.Theme),
		orderList:    components.NewRecordList(components.KindOrders, cfg.Theme),
		returnList:   components.NewRecordList(components.KindReturns, cfg.Theme),
		kpi:          components.NewKPI(cfg.Theme),
		orderSearch:  orderSearch,
		returnSearch: returnSearch,
		width:        cfg.Width,
		height:       cfg.Height,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.refreshRecords(),
		m.loadSummary(),
		m.loadBusinesses(),
	)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd, handled := m.handleGlobalKeys(msg); handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()

	case refreshDoneMsg, storeChangedMsg:
		m.syncLists()
		m.ready = true

	case summaryLoadedMsg:
		if msg.err != nil {
			m.lastError = msg.err
		} else {
			m.kpi.SetSummary(msg.summary)
		}

	case businessesLoadedMsg:
		if msg.err != nil {
			m.lastError = msg.err
		} else {
			m.businesses = msg.businesses
		}

	case actionDoneMsg:
		if msg.err != nil {
			m.lastError = msg.err
		}
		m.syncLists()
		cmds = append(cmds, m.loadSummary())

	case errorMsg:
		m.lastError = msg.err

	case components.DaySelectedMsg:
		return m, m.selectDay(msg.Day)

	case components.MonthChangedMsg:
		return m, nil

	case components.OrderSubmitMsg:
		m.state = StateBrowse
		return m, m.createOrder(msg.Draft)

	case components.FormCancelledMsg:
		m.state = StateBrowse
		return m, nil

	case components.ConfirmedMsg:
		return m.handleConfirmed()

	case components.CancelledMsg:
		if m.state == StateConfirmDelete {
			m.config.Controller.CancelDelete()
		}
		m.state = StateBrowse
		return m, nil
	}

	switch m.state {
	case StateBrowse:
		cmds = append(cmds, m.updateBrowse(msg))

	case StateSearch:
		cmds = append(cmds, m.updateSearch(msg))

	case StateAddOrder:
		var cmd tea.Cmd
		m.orderForm, cmd = m.orderForm.Update(msg)
		cmds = append(cmds, cmd)

	case StateConfirmDelete, StateConfirmRemove:
		var cmd tea.Cmd
		m.confirm, cmd = m.confirm.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleGlobalKeys handles keys that work in any state. The second return
// reports whether the key was consumed.
func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keymap.ForceQuit):
		m.quitting = true
		return tea.Quit, true

	case key.Matches(msg, m.keymap.Quit):
		if m.state == StateBrowse {
			m.quitting = true
			return tea.Quit, true
		}

	case key.Matches(msg, m.keymap.ToggleHelp):
		if m.state == StateHelp {
			m.state = StateBrowse
		} else if m.state == StateBrowse {
			m.state = StateHelp
		}
		return nil, true

	case key.Matches(msg, m.keymap.ClearScreen):
		return tea.ClearScreen, true
	}
	return nil, false
}

// updateBrowse handles input for the main dashboard view.
func (m *Model) updateBrowse(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if m.calendar.Focused() {
		switch {
		case key.Matches(keyMsg, m.keymap.FocusCalendar):
			m.calendar.Blur()
			return nil
		default:
			var cmd tea.Cmd
			m.calendar, cmd = m.calendar.Update(msg)
			return cmd
		}
	}

	switch {
	case key.Matches(keyMsg, m.keymap.ToggleTab):
		if m.tab == TabOrders {
			m.tab = TabReturns
		} else {
			m.tab = TabOrders
		}
		return nil

	case key.Matches(keyMsg, m.keymap.FocusCalendar):
		m.calendar.Focus()
		return nil

	case key.Matches(keyMsg, m.keymap.Search):
		m.state = StateSearch
		if m.tab == TabOrders {
			m.orderSearch.Focus()
		} else {
			m.returnSearch.Focus()
		}
		return textinput.Blink

	case key.Matches(keyMsg, m.keymap.AddOrder):
		m.state = StateAddOrder
		m.orderForm = components.NewOrderForm(m.store.SelectedDate(), m.theme)
		return textinput.Blink

	case key.Matches(keyMsg, m.keymap.ReturnOrder):
		if m.tab != TabOrders {
			return nil
		}
		order, ok := m.orderList.SelectedOrder()
		if !ok {
			return nil
		}
		return m.returnOrder(order)

	case key.Matches(keyMsg, m.keymap.DeleteOrder):
		if m.tab != TabOrders {
			return nil
		}
		order, ok := m.orderList.SelectedOrder()
		if !ok {
			return nil
		}
		if err := m.config.Controller.RequestDelete(order.ID); err != nil {
			return nil
		}
		m.state = StateConfirmDelete
		m.confirm = components.NewConfirm(
			"Delete order",
			"Delete order "+order.OrderID+"? This restores its stock.",
			m.theme,
		)
		return nil

	case key.Matches(keyMsg, m.keymap.RemoveReturn):
		if m.tab != TabReturns {
			return nil
		}
		ret, ok := m.returnList.SelectedReturn()
		if !ok {
			return nil
		}
		m.pendingReturn = ret.ID
		m.state = StateConfirmRemove
		m.confirm = components.NewConfirm(
			"Remove return",
			"Remove the return for order "+ret.OrderID+"?",
			m.theme,
		)
		return nil

	case key.Matches(keyMsg, m.keymap.CycleBusiness):
		return m.cycleBusiness()

	case key.Matches(keyMsg, m.keymap.Refresh):
		return tea.Batch(m.refreshRecords(), m.loadSummary())

	case key.Matches(keyMsg, m.keymap.DismissMessage):
		m.store.DismissMessage()
		return nil
	}

	var cmd tea.Cmd
	if m.tab == TabOrders {
		m.orderList, cmd = m.orderList.Update(msg)
	} else {
		m.returnList, cmd = m.returnList.Update(msg)
	}
	return cmd
}

// updateSearch feeds keystrokes into the active search field. Every edit
// reaches the store immediately; the store debounces the remote fetch.
func (m *Model) updateSearch(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "enter":
			m.state = StateBrowse
			m.orderSearch.Blur()
			m.returnSearch.Blur()
			return nil
		}
	}

	var cmd tea.Cmd
	if m.tab == TabOrders {
		m.orderSearch, cmd = m.orderSearch.Update(msg)
		m.store.SetOrderSearch(context.Background(), m.orderSearch.Value())
	} else {
		m.returnSearch, cmd = m.returnSearch.Update(msg)
		m.store.SetReturnSearch(context.Background(), m.returnSearch.Value())
	}
	m.syncLists()
	return cmd
}

// handleConfirmed commits whichever destructive action is pending.
func (m Model) handleConfirmed() (tea.Model, tea.Cmd) {
	switch m.state {
	case StateConfirmDelete:
		m.state = StateBrowse
		return m, m.confirmDelete()
	case StateConfirmRemove:
		m.state = StateBrowse
		returnID := m.pendingReturn
		m.pendingReturn = 0
		return m, m.removeReturn(returnID)
	default:
		return m, nil
	}
}

// cycleBusiness advances the business scope through all known businesses.
func (m *Model) cycleBusiness() tea.Cmd {
	if len(m.businesses) == 0 {
		return nil
	}

	current := m.store.Business()
	next := model.SelectionAll
	if current == model.SelectionAll {
		next = m.businesses[0].Selection()
	} else {
		for i, b := range m.businesses {
			if b.Selection() == current && i+1 < len(m.businesses) {
				next = m.businesses[i+1].Selection()
				break
			}
		}
	}

	if m.config.Session != nil {
		if err := m.config.Session.SetSelection(next); err != nil {
			m.lastError = err
		}
	}
	return tea.Batch(m.setBusiness(next), m.loadSummary())
}

// syncLists pushes the store's current records into the tables.
func (m *Model) syncLists() {
	m.orderList.SetOrders(m.store.Orders())
	m.returnList.SetReturns(m.store.Returns())
}

// handleResize adjusts component sizes when terminal resizes.
func (m *Model) handleResize() {
	calendarWidth := 30
	listWidth := m.width - calendarWidth - 4
	if listWidth < 40 {
		listWidth = m.width - 2
	}

	m.calendar.Resize(calendarWidth)
	m.orderList.Resize(listWidth, m.height-12)
	m.returnList.Resize(listWidth, m.height-12)
	m.kpi.Resize(m.width - 2)
	m.orderForm.Resize(minInt(m.width-4, 52))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
