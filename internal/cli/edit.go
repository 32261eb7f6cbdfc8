package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pagesmith/pkg/codegen"
	"github.com/matzehuels/pagesmith/pkg/editor"
	"github.com/matzehuels/pagesmith/pkg/layout"
	"github.com/matzehuels/pagesmith/pkg/registry"
)

// editCommand creates the interactive editor command.
func (c *CLI) editCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit the page in an interactive terminal editor",
		Long: `Edit the page in an interactive terminal editor. Every change is saved
as it is made.

  ↑/↓ j/k   move the cursor (selects the column or component)
  a         add a component from the palette to the selected column
  c / C     add a root column / a column inside the selected one
  d         delete the selected column or component
  [ / ]     shrink / grow the selected column
  o         toggle the selected column's orientation
  K / J     move the selected component up / down
  g         show the generated code
  ?         show all keys
  q         quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			m := newEditModel(cmd.Context(), e.session)
			final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return fmt.Errorf("run editor: %w", err)
			}
			if fm, ok := final.(editModel); ok && fm.err != nil {
				printWarning("Last change failed: %v", fm.err)
			}
			printSuccess("Saved %s", e.session.Snapshot().String())
			return nil
		},
	}
}

// Edit styles
var (
	editCursorStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	editNormalStyle  = lipgloss.NewStyle().Foreground(colorWhite)
	editDimStyle     = lipgloss.NewStyle().Foreground(colorDim)
	editErrorStyle   = lipgloss.NewStyle().Foreground(colorYellow)
	editCategoryHead = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// editKeyMap holds the terminal editor's key bindings.
type editKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Add         key.Binding
	AddColumn   key.Binding
	AddChild    key.Binding
	Delete      key.Binding
	Shrink      key.Binding
	Grow        key.Binding
	Orientation key.Binding
	MoveUp      key.Binding
	MoveDown    key.Binding
	Code        key.Binding
	Select      key.Binding
	Back        key.Binding
	Help        key.Binding
	Quit        key.Binding
}

var editKeys = editKeyMap{
	Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Add:         key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add component")),
	AddColumn:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "add column")),
	AddChild:    key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "add nested column")),
	Delete:      key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "delete")),
	Shrink:      key.NewBinding(key.WithKeys("["), key.WithHelp("[", "narrower")),
	Grow:        key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "wider")),
	Orientation: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "orientation")),
	MoveUp:      key.NewBinding(key.WithKeys("K"), key.WithHelp("K", "move up")),
	MoveDown:    key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "move down")),
	Code:        key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "code")),
	Select:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("⏎", "add")),
	Back:        key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "back")),
	Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:        key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp implements help.KeyMap.
func (k editKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Add, k.AddColumn, k.Delete, k.Code, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k editKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.MoveUp, k.MoveDown},
		{k.Add, k.AddColumn, k.AddChild, k.Delete},
		{k.Shrink, k.Grow, k.Orientation, k.Code},
		{k.Help, k.Quit},
	}
}

// paletteKeyMap is the key map shown while the palette is open.
type paletteKeyMap struct{ editKeyMap }

func (k paletteKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back}
}

func (k paletteKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// codeKeyMap is the key map shown while the code pane is open.
type codeKeyMap struct{ editKeyMap }

func (k codeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back}
}

func (k codeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// editRow is one line of the flattened layout tree.
type editRow struct {
	columnID    string // owning column for components
	componentID string // empty for column rows
	depth       int
	label       string
}

func (r editRow) isColumn() bool { return r.componentID == "" }

// editModel is the bubbletea model of the terminal editor.
type editModel struct {
	ctx     context.Context
	session *editor.Session

	rows   []editRow
	cursor int
	height int

	palette       []registry.Definition
	paletteOpen   bool
	paletteCursor int

	code     viewport.Model
	codeOpen bool

	keys editKeyMap
	help help.Model

	status string
	err    error
}

func newEditModel(ctx context.Context, s *editor.Session) editModel {
	m := editModel{ctx: ctx, session: s, height: 20, keys: editKeys, help: help.New(), code: viewport.New(80, 20)}
	for _, g := range s.Registry().Palette() {
		m.palette = append(m.palette, g.Definitions...)
	}
	m.refresh()
	m.cursor = m.selectedRow()
	return m
}

// refresh rebuilds the rows from the session.
func (m *editModel) refresh() {
	st := m.session.State()
	m.rows = nil
	var walk func(cols []layout.Column, depth int)
	walk = func(cols []layout.Column, depth int) {
		for _, col := range cols {
			m.rows = append(m.rows, editRow{
				columnID: col.ID,
				depth:    depth,
				label: fmt.Sprintf("%s %s", col.ID, editDimStyle.Render(
					fmt.Sprintf("%s %s", layout.WidthClass(col.Width), col.Orientation))),
			})
			for _, comp := range col.Components {
				m.rows = append(m.rows, editRow{
					columnID:    col.ID,
					componentID: comp.ID,
					depth:       depth + 1,
					label:       componentLabel(comp, m.session.Registry(), editor.Selection{}),
				})
			}
			walk(col.ChildColumns, depth+1)
		}
	}
	walk(st.Layout.Columns, 0)
	if m.cursor >= len(m.rows) {
		m.cursor = max(len(m.rows)-1, 0)
	}
}

// selectedRow returns the row of the session selection, or 0.
func (m editModel) selectedRow() int {
	sel := m.session.Selection()
	for i, r := range m.rows {
		if sel.ComponentID != "" && r.componentID == sel.ComponentID {
			return i
		}
		if sel.ComponentID == "" && r.isColumn() && r.columnID == sel.ColumnID {
			return i
		}
	}
	return 0
}

func (m editModel) current() (editRow, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return editRow{}, false
	}
	return m.rows[m.cursor], true
}

// selectCurrent mirrors the cursor into the session selection.
func (m *editModel) selectCurrent() {
	r, ok := m.current()
	if !ok {
		return
	}
	if r.isColumn() {
		_, m.err = m.session.SelectColumn(r.columnID)
	} else {
		_, m.err = m.session.SelectComponent(r.componentID)
	}
}

func (m editModel) Init() tea.Cmd {
	return nil
}

func (m editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.paletteOpen {
			return m.updatePalette(msg)
		}
		if m.codeOpen {
			return m.updateCode(msg)
		}
		return m.updateTree(msg)
	case tea.WindowSizeMsg:
		m.height = max(msg.Height-8, 5)
		m.help.Width = msg.Width
		m.code.Width = msg.Width
		m.code.Height = m.height
	}
	return m, nil
}

func (m editModel) updateTree(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Code):
		m.code.SetContent(codegen.Generate(m.session.Snapshot(), m.session.Registry()))
		m.code.GotoTop()
		m.codeOpen = true
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.selectCurrent()
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
			m.selectCurrent()
		}
	case key.Matches(msg, m.keys.Add):
		if m.session.PaletteTarget() == "" {
			m.status = "add a column first"
			return m, nil
		}
		m.paletteOpen = true
		m.paletteCursor = 0
	case key.Matches(msg, m.keys.AddColumn):
		m.apply(layout.Request{Op: layout.OpAddColumn})
	case key.Matches(msg, m.keys.AddChild):
		if r, ok := m.current(); ok {
			m.apply(layout.Request{Op: layout.OpAddColumn, ParentID: r.columnID})
		}
	case key.Matches(msg, m.keys.Delete):
		r, ok := m.current()
		if !ok {
			return m, nil
		}
		if r.isColumn() {
			m.apply(layout.Request{Op: layout.OpDeleteColumn, ColumnID: r.columnID})
		} else {
			m.apply(layout.Request{Op: layout.OpDeleteComponent, ColumnID: r.columnID, ComponentID: r.componentID})
		}
	case key.Matches(msg, m.keys.Shrink, m.keys.Grow):
		r, ok := m.current()
		if !ok || !r.isColumn() {
			return m, nil
		}
		col, _ := layout.FindColumn(m.session.Snapshot(), r.columnID)
		w := col.Width + 1
		if key.Matches(msg, m.keys.Shrink) {
			w = col.Width - 1
		}
		m.apply(layout.Request{Op: layout.OpUpdateColumnWidth, ColumnID: r.columnID, Width: w})
	case key.Matches(msg, m.keys.Orientation):
		r, ok := m.current()
		if !ok || !r.isColumn() {
			return m, nil
		}
		col, _ := layout.FindColumn(m.session.Snapshot(), r.columnID)
		o := layout.Vertical
		if col.Orientation == layout.Vertical {
			o = layout.Horizontal
		}
		m.apply(layout.Request{Op: layout.OpUpdateColumn, ColumnID: r.columnID, Update: &layout.ColumnUpdate{Orientation: &o}})
	case key.Matches(msg, m.keys.MoveUp, m.keys.MoveDown):
		r, ok := m.current()
		if !ok || r.isColumn() {
			return m, nil
		}
		col, _ := layout.FindColumn(m.session.Snapshot(), r.columnID)
		from := -1
		for i, comp := range col.Components {
			if comp.ID == r.componentID {
				from = i
			}
		}
		to := from + 1
		if key.Matches(msg, m.keys.MoveUp) {
			to = from - 1
		}
		if from < 0 || to < 0 || to >= len(col.Components) {
			return m, nil
		}
		m.apply(layout.Request{
			Op: layout.OpMoveComponent, SourceColumnID: r.columnID, TargetColumnID: r.columnID,
			DragIndex: from, HoverIndex: to,
		})
	}
	return m, nil
}

func (m editModel) updatePalette(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.paletteOpen = false
	case key.Matches(msg, m.keys.Up):
		if m.paletteCursor > 0 {
			m.paletteCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.paletteCursor < len(m.palette)-1 {
			m.paletteCursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.paletteOpen = false
		if len(m.palette) == 0 {
			return m, nil
		}
		def := m.palette[m.paletteCursor]
		res, err := m.session.AddFromPalette(m.ctx, def.Type)
		m.afterChange(res, err)
		if err == nil && res.Outcome.CreatedID != "" {
			m.status = "added " + def.Label
		}
	}
	return m, nil
}

func (m editModel) updateCode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back, m.keys.Code):
		m.codeOpen = false
		return m, nil
	}
	var cmd tea.Cmd
	m.code, cmd = m.code.Update(msg)
	return m, cmd
}

// apply runs req and refreshes the rows, keeping the cursor on the
// session selection.
func (m *editModel) apply(req layout.Request) {
	res, err := m.session.Apply(m.ctx, req)
	m.afterChange(res, err)
}

func (m *editModel) afterChange(res editor.Result, err error) {
	if err != nil {
		m.err = err
		return
	}
	switch {
	case res.Outcome.Refused:
		m.status = "refused"
	case len(res.Outcome.Unresolved) > 0:
		m.status = "not found: " + strings.Join(res.Outcome.Unresolved, ", ")
	case res.Outcome.CreatedID != "":
		m.status = "created " + res.Outcome.CreatedID
	default:
		m.status = "saved"
	}
	m.refresh()
	if res.Outcome.CreatedID != "" {
		for i, r := range m.rows {
			if r.componentID == res.Outcome.CreatedID || (r.isColumn() && r.columnID == res.Outcome.CreatedID) {
				m.cursor = i
				m.selectCurrent()
				return
			}
		}
	}
	m.cursor = m.selectedRow()
}

func (m editModel) View() string {
	var b strings.Builder

	st := m.session.State()
	title := "Page"
	if st.Context.SitePart != "" {
		title = string(st.Context.SitePart)
		if st.Context.TemplateName != "" {
			title += " / " + st.Context.TemplateName
		}
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	if m.codeOpen {
		b.WriteString("\n")
		b.WriteString(m.code.View())
		b.WriteString("\n\n")
		b.WriteString(m.help.View(codeKeyMap{m.keys}))
		return b.String()
	}
	if m.paletteOpen {
		b.WriteString("\n")
		b.WriteString(m.paletteView())
		b.WriteString("\n")
		b.WriteString(m.help.View(paletteKeyMap{m.keys}))
		return b.String()
	}
	b.WriteString("\n")

	if len(m.rows) == 0 {
		b.WriteString(editDimStyle.Render("  empty page, press c to add a column"))
		b.WriteString("\n")
	}
	offset := max(m.cursor-m.height+1, 0)
	end := min(offset+m.height, len(m.rows))
	for i := offset; i < end; i++ {
		r := m.rows[i]
		cursor := "  "
		style := editNormalStyle
		if i == m.cursor {
			cursor = "▸ "
			style = editCursorStyle
		}
		b.WriteString(cursor + strings.Repeat("  ", r.depth) + style.Render(r.label))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.err != nil:
		b.WriteString(editErrorStyle.Render("  " + m.err.Error()))
	case m.status != "":
		b.WriteString(editDimStyle.Render("  " + m.status))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m editModel) paletteView() string {
	var b strings.Builder
	category := registry.Category("")
	for i, d := range m.palette {
		if d.Category != category {
			category = d.Category
			b.WriteString(editCategoryHead.Render(string(category)))
			b.WriteString("\n")
		}
		cursor := "  "
		style := editNormalStyle
		if i == m.paletteCursor {
			cursor = "▸ "
			style = editCursorStyle
		}
		line := fmt.Sprintf("%s%-20s %s", cursor, d.Label, editDimStyle.Render(d.Type))
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
