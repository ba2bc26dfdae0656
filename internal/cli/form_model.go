package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/proposal/internal/cli/formatter"
	"github.com/alexanderramin/proposal/internal/contract"
	"github.com/alexanderramin/proposal/internal/domain"
	"github.com/alexanderramin/proposal/internal/intake"
	"github.com/alexanderramin/proposal/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

type formStage int

const (
	stageLoading formStage = iota
	stageLoadFailed
	stageCharacteristics
	stageWorkload
	stageSchedule
	stageResult
)

func (s formStage) String() string {
	switch s {
	case stageLoading:
		return "Loading"
	case stageLoadFailed:
		return "Load failed"
	case stageCharacteristics:
		return "Project"
	case stageWorkload:
		return "Workload"
	case stageSchedule:
		return "Schedule"
	default:
		return "Result"
	}
}

// Messages.
type (
	schemaLoadedMsg struct {
		schema *contract.SchemaResponse
		err    error
	}
	// stageCompleteMsg advances past the current form stage.
	stageCompleteMsg struct{}
	submittedMsg     struct {
		resp *contract.SubmitResponse
		err  error
	}
)

type formKeyMap struct {
	Quit    key.Binding
	Back    key.Binding
	New     key.Binding
	Retry   key.Binding
	Columns key.Binding
}

func newFormKeyMap() formKeyMap {
	return formKeyMap{
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		New:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new submission")),
		Retry:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
		Columns: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle zero columns")),
	}
}

// formModel hosts the proposal form: it loads the reference schema, walks
// the user through the field stages with a live status panel, and shows the
// outcome of each submission.
type formModel struct {
	ctx     context.Context
	app     *App
	values  *formValues
	keys    formKeyMap
	spinner spinner.Model

	stage   formStage
	form    *huh.Form
	schema  *contract.SchemaResponse
	loadErr error

	last      *contract.SubmitResponse
	submitErr error
	allCols   bool

	width  int
	height int
}

func newFormModel(ctx context.Context, app *App) formModel {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = formatter.StylePurple
	return formModel{
		ctx:     ctx,
		app:     app,
		values:  newFormValues(domain.DefaultDateRange(app.now())),
		keys:    newFormKeyMap(),
		spinner: sp,
		stage:   stageLoading,
	}
}

func (m formModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadSchemaCmd())
}

func (m formModel) loadSchemaCmd() tea.Cmd {
	ctx, svc := m.ctx, m.app.Proposals
	return func() tea.Msg {
		schema, err := svc.LoadSchema(ctx)
		return schemaLoadedMsg{schema: schema, err: err}
	}
}

func (m formModel) submitCmd() tea.Cmd {
	ctx, svc := m.ctx, m.app.Proposals
	req := contract.NewSubmitRequest(m.values.fields())
	return func() tea.Msg {
		resp, err := svc.Submit(ctx, req)
		return submittedMsg{resp: resp, err: err}
	}
}

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.form != nil {
			m.form = m.form.WithWidth(m.formWidth())
		}
		return m, nil

	case spinner.TickMsg:
		if m.stage != stageLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case schemaLoadedMsg:
		if msg.err != nil {
			m.stage, m.loadErr = stageLoadFailed, msg.err
			return m, nil
		}
		m.schema, m.loadErr = msg.schema, nil
		return m.enter(stageCharacteristics)

	case stageCompleteMsg:
		return m.advance()

	case submittedMsg:
		m.last, m.submitErr = msg.resp, msg.err
		m.stage, m.form = stageResult, nil
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.stage {
		case stageLoadFailed:
			return m.handleFailedKey(msg)
		case stageResult:
			return m.handleResultKey(msg)
		case stageLoading:
			if key.Matches(msg, m.keys.Quit) {
				return m, tea.Quit
			}
			return m, nil
		}
		if key.Matches(msg, m.keys.Back) {
			return m.back()
		}
	}

	if m.form == nil {
		return m, nil
	}
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	switch m.form.State {
	case huh.StateCompleted:
		return m, tea.Batch(cmd, func() tea.Msg { return stageCompleteMsg{} })
	case huh.StateAborted:
		return m, tea.Quit
	}
	return m, cmd
}

func (m formModel) handleFailedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Retry):
		m.stage = stageLoading
		return m, tea.Batch(m.spinner.Tick, m.loadSchemaCmd())
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
		return m, tea.Quit
	}
	return m, nil
}

func (m formModel) handleResultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.New):
		return m.enter(stageCharacteristics)
	case key.Matches(msg, m.keys.Columns):
		m.allCols = !m.allCols
		return m, nil
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
		return m, tea.Quit
	}
	return m, nil
}

// enter builds the form for stage. A workload stage with no roles selected
// is skipped.
func (m formModel) enter(stage formStage) (tea.Model, tea.Cmd) {
	var form *huh.Form
	switch stage {
	case stageCharacteristics:
		form = characteristicsForm(m.values, m.app.catalog())
	case stageWorkload:
		form = workloadForm(m.values)
		if form == nil {
			return m.enter(stageSchedule)
		}
	case stageSchedule:
		form = scheduleForm(m.values, m.app.catalog())
	}
	m.stage, m.form = stage, form
	if form == nil {
		return m, nil
	}
	m.form = m.form.WithWidth(m.formWidth())
	return m, m.form.Init()
}

func (m formModel) advance() (tea.Model, tea.Cmd) {
	switch m.stage {
	case stageCharacteristics:
		return m.enter(stageWorkload)
	case stageWorkload:
		return m.enter(stageSchedule)
	case stageSchedule:
		m.form = nil
		return m, m.submitCmd()
	}
	return m, nil
}

func (m formModel) back() (tea.Model, tea.Cmd) {
	switch m.stage {
	case stageWorkload:
		return m.enter(stageCharacteristics)
	case stageSchedule:
		if len(m.values.Roles) == 0 {
			return m.enter(stageCharacteristics)
		}
		return m.enter(stageWorkload)
	}
	return m, tea.Quit
}

func (m formModel) formWidth() int {
	if m.width >= 100 {
		return m.width/2 - 2
	}
	if m.width > 0 {
		return m.width - 2
	}
	return 60
}

// ── View ─────────────────────────────────────────────────────────────────────

func (m formModel) View() string {
	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render("PROJECT COST PROPOSAL"))
	b.WriteString("  " + formatter.Dim(m.stage.String()) + "\n")
	b.WriteString(formatter.StyleBlue.Render("● "+service.NoticeDisclaimer) + "\n\n")

	switch m.stage {
	case stageLoading:
		fmt.Fprintf(&b, "%s %s\n", m.spinner.View(), formatter.Dim("Loading reference sheet..."))
	case stageLoadFailed:
		b.WriteString(formatter.StyleRed.Render("✖ "+m.loadErr.Error()) + "\n\n")
		b.WriteString(m.helpLine(m.keys.Retry, m.keys.Quit))
	case stageResult:
		b.WriteString(m.resultView())
	default:
		b.WriteString(m.formView())
	}
	return b.String()
}

func (m formModel) formView() string {
	formView := ""
	if m.form != nil {
		formView = m.form.View()
	}
	panel := formatter.RenderBox("Status", m.statusView())
	var body string
	if m.width >= 100 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, formView, "  ", panel)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, formView, panel)
	}
	return body + "\n" + m.helpLine(m.keys.Back, key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")))
}

// statusView is recomputed from the bound values on every render.
func (m formModel) statusView() string {
	f := m.values.fields()
	_, rep := intake.Aggregate(f)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", formatter.Dim("Region:"), formatter.RegionBadge(rep.Region))
	fmt.Fprintf(&b, "%s %s\n", formatter.Dim("Allocated:"),
		formatter.WorkloadStyle(rep.Workload.Status).Render(formatter.Percent(rep.Workload.Total)))
	if f.Dates.Days() > 0 {
		fmt.Fprintf(&b, "%s %s\n", formatter.Dim("Dates:"), formatter.FormatDateRange(f.Dates))
	}
	b.WriteString("\n")
	b.WriteString(formatter.FormatNotices(service.Notices(rep)))
	return strings.TrimRight(b.String(), "\n")
}

func (m formModel) resultView() string {
	var b strings.Builder
	if m.submitErr != nil {
		b.WriteString(formatter.StyleRed.Render("✖ "+m.submitErr.Error()) + "\n\n")
		b.WriteString(m.helpLine(m.keys.New, m.keys.Quit))
		return b.String()
	}
	resp := m.last
	b.WriteString(formatter.FormatNotices(resp.Notices))
	b.WriteString("\n")
	if resp.Accepted() {
		b.WriteString(formatter.FormatSummary(resp.Input, m.app.catalog()) + "\n")
		b.WriteString(formatter.FormatRow(resp.Row))
	}
	b.WriteString("\n" + formatter.Header("Feature Table") + "\n")
	b.WriteString(formatter.FormatFeatureTable(resp.Table, m.allCols))
	b.WriteString("\n" + m.helpLine(m.keys.New, m.keys.Columns, m.keys.Quit))
	return b.String()
}

func (m formModel) helpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, formatter.Bold(h.Key)+" "+formatter.Dim(h.Desc))
	}
	return strings.Join(parts, formatter.Dim(" · ")) + "\n"
}
