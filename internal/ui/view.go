package ui

import (
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/bookshelf/internal/format/table"
	"github.com/atomicstack/bookshelf/internal/logging/events"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	tableCellWidth   = 20
	continueHint     = "Press Enter to continue"
	tableHint        = "↑/↓ scroll  enter return"
	headerRows       = 2 // header + blank separator
	hintRows         = 2 // blank + hint
	infoDuration     = 5 * time.Second
	noEntriesMessage = "No books stored"
)

var (
	tableHeaders    = []string{"Index", "Name", "Pages", "Price"}
	tableAlignments = []table.Alignment{table.AlignRight, table.AlignLeft, table.AlignRight, table.AlignRight}
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: m.menuHeader(), style: styles.Header}, styledLine{})
	for _, row := range strings.Split(m.bodyView(), "\n") {
		lines = append(lines, styledLine{text: row, raw: true})
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{}, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{}, styledLine{text: m.help.View(m.keys), raw: true})
	}
	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

func (m *Model) bodyView() string {
	switch m.mode {
	case ModeNumber:
		if m.number != nil {
			return m.number.View()
		}
	case ModeText:
		if m.text != nil {
			return m.text.View()
		}
	case ModePicker:
		if m.picker != nil {
			return m.picker.View(m.bodyHeight())
		}
	case ModeNotice:
		if m.notice != nil {
			return m.noticeView()
		}
	case ModeTable:
		return m.table.View() + "\n\n" + styles.Footer.Render(tableHint)
	}
	return m.menu.View(m.bodyHeight())
}

func (m *Model) noticeView() string {
	style := m.notice.style()
	rows := make([]string, 0, len(m.notice.lines)+2)
	for _, line := range m.notice.lines {
		rows = append(rows, style.Render(line))
	}
	rows = append(rows, "", styles.Footer.Render(continueHint))
	return strings.Join(rows, "\n")
}

// openTable renders every stored book into the scrollable table screen.
func (m *Model) openTable() {
	rows := m.store.Rows()
	cells := make([][]string, len(rows))
	names := make([]string, len(rows))
	for i, row := range rows {
		cells[i] = []string{
			strconv.Itoa(row.Index),
			row.Book.Name,
			strconv.Itoa(row.Book.Pages),
			strconv.Itoa(row.Book.Price),
		}
		names[i] = row.Book.Name
	}
	widths := []int{tableCellWidth, table.ColumnWidth(tableCellWidth, names...), tableCellWidth, tableCellWidth}
	grid := table.GridWidths(tableHeaders, cells, widths, tableAlignments)
	if len(rows) == 0 {
		grid = append(grid, "", noEntriesMessage)
	}
	for i, line := range grid {
		grid[i] = styles.TableBorder.Render(line)
	}
	m.tableLines = len(grid)
	m.table = viewport.New(m.width, m.tableHeight())
	m.table.SetContent(strings.Join(grid, "\n"))
	m.setMode(ModeTable)
}

// tableHeight is the number of table rows that fit above the hint.
func (m *Model) tableHeight() int {
	if m.height <= 0 {
		if m.tableLines < 1 {
			return 1
		}
		return m.tableLines
	}
	remain := m.height - m.reservedRows() - hintRows
	if remain < 1 {
		return 1
	}
	return remain
}

// bodyHeight is the number of rows left for the active screen, or 0 when the
// terminal height is unknown.
func (m *Model) bodyHeight() int {
	if m.height <= 0 {
		return 0
	}
	remain := m.height - m.reservedRows()
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) reservedRows() int {
	used := headerRows
	if m.infoMsg != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	return used
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.help.Width = m.width
	m.table.Width = m.width
	m.table.Height = m.tableHeight()
	events.UI.Resize(m.width, m.height)
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoDuration)
}

func (m *Model) clearInfo() {
	if m.infoMsg == "" {
		return
	}
	if !m.infoExpire.IsZero() && time.Now().Before(m.infoExpire) {
		return
	}
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line.raw || line.style == nil {
			out[i] = line.text
			continue
		}
		out[i] = line.style.Render(line.text)
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
