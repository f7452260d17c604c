package explorer

import "strings"

// PageSize is the number of lines PageUp and PageDown move.
const PageSize = 20

// File is a named text buffer handed to the viewer.
type File struct {
	Name    string
	Content string
}

// Viewer holds an ordered set of files, the active file index and a scroll
// offset into the active file. It does no I/O.
type Viewer struct {
	files []File
	index int

	lines    []string
	fileType FileType
	offset   int
}

// New returns a viewer showing the first of files.
func New(files []File) *Viewer {
	v := &Viewer{files: files}
	v.load()
	return v
}

// SplitLines splits content for display: tabs become two spaces, trailing
// carriage returns are stripped and trailing empty lines are dropped.
func SplitLines(content string) []string {
	content = strings.ReplaceAll(content, "\t", "  ")
	lines := strings.Split(content, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func (v *Viewer) load() {
	v.offset = 0
	if len(v.files) == 0 {
		v.lines = nil
		v.fileType = Plain
		return
	}
	f := v.files[v.index]
	v.lines = SplitLines(f.Content)
	v.fileType = DetectFileType(f.Name)
}

// Files returns the files in display order.
func (v *Viewer) Files() []File { return v.files }

// FileCount returns the number of files.
func (v *Viewer) FileCount() int { return len(v.files) }

// FileIndex returns the active file index.
func (v *Viewer) FileIndex() int { return v.index }

// FileName returns the active file name, or "" when there are no files.
func (v *Viewer) FileName() string {
	if len(v.files) == 0 {
		return ""
	}
	return v.files[v.index].Name
}

// FileType returns the tokenizer used for the active file.
func (v *Viewer) FileType() FileType { return v.fileType }

// Lines returns the active file's lines. Callers must not modify them.
func (v *Viewer) Lines() []string { return v.lines }

// LineCount returns the number of lines in the active file.
func (v *Viewer) LineCount() int { return len(v.lines) }

// Offset returns the zero-based index of the top visible line.
func (v *Viewer) Offset() int { return v.offset }

// NextFile activates the following file; no-op on the last.
func (v *Viewer) NextFile() {
	if v.index+1 < len(v.files) {
		v.index++
		v.load()
	}
}

// PreviousFile activates the preceding file; no-op on the first.
func (v *Viewer) PreviousFile() {
	if v.index > 0 {
		v.index--
		v.load()
	}
}

// SelectFile activates file i if it exists.
func (v *Viewer) SelectFile(i int) {
	if i < 0 || i >= len(v.files) || i == v.index {
		return
	}
	v.index = i
	v.load()
}

// ScrollUp and ScrollDown move the offset by one line.
func (v *Viewer) ScrollUp()   { v.scrollTo(v.offset - 1) }
func (v *Viewer) ScrollDown() { v.scrollTo(v.offset + 1) }

// PageUp and PageDown move the offset by PageSize lines.
func (v *Viewer) PageUp()   { v.scrollTo(v.offset - PageSize) }
func (v *Viewer) PageDown() { v.scrollTo(v.offset + PageSize) }

// ScrollToTop and ScrollToBottom jump to the first and last line.
func (v *Viewer) ScrollToTop()    { v.scrollTo(0) }
func (v *Viewer) ScrollToBottom() { v.scrollTo(len(v.lines) - 1) }

func (v *Viewer) scrollTo(offset int) {
	maxOffset := max(0, len(v.lines)-1)
	v.offset = min(max(0, offset), maxOffset)
}

// ScrollInfo returns the 1-based inclusive range of lines visible in a
// viewport of height rows, and the total line count. An empty file reports
// 0, 0, 0.
func (v *Viewer) ScrollInfo(height int) (start, end, total int) {
	total = len(v.lines)
	if total == 0 {
		return 0, 0, 0
	}
	height = max(1, height)
	return v.offset + 1, min(total, v.offset+height), total
}

// ScrollPercent returns how far the viewport has scrolled, 0 to 100. A file
// that fits in the viewport reports 100.
func (v *Viewer) ScrollPercent(height int) int {
	n := len(v.lines)
	if n <= height {
		return 100
	}
	return min(100, v.offset*100/max(1, n-height))
}

// VisibleLines returns the lines inside a viewport of height rows.
func (v *Viewer) VisibleLines(height int) []string {
	if height <= 0 || v.offset >= len(v.lines) {
		return nil
	}
	return v.lines[v.offset:min(len(v.lines), v.offset+height)]
}

// Highlight tokenizes the visible lines of the active file.
func (v *Viewer) Highlight(height int) [][]Span {
	visible := v.VisibleLines(height)
	out := make([][]Span, len(visible))
	for i, l := range visible {
		out[i] = Tokenize(v.fileType, l)
	}
	return out
}
