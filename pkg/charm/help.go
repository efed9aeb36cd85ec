package charm

import (
	"io"
	"os"
	"strings"

	"github.com/brimdata/zcut/pkg/terminal"
	"github.com/kr/text"
)

// splitFlags is like strings.Split with a comma and also trims whitespace
func splitFlags(flags string) []string {
	var out []string
	for _, flag := range strings.Split(flags, ",") {
		out = append(out, strings.TrimSpace(flag))
	}
	return out
}

// flagMap creates a map that maps a name to a boolean based on the existence
// of that name in the comma-separated string of flags.
func flagMap(flags string) map[string]bool {
	m := make(map[string]bool)
	if flags == "" {
		return m
	}
	for _, flag := range splitFlags(flags) {
		m[flag] = true
	}
	return m
}

func formatParagraph(body, tab string, lineWidth int) string {
	paragraphs := strings.Split(body, "\n\n")
	var chunks []string
	for _, paragraph := range paragraphs {
		var chunk string
		if len(paragraph) < lineWidth {
			chunk = strings.TrimRight(paragraph, " \t\n")
		} else {
			paragraph = strings.TrimSpace(paragraph)
			paragraph = text.Wrap(paragraph, lineWidth)
			lines := strings.Split(paragraph, "\n")
			chunk = strings.Join(lines, "\n"+tab)
		}
		chunks = append(chunks, chunk)
	}
	body = strings.Join(chunks, "\n\n"+tab)
	body = strings.TrimRight(body, " \t\n")
	return tab + body + "\n\n"
}

const tab = "    "

type helpWriter struct {
	w     io.Writer
	bold  bool
	width int
	err   error
}

func newHelpWriter(w io.Writer) *helpWriter {
	f, ok := w.(*os.File)
	return &helpWriter{
		w:     w,
		bold:  ok && terminal.IsTerminalFile(f),
		width: terminal.Width(),
	}
}

func (h *helpWriter) print(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *helpWriter) header(heading string) string {
	if !h.bold {
		return heading
	}
	return "\033[1m" + heading + "\033[0m"
}

func (h *helpWriter) item(heading, body string) {
	h.print(h.header(heading) + "\n" + tab + body + "\n\n")
}

func (h *helpWriter) desc(heading, body string) {
	body = strings.TrimSpace(body)
	lineWidth := h.width - len(tab) - 5
	if len(body) > lineWidth {
		body = formatParagraph(body, tab, lineWidth)
	} else {
		body = tab + body + "\n\n"
	}
	h.print(h.header(heading) + "\n" + body)
}

func (h *helpWriter) list(heading string, lines []string) {
	h.print(h.header(heading) + "\n" + tab + strings.Join(lines, "\n"+tab) + "\n\n")
}

func displayHelp(w io.Writer, inst *instance) error {
	h := newHelpWriter(w)
	spec := inst.spec
	h.item("NAME", spec.Name+" - "+spec.Short)
	h.desc("USAGE", spec.Usage)
	options := inst.options()
	if len(options) == 0 {
		options = []string{"no flags for this command"}
	}
	h.list("OPTIONS", options)
	if spec.Long != "" {
		h.desc("DESCRIPTION", spec.Long)
	}
	return h.err
}
