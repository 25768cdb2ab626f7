// Package notify shows short toast-style messages in the terminal after an
// auth action finishes.
package notify

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Kind selects the toast colour and icon.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Options mirrors a two-line toast: a title and an optional detail line.
type Options struct {
	Text1 string
	Text2 string
}

var kindColors = map[Kind]lipgloss.Color{
	KindSuccess: lipgloss.Color("#10B981"),
	KindError:   lipgloss.Color("#F43F5E"),
	KindInfo:    lipgloss.Color("#06B6D4"),
}

var kindIcons = map[Kind]string{
	KindSuccess: "✓",
	KindError:   "✗",
	KindInfo:    "i",
}

// Notifier prints toasts to a writer.
type Notifier struct {
	w        io.Writer
	renderer *lipgloss.Renderer
}

// New renders toasts for w. Colours are dropped automatically when w is not
// a terminal.
func New(w io.Writer) *Notifier {
	return &Notifier{w: w, renderer: lipgloss.NewRenderer(w)}
}

// Show renders a toast of the given kind and prints it.
func (n *Notifier) Show(kind Kind, opts Options) {
	fmt.Fprintln(n.w, n.Render(kind, opts))
}

func (n *Notifier) Success(text1, text2 string) { n.Show(KindSuccess, Options{text1, text2}) }
func (n *Notifier) Error(text1, text2 string)   { n.Show(KindError, Options{text1, text2}) }
func (n *Notifier) Info(text1, text2 string)    { n.Show(KindInfo, Options{text1, text2}) }

// Render returns the boxed toast without printing it.
func (n *Notifier) Render(kind Kind, opts Options) string {
	color, ok := kindColors[kind]
	if !ok {
		kind, color = KindInfo, kindColors[KindInfo]
	}

	title := n.renderer.NewStyle().Bold(true).Foreground(color).
		Render(kindIcons[kind] + " " + opts.Text1)

	body := title
	if opts.Text2 != "" {
		body += "\n" + n.renderer.NewStyle().Render(opts.Text2)
	}

	return n.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1).
		Render(body)
}
