// Package render prints API payloads for the command line as text, JSON or
// YAML.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	v1 "github.com/evgeniy-krivenko/exec-notes/pkg/api/notes/v1"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

const (
	timeLayout = "2006-01-02 15:04"
	labelWidth = 40
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}
}

type Printer struct {
	w      io.Writer
	format Format

	header lipgloss.Style
	muted  lipgloss.Style
	warn   lipgloss.Style
}

func New(w io.Writer, format Format) *Printer {
	r := lipgloss.NewRenderer(w)

	return &Printer{
		w:      w,
		format: format,
		header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		muted:  r.NewStyle().Faint(true),
		warn:   r.NewStyle().Foreground(lipgloss.Color("11")),
	}
}

func (p *Printer) Notes(title string, notes []v1.Note) error {
	if p.format != FormatText {
		return p.encode(notes)
	}

	var b strings.Builder
	p.writeNotes(&b, title, notes)

	return p.flush(&b)
}

func (p *Printer) Note(note v1.Note) error {
	if p.format != FormatText {
		return p.encode(note)
	}

	var b strings.Builder
	b.WriteString(p.header.Render(label(note)) + "\n")
	p.writeNoteMeta(&b, note)
	b.WriteString("\n" + note.Content + "\n")

	return p.flush(&b)
}

func (p *Printer) Shares(shares []v1.Share) error {
	if p.format != FormatText {
		return p.encode(shares)
	}

	var b strings.Builder
	b.WriteString(p.header.Render(fmt.Sprintf("Shares (%d)", len(shares))) + "\n")
	if len(shares) == 0 {
		b.WriteString(p.muted.Render("  not shared") + "\n")
	}

	for _, s := range shares {
		recipient := s.SharedWithUserID
		if recipient == "" {
			recipient = "any " + s.SharedWithRole
		}

		by := s.SharedByName
		if by == "" {
			by = s.SharedByUserID
		}

		fmt.Fprintf(&b, "- %s  %s  to %s  by %s\n", s.SharedWithRole, s.PermissionLevel, recipient, by)
		if s.Message != "" {
			fmt.Fprintf(&b, "  %q\n", s.Message)
		}
	}

	return p.flush(&b)
}

func (p *Printer) Notifications(list v1.NotificationList) error {
	if p.format != FormatText {
		return p.encode(list)
	}

	var b strings.Builder
	p.writeNotifications(&b, list.Items, list.UnreadCount)

	return p.flush(&b)
}

func (p *Printer) Dashboard(d v1.Dashboard) error {
	if p.format != FormatText {
		return p.encode(d)
	}

	var b strings.Builder
	if d.Demo {
		b.WriteString(p.muted.Render("demo mode: notes stay on this machine") + "\n")
	}
	for _, w := range d.Warnings {
		b.WriteString(p.warn.Render("! "+w) + "\n")
	}

	p.writeNotes(&b, "Own notes", d.OwnNotes)
	b.WriteString("\n")
	p.writeNotes(&b, "Shared with you", d.SharedNotes)
	b.WriteString("\n")
	p.writeNotifications(&b, d.Notifications, d.UnreadCount)

	return p.flush(&b)
}

func (p *Printer) ShareResult(res v1.ShareResult) error {
	if p.format != FormatText {
		return p.encode(res)
	}

	var b strings.Builder
	switch {
	case res.Success && res.Share != nil:
		fmt.Fprintf(&b, "shared note %s with %s (%s)\n", res.Share.NoteID, res.Share.SharedWithRole, res.Share.PermissionLevel)
	case res.Success:
		b.WriteString("shared\n")
	default:
		b.WriteString(p.warn.Render("share failed: "+res.Error) + "\n")
	}

	return p.flush(&b)
}

// Message prints a one-line outcome; structured formats get {"message": msg}.
func (p *Printer) Message(msg string) error {
	if p.format != FormatText {
		return p.encode(map[string]string{"message": msg})
	}

	_, err := fmt.Fprintln(p.w, msg)
	return err
}

func (p *Printer) writeNotes(b *strings.Builder, title string, notes []v1.Note) {
	b.WriteString(p.header.Render(fmt.Sprintf("%s (%d)", title, len(notes))) + "\n")
	if len(notes) == 0 {
		b.WriteString(p.muted.Render("  no notes") + "\n")
		return
	}

	for _, n := range notes {
		fmt.Fprintf(b, "- %s  %s%s\n", n.ID, label(n), flags(n))
		p.writeNoteMeta(b, n)
	}
}

func (p *Printer) writeNoteMeta(b *strings.Builder, n v1.Note) {
	meta := fmt.Sprintf("  %s, by %s at %s", n.OwnerRole, n.CreatedBy, n.CreatedAt.UTC().Format(timeLayout))
	if n.CreatedForRole != "" {
		meta += ", for " + n.CreatedForRole
	}

	b.WriteString(p.muted.Render(meta) + "\n")
}

func (p *Printer) writeNotifications(b *strings.Builder, items []v1.Notification, unread int) {
	b.WriteString(p.header.Render(fmt.Sprintf("Notifications (%d unread)", unread)) + "\n")
	if len(items) == 0 {
		b.WriteString(p.muted.Render("  nothing new") + "\n")
		return
	}

	for _, n := range items {
		mark := "[ ]"
		if n.IsRead {
			mark = "[x]"
		}

		line := fmt.Sprintf("- %s %s  note %s  %s", mark, n.Type, n.NoteID, n.CreatedAt.UTC().Format(timeLayout))
		if from, ok := n.Metadata["shared_by"].(string); ok && from != "" {
			line += "  from " + from
		}

		b.WriteString(line + "\n")
	}
}

func (p *Printer) flush(b *strings.Builder) error {
	_, err := io.WriteString(p.w, b.String())
	return err
}

func (p *Printer) encode(v any) error {
	switch p.format {
	case FormatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)

	case FormatYAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()

	default:
		return fmt.Errorf("unknown output format %q", p.format)
	}
}

// label is the title, or the first content line cut to labelWidth runes.
func label(n v1.Note) string {
	if n.Title != "" {
		return n.Title
	}

	line, _, _ := strings.Cut(strings.TrimSpace(n.Content), "\n")
	if r := []rune(line); len(r) > labelWidth {
		return string(r[:labelWidth-3]) + "..."
	}

	return line
}

func flags(n v1.Note) string {
	switch {
	case n.IsCollaborative:
		return " [collaborative]"
	case n.IsShared:
		return " [shared]"
	default:
		return ""
	}
}
