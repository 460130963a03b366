package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophnotes/internal/api"
	"github.com/dmitrijs2005/gophnotes/internal/filex"
)

func (a *App) list(ctx context.Context, args []string) {
	res := a.client.ListNotes(ctx)
	if !report(a.out, res) {
		return
	}
	if len(res.Value) == 0 {
		fmt.Fprintln(a.out, "No notes yet")
		return
	}
	for _, n := range res.Value {
		fmt.Fprintln(a.out, noteLine(n))
	}
}

func noteLine(n api.Note) string {
	var b strings.Builder
	b.WriteString(n.ID)
	b.WriteString("  ")
	if n.Icon != nil {
		b.WriteString(*n.Icon + " ")
	}
	b.WriteString(n.Title)
	if !n.IsOwner && n.SharedBy != "" {
		b.WriteString("  (shared by " + n.SharedBy + ")")
	}
	return b.String()
}

func (a *App) show(ctx context.Context, args []string) {
	res := a.client.GetNote(ctx, args[0])
	if !report(a.out, res) {
		return
	}
	n := res.Value
	fmt.Fprintln(a.out, noteLine(n))
	if n.Color != nil {
		fmt.Fprintln(a.out, "color:", *n.Color)
	}
	fmt.Fprintln(a.out, "updated:", n.UpdatedAt.Local().Format("2006-01-02 15:04"))
	fmt.Fprintln(a.out, strings.Repeat("-", 40))
	fmt.Fprintln(a.out, n.Content)
}

func (a *App) newNote(ctx context.Context, args []string) {
	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	content, _ := GetMultiline(a.reader, "Content", a.out)
	icon, _ := GetSimpleText(a.reader, "Icon (optional)", a.out)
	color, _ := GetSimpleText(a.reader, "Color (optional)", a.out)

	res := a.client.CreateNote(ctx, &api.CreateNoteRequest{
		Title:   title,
		Content: content,
		Icon:    optional(icon),
		Color:   optional(color),
	})
	if report(a.out, res) {
		fmt.Fprintln(a.out, noteLine(res.Value))
	}
}

// edit asks for every field; an empty answer keeps the current value.
func (a *App) edit(ctx context.Context, args []string) {
	cur := a.client.GetNote(ctx, args[0])
	if !report(a.out, cur) {
		return
	}
	n := cur.Value

	req := &api.UpdateNoteRequest{NoteID: n.ID, Title: n.Title, Content: n.Content, Icon: n.Icon, Color: n.Color}

	if title, _ := GetSimpleText(a.reader, fmt.Sprintf("Title [%s]", n.Title), a.out); title != "" {
		req.Title = title
	}
	if content, _ := GetMultiline(a.reader, "Content (empty keeps current)", a.out); content != "" {
		req.Content = content
	}
	if icon, _ := GetSimpleText(a.reader, "Icon (empty keeps current)", a.out); icon != "" {
		req.Icon = optional(icon)
	}
	if color, _ := GetSimpleText(a.reader, "Color (empty keeps current)", a.out); color != "" {
		req.Color = optional(color)
	}

	report(a.out, a.client.UpdateNote(ctx, req))
}

func (a *App) delete(ctx context.Context, args []string) {
	report(a.out, a.client.DeleteNote(ctx, args[0]))
}

// export asks the server for a download link and saves the Markdown into
// the configured export directory.
func (a *App) export(ctx context.Context, args []string) {
	res := a.client.ExportNote(ctx, args[0])
	if !report(a.out, res) {
		return
	}
	link := res.Value
	fmt.Fprintf(a.out, "%s\n(valid until %s)\n", link.URL, link.ExpiresAt.Local().Format("2006-01-02 15:04"))

	body, err := download(ctx, link.URL)
	if err != nil {
		fmt.Fprintf(a.out, "Error: download failed: %v\n", err)
		return
	}

	path, err := filex.WriteFileIn(a.config.ExportDir, args[0]+".md", body)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Saved to", path)
}
