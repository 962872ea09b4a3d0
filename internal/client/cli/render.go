package cli

import (
	"fmt"

	"github.com/dmitrijs2005/facecam/internal/client/models"
	"github.com/dmitrijs2005/facecam/internal/client/resources"
	"github.com/dmitrijs2005/facecam/internal/client/view"
)

func (a *App) render(rs *resources.Sync) {
	if !a.isLoggedIn() {
		return
	}
	if a.view.View() == view.Settings {
		a.renderSettings(rs.Snapshot())
		return
	}
	a.renderFeed(rs.Snapshot())
}

// renderFeed lists frames newest first, numbered from 1. Dates and times are
// printed as the service sent them.
func (a *App) renderFeed(s models.Snapshot) {
	fmt.Fprintln(a.out, "Feed")
	switch {
	case s.Loading && len(s.Frames) == 0:
		fmt.Fprintln(a.out, "  Loading...")
	case len(s.Frames) == 0:
		fmt.Fprintln(a.out, "  No frames")
	}

	naming, text, open := a.view.Naming()
	for i, f := range s.Frames {
		fmt.Fprintf(a.out, "  %d. %s %s  %s  %s\n", i+1, f.Date, f.Time, s.CameraLabel(f), f.Name)
		if open && naming == i {
			fmt.Fprintf(a.out, "     face name: %s_\n", text)
		}
	}
	if msg := a.view.FeedError(); msg != "" {
		fmt.Fprintf(a.out, "  ! %s\n", msg)
	}
}

func (a *App) renderSettings(s models.Snapshot) {
	fmt.Fprintln(a.out, "Cameras")
	if len(s.Cameras) == 0 {
		fmt.Fprintln(a.out, "  none")
	}
	renaming, text, open := a.view.Renaming()
	for _, c := range s.Cameras {
		if open && renaming == c.ID {
			fmt.Fprintf(a.out, "  %s  %s_\n", c.ID, text)
			continue
		}
		fmt.Fprintf(a.out, "  %s  %s\n", c.ID, c.Name)
	}

	fmt.Fprintln(a.out, "Faces")
	if len(s.Faces) == 0 {
		fmt.Fprintln(a.out, "  none")
	}
	for _, f := range s.Faces {
		fmt.Fprintf(a.out, "  %s\n", f.Name)
	}

	switch {
	case s.ChatID == "":
		fmt.Fprintln(a.out, "Telegram chat id: not set (use 'chatid <id>')")
	case a.view.ChatEditing(s.ChatID):
		fmt.Fprintf(a.out, "Telegram chat id: %s -> %s_\n", s.ChatID, a.view.ChatText())
	default:
		fmt.Fprintf(a.out, "Telegram chat id: %s\n", s.ChatID)
	}

	if msg := a.view.SettingsError(); msg != "" {
		fmt.Fprintf(a.out, "  ! %s\n", msg)
	}
}

func (a *App) renderMenu(s models.Session) {
	fmt.Fprintf(a.out, "Logged in as %s\n", s.Username)
	fmt.Fprintln(a.out, "  feed | settings | logout")
}
