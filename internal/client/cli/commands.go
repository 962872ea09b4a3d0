package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/facecam/internal/client/models"
	"github.com/dmitrijs2005/facecam/internal/client/resources"
	"github.com/dmitrijs2005/facecam/internal/client/view"
	"github.com/dmitrijs2005/facecam/internal/common"
	"github.com/dmitrijs2005/facecam/internal/netx"
)

var ErrBadArgs = errors.New("bad arguments")

// requireSync returns the resource cache of the current session.
func (a *App) requireSync() (*resources.Sync, error) {
	_, rs := a.current()
	if rs == nil {
		fmt.Fprintln(a.out, "Please login first")
		return nil, common.ErrNotLoggedIn
	}
	return rs, nil
}

// Feed opens the feed view and refreshes the frames.
func (a *App) Feed(ctx context.Context) error {
	rs, err := a.requireSync()
	if err != nil {
		return err
	}
	a.view.Show(view.Feed)
	rs.RefreshFrames(ctx)
	if a.isLoggedIn() {
		a.renderFeed(rs.Snapshot())
	}
	return nil
}

// Settings opens the settings view and refreshes cameras, faces and the
// chat id.
func (a *App) Settings(ctx context.Context) error {
	rs, err := a.requireSync()
	if err != nil {
		return err
	}
	a.view.Show(view.Settings)
	rs.RefreshSettings(ctx)
	if a.isLoggedIn() {
		a.renderSettings(rs.Snapshot())
	}
	return nil
}

// Refresh reloads both collections and redraws the current view.
func (a *App) Refresh(ctx context.Context) error {
	rs, err := a.requireSync()
	if err != nil {
		return err
	}
	rs.RefreshFrames(ctx)
	if a.isLoggedIn() {
		rs.RefreshSettings(ctx)
	}
	a.render(rs)
	return nil
}

func (a *App) Menu(ctx context.Context) error {
	s, _ := a.current()
	if !s.Valid() {
		return common.ErrNotLoggedIn
	}
	a.view.ToggleMenu()
	if a.view.MenuOpen() {
		a.renderMenu(s)
	}
	return nil
}

// Enroll links a camera: enroll [<id> [<name>...]]. Missing values are
// prompted for.
func (a *App) Enroll(ctx context.Context, args []string) error {
	rs, err := a.requireSync()
	if err != nil {
		return err
	}

	id, name := argAt(args, 0), joinFrom(args, 1)
	if id == "" {
		if id, err = getSimpleText(a.reader, "Camera id", a.out); err != nil {
			return err
		}
	}
	if name == "" && len(args) < 2 {
		if name, err = getSimpleText(a.reader, "Camera name", a.out); err != nil {
			return err
		}
	}
	a.view.SetNewCamera(id, name)

	out := rs.EnrollCamera(ctx, id, name)
	if out.OK() {
		a.view.CameraEnrolled()
	} else {
		a.view.SetSettingsError(out.Message())
	}
	a.afterSettingsMutation(rs)
	return nil
}

// Rename renames a linked camera: rename <id> [<name>...].
func (a *App) Rename(ctx context.Context, args []string) error {
	rs, err := a.requireSync()
	if err != nil {
		return err
	}
	id := argAt(args, 0)
	if id == "" {
		fmt.Fprintln(a.out, "Usage: rename <camera id> [new name]")
		return ErrBadArgs
	}

	a.view.BeginRename(id)
	text := joinFrom(args, 1)
	if len(args) < 2 {
		if text, err = getSimpleText(a.reader, "New name", a.out); err != nil {
			a.view.EndRename()
			return err
		}
	}
	a.view.SetRenameText(text)

	_, text, _ = a.view.Renaming()
	out := rs.RenameCamera(ctx, id, text)
	a.view.EndRename()
	if out.OK() {
		a.view.SetSettingsError("")
	} else {
		a.view.SetSettingsError(out.Message())
	}
	a.afterSettingsMutation(rs)
	return nil
}

func (a *App) Exclude(ctx context.Context, args []string) error {
	rs, err := a.requireSync()
	if err != nil {
		return err
	}
	id := argAt(args, 0)
	if id == "" {
		fmt.Fprintln(a.out, "Usage: exclude <camera id>")
		return ErrBadArgs
	}

	out := rs.ExcludeCamera(ctx, id)
	a.view.SetSettingsError(out.Message())
	a.afterSettingsMutation(rs)
	return nil
}

func (a *App) DeleteFace(ctx context.Context, args []string) error {
	rs, err := a.requireSync()
	if err != nil {
		return err
	}
	name := joinFrom(args, 0)
	if name == "" {
		fmt.Fprintln(a.out, "Usage: deleteface <face name>")
		return ErrBadArgs
	}

	out := rs.DeleteFace(ctx, name)
	a.view.SetSettingsError(out.Message())
	a.afterSettingsMutation(rs)
	return nil
}

// ChatID sets the notification channel: chatid [<id>].
func (a *App) ChatID(ctx context.Context, args []string) error {
	rs, err := a.requireSync()
	if err != nil {
		return err
	}

	a.view.BeginChatEdit()
	text := argAt(args, 0)
	if text == "" {
		if text, err = getSimpleText(a.reader, "Telegram chat id", a.out); err != nil {
			a.view.EndChatEdit()
			return err
		}
	}
	a.view.SetChatText(text)

	out := rs.UpdateNotificationChannel(ctx, a.view.ChatText())
	if out.OK() {
		a.view.EndChatEdit()
		a.view.SetSettingsError("")
	} else {
		a.view.SetSettingsError(out.Message())
	}
	a.afterSettingsMutation(rs)
	return nil
}

// Name saves a frame as a face: name <n> [<face>...]. Running it again for
// the same frame without a face name closes the input.
func (a *App) Name(ctx context.Context, args []string) error {
	rs, err := a.requireSync()
	if err != nil {
		return err
	}
	idx, fr, err := a.frameArg(rs, args)
	if err != nil {
		return err
	}

	face := joinFrom(args, 1)
	if face == "" {
		a.view.ToggleNaming(idx)
		if _, _, open := a.view.Naming(); !open {
			return nil
		}
		if face, err = getSimpleText(a.reader, "Face name", a.out); err != nil {
			return err
		}
	} else if cur, _, open := a.view.Naming(); !open || cur != idx {
		a.view.ToggleNaming(idx)
	}
	if face == "" {
		a.view.ToggleNaming(idx)
		return nil
	}
	a.view.SetNamingText(face)

	_, face, _ = a.view.Naming()
	out := rs.SaveFace(ctx, face, fr.CameraID, fr.Name)
	if out.OK() {
		a.view.FaceSaved()
		fmt.Fprintf(a.out, "Saved %s\n", face)
	} else {
		a.view.SetFeedError(out.Message())
	}
	a.afterFeedMutation(rs)
	return nil
}

// Clear removes a frame from the feed: clear <n>.
func (a *App) Clear(ctx context.Context, args []string) error {
	rs, err := a.requireSync()
	if err != nil {
		return err
	}
	_, fr, err := a.frameArg(rs, args)
	if err != nil {
		return err
	}

	out := rs.ClearFrame(ctx, fr.CameraID, fr.Name)
	a.view.SetFeedError(out.Message())
	a.afterFeedMutation(rs)
	return nil
}

// Open prints the link to a frame's image: open <n>.
func (a *App) Open(ctx context.Context, args []string) error {
	rs, err := a.requireSync()
	if err != nil {
		return err
	}
	_, fr, err := a.frameArg(rs, args)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, fr.URL)
	return nil
}

// Download saves a frame's image to a local file: download <n> <path>.
func (a *App) Download(ctx context.Context, args []string) error {
	rs, err := a.requireSync()
	if err != nil {
		return err
	}
	_, fr, err := a.frameArg(rs, args)
	if err != nil {
		return err
	}
	path := argAt(args, 1)
	if path == "" {
		fmt.Fprintln(a.out, "Usage: download <n> <path>")
		return ErrBadArgs
	}

	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	defer f.Close()

	n, err := netx.DownloadPresignedURL(ctx, a.download, fr.URL, f)
	if err != nil {
		a.log.Error(ctx, "frame download failed", "frame", fr.Name, "error", err)
		fmt.Fprintln(a.out, "Download failed")
		return err
	}
	fmt.Fprintf(a.out, "Saved %d bytes to %s\n", n, path)
	return nil
}

// frameArg resolves the 1-based frame number in args[0] against the current
// feed and returns its 0-based index.
func (a *App) frameArg(rs *resources.Sync, args []string) (int, models.Frame, error) {
	n, err := strconv.Atoi(argAt(args, 0))
	if err != nil {
		fmt.Fprintln(a.out, "Frame number expected")
		return 0, models.Frame{}, ErrBadArgs
	}
	frames := rs.Snapshot().Frames
	if n < 1 || n > len(frames) {
		fmt.Fprintf(a.out, "No frame %d\n", n)
		return 0, models.Frame{}, ErrBadArgs
	}
	return n - 1, frames[n-1], nil
}

func (a *App) afterSettingsMutation(rs *resources.Sync) {
	if !a.isLoggedIn() {
		return
	}
	if a.view.View() == view.Settings {
		a.renderSettings(rs.Snapshot())
	} else if msg := a.view.SettingsError(); msg != "" {
		fmt.Fprintln(a.out, msg)
	}
}

func (a *App) afterFeedMutation(rs *resources.Sync) {
	if !a.isLoggedIn() {
		return
	}
	if a.view.View() == view.Feed {
		a.renderFeed(rs.Snapshot())
	} else if msg := a.view.FeedError(); msg != "" {
		fmt.Fprintln(a.out, msg)
	}
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func joinFrom(args []string, i int) string {
	if i < len(args) {
		return strings.Join(args[i:], " ")
	}
	return ""
}
