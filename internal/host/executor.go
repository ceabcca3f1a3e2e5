// Package host executes resolved actions against the operating system:
// clipboard writes, opening files and URLs, and running scriptlet commands
// with their declared tool.
package host

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"

	"github.com/runebar/runebar/internal/action"
	"github.com/runebar/runebar/internal/cliphist"
	"github.com/runebar/runebar/internal/launchercontext"
	"github.com/runebar/runebar/internal/scriptlet"
)

var hostLog = log.WithPrefix("host")

const commandTimeout = 30 * time.Second

// Executor implements the dialog's executor port against the local machine.
type Executor struct {
	// Editor is the command used for open-in-editor actions. Empty falls
	// back to the platform opener.
	Editor string
	// History backs the pin/delete clipboard actions; nil disables them.
	History *cliphist.Store
}

func (e *Executor) Execute(a action.Action, ctx launchercontext.Context) (string, error) {
	if a.HasHandler {
		return e.runHandler(a)
	}

	namespace, local := action.SplitNamespace(a.ID)
	hostLog.Debug("executing", "namespace", namespace, "id", local)

	switch namespace {
	case action.NamespaceClipboard:
		return e.executeClipboard(local, ctx.Clipboard)
	case action.NamespaceFile:
		return e.executeFile(local, ctx.File)
	}

	switch local {
	case "copy_path", "copy_scriptlet_path":
		if ctx.Script == nil {
			return "", fmt.Errorf("no script in context for %s", local)
		}
		return copyText(ctx.Script.Path, "Path copied")
	case "copy_deeplink":
		if ctx.Script == nil {
			return "", fmt.Errorf("no script in context for %s", local)
		}
		return copyText(deeplink(ctx.Script.Name), "Deeplink copied")
	}

	return "", fmt.Errorf("no handler for action %q", a.ID)
}

// runHandler executes a scriptlet-declared command with its tool. The tool
// was validated at parse time; an unknown one here is a programming error.
func (e *Executor) runHandler(a action.Action) (string, error) {
	tool := ""
	if len(a.Keywords) > 0 {
		tool = a.Keywords[0]
	}
	switch tool {
	case "paste", "type", "template":
		return copyText(a.Value, "Copied")
	case "open":
		if err := openWithSystem(strings.TrimSpace(a.Value)); err != nil {
			return "", err
		}
		return "Opened", nil
	}

	name, args, err := scriptlet.ToolCommand(tool, a.Value)
	if err != nil {
		return "", err
	}
	runCtx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	out, err := exec.CommandContext(runCtx, name, args...).CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%s: %w: %s", tool, err, strings.TrimSpace(string(out)))
	}
	return strings.TrimSpace(string(out)), nil
}

func (e *Executor) executeClipboard(id string, entry *launchercontext.ClipboardEntry) (string, error) {
	if entry == nil {
		return "", fmt.Errorf("no clipboard entry in context for %s", id)
	}
	switch id {
	case "clipboard_copy", "clipboard_paste":
		// Paste re-copies and lets the window manager deliver it; the
		// launcher window has already yielded focus by now.
		return copyText(entry.Preview, "Copied to clipboard")
	case "clipboard_pin", "clipboard_unpin":
		if e.History == nil {
			return "", fmt.Errorf("clipboard history not available")
		}
		pinned := id == "clipboard_pin"
		if !e.History.SetPinned(entry.ID, pinned) {
			return "", fmt.Errorf("clipboard entry %q no longer exists", entry.ID)
		}
		if pinned {
			return "Pinned", nil
		}
		return "Unpinned", nil
	case "clipboard_delete":
		if e.History == nil {
			return "", fmt.Errorf("clipboard history not available")
		}
		if !e.History.Delete(entry.ID) {
			return "", fmt.Errorf("clipboard entry %q no longer exists", entry.ID)
		}
		return "Entry deleted", nil
	case "clipboard_delete_all":
		if e.History == nil {
			return "", fmt.Errorf("clipboard history not available")
		}
		e.History.DeleteAll()
		return "Clipboard history cleared", nil
	default:
		return "", fmt.Errorf("no handler for clipboard action %q", id)
	}
}

func (e *Executor) executeFile(id string, entry *launchercontext.FileEntry) (string, error) {
	if entry == nil {
		return "", fmt.Errorf("no file entry in context for %s", id)
	}
	switch id {
	case "open_file", "open_directory":
		if err := openWithSystem(entry.Path); err != nil {
			return "", err
		}
		return "Opened " + entry.Name, nil
	case "reveal_in_finder":
		if err := openWithSystem(filepath.Dir(entry.Path)); err != nil {
			return "", err
		}
		return "Revealed " + entry.Name, nil
	case "copy_path":
		return copyText(entry.Path, "Path copied")
	case "copy_filename":
		return copyText(entry.Name, "Filename copied")
	case "open_in_editor":
		editor := "vi"
		if e.Editor != "" {
			editor = e.Editor
		}
		runCtx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		if err := exec.CommandContext(runCtx, editor, entry.Path).Start(); err != nil {
			return "", err
		}
		return "", nil
	default:
		return "", fmt.Errorf("no handler for file action %q", id)
	}
}

func copyText(text, confirmation string) (string, error) {
	if err := clipboard.WriteAll(text); err != nil {
		return "", fmt.Errorf("clipboard write: %w", err)
	}
	return confirmation, nil
}

// deeplink builds the runebar:// URL that reopens a script by name.
func deeplink(name string) string {
	return "runebar://run/" + strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

func openWithSystem(target string) error {
	var name string
	var args []string
	switch runtime.GOOS {
	case "darwin":
		name = "open"
		args = []string{target}
	case "windows":
		name = "rundll32"
		args = []string{"url.dll,FileProtocolHandler", target}
	default:
		name = "xdg-open"
		args = []string{target}
	}
	runCtx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	return exec.CommandContext(runCtx, name, args...).Start()
}
