package builders

import (
	"fmt"

	"github.com/runebar/runebar/internal/action"
	"github.com/runebar/runebar/internal/launchercontext"
)

func buildChat(ctx launchercontext.Context) []action.Source {
	prompt := ctx.Chat
	if prompt == nil {
		buildLog.Warn("chat context without prompt, skipping")
		return nil
	}

	var actions []action.Action

	if prompt.HasResponse {
		actions = append(actions,
			action.New("copy_response", "Copy Response", "", action.CategoryShare).
				WithShortcut("cmd+c").
				WithIcon(action.IconCopy),
			action.New("copy_last_code", "Copy Last Code Block", "", action.CategoryShare).
				WithIcon(action.IconCopy),
		)
	}

	actions = append(actions,
		action.New("continue_in_chat", "Continue in Chat", "", action.CategoryGeneral).
			WithShortcut("cmd+enter").
			WithIcon(action.IconChat),
		action.New("new_chat", "New Chat", "", action.CategoryGeneral).
			WithShortcut("cmd+n"))

	if !prompt.SessionEmpty {
		actions = append(actions,
			action.New("copy_chat", "Copy Full Conversation", "", action.CategoryShare).
				WithIcon(action.IconCopy),
			action.New("export_markdown", "Export as Markdown", "", action.CategoryShare))
	}

	for _, model := range prompt.Models {
		description := ""
		if model.Name == prompt.CurrentModel {
			description = "Current model"
		}
		title := fmt.Sprintf("Switch to %s", model.Name)
		actions = append(actions,
			action.New("select_model_"+model.ID, title, description, action.CategoryGeneral).
				WithSection("Models").
				WithKeywords("model", model.ID).
				WithKeepOpen())
	}

	if !prompt.SessionEmpty {
		actions = append(actions,
			action.New("clear_conversation", "Clear Conversation", "", action.CategoryDestructive).
				WithIcon(action.IconTrash),
			action.New("delete_chat", "Delete Chat", "", action.CategoryDestructive).
				WithIcon(action.IconTrash))
	}

	return []action.Source{{Namespace: action.NamespaceChat, Actions: actions}}
}
