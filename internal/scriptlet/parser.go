package scriptlet

import (
	"strings"

	"github.com/charmbracelet/log"
)

var parseLog = log.WithPrefix("scriptlet")

// Parse reads one scriptlet section of a markdown document. The section
// starts at an H2 heading; group names the enclosing H1, if any.
//
// Candidates that cannot form a valid action (empty heading, missing or
// unknown-tool code block) are skipped with a diagnostic; a malformed
// declaration never aborts the parse.
func Parse(group, section string) (Scriptlet, bool) {
	lines := strings.Split(section, "\n")

	s := Scriptlet{Group: group}
	i := 0

	// H2 heading names the scriptlet.
	for ; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if name, ok := strings.CutPrefix(trimmed, "## "); ok {
			s.Name = strings.TrimSpace(name)
			i++
			break
		}
	}
	if s.Name == "" {
		return Scriptlet{}, false
	}
	s.Command = Slugify(s.Name)

	// Main code block: the first fenced block after the heading.
	var rest []string
	tool, code, next := extractFence(lines, i)
	if next < 0 {
		parseLog.Warn("scriptlet has no main code block", "name", s.Name)
		return Scriptlet{}, false
	}
	s.Tool = tool
	if s.Tool == "" {
		s.Tool = "bash"
	}
	s.Code = code
	s.Inputs = ExtractInputs(code)
	rest = lines[next:]

	s.Actions = parseDeclaredActions(s.Name, rest)
	return s, true
}

// parseDeclaredActions walks the lines after the main code block and turns
// each H3 section into an Action. Invalid candidates are skipped.
func parseDeclaredActions(scriptletName string, lines []string) []Action {
	var actions []Action

	for i := 0; i < len(lines); {
		trimmed := strings.TrimSpace(lines[i])
		heading, ok := strings.CutPrefix(trimmed, "### ")
		if !ok {
			i++
			continue
		}
		name := strings.TrimSpace(heading)

		// Collect this H3's body up to the next H3.
		body := []string{}
		j := i + 1
		for ; j < len(lines); j++ {
			if strings.HasPrefix(strings.TrimSpace(lines[j]), "### ") {
				break
			}
			body = append(body, lines[j])
		}
		i = j

		if name == "" {
			parseLog.Warn("skipping declared action with empty heading", "scriptlet", scriptletName)
			continue
		}
		act, ok := parseActionBody(name, body)
		if !ok {
			parseLog.Warn("skipping malformed declared action", "scriptlet", scriptletName, "action", name)
			continue
		}
		actions = append(actions, act)
	}

	return actions
}

func parseActionBody(name string, body []string) (Action, bool) {
	act := Action{Name: name, Command: Slugify(name)}
	if act.Command == "" {
		return Action{}, false
	}

	for _, line := range body {
		trimmed := strings.TrimSpace(line)
		if meta, ok := strings.CutPrefix(trimmed, "<!--"); ok {
			meta = strings.TrimSpace(strings.TrimSuffix(meta, "-->"))
			if v, ok := strings.CutPrefix(meta, "shortcut:"); ok {
				act.Shortcut = strings.TrimSpace(v)
			} else if v, ok := strings.CutPrefix(meta, "description:"); ok {
				act.Description = strings.TrimSpace(v)
			}
		}
	}

	tool, code, next := extractFence(body, 0)
	if next < 0 || strings.TrimSpace(code) == "" {
		return Action{}, false
	}
	if tool == "" {
		tool = "bash"
	}
	if _, known := validTools[tool]; !known {
		return Action{}, false
	}

	act.Tool = tool
	act.Code = code
	act.Inputs = ExtractInputs(code)
	return act, true
}

// extractFence finds the first fenced code block at or after start and
// returns its language, content, and the line index just past the closing
// fence. next is -1 when no complete fence exists.
func extractFence(lines []string, start int) (tool, code string, next int) {
	for i := start; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(trimmed, "```") {
			continue
		}
		tool = strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
		var content []string
		for j := i + 1; j < len(lines); j++ {
			if strings.TrimSpace(lines[j]) == "```" {
				return tool, strings.Join(content, "\n"), j + 1
			}
			content = append(content, lines[j])
		}
		return "", "", -1
	}
	return "", "", -1
}
