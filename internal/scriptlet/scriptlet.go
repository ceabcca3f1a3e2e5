// Package scriptlet parses markdown scriptlet files: an H2 heading names the
// scriptlet, the first fenced code block under it is the main command, and H3
// headings after the main block declare user actions for the actions menu.
package scriptlet

import (
	"fmt"
	"strings"
)

// Action is one H3-declared action inside a scriptlet body.
//
//	### Copy to Clipboard
//	<!-- shortcut: cmd+c -->
//	```bash
//	echo "{{selection}}" | pbcopy
//	```
type Action struct {
	// Name is the H3 heading text.
	Name string
	// Command is the slugified heading; two headings that slug the same
	// produce colliding ids resolved at merge time.
	Command string
	// Tool is the fence language (bash, open, paste, ...).
	Tool string
	// Code is the fenced block content.
	Code string
	// Inputs are {{placeholder}} names referenced by the code.
	Inputs      []string
	Shortcut    string
	Description string
}

// Scriptlet is a parsed markdown scriptlet.
type Scriptlet struct {
	Name    string
	Command string
	Tool    string
	Code    string
	Inputs  []string
	Group   string
	// Actions are the H3-declared custom actions, in declaration order.
	Actions []Action
}

// validTools are the fence languages a scriptlet action may execute with.
var validTools = map[string]struct{}{
	"bash": {}, "sh": {}, "zsh": {},
	"python": {}, "py": {},
	"js": {}, "ts": {}, "node": {},
	"open": {}, "paste": {}, "type": {}, "transform": {}, "template": {},
}

// ToolCommand maps an interpreter tool to the process invocation that runs
// code. Tools handled inside the launcher itself (open, paste, type,
// template) have no process form and return an error.
func ToolCommand(tool, code string) (name string, args []string, err error) {
	switch tool {
	case "bash", "sh", "zsh":
		return tool, []string{"-c", code}, nil
	case "python", "py":
		return "python3", []string{"-c", code}, nil
	case "js", "node":
		return "node", []string{"-e", code}, nil
	case "ts":
		return "npx", []string{"tsx", "-e", code}, nil
	case "transform":
		// Transforms read the working text on stdin and write the result.
		return "sh", []string{"-c", code}, nil
	}
	return "", nil, fmt.Errorf("tool %q cannot be executed as a process", tool)
}

// Slugify converts a heading to a command identifier: lowercase, runs of
// non-alphanumerics collapse to single hyphens.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// ExtractInputs finds the {{placeholder}} names in code, in first-seen order
// without duplicates.
func ExtractInputs(code string) []string {
	var inputs []string
	seen := map[string]struct{}{}
	for i := 0; i+1 < len(code); i++ {
		if code[i] != '{' || code[i+1] != '{' {
			continue
		}
		end := strings.Index(code[i+2:], "}}")
		if end < 0 {
			break
		}
		name := strings.TrimSpace(code[i+2 : i+2+end])
		if name != "" {
			if _, dup := seen[name]; !dup {
				seen[name] = struct{}{}
				inputs = append(inputs, name)
			}
		}
		i += end + 3
	}
	return inputs
}
