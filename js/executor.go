package js

import (
	"strings"

	"github.com/chrisuehlinger/domtree/dom"
)

// ScriptExecutor runs the inline scripts embedded in a document.
type ScriptExecutor struct {
	runtime   *Runtime
	domBinder *DOMBinder
}

// NewScriptExecutor creates a new script executor.
func NewScriptExecutor(runtime *Runtime) *ScriptExecutor {
	return &ScriptExecutor{
		runtime:   runtime,
		domBinder: NewDOMBinder(runtime),
	}
}

// Runtime returns the JavaScript runtime.
func (se *ScriptExecutor) Runtime() *Runtime {
	return se.runtime
}

// DOMBinder returns the DOM binder.
func (se *ScriptExecutor) DOMBinder() *DOMBinder {
	return se.domBinder
}

// SetupDocument binds doc as the global document.
func (se *ScriptExecutor) SetupDocument(doc *dom.Node) {
	se.domBinder.ClearCache()
	se.domBinder.BindDocument(doc)
}

// ExecuteScripts executes every script element under doc in tree order.
// The set of scripts is fixed before the first one runs, so scripts that
// insert or remove other scripts do not change what is executed.
func (se *ScriptExecutor) ExecuteScripts(doc *dom.Node) []error {
	var scripts []*dom.Node
	for n := range doc.Descendants() {
		if el := n.AsElement(); el != nil && el.Name() == dom.HTMLName("script") {
			scripts = append(scripts, n)
		}
	}

	var errors []error
	for _, script := range scripts {
		if err := se.executeScript(script); err != nil {
			errors = append(errors, err)
		}
	}
	return errors
}

// executeScript executes a single script element.
func (se *ScriptExecutor) executeScript(script *dom.Node) error {
	el := script.AsElement()
	scriptType, _ := el.Attribute(dom.AttrName("type"))
	switch strings.ToLower(strings.TrimSpace(scriptType)) {
	case "", "text/javascript", "application/javascript":
	default:
		return nil
	}

	// External scripts are not loaded.
	if src, ok := el.Attribute(dom.AttrName("src")); ok && src != "" {
		return nil
	}

	code := strings.TrimSpace(script.TextContents())
	if code == "" {
		return nil
	}

	id, _ := el.Attribute(dom.AttrName("id"))
	if id == "" {
		id = "inline"
	}

	_, err := se.runtime.ExecuteScript(code, id)
	return err
}
