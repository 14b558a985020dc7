// Package js runs scripts against dom trees.
// It uses the goja JavaScript engine (pure Go ES5.1+ implementation).
package js

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/dop251/goja"
)

// Runtime wraps a goja JavaScript runtime with a console and a document.
type Runtime struct {
	vm       *goja.Runtime
	document *goja.Object
	out      io.Writer
	mu       sync.Mutex
	errors   []error
	onError  func(error)
}

// NewRuntime creates a new JavaScript runtime whose console writes to
// standard output.
func NewRuntime() *Runtime {
	return NewRuntimeWithOutput(os.Stdout)
}

// NewRuntimeWithOutput creates a new JavaScript runtime whose console writes
// to out.
func NewRuntimeWithOutput(out io.Writer) *Runtime {
	r := &Runtime{
		vm:     goja.New(),
		out:    out,
		errors: make([]error, 0),
	}
	r.setupConsole()
	return r
}

// VM returns the underlying goja runtime.
func (r *Runtime) VM() *goja.Runtime {
	return r.vm
}

// SetDocument sets the document object for this runtime.
func (r *Runtime) SetDocument(doc *goja.Object) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.document = doc
	r.vm.Set("document", doc)
}

// SetOnError sets a callback for JavaScript errors. The callback runs after
// the failing script has finished and may call back into the Runtime.
func (r *Runtime) SetOnError(handler func(error)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onError = handler
}

// Execute runs JavaScript code and returns the result.
func (r *Runtime) Execute(code string) (result goja.Value, err error) {
	return r.ExecuteScript(code, "")
}

// ExecuteScript compiles and runs code, using src as the script name in
// error messages.
func (r *Runtime) ExecuteScript(code, src string) (goja.Value, error) {
	r.mu.Lock()
	result, err := r.run(code, src)
	var onError func(error)
	if err != nil {
		r.errors = append(r.errors, err)
		onError = r.onError
	}
	r.mu.Unlock()

	if onError != nil {
		onError(err)
	}
	return result, err
}

// run executes code with r.mu held.
func (r *Runtime) run(code, src string) (result goja.Value, err error) {
	// Recover from panics in the goja parser/compiler
	defer func() {
		if p := recover(); p != nil {
			result = nil
			err = fmt.Errorf("script execution panic in %q: %v", src, p)
		}
	}()

	program, err := goja.Compile(src, code, false)
	if err != nil {
		return nil, err
	}
	return r.vm.RunProgram(program)
}

// Errors returns all errors that occurred during execution.
func (r *Runtime) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]error{}, r.errors...)
}

// ClearErrors clears the error list.
func (r *Runtime) ClearErrors() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = r.errors[:0]
}

// setupConsole creates the console object with log, warn and error.
func (r *Runtime) setupConsole() {
	console := r.vm.NewObject()
	for method, prefix := range map[string]string{
		"log":   "",
		"info":  "[INFO] ",
		"warn":  "[WARN] ",
		"error": "[ERROR] ",
	} {
		console.Set(method, func(call goja.FunctionCall) goja.Value {
			fmt.Fprintln(r.out, prefix+formatArgs(call.Arguments))
			return goja.Undefined()
		})
	}
	r.vm.Set("console", console)
}

// formatArgs formats function call arguments for console output.
func formatArgs(args []goja.Value) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = FormatValue(arg)
	}
	return strings.Join(parts, " ")
}

// FormatValue formats a single value the way console.log prints it.
func FormatValue(v goja.Value) string {
	if v == nil || goja.IsUndefined(v) {
		return "undefined"
	}
	if goja.IsNull(v) {
		return "null"
	}
	return v.String()
}
