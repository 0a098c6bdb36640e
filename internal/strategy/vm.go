// Package strategy runs user betting scripts against the arcade's game
// engines. Scripts are plain JavaScript defining a dobet() function that
// adjusts the next bet from the result of the last one.
package strategy

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dop251/goja"
)

// LogEntry is a single log message emitted by a script.
type LogEntry struct {
	Time    time.Time `json:"time"`
	Message string    `json:"message"`
}

// VM wraps a goja runtime with injected helper functions and a log buffer.
type VM struct {
	runtime *goja.Runtime
	dobet   goja.Callable

	mu            sync.Mutex
	stopRequested bool

	logsMu  sync.Mutex
	logs    []LogEntry
	maxLogs int
}

// NewVM creates a runtime with log, console.log, stop and sleep installed.
func NewVM() *VM {
	vm := &VM{
		runtime: goja.New(),
		maxLogs: 500,
	}
	vm.injectGlobals()
	return vm
}

func (vm *VM) injectGlobals() {
	// log(...args) appends to the log buffer.
	vm.runtime.Set("log", func(call goja.FunctionCall) goja.Value {
		parts := make([]string, len(call.Arguments))
		for i, arg := range call.Arguments {
			parts[i] = arg.String()
		}
		vm.appendLog(strings.Join(parts, " "))
		return goja.Undefined()
	})

	// console.log is an alias for log.
	console := vm.runtime.NewObject()
	console.Set("log", vm.runtime.Get("log"))
	vm.runtime.Set("console", console)

	// stop() ends the run after the current round.
	vm.runtime.Set("stop", func(call goja.FunctionCall) goja.Value {
		vm.mu.Lock()
		vm.stopRequested = true
		vm.mu.Unlock()
		return goja.Undefined()
	})

	// sleep(ms) records a delay request; the engine honors it between rounds.
	vm.runtime.Set("sleep", func(call goja.FunctionCall) goja.Value {
		ms := int64(0)
		if len(call.Arguments) > 0 {
			ms = call.Arguments[0].ToInteger()
		}
		vm.runtime.Set("sleeptime", ms)
		return goja.Undefined()
	})
}

func (vm *VM) appendLog(msg string) {
	vm.logsMu.Lock()
	defer vm.logsMu.Unlock()
	if len(vm.logs) >= vm.maxLogs {
		vm.logs = vm.logs[1:]
	}
	vm.logs = append(vm.logs, LogEntry{Time: time.Now(), Message: msg})
}

// Logs returns a copy of the buffered log entries.
func (vm *VM) Logs() []LogEntry {
	vm.logsMu.Lock()
	defer vm.logsMu.Unlock()
	out := make([]LogEntry, len(vm.logs))
	copy(out, vm.logs)
	return out
}

// StopRequested reports whether the script called stop().
func (vm *VM) StopRequested() bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.stopRequested
}

// Load executes the script source once, which must define dobet().
func (vm *VM) Load(src string) error {
	if _, err := vm.runtime.RunString(src); err != nil {
		return fmt.Errorf("script error: %w", err)
	}
	fn, ok := goja.AssertFunction(vm.runtime.Get("dobet"))
	if !ok {
		return fmt.Errorf("script must define a dobet() function")
	}
	vm.dobet = fn
	return nil
}

// CallDoBet invokes the script's dobet() function.
func (vm *VM) CallDoBet() error {
	if vm.dobet == nil {
		return fmt.Errorf("script not loaded")
	}
	if _, err := vm.dobet(goja.Undefined()); err != nil {
		return fmt.Errorf("dobet() failed: %w", err)
	}
	return nil
}

// Set assigns a global variable on the runtime.
func (vm *VM) Set(name string, value any) {
	vm.runtime.Set(name, value)
}

// Float reads a global as float64.
func (vm *VM) Float(name string) float64 {
	v := vm.runtime.Get(name)
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return 0
	}
	return v.ToFloat()
}

// String reads a global as a string.
func (vm *VM) String(name string) string {
	v := vm.runtime.Get(name)
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return ""
	}
	return v.String()
}

// Int reads a global as an int.
func (vm *VM) Int(name string) int {
	v := vm.runtime.Get(name)
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return 0
	}
	return int(v.ToInteger())
}
