// Package jsenv runs emitted page scripts inside goja against a minimal
// browser stub. It backs the protection and packager tests.
//
// The stub exposes `window` and `document` plus these test hooks:
//
//	__clock             value returned by performance.now()
//	__intervals         timers registered with setInterval
//	__fire(t, type, ev) dispatch ev to listeners of type on t
//	__tick()            run every live interval callback once
//	__flushTimeouts()   run and drop every pending setTimeout callback
//	__find(pred)        first node in the document tree matching pred
package jsenv

import (
	"fmt"

	"github.com/dop251/goja"
)

const domStub = `
var __clock = 0;
var __intervals = [];
var __timeouts = [];

function __node(tag) {
  var html = "";
  var n = {
    tagName: tag, id: "", className: "", textContent: "", text: "",
    children: [], attrs: {}, style: {}, listeners: {}, parentNode: null,
    setAttribute: function (k, v) {
      this.attrs[k] = String(v);
      if (k === "id") { this.id = String(v); }
    },
    getAttribute: function (k) {
      return Object.prototype.hasOwnProperty.call(this.attrs, k) ? this.attrs[k] : null;
    },
    appendChild: function (c) { c.parentNode = this; this.children.push(c); return c; },
    removeChild: function (c) {
      var i = this.children.indexOf(c);
      if (i >= 0) { this.children.splice(i, 1); }
      c.parentNode = null;
      return c;
    },
    addEventListener: function (type, fn) {
      (this.listeners[type] = this.listeners[type] || []).push(fn);
    }
  };
  Object.defineProperty(n, "innerHTML", {
    enumerable: true,
    get: function () { return html; },
    set: function (v) { html = String(v); n.children = []; }
  });
  return n;
}

var document = __node("#document");
document.documentElement = __node("html");
document.head = __node("head");
document.body = __node("body");
document.documentElement.appendChild(document.head);
document.documentElement.appendChild(document.body);
document.hidden = false;
document.visibilityState = "visible";
document.readyState = "complete";
document.createElement = function (tag) { return __node(String(tag).toLowerCase()); };

function __find(pred) {
  function walk(n) {
    if (pred(n)) { return n; }
    for (var i = 0; i < n.children.length; i++) {
      var f = walk(n.children[i]);
      if (f) { return f; }
    }
    return null;
  }
  return walk(document.documentElement);
}
document.getElementById = function (id) {
  return __find(function (n) { return n.id === id; });
};

var window = __node("#window");
window.document = document;
window.performance = { now: function () { return __clock; } };
window.setInterval = function (fn, ms) { __intervals.push({fn: fn, ms: ms, cleared: false}); return __intervals.length; };
window.clearInterval = function (id) { if (__intervals[id - 1]) { __intervals[id - 1].cleared = true; } };
window.setTimeout = function (fn, ms) { __timeouts.push({fn: fn, ms: ms}); return __timeouts.length; };
window.outerWidth = 1280;
window.innerWidth = 1280;
window.outerHeight = 800;
window.innerHeight = 800;
window.location = { hostname: "example.com" };
window.console = { log: function () {}, info: function () {}, warn: function () {}, error: function () {} };

function __fire(target, type, props) {
  var ev = props || {};
  ev.type = type;
  ev.defaultPrevented = false;
  ev.preventDefault = function () { ev.defaultPrevented = true; };
  ev.stopPropagation = function () {};
  var fns = target.listeners[type] || [];
  for (var i = 0; i < fns.length; i++) { fns[i].call(target, ev); }
  return ev;
}
function __tick() {
  for (var i = 0; i < __intervals.length; i++) {
    if (!__intervals[i].cleared) { __intervals[i].fn(); }
  }
}
function __flushTimeouts() {
  var ts = __timeouts;
  __timeouts = [];
  for (var i = 0; i < ts.length; i++) { ts[i].fn(); }
}
`

// Env is one isolated goja runtime with the browser stub loaded.
type Env struct {
	vm *goja.Runtime
}

// New returns an Env whose window.location.hostname is host.
func New(host string) (*Env, error) {
	vm := goja.New()
	if _, err := vm.RunString(domStub); err != nil {
		return nil, fmt.Errorf("load dom stub: %w", err)
	}
	if err := vm.Set("__host", host); err != nil {
		return nil, fmt.Errorf("set host: %w", err)
	}
	if _, err := vm.RunString(`window.location.hostname = __host;`); err != nil {
		return nil, fmt.Errorf("set host: %w", err)
	}
	return &Env{vm: vm}, nil
}

// Run executes src in the global scope.
func (e *Env) Run(src string) error {
	_, err := e.vm.RunString(src)
	return err
}

// Eval evaluates expr and exports the result to a Go value.
func (e *Env) Eval(expr string) (any, error) {
	v, err := e.vm.RunString(expr)
	if err != nil {
		return nil, err
	}
	return v.Export(), nil
}

// String evaluates expr and converts the result with String().
func (e *Env) String(expr string) (string, error) {
	v, err := e.vm.RunString(expr)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// Bool evaluates expr as a JavaScript truth value.
func (e *Env) Bool(expr string) (bool, error) {
	v, err := e.vm.RunString(expr)
	if err != nil {
		return false, err
	}
	return v.ToBoolean(), nil
}

// Int evaluates expr as an integer.
func (e *Env) Int(expr string) (int64, error) {
	v, err := e.vm.RunString(expr)
	if err != nil {
		return 0, err
	}
	return v.ToInteger(), nil
}
