// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package protection

// Shared helpers. None of them installs a guard.
const helpersJS = `function now() {
  var p = root.performance;
  return p && typeof p.now === "function" ? p.now() : new Date().getTime();
}
function stop(e) {
  if (e && typeof e.preventDefault === "function") { e.preventDefault(); }
  if (e && typeof e.stopPropagation === "function") { e.stopPropagation(); }
}
function keyName(e) {
  var code = String(e.code || "");
  if (code.length === 4 && code.indexOf("Key") === 0) { return code.charAt(3).toLowerCase(); }
  return String(e.key || "").toLowerCase();
}
function editable(t) {
  if (!t) { return false; }
  var tag = String(t.tagName || "").toLowerCase();
  return tag === "input" || tag === "textarea" || t.isContentEditable === true;
}
function addStyle(css) {
  var el = doc.createElement("style");
  el.textContent = css;
  (doc.head || doc.documentElement).appendChild(el);
}
function toast(msg) {
  var body = doc.body;
  if (!body) { return; }
  var el = doc.createElement("div");
  el.setAttribute("role", "alert");
  el.setAttribute("data-pg-toast", "1");
  el.style.cssText = "position:fixed;bottom:24px;left:50%;transform:translateX(-50%);z-index:2147483647;" +
    "padding:10px 16px;border-radius:6px;background:rgba(20,20,20,.92);color:#fff;font:14px/1.4 sans-serif;pointer-events:none";
  el.textContent = msg;
  body.appendChild(el);
  root.setTimeout(function () {
    if (el.parentNode) { el.parentNode.removeChild(el); }
  }, cfg.toastMs);
}
`

const fingerprintJS = `if (doc.documentElement) { doc.documentElement.setAttribute("data-pg-owner", cfg.fingerprint); }
`

// machineJS declares the shared state machine. Guards feed it through the
// named transitions or register checks run on every tick.
const machineJS = `var NORMAL = "NORMAL", SUSPECT = "SUSPECT", BLURRED = "BLURRED", BLOCKED = "BLOCKED";
function setBlur(on) {
  if (doc.body) { doc.body.style.filter = on ? "blur(24px)" : ""; }
}
function blockPage() {
  var body = doc.body;
  if (!body) { return; }
  body.innerHTML = "";
  var note = doc.createElement("div");
  note.className = "pg-notice";
  note.setAttribute("data-pg-blocked", "1");
  note.textContent = "Developer tools are not allowed on this page. Close them and reload.";
  body.appendChild(note);
}
var machine = {
  state: NORMAL,
  hiddenAt: -1,
  blurredAt: 0,
  checks: [],
  enter: function (next) {
    this.state = next;
    if (doc.documentElement) { doc.documentElement.setAttribute("data-pg-state", next); }
  },
  onHidden: function (t) {
    if (this.state === BLOCKED) { return; }
    this.hiddenAt = t;
  },
  onVisible: function (t) {
    if (this.state === BLOCKED || this.hiddenAt < 0) { return; }
    var away = t - this.hiddenAt;
    this.hiddenAt = -1;
    if (away < cfg.screenshotMs) { this.onCapture(t); }
  },
  onCapture: function (t) {
    if (this.state !== NORMAL) { return; }
    this.enter(SUSPECT);
    this.tick(t);
  },
  onDevtoolsDelta: function (delta) {
    if (this.state === BLOCKED || !(delta > cfg.devtoolsPx)) { return; }
    setBlur(false);
    this.enter(BLOCKED);
    blockPage();
  },
  tick: function (t) {
    if (this.state === BLOCKED) { return; }
    if (this.state === SUSPECT) {
      this.blurredAt = t;
      this.enter(BLURRED);
      setBlur(true);
      toast("Screen capture is not allowed on this page");
    } else if (this.state === BLURRED && t - this.blurredAt >= cfg.blurMs) {
      setBlur(false);
      this.enter(NORMAL);
    }
    for (var i = 0; i < this.checks.length; i++) { this.checks[i](t); }
  }
};
machine.enter(NORMAL);
`

const rightClickJS = `doc.addEventListener("contextmenu", function (e) {
  stop(e);
  toast("Right click is disabled on this page");
}, true);
`

const textSelectionJS = `addStyle("body{-webkit-user-select:none;-moz-user-select:none;-ms-user-select:none;user-select:none}" +
  "input,textarea,[contenteditable]{-webkit-user-select:text;user-select:text}");
doc.addEventListener("selectstart", function (e) {
  if (!editable(e.target)) { stop(e); }
}, true);
doc.addEventListener("copy", function (e) {
  if (editable(e.target)) { return; }
  stop(e);
  toast("Copying is disabled on this page");
}, true);
`

const printJS = `addStyle("@media print{body{display:none!important}}");
root.addEventListener("beforeprint", function () {
  toast("Printing is disabled on this page");
});
doc.addEventListener("keydown", function (e) {
  if ((e.ctrlKey || e.metaKey) && keyName(e) === "p") {
    stop(e);
    toast("Printing is disabled on this page");
  }
}, true);
`

const shortcutsJS = `(function () {
  var always = {s: true, u: true};
  var outsideInputs = {a: true, c: true, x: true};
  doc.addEventListener("keydown", function (e) {
    if (!(e.ctrlKey || e.metaKey) || e.shiftKey || e.altKey) { return; }
    var k = keyName(e);
    if (always[k] === true || (outsideInputs[k] === true && !editable(e.target))) {
      stop(e);
      toast("This shortcut is disabled on this page");
    }
  }, true);
})();
`

const devtoolsJS = `doc.addEventListener("keydown", function (e) {
  var k = keyName(e);
  var inspector = (e.ctrlKey || e.metaKey) && (e.shiftKey || e.altKey) && (k === "i" || k === "j" || k === "c");
  if (k === "f12" || inspector) {
    stop(e);
    toast("Developer tools are disabled on this page");
  }
}, true);
machine.checks.push(function () {
  var w = (root.outerWidth || 0) - (root.innerWidth || 0);
  var h = (root.outerHeight || 0) - (root.innerHeight || 0);
  machine.onDevtoolsDelta(Math.max(w, h));
});
`

const consoleJS = `(function () {
  var con = root.console;
  if (!con) { return; }
  var warned = false;
  var names = ["log", "info", "warn", "error", "debug", "table", "dir", "trace", "group", "groupCollapsed"];
  function mute() {
    if (!warned) {
      warned = true;
      toast("Console output is disabled on this page");
    }
  }
  for (var i = 0; i < names.length; i++) {
    try { con[names[i]] = mute; } catch (ignored) {}
  }
})();
`

const screenshotJS = `doc.addEventListener("visibilitychange", function () {
  if (doc.hidden === true || doc.visibilityState === "hidden") {
    machine.onHidden(now());
  } else {
    machine.onVisible(now());
  }
});
doc.addEventListener("keyup", function (e) {
  if (String(e.key || "") === "PrintScreen") { machine.onCapture(now()); }
}, true);
`

const heartbeatJS = `root.setInterval(function () { machine.tick(now()); }, cfg.heartbeatMs);
`
