// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package packager

import (
	"encoding/json"
	"fmt"
	"html"
	"regexp"
	"strings"
)

// Archive paths of a bundle.
const (
	EntryFile    = "index.html"
	StyleFile    = "styles.css"
	ManifestFile = "manifest.json"
)

// Reasons written to data-pg-reason on the fallback node.
const (
	ReasonCorrupt = "corrupt"
	ReasonDomain  = "domain"
	ReasonTamper  = "tamper"
)

// decoyStyleSheet is shipped as styles.css. It carries only what the
// bootstrap itself needs; page styles travel encrypted.
const decoyStyleSheet = `.pg-fallback,.pg-notice{box-sizing:border-box;max-width:560px;margin:15vh auto;padding:24px 28px;` +
	`border:1px solid #d0d4da;border-radius:8px;background:#fff;color:#1f2328;` +
	`font:16px/1.5 -apple-system,BlinkMacSystemFont,"Segoe UI",Roboto,sans-serif;text-align:center}
.pg-fallback{border-color:#e5a5a5}
`

type payload struct {
	Data string `json:"data"`
	Sum  uint32 `json:"sum"`
}

// bootstrapConfig is passed as the second argument of the bootstrap IIFE.
type bootstrapConfig struct {
	Key     string   `json:"key"`
	HTML    payload  `json:"html"`
	CSS     payload  `json:"css"`
	JS      *payload `json:"js,omitempty"`
	Domains []string `json:"domains"`
	Marker  string   `json:"marker"`
	Watch   bool     `json:"watch"`
	WatchMs int64    `json:"watchMs"`
}

const bootstrapJS = `(function (root, P) {
"use strict";
var doc = root.document;
if (!doc) { return; }
var B64 = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/";
var LOOPBACK = {"localhost": true, "127.0.0.1": true, "::1": true, "[::1]": true, "0.0.0.0": true};
function unb64(s) {
  if (typeof s !== "string" || s.length % 4 !== 0) { throw new Error("payload length"); }
  var out = [];
  for (var i = 0; i < s.length; i += 4) {
    var n = 0, pad = 0;
    for (var j = 0; j < 4; j++) {
      var c = s.charAt(i + j), v = 0;
      if (c === "=") {
        if (i + 4 !== s.length || j < 2) { throw new Error("payload padding"); }
        pad++;
      } else {
        if (pad > 0) { throw new Error("payload padding"); }
        v = B64.indexOf(c);
        if (v < 0) { throw new Error("payload symbol"); }
      }
      n = n * 64 + v;
    }
    out.push((n >> 16) & 255);
    if (pad < 2) { out.push((n >> 8) & 255); }
    if (pad < 1) { out.push(n & 255); }
  }
  return out;
}
function unmask(bytes, key) {
  for (var i = 0; i < bytes.length; i++) { bytes[i] = bytes[i] ^ key.charCodeAt(i % key.length); }
  return bytes;
}
function fnv1a(bytes) {
  var h = 0x811c9dc5;
  for (var i = 0; i < bytes.length; i++) {
    h ^= bytes[i];
    h = Math.imul(h, 0x01000193);
  }
  return h >>> 0;
}
function utf8(bytes) {
  var out = "", i = 0;
  while (i < bytes.length) {
    var b = bytes[i++], cp, need;
    if (b < 0x80) { cp = b; need = 0; }
    else if (b >= 0xc2 && b < 0xe0) { cp = b & 0x1f; need = 1; }
    else if (b >= 0xe0 && b < 0xf0) { cp = b & 0x0f; need = 2; }
    else if (b >= 0xf0 && b < 0xf5) { cp = b & 0x07; need = 3; }
    else { throw new Error("payload encoding"); }
    if (i + need > bytes.length) { throw new Error("payload encoding"); }
    for (var k = 0; k < need; k++) {
      var c = bytes[i++];
      if ((c & 0xc0) !== 0x80) { throw new Error("payload encoding"); }
      cp = (cp << 6) | (c & 0x3f);
    }
    if (cp > 0xffff) {
      cp -= 0x10000;
      out += String.fromCharCode(0xd800 + (cp >> 10), 0xdc00 + (cp & 0x3ff));
    } else {
      out += String.fromCharCode(cp);
    }
  }
  return out;
}
function open(p) {
  var bytes = unmask(unb64(p.data), P.key);
  if (fnv1a(bytes) !== p.sum) { throw new Error("payload checksum"); }
  return utf8(bytes);
}
function hostAllowed(host, list) {
  if (!list || list.length === 0) { return true; }
  host = String(host || "").toLowerCase().replace(/\.$/, "");
  if (LOOPBACK[host] === true) { return true; }
  for (var i = 0; i < list.length; i++) {
    var d = list[i];
    if (host === d || (host.length > d.length && host.slice(-(d.length + 1)) === "." + d)) { return true; }
  }
  return false;
}
function fallback(reason, msg) {
  var body = doc.body;
  if (!body) { return; }
  body.innerHTML = "";
  var box = doc.createElement("div");
  box.className = "pg-fallback";
  box.setAttribute("data-pg-reason", reason);
  box.textContent = msg;
  body.appendChild(box);
}
function blocked() {
  var el = doc.documentElement;
  return !!el && el.getAttribute("data-pg-state") === "BLOCKED";
}
function watch() {
  var id = root.setInterval(function () {
    if (blocked()) {
      root.clearInterval(id);
      return;
    }
    if (!doc.getElementById(P.marker)) {
      root.clearInterval(id);
      fallback("tamper", "This page has been modified and can no longer be displayed.");
    }
  }, P.watchMs);
}
function render() {
  var host = root.location ? root.location.hostname : "";
  if (!hostAllowed(host, P.domains)) {
    fallback("domain", "This page is not available on this domain.");
    return;
  }
  var markup, css, js;
  try {
    markup = open(P.html);
    css = open(P.css);
    js = P.js ? open(P.js) : "";
  } catch (err) {
    fallback("corrupt", "This page could not be displayed.");
    return;
  }
  var mount = doc.getElementById(P.marker);
  if (!mount) {
    fallback("tamper", "This page has been modified and can no longer be displayed.");
    return;
  }
  if (css) {
    var st = doc.createElement("style");
    st.setAttribute("data-pg-style", "1");
    st.textContent = css;
    (doc.head || doc.documentElement).appendChild(st);
  }
  mount.innerHTML = markup;
  if (js) {
    var sc = doc.createElement("script");
    sc.text = js;
    doc.body.appendChild(sc);
  }
  if (P.watch) { watch(); }
}
if (doc.readyState === "loading") {
  doc.addEventListener("DOMContentLoaded", render);
} else {
  render();
}
})(typeof window !== "undefined" ? window : this, `

var scriptCloseRe = regexp.MustCompile(`(?i)</(script)`)

// inlineScript makes src safe to place between <script> tags.
func inlineScript(src string) string {
	return scriptCloseRe.ReplaceAllString(src, `<\/$1`)
}

func renderBootstrap(cfg bootstrapConfig) (string, error) {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("encode bootstrap config: %w", err)
	}
	return bootstrapJS + string(raw) + ");\n", nil
}

// renderEntry assembles index.html.
func renderEntry(title, marker, exportID, guardScript, bootstrap string) []byte {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(title))
	fmt.Fprintf(&b, "<link rel=\"stylesheet\" href=\"%s\">\n", StyleFile)
	b.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&b, "<div id=\"%s\" data-pg-export=\"%s\"></div>\n", html.EscapeString(marker), html.EscapeString(exportID))
	b.WriteString("<noscript><div class=\"pg-fallback\">This page requires JavaScript.</div></noscript>\n")
	if guardScript != "" {
		fmt.Fprintf(&b, "<script>\n%s</script>\n", inlineScript(guardScript))
	}
	fmt.Fprintf(&b, "<script>\n%s</script>\n", inlineScript(bootstrap))
	b.WriteString("</body>\n</html>\n")
	return []byte(b.String())
}
