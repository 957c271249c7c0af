// Package packager turns a finished page into a protected export bundle.
//
// Server side the work runs through three stages:
//
//	COMPOSE  validate the request, render and obfuscate the guard script
//	ENCRYPT  derive the export key, mask and checksum every payload
//	EMBED    assemble index.html, the decoy styles.css and manifest.json
//
// In the browser the bootstrap goes LOAD -> DECRYPT -> RENDER -> WATCH. It
// checks the domain lock, decodes the payloads, verifies their checksums and
// mounts the page into the marker node. Any failure renders a fixed fallback.
// While watching, removal of the marker node replaces the page with a tamper
// notice.
//
// The key ships inside the bundle next to the ciphertext. The encoding only
// keeps content out of a casual view-source; it is not confidentiality.
package packager
