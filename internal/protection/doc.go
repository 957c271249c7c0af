// Package protection renders the browser-side guard script that is embedded
// into every exported page.
//
// The script is a single IIFE. Each enabled guard is emitted as its own block
// and may run alone. Time-based guards share one state machine with a single
// tick entry point, driven by one interval timer:
//
//	NORMAL --capture--> SUSPECT --tick--> BLURRED --blur elapsed--> NORMAL
//	any    --devtools delta over threshold--> BLOCKED (until reload)
package protection
