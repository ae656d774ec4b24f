// Package terminal renders a block grid to a terminal with cell-level diffing.
//
// A Grid holds the pending frame and a cache of what the last render put on screen;
// Render emits draw ops only for blocks that changed, through an Encoder. Two encoders
// exist: ANSIEncoder writes VT100/xterm truecolor sequences into a buffered writer, and
// TcellEncoder replays the same ops onto a tcell screen. A Session owns raw mode and
// restores the terminal on exit.
//
// Target environments: Linux, macOS and the BSDs with xterm-compatible terminals. Other
// unix systems get the raw backend without the termios reset used after a crash.
package terminal
