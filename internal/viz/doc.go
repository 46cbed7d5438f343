// Package viz renders simulation runs in the terminal. It has two
// modes: static asciigraph plots of recorded telemetry, and a live
// bubbletea view where the arrow keys drive the car in real time.
//
// The live view draws the car's path on a braille canvas so a
// standard 80x24 terminal gets an effective 160x96 pixel grid.
package viz
