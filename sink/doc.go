// Package sink stores classified points.
//
// Two formats are supported:
//
//	csv     x,y,class rows under a header line
//	sqlite  rows of the points table, tagged with a per-sink run id
//
// Open selects the format from configuration, picks a unique file name when
// none is given and registers the sink's Close with atexit, so buffered rows
// reach disk even when the program leaves through atexit.Exit or
// atexit.Fatal.
package sink
