// Package dataset reads opcode samples from a directory tree.
//
// Layout:
//
//	<root>/<family>/<family>.csv   index: a header row, then one sample id per row;
//	                               ids come from the column named after the family
//	                               (first column if no such header)
//	<root>/<family>/<id>.csv       one opcode per line
//
// Blank lines in sample files are skipped and trailing CR is trimmed, so files
// written on Windows read the same.
package dataset
