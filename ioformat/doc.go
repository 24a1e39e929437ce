// Package ioformat implements the text formats BioFabric reads and
// writes: SIF and GW (graph topology), alignment files, NOA (node row)
// and EDA (link column) layout files, attribute files, and annotation
// files. Every parser is a small hand-rolled line/field scanner in the
// style of a recursive-descent text format reader: it never aborts on a
// malformed line, instead recording it in an ImportStats and continuing,
// since a single corrupt line in a multi-thousand-line network file
// should not discard everything that parsed correctly around it.
package ioformat
