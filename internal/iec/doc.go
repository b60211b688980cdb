// Package iec models located variable declarations produced by the MATIEC
// structured-text compiler: the closed direction and size-class
// enumerations, the positional address decoder, and the line scanner that
// feeds the running content checksum.
package iec
