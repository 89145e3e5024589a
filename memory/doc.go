// Package memory implements the flat backing memory of the simulator.
//
// Memory maps word addresses to signed words. Entries are created lazily on
// first write, or pre-populated from a memory image. Reading an address that
// was never written yields 0.
//
// A memory image is a text stream with one `<hex address> <decimal value>`
// pair per line.
package memory
