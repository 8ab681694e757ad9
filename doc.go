// Package syxpack decodes and encodes MIDI System Exclusive messages.
//
// A message is framed by 0xF0 and 0xF7 and starts with a manufacturer
// identifier: one byte for standard IDs, three bytes (0x00 b1 b2) for
// extended IDs, or 0x7E/0x7F for universal non-real-time and real-time
// messages. ParseMessage decodes a single message and Message.Bytes encodes
// it back byte for byte. Count, Split and ParseAll handle buffers holding
// several concatenated messages, and ScanMessages does the same for streams.
package syxpack
