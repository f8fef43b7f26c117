// Package registry implements the primitive descriptor tables of §6: a
// process-wide, immutable table per primitive family (block ciphers,
// stream ciphers, block modes, hash functions), each exposing by-name
// (prefix-matched), by-id, and by-index lookup. The tables are populated
// once, at package init, mirroring the original library's eager
// library-load registration without needing any mutable global state.
package registry

import "strings"

// Descriptor is one entry in a primitive family's table: its stable
// integer ID and canonical name.
type Descriptor struct {
	ID   int
	Name string
}

var blockCiphers = []Descriptor{
	{ID: 0, Name: "NullCipher"},
	{ID: 1, Name: "Threefish-256"},
	{ID: 2, Name: "AES"},
}

var streamCiphers = []Descriptor{
	{ID: 0, Name: "RC4"},
}

var blockModes = []Descriptor{
	{ID: 0, Name: "ECB"},
	{ID: 1, Name: "CBC"},
	{ID: 2, Name: "CTR"},
	{ID: 3, Name: "CFB"},
	{ID: 4, Name: "OFB"},
}

var hashFunctions = []Descriptor{
	{ID: 0, Name: "SHA-256"},
	{ID: 1, Name: "MD5"},
	{ID: 2, Name: "Skein-256"},
}

func byName(table []Descriptor, prefix string) (Descriptor, bool) {
	for _, d := range table {
		if strings.HasPrefix(d.Name, prefix) {
			return d, true
		}
	}
	return Descriptor{}, false
}

func byID(table []Descriptor, id int) (Descriptor, bool) {
	for _, d := range table {
		if d.ID == id {
			return d, true
		}
	}
	return Descriptor{}, false
}

func byIndex(table []Descriptor, index int) (Descriptor, bool) {
	if index < 0 || index >= len(table) {
		return Descriptor{}, false
	}
	return table[index], true
}

// BlockCipherByName returns the block cipher descriptor whose canonical
// name starts with prefix.
func BlockCipherByName(prefix string) (Descriptor, bool) { return byName(blockCiphers, prefix) }

// BlockCipherByID returns the block cipher descriptor with the given
// stable ID.
func BlockCipherByID(id int) (Descriptor, bool) { return byID(blockCiphers, id) }

// BlockCipherByIndex returns the block cipher descriptor at position
// index in enumeration order.
func BlockCipherByIndex(index int) (Descriptor, bool) { return byIndex(blockCiphers, index) }

// BlockCipherCount returns the number of registered block ciphers.
func BlockCipherCount() int { return len(blockCiphers) }

// StreamCipherByName returns the stream cipher descriptor whose canonical
// name starts with prefix.
func StreamCipherByName(prefix string) (Descriptor, bool) { return byName(streamCiphers, prefix) }

// StreamCipherByID returns the stream cipher descriptor with the given
// stable ID.
func StreamCipherByID(id int) (Descriptor, bool) { return byID(streamCiphers, id) }

// StreamCipherByIndex returns the stream cipher descriptor at position
// index in enumeration order.
func StreamCipherByIndex(index int) (Descriptor, bool) { return byIndex(streamCiphers, index) }

// StreamCipherCount returns the number of registered stream ciphers.
func StreamCipherCount() int { return len(streamCiphers) }

// BlockModeByName returns the block mode descriptor whose canonical name
// starts with prefix.
func BlockModeByName(prefix string) (Descriptor, bool) { return byName(blockModes, prefix) }

// BlockModeByID returns the block mode descriptor with the given stable
// ID.
func BlockModeByID(id int) (Descriptor, bool) { return byID(blockModes, id) }

// BlockModeByIndex returns the block mode descriptor at position index in
// enumeration order.
func BlockModeByIndex(index int) (Descriptor, bool) { return byIndex(blockModes, index) }

// BlockModeCount returns the number of registered block modes.
func BlockModeCount() int { return len(blockModes) }

// HashByName returns the hash function descriptor whose canonical name
// starts with prefix.
func HashByName(prefix string) (Descriptor, bool) { return byName(hashFunctions, prefix) }

// HashByID returns the hash function descriptor with the given stable ID.
func HashByID(id int) (Descriptor, bool) { return byID(hashFunctions, id) }

// HashByIndex returns the hash function descriptor at position index in
// enumeration order.
func HashByIndex(index int) (Descriptor, bool) { return byIndex(hashFunctions, index) }

// HashCount returns the number of registered hash functions.
func HashCount() int { return len(hashFunctions) }
