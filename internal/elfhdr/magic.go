// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

package elfhdr

import "encoding/binary"

// IdentSize is the size (in bytes) of the identification bytes at the start of an ELF file.
const IdentSize = 16

type ident [IdentSize]byte

const (
	classOffset = 4
	dataOffset  = 5
)

func (id ident) isMagic() bool {
	return id[0] == 0x7f && id[1] == 'E' && id[2] == 'L' && id[3] == 'F'
}

func (id ident) is32Bit() bool {
	return id[classOffset] == 1
}

func (id ident) is64Bit() bool {
	return id[classOffset] == 2
}

func (id ident) byteOrder() binary.ByteOrder {
	switch id[dataOffset] {
	case 1:
		return binary.LittleEndian
	case 2:
		return binary.BigEndian
	default:
		return nil
	}
}

// IsELF reports whether head starts with the ELF magic number.
// IsELF will always report false if len(head) < 4.
func IsELF(head []byte) bool {
	var id ident
	if len(head) < 4 {
		return false
	}
	copy(id[:], head)
	return id.isMagic()
}
