// Copyright 2026 The zb Authors
// SPDX-License-Identifier: MIT

// Package elfhdr reads the identifying fields of an ELF file header.
package elfhdr

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Type is an enumeration of ELF file types.
type Type uint16

// Known ELF file types.
const (
	TypeRel  Type = 1
	TypeExec Type = 2
	TypeDyn  Type = 3
	TypeCore Type = 4
)

// FileHeader is the leading portion of an ELF file header.
type FileHeader struct {
	ByteOrder    binary.ByteOrder
	AddressWidth int
	Type         Type
	Machine      Machine
}

// headerPrefixSize is the number of bytes through e_machine,
// which is the same for 32-bit and 64-bit files.
const headerPrefixSize = IdentSize + 4

// ReadFileHeader reads the header at the start of an ELF file.
func ReadFileHeader(r io.Reader) (*FileHeader, error) {
	var buf [headerPrefixSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("parse elf header: %w", err)
	}
	hdr := new(FileHeader)
	if err := hdr.UnmarshalBinary(buf[:]); err != nil {
		return nil, err
	}
	return hdr, nil
}

// UnmarshalBinary parses the leading portion of an ELF file header.
// Data past the machine field is ignored.
func (hdr *FileHeader) UnmarshalBinary(data []byte) error {
	if len(data) < headerPrefixSize {
		return fmt.Errorf("parse elf header: %w", io.ErrUnexpectedEOF)
	}
	id := ident(data)
	if !id.isMagic() {
		return fmt.Errorf("parse elf header: invalid magic number %x", id[:4])
	}
	byteOrder := id.byteOrder()
	if byteOrder == nil {
		return fmt.Errorf("parse elf header: unknown byte order %d", id[dataOffset])
	}
	var width int
	switch {
	case id.is32Bit():
		width = 32
	case id.is64Bit():
		width = 64
	default:
		return fmt.Errorf("parse elf header: unknown address width (class %d)", id[classOffset])
	}
	*hdr = FileHeader{
		ByteOrder:    byteOrder,
		AddressWidth: width,
		Type:         Type(byteOrder.Uint16(data[IdentSize:])),
		Machine:      Machine(byteOrder.Uint16(data[IdentSize+2:])),
	}
	return nil
}
