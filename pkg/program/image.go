package program

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/akhildatla/isa/pkg/isa"
)

// Image file format:
// - Magic: "RVMI" (4 bytes)
// - Version: uint16
// - NumInstructions: uint32
// - Instructions: 4 bytes each, opcode first
//
// All integers are big-endian, matching the instruction wire format.

const (
	ImageMagic   = "RVMI"
	ImageVersion = 1
)

var (
	ErrInvalidMagic   = errors.New("invalid image magic")
	ErrInvalidVersion = errors.New("unsupported image version")
)

// Serialize writes p in the image container format.
func Serialize(p *Program) ([]byte, error) {
	buf := new(bytes.Buffer)

	buf.WriteString(ImageMagic)

	if err := binary.Write(buf, binary.BigEndian, uint16(ImageVersion)); err != nil {
		return nil, fmt.Errorf("writing version: %w", err)
	}

	if err := binary.Write(buf, binary.BigEndian, uint32(len(p.Code))); err != nil {
		return nil, fmt.Errorf("writing instruction count: %w", err)
	}
	buf.Write(EncodeRaw(p))

	return buf.Bytes(), nil
}

// Deserialize parses an image container.
func Deserialize(data []byte) (*Program, error) {
	buf := bytes.NewReader(data)

	magic := make([]byte, len(ImageMagic))
	if _, err := io.ReadFull(buf, magic); err != nil {
		return nil, fmt.Errorf("reading magic: %w", err)
	}
	if string(magic) != ImageMagic {
		return nil, ErrInvalidMagic
	}

	var version uint16
	if err := binary.Read(buf, binary.BigEndian, &version); err != nil {
		return nil, fmt.Errorf("reading version: %w", err)
	}
	if version != ImageVersion {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVersion, version)
	}

	var numInst uint32
	if err := binary.Read(buf, binary.BigEndian, &numInst); err != nil {
		return nil, fmt.Errorf("reading instruction count: %w", err)
	}
	if int64(numInst)*isa.InstructionSize != int64(buf.Len()) {
		return nil, fmt.Errorf("%w: header declares %d instructions, %d bytes follow",
			ErrTruncated, numInst, buf.Len())
	}

	raw := make([]byte, buf.Len())
	if _, err := io.ReadFull(buf, raw); err != nil {
		return nil, fmt.Errorf("reading instructions: %w", err)
	}
	return DecodeRaw(raw)
}
