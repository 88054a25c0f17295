// Package testutil provides shared fixtures for the codec tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/akhildatla/isa/pkg/isa"
	"github.com/akhildatla/isa/pkg/program"
)

// TempFile creates a temporary file with the given content and extension.
// The file is removed when the test finishes.
func TempFile(t *testing.T, content, ext string) string {
	t.Helper()
	return TempBytes(t, []byte(content), ext)
}

// TempBytes is TempFile for binary content.
func TempBytes(t *testing.T, content []byte, ext string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test"+ext)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

// SampleProgram returns a short program touching five operand shapes:
//
//	MOVI $r16, 10
//	ADDI $r17, $r16, 1000
//	ADD  $r18, $r16, $r17
//	LOG  $r18, $zero, $zero, $zero
//	RET  $r18
func SampleProgram() *program.Program {
	r16, r17, r18 := isa.NewRegID(16), isa.NewRegID(17), isa.NewRegID(18)
	return program.New(
		isa.Movi(r16, isa.NewImm18(10)),
		isa.Addi(r17, r16, isa.NewImm12(1000)),
		isa.Add(r18, r16, r17),
		isa.Log(r18, isa.RegZero, isa.RegZero, isa.RegZero),
		isa.Ret(r18),
	)
}

// SampleWords returns the instruction words of SampleProgram.
func SampleWords() []uint32 {
	return []uint32{0x7240000A, 0x504503E8, 0x10490440, 0x40480000, 0x01480000}
}

// ListingCSV returns a hand-written listing with hex words.
func ListingCSV() string {
	return `index,word,text
0,0x500C73E8,"ADDI $pc, $hp, 1000"
1,0x00000000,NOOP
2,0x01480000,RET $r18`
}

// AssertSamePrograms fails the test unless a and b hold equal instructions.
func AssertSamePrograms(t *testing.T, want, got *program.Program) {
	t.Helper()
	if len(want.Code) != len(got.Code) {
		t.Fatalf("expected %d instructions, got %d", len(want.Code), len(got.Code))
	}
	for i := range want.Code {
		if want.Code[i] != got.Code[i] {
			t.Errorf("instruction %d: expected %v, got %v", i, want.Code[i], got.Code[i])
		}
	}
}
