// Package classfile reads module declarations from compiled module-info classes.
package classfile

import (
	"encoding/binary"
	"unicode/utf16"
	"unicode/utf8"

	"go.trai.ch/jmod/internal/core/domain"
	"go.trai.ch/jmod/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	magic = 0xCAFEBABE

	accModule = 0x8000

	moduleInfoClassName = "module-info"
	moduleAttribute     = "Module"
)

// Constant pool tags.
const (
	tagUtf8               = 1
	tagInteger            = 3
	tagFloat              = 4
	tagLong               = 5
	tagDouble             = 6
	tagClass              = 7
	tagString             = 8
	tagFieldref           = 9
	tagMethodref          = 10
	tagInterfaceMethodref = 11
	tagNameAndType        = 12
	tagMethodHandle       = 15
	tagMethodType         = 16
	tagDynamic            = 17
	tagInvokeDynamic      = 18
	tagModule             = 19
	tagPackage            = 20
)

var _ ports.ClassModuleReader = (*Reader)(nil)

// Reader implements ports.ClassModuleReader.
type Reader struct{}

// NewReader creates a class file reader.
func NewReader() *Reader {
	return &Reader{}
}

type constant struct {
	tag   uint8
	index uint16
	utf8  string
}

// ReadModuleName returns the name of the module declared by a module-info class.
func (r *Reader) ReadModuleName(data []byte) (string, error) {
	b := &buffer{data: data}

	if b.u4() != magic {
		return "", malformed(b, "bad magic")
	}
	b.skip(4) // minor and major version

	pool, err := readConstantPool(b)
	if err != nil {
		return "", err
	}

	access := b.u2()
	thisClass := b.u2()
	if b.err {
		return "", malformed(b, "truncated header")
	}
	if access&accModule == 0 {
		return "", zerr.With(domain.ErrNotModuleInfo, "access_flags", access)
	}
	if name, ok := pool.classOrModuleName(thisClass, tagClass); !ok || name != moduleInfoClassName {
		return "", zerr.With(domain.ErrNotModuleInfo, "this_class", name)
	}

	b.skip(2) // super_class
	b.skip(2 * int(b.u2()))
	skipMembers(b) // fields
	skipMembers(b) // methods

	for range b.u2() {
		nameIndex := b.u2()
		length := b.u4()
		if b.err {
			break
		}
		if pool.utf8(nameIndex) != moduleAttribute {
			b.skip(int(length))
			continue
		}

		moduleIndex := b.u2()
		if b.err {
			break
		}
		name, ok := pool.classOrModuleName(moduleIndex, tagModule)
		if !ok || name == "" {
			return "", malformed(b, "bad module_name_index")
		}
		return name, nil
	}

	if b.err {
		return "", malformed(b, "truncated attributes")
	}
	return "", zerr.With(domain.ErrNotModuleInfo, "reason", "missing Module attribute")
}

type constantPool []constant

func readConstantPool(b *buffer) (constantPool, error) {
	count := int(b.u2())
	if b.err || count == 0 {
		return nil, malformed(b, "bad constant pool count")
	}

	pool := make(constantPool, count)
	for i := 1; i < count; i++ {
		tag := b.u1()
		c := constant{tag: tag}
		slot := i

		switch tag {
		case tagUtf8:
			c.utf8 = decodeModifiedUTF8(b.bytes(int(b.u2())))
		case tagClass, tagModule, tagPackage, tagString, tagMethodType:
			c.index = b.u2()
		case tagInteger, tagFloat, tagFieldref, tagMethodref, tagInterfaceMethodref,
			tagNameAndType, tagDynamic, tagInvokeDynamic:
			b.skip(4)
		case tagLong, tagDouble:
			b.skip(8)
			i++ // eight-byte constants take two slots
		case tagMethodHandle:
			b.skip(3)
		default:
			return nil, zerr.With(malformed(b, "unknown constant tag"), "tag", tag)
		}

		if b.err {
			return nil, malformed(b, "truncated constant pool")
		}
		pool[slot] = c
	}

	return pool, nil
}

func (p constantPool) utf8(index uint16) string {
	if int(index) >= len(p) || p[index].tag != tagUtf8 {
		return ""
	}
	return p[index].utf8
}

// classOrModuleName resolves a CONSTANT_Class or CONSTANT_Module entry to its name.
func (p constantPool) classOrModuleName(index uint16, tag uint8) (string, bool) {
	if int(index) >= len(p) || p[index].tag != tag {
		return "", false
	}
	nameIndex := p[index].index
	if int(nameIndex) >= len(p) || p[nameIndex].tag != tagUtf8 {
		return "", false
	}
	return p[nameIndex].utf8, true
}

func skipMembers(b *buffer) {
	for range b.u2() {
		b.skip(6) // access_flags, name_index, descriptor_index
		for range b.u2() {
			b.skip(2)
			b.skip(int(b.u4()))
		}
		if b.err {
			return
		}
	}
}

func malformed(b *buffer, reason string) error {
	return zerr.With(zerr.With(domain.ErrClassMalformed, "reason", reason), "offset", b.off)
}

// decodeModifiedUTF8 decodes the JVM's modified UTF-8: NUL is encoded as two
// bytes and supplementary characters as surrogate pairs.
func decodeModifiedUTF8(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}

	units := make([]uint16, 0, len(raw))
	for i := 0; i < len(raw); {
		c := raw[i]
		switch {
		case c < 0x80:
			units = append(units, uint16(c))
			i++
		case c&0xE0 == 0xC0 && i+1 < len(raw):
			units = append(units, uint16(c&0x1F)<<6|uint16(raw[i+1]&0x3F))
			i += 2
		case c&0xF0 == 0xE0 && i+2 < len(raw):
			units = append(units, uint16(c&0x0F)<<12|uint16(raw[i+1]&0x3F)<<6|uint16(raw[i+2]&0x3F))
			i += 3
		default:
			units = append(units, utf8.RuneError)
			i++
		}
	}

	return string(utf16.Decode(units))
}

// buffer is a big-endian cursor over class file bytes. Reads past the end set
// err and return zero values.
type buffer struct {
	data []byte
	off  int
	err  bool
}

func (b *buffer) bytes(n int) []byte {
	if b.err || n < 0 || b.off+n > len(b.data) {
		b.err = true
		return nil
	}
	out := b.data[b.off : b.off+n]
	b.off += n
	return out
}

func (b *buffer) skip(n int) {
	b.bytes(n)
}

func (b *buffer) u1() uint8 {
	if p := b.bytes(1); p != nil {
		return p[0]
	}
	return 0
}

func (b *buffer) u2() uint16 {
	if p := b.bytes(2); p != nil {
		return binary.BigEndian.Uint16(p)
	}
	return 0
}

func (b *buffer) u4() uint32 {
	if p := b.bytes(4); p != nil {
		return binary.BigEndian.Uint32(p)
	}
	return 0
}
