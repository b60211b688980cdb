package emit

import (
	"bufio"
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"log/slog"

	"github.com/oplcutils/gluegen/internal/aggregate"
	"github.com/oplcutils/gluegen/internal/ctxlog"
	"github.com/oplcutils/gluegen/internal/iec"
)

// specialFunctionBase is the major index at which long-word memory
// variables leave the ordinary lint_memory buffer and are rebased into the
// special_functions buffer. Fixed by the runtime contract, independent of
// the configured buffer capacity.
const specialFunctionBase = 1024

const hexDigits = "0123456789ABCDEF"

// Emitter writes the generated glue source. Methods must be called in file
// order: Header, Assignments, Groups, Table, Checksum, Footer, then Flush.
type Emitter struct {
	w        *bufio.Writer
	logger   *slog.Logger
	capacity int
}

// New creates an emitter writing to w with the given runtime buffer
// capacity.
func New(ctx context.Context, w io.Writer, bufferSize int) *Emitter {
	return &Emitter{
		w:        bufio.NewWriter(w),
		logger:   ctxlog.FromContext(ctx),
		capacity: bufferSize,
	}
}

// Header writes the fixed boilerplate that declares the runtime buffers and
// glue types.
func (e *Emitter) Header() {
	fmt.Fprintf(e.w, headerFormat, e.capacity)
}

// Footer writes the fixed time-update routine.
func (e *Emitter) Footer() {
	e.w.WriteString(footer)
}

// Assignments writes the legacy glueVars() function: one direct buffer
// assignment per declaration, in declaration order. It runs over the
// pre-aggregation list, so every bit variable gets its own statement. A
// minor index of 8 or more is diagnosed but still emitted, matching the
// original generator; a major index beyond the buffer capacity is a hard
// error.
func (e *Emitter) Assignments(decls []iec.Declaration) error {
	e.w.WriteString("void glueVars()\n{\n")
	for _, d := range decls {
		if d.Minor >= aggregate.SlotCount {
			e.logger.Warn("Invalid addressing on located variable.",
				"name", d.Name, "major", d.Major, "minor", d.Minor)
		}
		if err := e.checkCapacity(d); err != nil {
			return err
		}
		e.w.WriteString(assignment(d))
	}
	e.w.WriteString("}\n\n")
	return nil
}

// assignment maps one declaration to its buffer assignment statement, or ""
// when no runtime buffer exists for the direction/size combination.
func assignment(d iec.Declaration) string {
	switch d.Direction {
	case iec.DirIn:
		switch d.Size {
		case iec.SizeBit:
			return fmt.Sprintf("\tbool_input[%d][%d] = %s;\n", d.Major, d.Minor, d.Name)
		case iec.SizeByte:
			return fmt.Sprintf("\tbyte_input[%d] = %s;\n", d.Major, d.Name)
		case iec.SizeWord:
			return fmt.Sprintf("\tint_input[%d] = %s;\n", d.Major, d.Name)
		}
	case iec.DirOut:
		switch d.Size {
		case iec.SizeBit:
			return fmt.Sprintf("\tbool_output[%d][%d] = %s;\n", d.Major, d.Minor, d.Name)
		case iec.SizeByte:
			return fmt.Sprintf("\tbyte_output[%d] = %s;\n", d.Major, d.Name)
		case iec.SizeWord:
			return fmt.Sprintf("\tint_output[%d] = %s;\n", d.Major, d.Name)
		}
	case iec.DirMem:
		switch d.Size {
		case iec.SizeWord:
			return fmt.Sprintf("\tint_memory[%d] = %s;\n", d.Major, d.Name)
		case iec.SizeDoubleWord:
			return fmt.Sprintf("\tdint_memory[%d] = (IEC_DINT *)%s;\n", d.Major, d.Name)
		case iec.SizeLongWord:
			if d.Major >= specialFunctionBase {
				return fmt.Sprintf("\tspecial_functions[%d] = (IEC_LINT *)%s;\n", d.Major-specialFunctionBase, d.Name)
			}
			return fmt.Sprintf("\tlint_memory[%d] = (IEC_LINT *)%s;\n", d.Major, d.Name)
		}
	}
	return ""
}

// checkCapacity rejects a major index the runtime buffers cannot hold,
// accounting for the special-function rebasing of long-word memory
// variables.
func (e *Emitter) checkCapacity(d iec.Declaration) error {
	index := int(d.Major)
	if d.Direction == iec.DirMem && d.Size == iec.SizeLongWord && index >= specialFunctionBase {
		index -= specialFunctionBase
	}
	if index >= e.capacity {
		return fmt.Errorf("located variable %s: major index %d exceeds buffer capacity %d", d.Name, d.Major, e.capacity)
	}
	return nil
}

// Groups writes one GlueBoolGroup constant per populated boolean group,
// with unassigned slots emitted as nullptr.
func (e *Emitter) Groups(groups []aggregate.Group) {
	for _, g := range groups {
		name := g.Name()
		fmt.Fprintf(e.w, "GlueBoolGroup ___%s { .index=%d, .values={ ", name, g.Major)
		for _, slot := range g.Slots {
			if slot == "" {
				e.w.WriteString("nullptr, ")
			} else {
				e.w.WriteString(slot + ", ")
			}
		}
		e.w.WriteString("} };\n")
		fmt.Fprintf(e.w, "GlueBoolGroup* __%s(&___%s);\n", name, name)
	}
}

// Table writes the unified glue variable table over the post-aggregation
// declaration list, preceded by its explicit size constant.
func (e *Emitter) Table(decls []iec.Declaration) {
	e.w.WriteString("/// The size of the array of glue variables.\n")
	fmt.Fprintf(e.w, "extern std::size_t const OPLCGLUE_GLUE_SIZE(%d);\n", len(decls))
	e.w.WriteString("/// The packed glue variables.\n")
	e.w.WriteString("extern const GlueVariable oplc_glue_vars[] = {\n")

	warned := make(map[string]bool)
	for _, d := range decls {
		if !iec.KnownValueType(d.Type) && !warned[d.Type] {
			warned[d.Type] = true
			e.logger.Warn("Declared type is not a known IEC value type.",
				"type", d.Type, "name", d.Name)
		}
		fmt.Fprintf(e.w, "    { IECLDT_%s, IECLST_%s, %d, %d, IECVT_%s,  %s },\n",
			d.Direction, d.Size, d.Major, d.Minor, d.Type, d.Name)
	}
	e.w.WriteString("};\n\n")
}

// Checksum writes the input content digest as a fixed-length character
// array literal of uppercase hexadecimal byte pairs.
func (e *Emitter) Checksum(digest [md5.Size]byte) {
	e.w.WriteString("/// MD5 checksum of the located variables.\n")
	e.w.WriteString("/// WARNING: this must not be used to trust file contents.\n")
	e.w.WriteString("extern const char OPLCGLUE_MD5_DIGEST[] = {")
	for _, b := range digest {
		fmt.Fprintf(e.w, "'%c', '%c', ", hexDigits[b>>4], hexDigits[b&0x0F])
	}
	e.w.WriteString("};\n\n\n")
}

// Flush drains the buffered output and reports any accumulated write
// error.
func (e *Emitter) Flush() error {
	return e.w.Flush()
}
