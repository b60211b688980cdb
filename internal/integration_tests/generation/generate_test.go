package generation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oplcutils/gluegen/internal/app"
	"github.com/oplcutils/gluegen/internal/config"
	"github.com/oplcutils/gluegen/internal/testutil"
)

const sampleInput = "__LOCATED_VAR(BOOL,__IX0_0,I,X,0,0)\n" +
	"__LOCATED_VAR(BOOL,__IX0_1,I,X,0,1)\n" +
	"__LOCATED_VAR(BYTE,__QB3,Q,B,3)\n" +
	"__LOCATED_VAR(LINT,__ML1025,M,L,1025)\n"

func TestGenerate_FullDocumentLayout(t *testing.T) {
	t.Parallel()

	out := testutil.Generate(t, sampleInput)

	// Fixed header first, fixed footer last.
	assert.True(t, strings.HasPrefix(out, "// This file is responsible for gluing"))
	assert.Contains(t, out, "#define BUFFER_SIZE 1024\n")
	assert.True(t, strings.HasSuffix(out, "        __CURRENT_TIME.tv_sec += 1;\n    }\n}"))

	// Sections appear in fixed order.
	order := []string{
		"void glueVars()",
		"GlueBoolGroup ___IG0",
		"OPLCGLUE_GLUE_SIZE",
		"oplc_glue_vars[]",
		"OPLCGLUE_MD5_DIGEST",
		"void updateTime()",
	}
	last := -1
	for _, marker := range order {
		idx := strings.Index(out, marker)
		require.Greater(t, idx, last, "section %q out of order", marker)
		last = idx
	}
}

func TestGenerate_DirectAssignmentsPerOriginalDeclaration(t *testing.T) {
	t.Parallel()

	out := testutil.Generate(t, sampleInput)

	// Both bit variables get their own statement; grouping only affects
	// the unified table.
	assert.Contains(t, out, "\tbool_input[0][0] = __IX0_0;\n")
	assert.Contains(t, out, "\tbool_input[0][1] = __IX0_1;\n")
	assert.Contains(t, out, "\tbyte_output[3] = __QB3;\n")
	assert.Contains(t, out, "\tspecial_functions[1] = (IEC_LINT *)__ML1025;\n")
}

func TestGenerate_BooleanGroupAndTable(t *testing.T) {
	t.Parallel()

	out := testutil.Generate(t, sampleInput)

	assert.Contains(t, out,
		"GlueBoolGroup ___IG0 { .index=0, .values={ __IX0_0, __IX0_1, "+
			"nullptr, nullptr, nullptr, nullptr, nullptr, nullptr, } };\n"+
			"GlueBoolGroup* __IG0(&___IG0);\n")

	// Three rows: the group plus the two ungrouped declarations.
	assert.Contains(t, out, "extern std::size_t const OPLCGLUE_GLUE_SIZE(3);\n")
	assert.Contains(t, out, "    { IECLDT_IN, IECLST_BIT, 0, 0, IECVT_BOOL,  __IG0 },\n")
	assert.Contains(t, out, "    { IECLDT_OUT, IECLST_BYTE, 3, 0, IECVT_BYTE,  __QB3 },\n")
	assert.Contains(t, out, "    { IECLDT_MEM, IECLST_LONGWORD, 1025, 0, IECVT_LINT,  __ML1025 },\n")
	assert.NotContains(t, out, "IECVT_BOOL,  __IX0_0")
}

func TestGenerate_RowCountEqualsSurvivors(t *testing.T) {
	t.Parallel()

	// Four bit inputs in one group, one in another, plus two ungrouped
	// declarations: 2 groups + 2 ungrouped = 4 rows.
	src := "__LOCATED_VAR(BOOL,__IX0_0,I,X,0,0)\n" +
		"__LOCATED_VAR(BOOL,__IX0_1,I,X,0,1)\n" +
		"__LOCATED_VAR(BOOL,__IX0_2,I,X,0,2)\n" +
		"__LOCATED_VAR(BOOL,__IX0_3,I,X,0,3)\n" +
		"__LOCATED_VAR(BOOL,__QX7_0,Q,X,7,0)\n" +
		"__LOCATED_VAR(UINT,__IW2,I,W,2)\n" +
		"__LOCATED_VAR(INT,__MW9,M,W,9)\n"

	out := testutil.Generate(t, src)
	assert.Contains(t, out, "OPLCGLUE_GLUE_SIZE(4)")
	assert.Contains(t, out, "GlueBoolGroup* __IG0(&___IG0);\n")
	assert.Contains(t, out, "GlueBoolGroup* __QG7(&___QG7);\n")
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	first := testutil.Generate(t, sampleInput)
	second := testutil.Generate(t, sampleInput)
	require.Equal(t, first, second)
}

func TestGenerate_ChecksumChangesWithInput(t *testing.T) {
	t.Parallel()

	digest := func(out string) string {
		start := strings.Index(out, "OPLCGLUE_MD5_DIGEST[] = {")
		require.Positive(t, start)
		end := strings.Index(out[start:], "};")
		require.Positive(t, end)
		return out[start : start+end]
	}

	base := digest(testutil.Generate(t, sampleInput))
	same := digest(testutil.Generate(t, sampleInput))
	other := digest(testutil.Generate(t, sampleInput+"__LOCATED_VAR(INT,__MW1,M,W,1)\n"))

	assert.Equal(t, base, same)
	assert.NotEqual(t, base, other)
}

func TestGenerate_MinorOverflowWarnsByDefault(t *testing.T) {
	t.Parallel()

	src := "__LOCATED_VAR(BOOL,__IX0_9,I,X,0,9)\n"
	out, err := testutil.TryGenerate(t, src, app.Config{})
	require.NoError(t, err)

	// The statement is still emitted, mirroring the original generator.
	assert.Contains(t, out, "\tbool_input[0][9] = __IX0_9;\n")
	assert.Contains(t, out, "OPLCGLUE_GLUE_SIZE(1)")
}

func TestGenerate_MinorOverflowErrorPolicy(t *testing.T) {
	t.Parallel()

	src := "__LOCATED_VAR(BOOL,__IX0_9,I,X,0,9)\n"
	_, err := testutil.TryGenerate(t, src, app.Config{
		OnMinorOverflow: config.PolicyError,
	})
	require.Error(t, err)
}

func TestGenerate_SlotCollisionErrorPolicy(t *testing.T) {
	t.Parallel()

	src := "__LOCATED_VAR(BOOL,__IX0_0,I,X,0,0)\n" +
		"__LOCATED_VAR(BOOL,__IX0_0,I,X,0,0)\n"
	_, err := testutil.TryGenerate(t, src, app.Config{
		OnSlotCollision: config.PolicyError,
	})
	require.Error(t, err)
}

func TestGenerate_CapacityOverflowAborts(t *testing.T) {
	t.Parallel()

	src := "__LOCATED_VAR(UINT,__IW2000,I,W,2000)\n"
	_, err := testutil.TryGenerate(t, src, app.Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds buffer capacity")

	// A larger configured capacity admits the same input.
	out, err := testutil.TryGenerate(t, src, app.Config{BufferSize: 4096})
	require.NoError(t, err)
	assert.Contains(t, out, "#define BUFFER_SIZE 4096\n")
	assert.Contains(t, out, "\tint_input[2000] = __IW2000;\n")
}

func TestGenerate_EmptyInput(t *testing.T) {
	t.Parallel()

	out := testutil.Generate(t, "")
	assert.Contains(t, out, "void glueVars()\n{\n}\n\n")
	assert.Contains(t, out, "OPLCGLUE_GLUE_SIZE(0)")
	assert.Contains(t, out, "OPLCGLUE_MD5_DIGEST")
}
