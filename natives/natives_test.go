/*
File    : tiger-rpython/natives/natives_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package natives_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abrown/tiger-rpython/interp"
	"github.com/abrown/tiger-rpython/natives"
	"github.com/abrown/tiger-rpython/parser"
)

func TestDeclsHasFixedShape(t *testing.T) {
	decls := natives.Decls()
	require.Len(t, decls, 5)
	assert.Equal(t, "string", decls[0].DeclName())
	assert.Equal(t, "int", decls[1].DeclName())
	assert.Equal(t, "print", decls[2].DeclName())
	assert.Equal(t, "timeGo", decls[3].DeclName())
	assert.Equal(t, "timeStop", decls[4].DeclName())
}

func run(t *testing.T, src string) (string, string) {
	t.Helper()
	decls := natives.Decls()
	p, err := parser.New(src, "<test>")
	require.NoError(t, err)
	root, err := p.Parse(decls)
	require.NoError(t, err)

	var out, errOut bytes.Buffer
	ev := interp.New(&out, &errOut)
	natives.Bind(ev, decls, &out, &errOut)
	_, err = ev.Run(root)
	require.NoError(t, err)
	return out.String(), errOut.String()
}

func TestPrintWritesIntegerAndStringWithoutNewline(t *testing.T) {
	out, _ := run(t, `(print("a"); print(1))`)
	assert.Equal(t, "a1", out)
}

func TestTimeGoThenTimeStopReturnsNonNegativeTicks(t *testing.T) {
	out, _ := run(t, `let var a := timeGo() var b := timeStop() in print(if b >= 0 then 1 else 0) end`)
	assert.Equal(t, "1", out)
}
