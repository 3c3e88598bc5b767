package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiam/arith/ast"
	"github.com/xiam/arith/lexer"
)

func mustTokenize(t *testing.T, in string) []lexer.Token {
	t.Helper()

	tokens, err := lexer.Tokenize([]byte(in))
	require.NoError(t, err)
	return tokens
}

func TestParserBuildTree(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{
			In:  `42`,
			Out: `42`,
		},
		{
			In:  `-3`,
			Out: `(-3)`,
		},
		{
			In:  `3 + 4`,
			Out: `(3 + 4)`,
		},
		{
			In:  `3 + 4 * 5`,
			Out: `(3 + (4 * 5))`,
		},
		{
			In:  `10 - 2 - 3`,
			Out: `((10 - 2) - 3)`,
		},
		{
			In:  `8 / 4 / 2`,
			Out: `((8 / 4) / 2)`,
		},
		{
			In:  `-7 * 2`,
			Out: `((-7) * 2)`,
		},
		{
			In:  `-3 * 4`,
			Out: `((-3) * 4)`,
		},
		{
			In:  `3 * -2`,
			Out: `(3 * (-2))`,
		},
		{
			In:  `4.5 / 2`,
			Out: `(4.5 / 2)`,
		},
		{
			In:  `1 + 2 * 3 - 4 / 2`,
			Out: `((1 + (2 * 3)) - (4 / 2))`,
		},
		{
			In:  `1 / 0`,
			Out: `(1 / 0)`,
		},
		{
			In:  "1 +\n2",
			Out: `(1 + 2)`,
		},
	}

	for i := range testCases {
		root, err := Parse(mustTokenize(t, testCases[i].In))

		assert.NoError(t, err)
		assert.NotNil(t, root)

		assert.Equal(t, testCases[i].Out, root.String())
	}
}

func TestLeftAssociativity(t *testing.T) {
	{
		root, err := Parse(mustTokenize(t, `10 - 2 - 3`))
		require.NoError(t, err)

		outer, ok := root.(*ast.Binary)
		require.True(t, ok)

		assert.Equal(t, `(10 - 2)`, outer.Left().String())
		assert.Equal(t, `3`, outer.Right().String())
	}

	{
		root, err := Parse(mustTokenize(t, `8 / 4 / 2`))
		require.NoError(t, err)

		outer, ok := root.(*ast.Binary)
		require.True(t, ok)

		assert.Equal(t, `(8 / 4)`, outer.Left().String())
		assert.Equal(t, `2`, outer.Right().String())
	}
}

func TestPrecedence(t *testing.T) {
	inputs := []string{
		`3 + 4 * 5`,
		`1 + 2 * 3 - 4 / 2`,
		`2 * 3 + 4 * 5`,
		`-1 * 2 + 3`,
	}

	isAdditive := func(e ast.Expr) bool {
		b, ok := e.(*ast.Binary)
		if !ok {
			return false
		}
		op := b.Op().Operator()
		return op == lexer.OperatorPlus || op == lexer.OperatorMinus
	}

	var walk func(e ast.Expr, belowMultiplicative bool)
	walk = func(e ast.Expr, belowMultiplicative bool) {
		switch node := e.(type) {
		case *ast.Unary:
			walk(node.Inner(), belowMultiplicative)
		case *ast.Binary:
			if belowMultiplicative {
				assert.False(t, isAdditive(node))
			}
			op := node.Op().Operator()
			multiplicative := op == lexer.OperatorStar || op == lexer.OperatorSlash
			walk(node.Left(), belowMultiplicative || multiplicative)
			walk(node.Right(), belowMultiplicative || multiplicative)
		}
	}

	for i := range inputs {
		root, err := Parse(mustTokenize(t, inputs[i]))
		require.NoError(t, err)

		walk(root, false)
	}
}

func TestTrailingTokens(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{
			In:  `1 + 2 3`,
			Out: `(1 + 2)`,
		},
		{
			In:  `5 5`,
			Out: `5`,
		},
		{
			In:  `1 2 + 3`,
			Out: `1`,
		},
	}

	for i := range testCases {
		root, err := Parse(mustTokenize(t, testCases[i].In))

		assert.NoError(t, err)
		assert.Equal(t, testCases[i].Out, root.String())
	}
}

func TestParserErrors(t *testing.T) {
	testCases := []struct {
		In  string
		Err error
		Msg string
	}{
		{
			In:  `+ 3`,
			Err: ErrUnaryExpression,
			Msg: "[AST PARSE ERROR]: syntax error in <unary> expression",
		},
		{
			In:  `* 3`,
			Err: ErrUnaryExpression,
			Msg: "[AST PARSE ERROR]: syntax error in <unary> expression",
		},
		{
			In:  `/ 3`,
			Err: ErrUnaryExpression,
			Msg: "[AST PARSE ERROR]: syntax error in <unary> expression",
		},
		{
			In:  `1 + + 2`,
			Err: ErrUnaryExpression,
			Msg: "[AST PARSE ERROR]: syntax error in <unary> expression",
		},
		{
			In:  `1 + `,
			Err: ErrIncompleteExpression,
			Msg: "[AST PARSE ERROR]: syntax error by uncomplete expression",
		},
		{
			In:  ``,
			Err: ErrIncompleteExpression,
			Msg: "[AST PARSE ERROR]: syntax error by uncomplete expression",
		},
		{
			In:  `-`,
			Err: ErrIncompleteExpression,
			Msg: "[AST PARSE ERROR]: syntax error by uncomplete expression",
		},
		{
			In:  `- -3`,
			Err: ErrUnexpectedExpression,
			Msg: "[AST PARSE ERROR]: unexpected expression",
		},
		{
			In:  `--3`,
			Err: ErrUnexpectedExpression,
			Msg: "[AST PARSE ERROR]: unexpected expression",
		},
		{
			In:  `3 * - -2`,
			Err: ErrUnexpectedExpression,
			Msg: "[AST PARSE ERROR]: unexpected expression",
		},
	}

	for i := range testCases {
		root, err := Parse(mustTokenize(t, testCases[i].In))

		assert.Nil(t, root)
		assert.Error(t, err)

		assert.True(t, errors.Is(err, testCases[i].Err), "case %q", testCases[i].In)
		assert.Equal(t, testCases[i].Msg, err.Error())
	}
}

// repeatSource feeds the same token a fixed number of times; the parser
// only depends on the TokenSource contract, not on the lexer's slices.
type repeatSource struct {
	tok  lexer.Token
	n    int
	used int
}

func (r *repeatSource) Peek() (lexer.Token, bool) {
	if r.used >= r.n {
		return lexer.Token{}, false
	}
	return r.tok, true
}

func (r *repeatSource) Next() (lexer.Token, bool) {
	tok, ok := r.Peek()
	if ok {
		r.used++
	}
	return tok, ok
}

func TestTokenSource(t *testing.T) {
	src := &repeatSource{tok: lexer.NewNumber(9, 1, 1), n: 3}

	root, err := New(src).Parse()
	require.NoError(t, err)

	assert.Equal(t, `9`, root.String())
}

func TestSliceSource(t *testing.T) {
	src := NewSource(mustTokenize(t, `1 + 2`))

	tok, ok := src.Peek()
	assert.True(t, ok)
	assert.True(t, tok.Is(lexer.TokenNumber))

	again, ok := src.Peek()
	assert.True(t, ok)
	assert.Equal(t, tok, again)

	next, ok := src.Next()
	assert.True(t, ok)
	assert.Equal(t, tok, next)

	_, _ = src.Next()
	_, _ = src.Next()

	_, ok = src.Peek()
	assert.False(t, ok)

	_, ok = src.Next()
	assert.False(t, ok)
}
