/*
File    : lamina-go/eval/eval_expressions.go
Project : Lamina interpreter in Go
*/
package eval

import (
	"strconv"
	"strings"

	"github.com/iOS-GM/lamina-go/lexer"
	"github.com/iOS-GM/lamina-go/parser"
	"github.com/iOS-GM/lamina-go/value"
)

// Eval is the main evaluation dispatcher that converts AST nodes into
// runtime values. It routes each node type to its handler; evaluation is
// recursive, and control-flow sentinels (errors, return, break, continue)
// short-circuit back up through the handlers until something consumes them.
func (e *Evaluator) Eval(n parser.Node) value.Object {
	switch n := n.(type) {
	case *parser.RootNode:
		return e.evalStatements(n.Statements)

	// expressions
	case *parser.LiteralExpressionNode:
		return e.evalLiteralExpression(n)
	case *parser.VarExpressionNode:
		return e.evalNameLookup(n, n.Name)
	case *parser.IdentifierExpressionNode:
		return e.evalNameLookup(n, n.Name)
	case *parser.BinaryExpressionNode:
		return e.evalBinaryExpression(n)
	case *parser.UnaryExpressionNode:
		return e.evalUnaryExpression(n)
	case *parser.CallExpressionNode:
		return e.evalCallExpression(n)
	case *parser.NamespaceCallExpressionNode:
		return e.evalNamespaceCallExpression(n)
	case *parser.ArrayExpressionNode:
		return e.evalArrayExpression(n)
	case *parser.IndexExpressionNode:
		return e.evalIndexExpression(n)
	case *parser.InputExpressionNode:
		return e.evalInputExpression(n)

	// statements
	case *parser.VarDeclStatementNode:
		return e.evalVarDeclStatement(n)
	case *parser.BigIntDeclStatementNode:
		return e.evalBigIntDeclStatement(n)
	case *parser.DefineStatementNode:
		return e.evalDefineStatement(n)
	case *parser.AssignStatementNode:
		return e.evalAssignStatement(n)
	case *parser.BlockStatementNode:
		return e.evalBlockStatement(n)
	case *parser.IfStatementNode:
		return e.evalIfStatement(n)
	case *parser.WhileStatementNode:
		return e.evalWhileStatement(n)
	case *parser.FuncDefStatementNode:
		return e.RegisterFunction(n)
	case *parser.ReturnStatementNode:
		return e.evalReturnStatement(n)
	case *parser.IncludeStatementNode:
		return e.evalIncludeStatement(n)
	case *parser.UseStatementNode:
		return e.evalUseStatement(n)
	case *parser.BreakStatementNode:
		return &value.Break{}
	case *parser.ContinueStatementNode:
		return &value.Continue{}
	case *parser.ExpressionStatementNode:
		return e.Eval(n.Expr)

	default:
		return &value.Null{}
	}
}

// evalLiteralExpression types a literal lazily from its textual form.
// Numbers become ints unless the text contains a dot; an integer literal too
// large for 64 bits widens to a float.
func (e *Evaluator) evalLiteralExpression(n *parser.LiteralExpressionNode) value.Object {
	switch n.Token.Type {
	case lexer.TRUE_KEY:
		return &value.Boolean{Value: true}
	case lexer.FALSE_KEY:
		return &value.Boolean{Value: false}
	case lexer.NULL_KEY:
		return &value.Null{}
	case lexer.STRING_LIT:
		return &value.String{Value: n.Token.Literal}
	case lexer.NUMBER_LIT:
		text := n.Token.Literal
		if strings.Contains(text, ".") {
			f, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return e.exprError(n, value.TypeError, "malformed number literal %q", text)
			}
			return &value.Float{Value: f}
		}
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			// out of 64-bit range: widen to float
			f, ferr := strconv.ParseFloat(text, 64)
			if ferr != nil {
				return e.exprError(n, value.TypeError, "malformed number literal %q", text)
			}
			return &value.Float{Value: f}
		}
		return &value.Integer{Value: i}
	default:
		return e.exprError(n, value.TypeError, "unexpected literal %q", n.Token.Literal)
	}
}

// evalNameLookup resolves a name through the scope chain.
func (e *Evaluator) evalNameLookup(node parser.ExpressionNode, name string) value.Object {
	obj, ok := e.Scp.LookUp(name)
	if !ok {
		return e.exprError(node, value.UndefinedName, "%s", name)
	}
	return obj
}

// evalUnaryExpression evaluates prefix operations: numeric negation and
// logical NOT under the truthiness rule.
func (e *Evaluator) evalUnaryExpression(n *parser.UnaryExpressionNode) value.Object {
	operand := e.Eval(n.Operand)
	if value.IsError(operand) {
		return operand
	}

	switch n.Operation.Type {
	case lexer.NOT_OP:
		return &value.Boolean{Value: !value.Truthy(operand)}
	case lexer.MINUS_OP:
		switch v := operand.(type) {
		case *value.Integer:
			return &value.Integer{Value: -v.Value}
		case *value.Float:
			return &value.Float{Value: -v.Value}
		case *value.BigInt:
			return &value.BigInt{Value: negBig(v.Value)}
		default:
			return e.exprError(n, value.TypeError, "unary - not supported for %s", operand.GetType())
		}
	default:
		return e.exprError(n, value.TypeError, "unknown unary operator %q", n.Operation.Literal)
	}
}

// evalBinaryExpression evaluates both operands left-to-right, then applies
// the operator under the coercion lattice (see eval_helpers.go).
func (e *Evaluator) evalBinaryExpression(n *parser.BinaryExpressionNode) value.Object {
	left := e.Eval(n.Left)
	if value.IsError(left) {
		return left
	}
	right := e.Eval(n.Right)
	if value.IsError(right) {
		return right
	}
	return e.applyBinaryOp(n, left, right)
}

// evalArrayExpression evaluates an array literal, elements left-to-right.
func (e *Evaluator) evalArrayExpression(n *parser.ArrayExpressionNode) value.Object {
	elements := make([]value.Object, len(n.Elements))
	for i, elem := range n.Elements {
		evaluated := e.Eval(elem)
		if value.IsError(evaluated) {
			return evaluated
		}
		elements[i] = evaluated
	}
	return &value.Array{Elements: elements}
}

// evalIndexExpression evaluates arr[i] with bounds checking.
func (e *Evaluator) evalIndexExpression(n *parser.IndexExpressionNode) value.Object {
	target := e.Eval(n.Target)
	if value.IsError(target) {
		return target
	}
	index := e.Eval(n.Index)
	if value.IsError(index) {
		return index
	}

	arr, ok := target.(*value.Array)
	if !ok {
		return e.exprError(n, value.TypeError, "cannot index %s", target.GetType())
	}
	idx, ok := index.(*value.Integer)
	if !ok {
		return e.exprError(n, value.TypeError, "array index must be int, got %s", index.GetType())
	}
	if idx.Value < 0 || idx.Value >= int64(len(arr.Elements)) {
		return e.exprError(n, value.IndexOutOfRange,
			"index %d out of range for array of length %d", idx.Value, len(arr.Elements))
	}
	return arr.Elements[idx.Value]
}

// evalInputExpression reads one line from the interpreter's input stream.
func (e *Evaluator) evalInputExpression(n *parser.InputExpressionNode) value.Object {
	line, err := e.Reader.ReadString('\n')
	if err != nil && line == "" {
		return &value.Null{}
	}
	return &value.String{Value: strings.TrimRight(line, "\r\n")}
}
