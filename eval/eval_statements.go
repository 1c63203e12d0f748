/*
File    : lamina-go/eval/eval_statements.go
Project : Lamina interpreter in Go
*/
package eval

import (
	"github.com/iOS-GM/lamina-go/parser"
	"github.com/iOS-GM/lamina-go/scope"
	"github.com/iOS-GM/lamina-go/value"
)

// evalStatements executes a statement sequence in order, short-circuiting on
// any control-flow sentinel so it keeps unwinding to whoever consumes it.
func (e *Evaluator) evalStatements(statements []parser.StatementNode) value.Object {
	var result value.Object = &value.Null{}
	for _, stmt := range statements {
		result = e.Eval(stmt)
		if result == nil {
			result = &value.Null{}
			continue
		}
		switch result.GetType() {
		case value.ErrorType, value.ReturnType, value.BreakType, value.ContinueType:
			return result
		}
	}
	return result
}

// evalBlockStatement executes `{ stmt* }` in a fresh scope. The scope is
// popped on every exit path, including unwinds, so the environment stack
// depth after the block equals the depth before it.
func (e *Evaluator) evalBlockStatement(n *parser.BlockStatementNode) value.Object {
	oldScope := e.Scp
	e.Scp = scope.NewScope(oldScope)
	result := e.evalStatements(n.Statements)
	e.Scp = oldScope
	return result
}

// evalVarDeclStatement executes `var name = expr;`: evaluate the
// initializer, then bind in the current scope (shadowing permitted).
func (e *Evaluator) evalVarDeclStatement(n *parser.VarDeclStatementNode) value.Object {
	init := e.Eval(n.Init)
	if value.IsError(init) {
		return init
	}
	e.Scp.Bind(n.Name, init)
	return &value.Null{}
}

// evalBigIntDeclStatement executes `bigint name [= expr];`. The binding gets
// arbitrary-precision storage when the initializer is integral (or absent,
// which means big zero); any other initializer behaves like a plain var
// declaration.
func (e *Evaluator) evalBigIntDeclStatement(n *parser.BigIntDeclStatementNode) value.Object {
	if n.Init == nil {
		e.Scp.Bind(n.Name, value.NewBigInt(0))
		return &value.Null{}
	}
	init := e.Eval(n.Init)
	if value.IsError(init) {
		return init
	}
	switch v := init.(type) {
	case *value.Integer:
		e.Scp.Bind(n.Name, value.NewBigInt(v.Value))
	case *value.BigInt:
		e.Scp.Bind(n.Name, v)
	default:
		e.Scp.Bind(n.Name, init)
	}
	return &value.Null{}
}

// evalDefineStatement executes `define name = expr;`. Recognized
// configuration keys update interpreter state; every define also binds the
// name as an ordinary variable so programs (and :vars) can read it back.
func (e *Evaluator) evalDefineStatement(n *parser.DefineStatementNode) value.Object {
	val := e.Eval(n.Value)
	if value.IsError(val) {
		return val
	}
	if n.Name == "recursion_limit" {
		limit, ok := val.(*value.Integer)
		if !ok || limit.Value <= 0 {
			line, column := n.Value.Pos()
			return e.errorAt(line, column, value.TypeError,
				"recursion_limit must be a positive int, got %s", val.ToString())
		}
		e.RecursionLimit = int(limit.Value)
	}
	e.Scp.Bind(n.Name, val)
	return &value.Null{}
}

// evalAssignStatement executes `name = expr;`: the innermost scope holding
// the name is mutated; an unbound name is a runtime error.
func (e *Evaluator) evalAssignStatement(n *parser.AssignStatementNode) value.Object {
	val := e.Eval(n.Value)
	if value.IsError(val) {
		return val
	}
	if _, ok := e.Scp.Assign(n.Name, val); !ok {
		return e.errorAt(n.Token.Line, n.Token.Column, value.UndefinedName, "%s", n.Name)
	}
	return &value.Null{}
}

// evalIfStatement executes `if (cond) block [else block]` under the
// truthiness rule.
func (e *Evaluator) evalIfStatement(n *parser.IfStatementNode) value.Object {
	cond := e.Eval(n.Condition)
	if value.IsError(cond) {
		return cond
	}
	if value.Truthy(cond) {
		return e.evalBlockStatement(n.Then)
	}
	if n.Else != nil {
		return e.evalBlockStatement(n.Else)
	}
	return &value.Null{}
}

// evalWhileStatement executes `while (cond) block`. Break terminates the
// loop, continue short-circuits to the next iteration, and return and error
// signals keep unwinding outward.
func (e *Evaluator) evalWhileStatement(n *parser.WhileStatementNode) value.Object {
	for {
		cond := e.Eval(n.Condition)
		if value.IsError(cond) {
			return cond
		}
		if !value.Truthy(cond) {
			return &value.Null{}
		}

		result := e.evalBlockStatement(n.Body)
		switch result.GetType() {
		case value.ErrorType, value.ReturnType:
			return result
		case value.BreakType:
			return &value.Null{}
		case value.ContinueType:
			// next iteration
		}
	}
}

// evalIncludeStatement executes `include "path";`: load a native module by
// file path and make its namespace callable.
func (e *Evaluator) evalIncludeStatement(n *parser.IncludeStatementNode) value.Object {
	if _, err := e.Modules.Include(n.Module); err != nil {
		return e.statementModuleError(n.Token.Line, n.Token.Column, err)
	}
	return &value.Null{}
}

// evalUseStatement executes `use name;`: resolve a module by registry name
// and make its namespace callable.
func (e *Evaluator) evalUseStatement(n *parser.UseStatementNode) value.Object {
	if _, err := e.Modules.Use(n.Module); err != nil {
		return e.statementModuleError(n.Token.Line, n.Token.Column, err)
	}
	return &value.Null{}
}
