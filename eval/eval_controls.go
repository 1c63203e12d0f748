/*
File    : lamina-go/eval/eval_controls.go
Project : Lamina interpreter in Go
*/
package eval

import (
	"github.com/iOS-GM/lamina-go/function"
	"github.com/iOS-GM/lamina-go/module"
	"github.com/iOS-GM/lamina-go/parser"
	"github.com/iOS-GM/lamina-go/scope"
	"github.com/iOS-GM/lamina-go/value"
)

// RegisterFunction constructs a function value for a definition and binds it
// by name in the current scope. The value captures the current scope, so the
// function can later read and assign variables of its defining environment
// (lexical scoping). Redefinition replaces the previous binding.
func (e *Evaluator) RegisterFunction(n *parser.FuncDefStatementNode) value.Object {
	fn := &function.Function{
		Name:   n.Name,
		Params: n.Params,
		Body:   n.Body,
		Scp:    e.Scp,
	}
	e.Scp.Bind(n.Name, fn)
	return &value.Null{}
}

// evalCallExpression evaluates calls of builtins and user-defined functions.
//
// Builtins are checked first. For user functions the call path is:
// resolve the callee, verify it is a function, verify arity, verify the
// recursion limit, evaluate arguments left-to-right, bind them positionally
// in a fresh scope parented to the function's captured scope, execute the
// body, and unwrap a Return sentinel into the call's value (null when the
// body finished without returning).
func (e *Evaluator) evalCallExpression(n *parser.CallExpressionNode) value.Object {
	funcName := n.Callee.Name

	if builtin, ok := e.Builtins[funcName]; ok {
		args, errObj := e.evalArguments(n.Arguments)
		if errObj != nil {
			return errObj
		}
		result := builtin.Callback(e, e.Writer, args...)
		if err, isErr := result.(*value.Error); isErr && err.Line == 0 {
			// builtins have no source context; attach the call site
			err.Line, err.Column = n.Pos()
			err.Trace = e.snapshotTrace()
		}
		return result
	}

	obj, ok := e.Scp.LookUp(funcName)
	if !ok {
		return e.exprError(n, value.UndefinedName, "%s", funcName)
	}
	fn, isFn := obj.(*function.Function)
	if !isFn {
		return e.exprError(n, value.TypeError, "%s is not a function", funcName)
	}

	if len(n.Arguments) != len(fn.Params) {
		return e.exprError(n, value.ArityError,
			"%s expects %d argument(s), got %d", funcName, len(fn.Params), len(n.Arguments))
	}
	if e.callDepth >= e.RecursionLimit {
		return e.exprError(n, value.RecursionLimit,
			"maximum recursion depth %d exceeded in %s", e.RecursionLimit, funcName)
	}

	args, errObj := e.evalArguments(n.Arguments)
	if errObj != nil {
		return errObj
	}

	// bind parameters in a fresh scope parented to the captured scope
	callScope := scope.NewScope(fn.Scp)
	for i, param := range fn.Params {
		callScope.Bind(param.Name, args[i])
	}

	line, _ := n.Pos()
	e.pushFrame(funcName, line)
	oldScope := e.Scp
	e.Scp = callScope
	result := e.Eval(fn.Body)
	e.Scp = oldScope
	e.popFrame()

	if ret, isReturn := result.(*value.ReturnValue); isReturn {
		return ret.Value
	}
	if value.IsError(result) {
		return result
	}
	if result != nil && (result.GetType() == value.BreakType || result.GetType() == value.ContinueType) {
		// break/continue escaping a function body keep unwinding; the
		// top-level driver downgrades them to warnings
		return result
	}
	return &value.Null{}
}

// evalNamespaceCallExpression dispatches ns.fn(args...) through the module
// registry. Loader failures surface as ModuleError runtime errors carrying
// the loader's subtype classification.
func (e *Evaluator) evalNamespaceCallExpression(n *parser.NamespaceCallExpressionNode) value.Object {
	args, errObj := e.evalArguments(n.Arguments)
	if errObj != nil {
		return errObj
	}

	mod, ok := e.Modules.Lookup(n.Namespace)
	if !ok {
		return e.exprError(n, value.ModuleError,
			"%s: no loaded module declares namespace %q", module.NamespaceMismatch, n.Namespace)
	}
	result, err := mod.Call(n.Namespace, n.Function, args)
	if err != nil {
		return e.moduleError(n, err)
	}
	return result
}

// evalReturnStatement evaluates `return [expr];` and wraps the result in a
// Return sentinel for propagation to the nearest function frame.
func (e *Evaluator) evalReturnStatement(n *parser.ReturnStatementNode) value.Object {
	if n.Expr == nil {
		return &value.ReturnValue{Value: &value.Null{}}
	}
	val := e.Eval(n.Expr)
	if value.IsError(val) {
		return val
	}
	return &value.ReturnValue{Value: val}
}

// evalArguments evaluates an argument list left-to-right, stopping at the
// first error.
func (e *Evaluator) evalArguments(exprs []parser.ExpressionNode) ([]value.Object, value.Object) {
	args := make([]value.Object, len(exprs))
	for i, expr := range exprs {
		evaluated := e.Eval(expr)
		if value.IsError(evaluated) {
			return nil, evaluated
		}
		args[i] = evaluated
	}
	return args, nil
}

// moduleError converts a loader error into a runtime error signal.
func (e *Evaluator) moduleError(node parser.ExpressionNode, err error) *value.Error {
	if modErr, ok := err.(*module.Error); ok {
		return e.exprError(node, value.ModuleError, "%s: %s", modErr.Code, modErr.Detail)
	}
	return e.exprError(node, value.ModuleError, "%s", err.Error())
}
