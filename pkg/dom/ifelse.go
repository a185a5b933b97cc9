package dom

import "io"

// condBranch is one (condition, block) pair of a conditional.
type condBranch struct {
	cond  any
	block []Child
}

// IfElse renders the block of its first truthy condition, or the else
// block if none match. Branches are evaluated in declaration order and
// evaluation stops at the first match: conditions and blocks after it
// are never touched, so side effects in unreached branches do not run.
//
// Building is a two-phase lifecycle. When/Then/Else only grow the node;
// once Else has received content the node is locked and further Then
// calls panic with a *StructuralError.
type IfElse struct {
	Node
	branches  []condBranch
	elseBlock []Child
	locked    bool
}

// NewIfElse creates an empty conditional.
func NewIfElse() *IfElse {
	return &IfElse{}
}

// If starts a conditional with one branch already populated. It is
// shorthand for NewIfElse().When(cond).Then(children...).
func If(cond any, children ...Child) *IfElse {
	return NewIfElse().When(cond).Then(children...)
}

// When appends a new branch with the given condition and makes it the
// current block for Then. The condition may be a bool, a func() bool,
// or any value judged by general truthiness at render time.
func (f *IfElse) When(cond any) *IfElse {
	f.branches = append(f.branches, condBranch{cond: cond})
	return f
}

// Then appends children to the current branch's block. It panics with a
// *StructuralError if the node is locked or no branch has been started.
func (f *IfElse) Then(children ...Child) *IfElse {
	if f.locked {
		panic(structural(CodeLockedBranch, "IfElse.Then",
			"conditional already has an else block and cannot grow",
			"add all When/Then branches before calling Else"))
	}
	if len(f.branches) == 0 {
		panic(structural(CodeOrphanedBranch, "IfElse.Then",
			"no branch to append to",
			"call When(condition) before Then"))
	}
	cur := &f.branches[len(f.branches)-1]
	for _, c := range children {
		if c == nil {
			continue
		}
		if cn, ok := c.(childNode); ok {
			cn.base().parent = &f.Node
		}
		cur.block = append(cur.block, c)
	}
	return f
}

// Else appends children to the terminal block. The first call that
// actually adds content locks the node.
func (f *IfElse) Else(children ...Child) *IfElse {
	for _, c := range children {
		if c == nil {
			continue
		}
		if cn, ok := c.(childNode); ok {
			cn.base().parent = &f.Node
		}
		f.elseBlock = append(f.elseBlock, c)
	}
	if len(f.elseBlock) > 0 {
		f.locked = true
	}
	return f
}

// Locked reports whether the else block has been populated.
func (f *IfElse) Locked() bool { return f.locked }

// Render evaluates conditions in order and renders the first matching
// block, or the else block if none match.
func (f *IfElse) Render(w io.Writer) error {
	for i := range f.branches {
		if truthy(f.branches[i].cond) {
			return renderChildren(w, f.branches[i].block, &f.Node)
		}
	}
	return renderChildren(w, f.elseBlock, &f.Node)
}

// truthy coerces a condition to a boolean. Deferred conditions are
// invoked first; everything else follows general truthiness: nil,
// false, zero numbers and empty strings are false, anything else true.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case func() bool:
		return t()
	case func() any:
		return truthy(t())
	case string:
		return t != ""
	case int:
		return t != 0
	case int8:
		return t != 0
	case int16:
		return t != 0
	case int32:
		return t != 0
	case int64:
		return t != 0
	case uint:
		return t != 0
	case uint64:
		return t != 0
	case float32:
		return t != 0
	case float64:
		return t != 0
	default:
		return true
	}
}
