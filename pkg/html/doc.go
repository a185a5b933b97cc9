// Package html provides per-tag element factories and attribute helpers
// on top of package dom. Every factory forwards to the dom.NewTag
// contract; void tags are wired to the HTML5 void set so appending
// children to them fails fast.
package html
