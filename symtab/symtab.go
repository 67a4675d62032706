// Package symtab implements the string interning table consulted by string
// constants in the AST.
package symtab

import (
	"fmt"
	"sync"

	"github.com/fangyi-zhou/souffle/ram"
)

// Table maps strings to dense Domain handles and back. Handles are
// append-only: once issued, a handle stays valid for the lifetime of the
// table and always resolves to the same text.
type Table struct {
	mu     sync.RWMutex
	byText map[string]ram.Domain
	byID   []string
}

func New() *Table {
	return &Table{byText: make(map[string]ram.Domain)}
}

// Intern returns the handle for text, assigning the next free handle the
// first time text is seen.
func (t *Table) Intern(text string) ram.Domain {
	t.mu.RLock()
	id, exists := t.byText[text]
	t.mu.RUnlock()
	if exists {
		return id
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if id, exists := t.byText[text]; exists {
		return id
	}
	id = ram.Domain(len(t.byID))
	t.byText[text] = id
	t.byID = append(t.byID, text)
	return id
}

// Resolve returns the text interned at h. Resolving a handle that was never
// issued by this table is a caller defect.
func (t *Table) Resolve(h ram.Domain) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if h < 0 || int(h) >= len(t.byID) {
		panic(fmt.Sprintf("symtab: resolve of unknown handle %d", h))
	}
	return t.byID[h]
}

// Size returns the number of interned strings.
func (t *Table) Size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.byID)
}
