package files

import (
	"os"
)

// DirContext is a directory path together with its children in listing order.
type DirContext struct {
	Path     string
	children []os.DirEntry
	index    map[string]int
}

func NewDirContext(path string, children []os.DirEntry) *DirContext {
	c := &DirContext{Path: path}
	for _, child := range children {
		c.AddChild(child)
	}
	return c
}

// AddChild appends an entry unless one with the same name is already present.
// It reports whether the entry was added.
func (c *DirContext) AddChild(entry os.DirEntry) bool {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	name := entry.Name()
	if _, ok := c.index[name]; ok {
		return false
	}
	c.index[name] = len(c.children)
	c.children = append(c.children, entry)
	return true
}

// Child looks an entry up by name.
func (c *DirContext) Child(name string) (os.DirEntry, bool) {
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}
	return c.children[i], true
}

// Children returns a copy so callers can sort it freely.
func (c *DirContext) Children() []os.DirEntry {
	if c.children == nil {
		return nil
	}
	children := make([]os.DirEntry, len(c.children))
	copy(children, c.children)
	return children
}
