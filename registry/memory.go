package registry

import (
	"strings"
	"sync"
)

// Memory is an in-memory Registry for tests and dry runs.
// Key names match case-insensitively, as on Windows, and subkeys enumerate
// in creation order. Memory counts opens and closes so callers can assert
// that every key was released.
type Memory struct {
	mu     sync.Mutex
	roots  map[Hive]*node
	opens  int
	closes int
}

type node struct {
	name     string
	children []*node
	values   map[string]string
}

// NewMemory returns an empty registry.
func NewMemory() *Memory {
	return &Memory{roots: make(map[Hive]*node)}
}

// CreateKey creates path under hive, including missing parents.
func (m *Memory) CreateKey(hive Hive, path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensure(hive, path)
}

// SetValue stores a string value on path, creating the key if needed.
func (m *Memory) SetValue(hive Hive, path, name, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensure(hive, path).values[strings.ToLower(name)] = value
}

// Opens returns how many keys have been opened.
func (m *Memory) Opens() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.opens
}

// OpenHandles returns how many opened keys have not been closed yet.
func (m *Memory) OpenHandles() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.opens - m.closes
}

// OpenKey opens path under hive.
func (m *Memory) OpenKey(hive Hive, path string) (Key, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.roots[hive]
	if !ok {
		return nil, false, nil
	}
	for _, part := range splitPath(path) {
		if n = n.child(part); n == nil {
			return nil, false, nil
		}
	}
	m.opens++
	return &memoryKey{reg: m, node: n}, true, nil
}

func (m *Memory) ensure(hive Hive, path string) *node {
	n, ok := m.roots[hive]
	if !ok {
		n = newNode(hive.String())
		m.roots[hive] = n
	}
	for _, part := range splitPath(path) {
		c := n.child(part)
		if c == nil {
			c = newNode(part)
			n.children = append(n.children, c)
		}
		n = c
	}
	return n
}

func newNode(name string) *node {
	return &node{name: name, values: make(map[string]string)}
}

func (n *node) child(name string) *node {
	for _, c := range n.children {
		if strings.EqualFold(c.name, name) {
			return c
		}
	}
	return nil
}

type memoryKey struct {
	reg    *Memory
	node   *node
	closed bool
}

func (k *memoryKey) SubKeyNames() ([]string, error) {
	k.reg.mu.Lock()
	defer k.reg.mu.Unlock()

	names := make([]string, len(k.node.children))
	for i, c := range k.node.children {
		names[i] = c.name
	}
	return names, nil
}

func (k *memoryKey) OpenKey(name string) (Key, bool, error) {
	k.reg.mu.Lock()
	defer k.reg.mu.Unlock()

	n := k.node
	for _, part := range splitPath(name) {
		if n = n.child(part); n == nil {
			return nil, false, nil
		}
	}
	k.reg.opens++
	return &memoryKey{reg: k.reg, node: n}, true, nil
}

func (k *memoryKey) StringValue(name string) (string, bool, error) {
	k.reg.mu.Lock()
	defer k.reg.mu.Unlock()

	v, ok := k.node.values[strings.ToLower(name)]
	return v, ok, nil
}

func (k *memoryKey) Close() error {
	k.reg.mu.Lock()
	defer k.reg.mu.Unlock()

	if !k.closed {
		k.closed = true
		k.reg.closes++
	}
	return nil
}
