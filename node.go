package dercodec

/*
node.go contains the Node type: the schema/instance tree that the
encode, decode and locate walkers traverse. A Node tree is built and
owned by the caller (a schema compiler, a hand-built fixture, a prior
decode). This package allocates Nodes only by cloning existing ones:
[Clone] and [Locate] copy a whole tree, and decode clones a SEQUENCE OF
/ SET OF template once per element before splicing it in with
AppendSequenceSet.
*/

/*
NodeType identifies the ASN.1 construct a [Node] represents.
*/
type NodeType uint8

const (
	NullType NodeType = iota
	BooleanType
	IntegerType
	EnumeratedType
	ObjectIDType
	TimeType
	OctetStringType
	BitStringType
	SequenceType
	SequenceOfType
	SetType
	SetOfType
	ChoiceType
	AnyType
	TagType
	SizeType
)

/*
NodeFlags carries the per-node boolean modifiers this package's data
model calls out individually (HasTag, IsOptional, IsDefault, IsSet,
IsNotUsed, IsUTCTime, Explicit). They are bit flags rather than
separate bool fields, matching this codebase's preference for small,
named bit sets over sprawling boolean structs.
*/
type NodeFlags uint16

const (
	HasTag NodeFlags = 1 << iota
	IsOptional
	IsDefault
	IsSet
	IsNotUsed
	IsUTCTime // TimeType leaf decoded (or to be encoded) using the UTCTime tag rather than GeneralizedTime
	Explicit
)

func (f NodeFlags) has(bit NodeFlags) bool { return f&bit != 0 }

/*
Node is one vertex of the schema/instance tree. The four-way link
topology (Down, Right, Left) mirrors the original C AsnNode: Down is
the first child, Right is the next sibling, and Left is either the
previous sibling or, for a first child, the parent. [parent] recovers
the real parent pointer from that overloaded Left link.
*/
type Node struct {
	Type  NodeType
	Flags NodeFlags
	Class int // meaningful only on TagType nodes
	Num   int // tag number, meaningful only on TagType nodes
	Name  string
	Value []byte
	Bits  int // valid bit count, meaningful only on BitStringType leaves

	Down, Right, Left *Node
}

/*
parent returns n's parent, recovered by walking Left until the
overloaded-sibling invariant no longer holds. A first child's Left
points at its parent rather than at a sibling; parent detects this by
checking whether that candidate's Right loops back to n.
*/
func parent(n *Node) *Node {
	if n == nil || n.Left == nil {
		return nil
	}
	p := n.Left
	if p.Right == n {
		// p is a true left sibling, keep walking until
		// we reach the node whose Right does NOT point at us.
		for p.Left != nil && p.Right == n {
			n, p = p, p.Left
		}
		if p.Right == n {
			return p
		}
		return p
	}
	return p
}

/*
firstNamedChild walks n's Down/Right chain, skipping TagType and
SizeType overlay nodes, and returns the first child that carries
schema content of its own.
*/
func firstNamedChild(n *Node) *Node {
	if n == nil {
		return nil
	}
	c := n.Down
	for c != nil && (c.Type == TagType || c.Type == SizeType) {
		c = c.Right
	}
	return c
}

/*
FindNode resolves a dotted path (e.g. "sequence.field2") starting at
root and returns the matching [Node], or nil if no such path exists.
Each dotted component matches a Name on some descendant reached by
descending Down and scanning Right; TagType/SizeType overlay nodes are
transparent to name resolution, exactly as they are to the walkers.
*/
func FindNode(root *Node, path string) *Node {
	if root == nil || path == "" {
		return root
	}
	cur := root
	for _, part := range splitPath(path) {
		cur = findChildNamed(cur, part)
		if cur == nil {
			return nil
		}
	}
	return cur
}

func splitPath(path string) []string { return split(path, ".") }

func findChildNamed(n *Node, name string) *Node {
	if n == nil {
		return nil
	}
	for c := n.Down; c != nil; c = c.Right {
		if c.Type == TagType || c.Type == SizeType {
			continue
		}
		if c.Name == name {
			return c
		}
	}
	return nil
}

/*
SetValue assigns v as the receiver's payload in fluent form.
*/
func (n *Node) SetValue(v []byte) *Node {
	if n != nil {
		n.Value = v
	}
	return n
}

/*
SetName assigns name as the receiver's lookup key in fluent form.
*/
func (n *Node) SetName(name string) *Node {
	if n != nil {
		n.Name = name
	}
	return n
}

/*
AppendSequenceSet appends elem as a new last child of parentNode,
splicing it into the Down/Right/Left chain. It is how the decode
walker grows a SEQUENCE OF / SET OF node one element at a time as it
consumes repeated TLVs from the wire, since the schema supplies only
one element template for the whole repeated group.
*/
func AppendSequenceSet(parentNode, elem *Node) {
	if parentNode == nil || elem == nil {
		return
	}
	if parentNode.Down == nil {
		parentNode.Down = elem
		elem.Left = parentNode
		return
	}
	last := parentNode.Down
	for last.Right != nil {
		last = last.Right
	}
	last.Right = elem
	elem.Left = last
}

/*
deepClone returns a structural copy of n (not including siblings),
used by the decode walker to stamp out repeated SEQUENCE OF / SET OF
elements from a single template node.
*/
func deepClone(n *Node) *Node {
	if n == nil {
		return nil
	}
	c := &Node{
		Type:  n.Type,
		Flags: n.Flags &^ IsNotUsed,
		Class: n.Class,
		Num:   n.Num,
		Name:  n.Name,
		Bits:  n.Bits,
	}
	c.Value = append([]byte(nil), n.Value...)
	if n.Down != nil {
		c.Down = deepCloneChain(n.Down)
		c.Down.Left = c
	}
	return c
}

/*
deepCloneChain clones n and its Right-linked siblings, relinking Left
pointers within the cloned chain.
*/
func deepCloneChain(n *Node) *Node {
	if n == nil {
		return nil
	}
	head := deepClone(n)
	prev := head
	for s := n.Right; s != nil; s = s.Right {
		cl := deepClone(s)
		prev.Right = cl
		cl.Left = prev
		prev = cl
	}
	return head
}

/*
DeleteStructure detaches n from its parent's child chain and discards
it (and its own subtree). Used by the final DeleteNotUsed sweep, never
called mid-walk against a live traversal.
*/
func DeleteStructure(n *Node) {
	if n == nil {
		return
	}
	p := parent(n)
	if p != nil && p.Down == n {
		p.Down = n.Right
		if p.Down != nil {
			p.Down.Left = p
		}
		return
	}
	if n.Left != nil {
		n.Left.Right = n.Right
	}
	if n.Right != nil {
		n.Right.Left = n.Left
	}
}

/*
DeleteNotUsed walks root's subtree once, after a decode has fully
completed, and removes every node marked IsNotUsed (absent
OPTIONAL/DEFAULT members and losing CHOICE alternatives). The decode
walk itself only marks such nodes; see walk.go.
*/
func DeleteNotUsed(root *Node) {
	if root == nil {
		return
	}
	var doomed []*Node
	var walk func(*Node)
	walk = func(n *Node) {
		for c := n; c != nil; c = c.Right {
			if c.Flags.has(IsNotUsed) {
				doomed = append(doomed, c)
				continue
			}
			if c.Down != nil {
				walk(c.Down)
			}
		}
	}
	walk(root.Down)
	if root.Flags.has(IsNotUsed) {
		doomed = append(doomed, root)
	}
	for _, d := range doomed {
		DeleteStructure(d)
	}
}
