package ir

type Trivia struct {
	Indent    string
	CommentWS string
	Comment   string
	Trail     string
}

type Node struct {
	Type   Type
	Trivia Trivia

	// ScalarType
	Kind ScalarKind
	Raw  string

	// ArrayType
	Items   []*ArrayItem
	Closing string

	// InlineTableType, TableType, DocumentType
	Body []*Entry

	// TableType
	IsSuper      bool
	IsAoTElement bool

	// AoTType
	Tables []*Node

	// WhitespaceType
	Text string
}

// Entry is one element of a body. Key is nil for comments and whitespace.
type Entry struct {
	Key   *Key
	Value *Node
}

// ArrayItem is one element of an inline array. A stand alone comment line
// is an item with a nil Value.
type ArrayItem struct {
	Indent  string
	Value   *Node
	Comma   string
	Comment *Node
}

func (a *ArrayItem) IsComment() bool {
	return a.Value == nil && a.Comment != nil
}

func Scalar(kind ScalarKind, raw string) *Node {
	return &Node{Type: ScalarType, Kind: kind, Raw: raw}
}

func Comment(text string) *Node {
	return &Node{Type: CommentType, Trivia: Trivia{Comment: text}}
}

func Whitespace(text string) *Node {
	return &Node{Type: WhitespaceType, Text: text}
}

func NewArray() *Node {
	return &Node{Type: ArrayType}
}

func NewInlineTable() *Node {
	return &Node{Type: InlineTableType}
}

func NewTable(super, aotElement bool) *Node {
	return &Node{
		Type:         TableType,
		IsSuper:      super,
		IsAoTElement: aotElement,
	}
}

func NewAoT() *Node {
	return &Node{Type: AoTType}
}

func NewDocument() *Node {
	return &Node{Type: DocumentType}
}

// Add appends a keyed entry to the body of n.
func (n *Node) Add(key *Key, v *Node) {
	n.Body = append(n.Body, &Entry{Key: key, Value: v})
}

// AddTrivia appends a comment or whitespace entry to the body of n.
func (n *Node) AddTrivia(v *Node) {
	n.Body = append(n.Body, &Entry{Value: v})
}

// Append adds an element table to an array of tables.
func (n *Node) Append(t *Node) {
	t.IsAoTElement = true
	n.Tables = append(n.Tables, t)
}

// Len is the number of keyed entries in a body, or of element tables in
// an array of tables.
func (n *Node) Len() int {
	if n.Type == AoTType {
		return len(n.Tables)
	}
	c := 0
	for _, e := range n.Body {
		if e.Key != nil {
			c++
		}
	}
	return c
}

// Last returns the value of the last keyed entry of the body, or nil.
func (n *Node) Last() *Node {
	for i := len(n.Body) - 1; i >= 0; i-- {
		if n.Body[i].Key != nil {
			return n.Body[i].Value
		}
	}
	return nil
}

// Lookup returns the value of the last keyed entry whose key name is name.
func (n *Node) Lookup(name string) *Node {
	for i := len(n.Body) - 1; i >= 0; i-- {
		e := n.Body[i]
		if e.Key != nil && e.Key.Name() == name {
			return e.Value
		}
	}
	return nil
}

// HasComment reports whether the node's line carries a comment.
func (n *Node) HasComment() bool {
	return n.Trivia.Comment != ""
}
