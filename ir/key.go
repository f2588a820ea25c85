package ir

import "strings"

// KeyPart is one dotted segment of a key: Raw is the source text including
// any quotes, Name the key it denotes.
type KeyPart struct {
	Raw  string
	Name string
}

type Key struct {
	Parts []KeyPart
	Sep   string
}

func BareKey(name string) *Key {
	return &Key{Parts: []KeyPart{{Raw: name, Name: name}}, Sep: " = "}
}

// Name returns the dotted key name, used for matching and sorting.
func (k *Key) Name() string {
	if len(k.Parts) == 1 {
		return k.Parts[0].Name
	}
	names := make([]string, len(k.Parts))
	for i := range k.Parts {
		names[i] = k.Parts[i].Name
	}
	return strings.Join(names, ".")
}

// String returns the key as it is written in the document.
func (k *Key) String() string {
	if len(k.Parts) == 1 {
		return k.Parts[0].Raw
	}
	raws := make([]string, len(k.Parts))
	for i := range k.Parts {
		raws[i] = k.Parts[i].Raw
	}
	return strings.Join(raws, ".")
}

func (k *Key) IsDotted() bool {
	return len(k.Parts) > 1
}

func (k *Key) Clone() *Key {
	res := &Key{Sep: k.Sep, Parts: make([]KeyPart, len(k.Parts))}
	copy(res.Parts, k.Parts)
	return res
}
