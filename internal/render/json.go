package render

import (
	"encoding/json"
	"io"

	"github.com/temirov/dirtree/internal/tree"
)

const (
	jsonIndentPrefix = ""
	jsonIndentSpacer = "  "
)

// JSONNode is the serialized form of one tree node.
type JSONNode struct {
	Name     string      `json:"name"`
	Path     string      `json:"path"`
	Type     string      `json:"type"`
	Size     int64       `json:"size"`
	Display  string      `json:"display,omitempty"`
	Target   string      `json:"target,omitempty"`
	Inode    *uint64     `json:"inode,omitempty"`
	Links    *uint64     `json:"links,omitempty"`
	Blocks   *uint64     `json:"blocks,omitempty"`
	Children []*JSONNode `json:"children,omitempty"`
}

// JSONDocument wraps the root node with the entry summary.
type JSONDocument struct {
	Root        *JSONNode `json:"root"`
	Directories int       `json:"directories"`
	Files       int       `json:"files"`
	Symlinks    int       `json:"symlinks"`
}

// JSONRenderer writes the tree as one indented JSON document.
type JSONRenderer struct{}

// NewJSONRenderer constructs a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render implements Renderer.
func (renderer *JSONRenderer) Render(writer io.Writer, assembled *tree.Tree) error {
	count := assembled.TotalFileCount()
	document := JSONDocument{
		Root:        BuildJSONNode(assembled, assembled.RootID()),
		Directories: count.Directories,
		Files:       count.Files,
		Symlinks:    count.Symlinks,
	}
	encoder := json.NewEncoder(writer)
	encoder.SetIndent(jsonIndentPrefix, jsonIndentSpacer)
	return encoder.Encode(document)
}

// BuildJSONNode converts the subtree under id, honoring the configured level
// limit and long listing.
func BuildJSONNode(assembled *tree.Tree, id tree.NodeID) *JSONNode {
	settings := assembled.Context()
	node := assembled.Node(id)
	serialized := &JSONNode{
		Name:   node.Name(),
		Path:   node.Path(),
		Type:   node.Kind().String(),
		Target: node.SymlinkTarget(),
	}
	if fileSize, hasSize := node.FileSize(); hasSize {
		serialized.Size = fileSize.Bytes
		serialized.Display = fileSize.UnpaddedDisplay()
	}
	if settings.Long {
		serialized.Inode = optionalValue(node.Ino)
		serialized.Links = optionalValue(node.Nlink)
		serialized.Blocks = optionalValue(node.Blocks)
	}
	if settings.Level > 0 && node.Depth() >= settings.Level {
		return serialized
	}
	for _, childID := range assembled.Children(id) {
		serialized.Children = append(serialized.Children, BuildJSONNode(assembled, childID))
	}
	return serialized
}

func optionalValue(read func() (uint64, bool)) *uint64 {
	value, available := read()
	if !available {
		return nil
	}
	return &value
}
