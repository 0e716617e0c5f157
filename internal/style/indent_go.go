package style

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
)

// goIndentIndex maps 0-indexed source lines to whether a Go block
// opens or closes on that line, built from the real parse tree so a
// "{" inside a string or comment never gets mistaken for a block.
type goIndentIndex struct {
	increase map[int]bool
	decrease map[int]bool
}

func buildGoIndentIndex(source []byte) *goIndentIndex {
	idx := &goIndentIndex{increase: map[int]bool{}, decrease: map[int]bool{}}
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(golang.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return idx
	}
	defer tree.Close()

	walkGoBlocks(tree.RootNode(), idx)
	return idx
}

func walkGoBlocks(n *sitter.Node, idx *goIndentIndex) {
	if n == nil {
		return
	}
	switch n.Type() {
	case "block", "literal_value":
		idx.increase[int(n.StartPoint().Row)] = true
		idx.decrease[int(n.EndPoint().Row)] = true
	}
	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		walkGoBlocks(n.Child(i), idx)
	}
}
