package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"

	"github.com/akhildatla/isa/pkg/isa"
	"github.com/akhildatla/isa/pkg/repl"
)

func newOpcodesCmd() *cobra.Command {
	var (
		tree  bool
		shape string
	)

	cmd := &cobra.Command{
		Use:   "opcodes",
		Short: "List the opcode registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter isa.Shape
			if shape != "" {
				var ok bool
				if filter, ok = shapeFromString(shape); !ok {
					return fmt.Errorf("unknown shape %q", shape)
				}
			}

			out := cmd.OutOrStdout()
			if tree {
				fmt.Fprint(out, opcodeTree(shape != "", filter).String())
				return nil
			}
			for _, op := range isa.Opcodes() {
				if shape != "" && op.Shape() != filter {
					continue
				}
				fmt.Fprintf(out, "0x%02X  %-5s %-6s %s\n", op.Byte(), op, op.Shape(), op.Doc())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&tree, "tree", false, "group opcodes by operand shape")
	cmd.Flags().StringVar(&shape, "shape", "", "only list opcodes of this shape")
	return cmd
}

func shapeFromString(s string) (isa.Shape, bool) {
	for _, sh := range isa.Shapes() {
		if strings.EqualFold(sh.String(), s) {
			return sh, true
		}
	}
	return 0, false
}

// opcodeTree renders the registry grouped by shape, each shape annotated
// with its bit layout.
func opcodeTree(filtered bool, only isa.Shape) treeprint.Tree {
	tree := treeprint.New()
	tree.SetValue(fmt.Sprintf("opcodes (%d)", len(isa.Opcodes())))

	for _, s := range isa.Shapes() {
		if filtered && s != only {
			continue
		}
		var ops []isa.Opcode
		for _, op := range isa.Opcodes() {
			if op.Shape() == s {
				ops = append(ops, op)
			}
		}
		if len(ops) == 0 {
			continue
		}
		branch := tree.AddMetaBranch(s.String(), repl.Layout(s))
		for _, op := range ops {
			branch.AddMetaNode(fmt.Sprintf("0x%02X", op.Byte()), op.String())
		}
	}
	return tree
}
