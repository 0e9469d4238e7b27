package bjevko_test

import (
	"errors"
	"fmt"

	"github.com/arloliu/bjevko"
	"github.com/arloliu/bjevko/affix"
	"github.com/arloliu/bjevko/errs"
	"github.com/arloliu/bjevko/tree"
)

func Example() {
	buf := []byte{
		1, 3, 0, 0, 0, 1, 2, 3,
		255, 3, 0, 0, 0, 4, 5, 6,
		1, 3, 0, 0, 0, 1, 2, 4,
		255, 3, 0, 0, 0, 7, 8, 9,
		255, 3, 0, 0, 0, 7, 8, 9,
	}

	seq, err := bjevko.Decode(buf)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, a := range seq {
		fmt.Println(a.Tag, a.Bytes())
	}

	root := bjevko.Build(seq)
	for label, child := range root.All() {
		fmt.Println(label, "->", child.Payload)
	}
	fmt.Println("root", root.Payload)

	// Output:
	// Open [1 2 3]
	// Close [4 5 6]
	// Open [1 2 4]
	// Close [7 8 9]
	// Close [7 8 9]
	// [1 2 3] -> [4 5 6]
	// [1 2 4] -> [7 8 9]
	// root [7 8 9]
}

func ExampleEncode() {
	seq := affix.Sequence{
		affix.Open([]byte("k")),
		affix.Close([]byte("v")),
		affix.Close(nil),
	}

	fmt.Println(bjevko.Encode(seq))

	// Output:
	// [1 1 0 0 0 107 255 1 0 0 0 118 255 0 0 0 0]
}

func ExampleDecode_error() {
	_, err := bjevko.Decode([]byte{255, 0, 0, 0, 0, 9})

	var de *errs.DecodeError
	if errors.As(err, &de) {
		fmt.Println(de.Kind, de.Count)
	}
	fmt.Println(err)

	// Output:
	// TrailingBytes 1
	// bjevko: trailing bytes: unexpected 1 bytes left at offset 5
}

func ExampleParse() {
	root, err := bjevko.Parse([]byte{
		1, 1, 0, 0, 0, 'a',
		255, 1, 0, 0, 0, 'x',
		255, 0, 0, 0, 0,
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	root.Walk(func(depth int, label []byte, n *tree.Node) bool {
		fmt.Printf("%d %q %q\n", depth, label, n.Payload)
		return true
	})

	// Output:
	// 0 "" ""
	// 1 "a" "x"
}
