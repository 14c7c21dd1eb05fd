package jsonmax_test

import (
	"fmt"

	"github.com/arloliu/jsonmax"
	"github.com/arloliu/jsonmax/payload"
)

func Example() {
	doc := payload.FromValues([]uint64{3, 1, 4, 1, 5, 9, 2, 6})

	custom, err := jsonmax.StreamMax(doc.Text)
	if err != nil {
		fmt.Println(err)
		return
	}

	whole, err := jsonmax.WholeMax(doc.Text)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(custom, whole)

	// Output:
	// 9 9
}

func Example_emptyArray() {
	doc := payload.FromValues(nil)

	_, err := jsonmax.StreamMax(doc.Text)
	fmt.Println(err)

	whole, _ := jsonmax.WholeMax(doc.Text)
	fmt.Println(whole)

	// Output:
	// extract: no values in seq
	// 0
}
