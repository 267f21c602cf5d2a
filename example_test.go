package natsort_test

import (
	"fmt"

	"natsort"
)

func ExampleSort() {
	files := []string{"file2.txt", "file11.txt", "file1.txt"}
	if err := natsort.Sort(files); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(files)
	// Output: [file1.txt file2.txt file11.txt]
}

func ExampleCompareStrings() {
	fmt.Println(natsort.CompareStrings("file2", "file11"))
	fmt.Println(natsort.CompareStrings("007", "7"))
	fmt.Println(natsort.CompareStrings("1", "a"))
	// Output:
	// less
	// equal
	// incomparable
}

func ExampleTokenize() {
	for _, tok := range natsort.Tokenize("abc123xyz456") {
		fmt.Println(tok)
	}
	// Output:
	// Letters("abc")
	// Number(123)
	// Letters("xyz")
	// Number(456)
}
