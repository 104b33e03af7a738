package ucg_test

import (
	"fmt"
	"log"

	"github.com/feoramund/ucg-go"
)

func ExampleNewIterator() {
	text := []byte("Hello, 世界! 👍🐶")

	it := ucg.NewIterator(text)
	for it.Next() {
		fmt.Printf("%q\n", it.Bytes())
	}

	if err := it.Err(); err != nil {
		log.Fatal(err)
	}
	// Output: "H"
	// "e"
	// "l"
	// "l"
	// "o"
	// ","
	// " "
	// "世"
	// "界"
	// "!"
	// " "
	// "👍"
	// "🐶"
}

func ExampleCount() {
	runes, graphemes, width, err := ucg.Count([]byte("Hello, 世界!"))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(runes, graphemes, width)
	// Output: 10 10 12
}

func ExampleCountString() {
	// A flag emoji is two Regional Indicator code points that count as
	// one grapheme cluster and occupy two display cells.
	runes, graphemes, width, err := ucg.CountString("\U0001F1FA\U0001F1F8")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(runes, graphemes, width)
	// Output: 2 1 2
}
