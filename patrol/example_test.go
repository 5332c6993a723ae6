package patrol_test

import (
	"fmt"

	"github.com/katalvlaran/gridpuzzles/patrol"
)

// ExampleRun patrols the reference board and reports both metrics.
func ExampleRun() {
	board, err := patrol.ParseBoard([]string{
		"....#.....",
		".........#",
		"..........",
		"..#.......",
		".......#..",
		"..........",
		".#..^.....",
		"........#.",
		"#.........",
		"......#...",
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	res, err := patrol.Run(board)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("steps:", res.Steps)
	fmt.Println("distinct:", res.Distinct)
	// Output:
	// steps: 44
	// distinct: 41
}
