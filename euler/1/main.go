// Sum the multiples of 3 or 5 below 1000 (Project Euler problem 1).
package main

import (
	"fmt"

	"github.com/coka/open-learning/euler/1/multiples"
)

const bound = 1000

func main() {
	fmt.Println(multiples.Sum(bound, 3, 5))
}
