package main

import "testing"

func Example() {
	main()

	// Output: 233168
}

func TestRunMain(t *testing.T) {
	main()
}
