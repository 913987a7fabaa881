package main

import "testing"

func Example() {
	main()

	// Output:
	// LET "let"
	// IDENT "x"
	// ASSIGN "="
	// NUMBER "3"
	// PLUS "+"
	// NUMBER "4"
	// ASTERISK "*"
	// NUMBER "5"
	// SEMICOLON ";"
	// 23
}

func TestRunMain(t *testing.T) {
	main()
}
