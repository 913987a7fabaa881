// Play with a tiny interpreter: lex, parse and evaluate a let statement.
package main

import (
	"fmt"
	"log"

	"github.com/coka/open-learning/interpreter/lang"
)

const source = "let x = 3 + 4 * 5;"

func main() {
	l := lang.NewLexer(source)
	for t := l.Next(); t.Type != lang.EOF; t = l.Next() {
		fmt.Println(t)
	}

	program, err := lang.NewParser(lang.NewLexer(source)).Parse()
	if err != nil {
		log.Fatalln(err)
	}
	v, err := lang.Evaluate(program)
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Println(v)
}
