// Command graphql-parse parses, formats and checks GraphQL documents.
//
//	graphql-parse check schema.graphql queries/*.graphql
//	graphql-parse fmt -w query.graphql
//	cat query.graphql | graphql-parse parse
package main

import (
	"os"
)

func main() {
	if err := execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
