// nitractl - Command-line interface for Nitrado-hosted game servers
package main

import "github.com/donmatraca/nitrado-go/pkg/cli"

func main() {
	cli.Execute()
}
