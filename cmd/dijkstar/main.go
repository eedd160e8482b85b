// Command dijkstar finds least-cost paths in graph files and serves them over HTTP.
package main

import "github.com/katalvlaran/dijkstar/cmd/dijkstar/commands"

func main() {
	commands.Execute()
}
