// main.go
package main

import "github.com/xkilldash9x/anchor-cli/cmd"

func main() {
	cmd.Execute()
}
