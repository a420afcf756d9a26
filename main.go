// dropsite-cli is an interactive command-line client for dropsite,
// a password-protected file sharing service.
package main

import "github.com/dropsite-io/dropsite-cli/cmd"

func main() {
	cmd.Run()
}
