package cli

// set of CLI details
const (
	// Name is the CLI name
	Name = "dropsite-cli"

	// Version is the CLI version
	Version = "0.2.0"
)
