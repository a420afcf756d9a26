package terminal

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var bannerColor = color.New(color.FgCyan, color.Bold)

// Banner creates the header log printed when an interactive session starts
func Banner(name, version string) Log {
	headline := fmt.Sprintf("%s v%s | password-protected file sharing", name, version)
	rule := strings.Repeat("=", len(headline))

	return NewTextLog("%s\n%s\n%s", bannerColor.Sprint(rule), bannerColor.Sprint(headline), bannerColor.Sprint(rule))
}
