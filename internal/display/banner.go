package display

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var bannerColor = color.New(color.FgHiMagenta, color.Bold)

// PrintBanner prints the ASCII art banner; colored when colors are enabled.
func PrintBanner() {
	banner := `        _      _                   _
__   __(_)  __| | _ __ ___    ___ | |_   __ _
\ \ / /| | / _` + "`" + ` || '_ ` + "`" + ` _ \  / _ \| __| / _` + "`" + ` |
 \ V / | || (_| || | | | | ||  __/| |_ | (_| |
  \_/  |_| \__,_||_| |_| |_| \___| \__| \__,_|
`
	fmt.Fprint(os.Stdout, bannerColor.Sprint(banner))
}
