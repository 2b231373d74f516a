package runner

import (
	"github.com/projectdiscovery/gologger"
)

var banner = `
 _   _ ____  _     ____                      _      _
| | | |  _ \| |   / ___|___  _ __ ___  _ __ | | ___| |_ ___
| | | | |_) | |  | |   / _ \| '_ ' _ \| '_ \| |/ _ \ __/ _ \
| |_| |  _ <| |__| |__| (_) | | | | | | |_) | |  __/ ||  __/
 \___/|_| \_\_____\____\___/|_| |_| |_| .__/|_|\___|\__\___|
                                      |_|
`

var version = "v0.1.0"

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\tprojectdiscovery.io\n\n")
}
