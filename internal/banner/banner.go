// Package banner renders the startup banner shown on stderr.
package banner

import "fmt"

const art = `
  _                                 _
 | | ___ _ __ ___  _ __ ___   __ _| |__   __ _ ___  ___
 | |/ _ \ '_ ' _ \| '_ ' _ \ / _' | '_ \ / _' / __|/ _ \
 | |  __/ | | | | | | | | | | (_| | |_) | (_| \__ \  __/
 |_|\___|_| |_| |_|_| |_| |_|\__,_|_.__/ \__,_|___/\___|
`

// Banner returns the ASCII banner followed by the version line.
func Banner(version string) string {
	return fmt.Sprintf("%s\n  frequency baseline lemmatizer  %s\n\n", art, version)
}
