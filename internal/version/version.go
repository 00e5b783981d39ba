package version

import "fmt"

const (
	Version = "v0.1.0"

	colorReset    = "\033[0m"
	colorCyanBold = "\033[36;1m"
)

// asciiArtTpl returns the ASCII art banner shared by the slite tools.
func asciiArtTpl() string {
	asciiArt := `
   _____ __    _ __
  / ___// /   (_) /____
  \__ \/ /   / / __/ _ \
 ___/ / /___/ / /_/  __/
/____/_____/_/\__/\___/
%s ` + Version + `
For more information visit https://github.com/slitedb/slite`

	asciiArt = asciiArt[1:] // This just removes the first newline character
	asciiArt = colorCyanBold + asciiArt + colorReset

	return asciiArt
}

// ShellVersion returns the version banner of the slite shell.
func ShellVersion() string {
	return fmt.Sprintf(asciiArtTpl(), "Shell")
}

// BenchVersion returns the version banner of slitebench.
func BenchVersion() string {
	return fmt.Sprintf(asciiArtTpl(), "Bench")
}
