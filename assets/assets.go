// Package assets bundles the static files served by the template tools.
package assets

import "embed"

// LogoFile is the name of the logo image inside the asset root
const LogoFile = "redhat-logo.png"

//go:embed redhat-logo.png
var FS embed.FS
