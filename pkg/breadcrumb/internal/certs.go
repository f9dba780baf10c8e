//go:build go1.24

// certifiable declares go >= 1.24 in its go.mod, so toolchains older
// than that cannot load a package that imports it; the build tag keeps
// the module graph loadable for them without dropping the import.
package internal

import _ "github.com/BrandonKowalski/certifiable" // Add CA certificates to the default trust store
