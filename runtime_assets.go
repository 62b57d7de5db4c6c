package hrml

import (
	"embed"
	"io/fs"
)

//go:embed pkg/runtime/assets/*.js
var embeddedRuntimeAssets embed.FS

// RuntimeScriptName is the file name of the client enhancement script.
const RuntimeScriptName = "hrml.js"

// RuntimeAssetsFS exposes the embedded client runtime so applications can
// serve it without a build step.
//
// Typical mount:
//
//	mux.Handle("/hrml.js", http.FileServerFS(hrml.RuntimeAssetsFS()))
func RuntimeAssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedRuntimeAssets, "pkg/runtime/assets")
	if err != nil {
		return embeddedRuntimeAssets
	}
	return sub
}

// RuntimeScript returns the client runtime source, for handlers that want
// to serve it from a fixed route.
func RuntimeScript() []byte {
	data, err := fs.ReadFile(embeddedRuntimeAssets, "pkg/runtime/assets/"+RuntimeScriptName)
	if err != nil {
		return nil
	}
	return data
}
