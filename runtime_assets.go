package surveyslider

import (
	"io/fs"

	"github.com/goliatone/go-surveyslider/pkg/renderers/vanilla"
)

// RuntimeAssetsFS exposes the browser runtime (movement gating, submit
// event) and stylesheet so Go applications can serve them instead of
// inlining them in every trial.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(surveyslider.RuntimeAssetsFS()),
//	  ),
//	)
func RuntimeAssetsFS() fs.FS {
	return vanilla.AssetsFS()
}
