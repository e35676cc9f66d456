package skytracer

import (
	"fmt"
	"io"
	"os"
)

// Diag receives debug and progress output. It must never be the image stream.
var Diag io.Writer = os.Stderr

func DebugLog(format string, args ...interface{}) {
	if !Debug {
		return
	}
	fmt.Fprintf(Diag, "[DEBUG] "+format+"\n", args...)
}
