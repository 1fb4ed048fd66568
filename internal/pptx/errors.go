package pptx

import "errors"

// ErrWriterUnavailable reports that GoPPT could not provide a PowerPoint 2007
// writer. It is the only way the document engine can be "missing" in a
// statically linked binary.
var ErrWriterUnavailable = errors.New("pptx writer unavailable")
