// Package fileutil holds file writing helpers shared by the builder.
package fileutil
