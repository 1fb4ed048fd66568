// Package pptx renders a deck.Deck into a PowerPoint 2007+ document using
// GoPPT, and reads rendered documents back for inspection.
//
// Layouts are drawn with positioned rich-text shapes on a 16:9 canvas: the
// title layout centres a title over a subtitle, the content layout puts a
// heading above a bulleted body. A fresh GoPPT presentation already holds one
// slide and every fresh text shape already holds one empty paragraph; the
// renderer writes into those before creating new ones so the output never
// carries a blank leading slide or a blank leading bullet.
package pptx
