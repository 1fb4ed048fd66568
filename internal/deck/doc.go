// Package deck models the slide deck agrideck produces.
//
// A Deck is an ordered list of slides. Slides come in two layouts: a title
// slide carrying a title and subtitle, and a content slide carrying a title and
// a bulleted body. The deck is append-only while it is being assembled and is
// sealed once it has been serialized, after which further appends fail.
//
// AgriSense returns the fixed ten-slide content table the CLI renders. Keep
// slide text here as plain strings; rendering concerns (fonts, geometry,
// placeholders) belong to the pptx package.
package deck
