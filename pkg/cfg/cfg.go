package cfg

// DefaultTolerance is the maximum perpendicular distance, in input units, that
// a dropped point may deviate from the simplified line when no tolerance is
// given on the command line.
var DefaultTolerance = 1.0

// PointSeparators are the characters accepted between the x and y coordinate
// of a point in a point list. Any run of them counts as one separator.
var PointSeparators = ", \t;"

// CommentPrefix starts a line that is ignored in a point list.
var CommentPrefix = "#"

// OutputPrecision is the number of digits after the decimal point when
// writing points; -1 prints the shortest exact representation.
var OutputPrecision = -1
