// Package listview keeps a selection inside a scrolling window of rows.
//
// Only the rows inside the window are rendered, so views stay cheap no
// matter how many points a drill level holds. The window scrolls the
// minimum needed to keep the selection visible.
package listview
