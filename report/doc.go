// Package report renders plain-text reports about a transit core.Graph: a
// route with its leg distances, a traversal order, minimum spanning trees,
// connectivity, active accidents and closures, and overall system figures.
//
// Every report is framed by a header (title, date and time from the Writer's
// clock) and a footer. Stations are printed as
//
//	Station <id>: <name> (X: <x>, Y: <y>)
//
// with weights and coordinates to one decimal place.
//
// Report functions return the first write error; they never fail on the
// graph's content. A route with no direct connection between two stops, an
// empty graph or a fully closed network is reported, not rejected.
package report
