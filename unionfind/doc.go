// Package unionfind provides a disjoint-set forest over a fixed universe of
// integer labels 1..n.
//
// What
//
//   - Find(x): representative of x's set, with full path compression.
//   - Union(u, v): merge two sets by rank.
//   - Connected(u, v): same-set query.
//   - Reset(): every element back to its own singleton set.
//
// Labels outside [1, n] are never a panic: Find reports ok == false, Union is a
// no-op and Connected reports false. Callers that map sparse identifiers onto the
// universe (prim_kruskal.Kruskal does) check the boolean before using a root.
//
// Complexity
//
//   - Time:   O(α(n)) amortized per Find/Union/Connected.
//   - Memory: O(n) for parent and rank slices.
//
// The structure is not safe for concurrent mutation; create one per computation.
package unionfind
