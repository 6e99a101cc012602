// Package rdfnav provides node-centric navigation over an RDF triple store.
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// Author: Stephane Fellah (stephanef@geoknoesis.com)
// Geosemantic-AI expert with 30 years of experience
//
// The package lets a caller walk outward from a node along labeled edges
// without writing pattern-matching queries for every hop, while enforcing
// cardinality and type expectations at each step:
//   - Navigator wraps a Graph and resolves entry points: Instances(),
//     Instance(), Subjects(), Subject(), Node().
//   - NodeRef is a lightweight handle on one node. Its traversal methods
//     (RefObjs, RefObj, RefSubjs, RefSubj, LitObjs, LitObj and the
//     prefix-grouping variants) each consult the store on demand and yield
//     new NodeRefs or terminal literals.
//   - CBD() and Subgraph() extract bounded sub-graphs into a fresh store.
//
// Traversal sequences are lazy iter.Seq values. They re-query the store on
// every iteration, so they reflect live store state rather than a snapshot,
// and they may be abandoned at any point without side effects.
//
// Singular accessors (RefObj, LitObj, RefSubj, Subject, Instance) succeed
// only when exactly one statement matches; otherwise they return a
// *CardinalityError that distinguishes an absent edge from a non-unique one.
// At most two elements of the underlying sequence are ever produced.
//
// The Graph collaborator is expected to be supplied by an existing storage
// engine. MemoryGraph is a small btree-indexed implementation suitable for
// embedding and for tests. Stores that also run SPARQL expose it through
// the optional Querier interface; Navigator's Ask/Select/Construct/Describe
// methods pass queries through without re-validating the query form.
//
// Mutation methods (Add, Delete, Replace, ChangeIRI) forward to the store
// and add no locking or transaction semantics of their own. Against a store
// whose mutations can fail, ChangeIRI may leave a partial rewrite behind;
// callers needing atomicity must provide it at the store level.
package rdfnav
